package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain"
)

// MarketingHandler trata as requisições HTTP do módulo de marketing e
// aniversários (protegido).
type MarketingHandler struct {
	uc *usecase.MarketingUseCase
}

// NewMarketingHandler constrói o handler.
func NewMarketingHandler(uc *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{uc: uc}
}

// Create cadastra um contato de marketing.
// POST /api/marketing/contatos
func (h *MarketingHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarContatoMarketingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Contato cadastrado com sucesso", Dados: out})
}

// List lista os contatos.
// GET /api/marketing/contatos
func (h *MarketingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Aniversariantes devolve os contatos com aniversário nos próximos 30 dias,
// ordenados pelos dias restantes.
// GET /api/marketing/aniversariantes
func (h *MarketingHandler) Aniversariantes(c *fiber.Ctx) error {
	out, err := h.uc.AniversariantesProximos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MensagemEnviada carimba o envio da mensagem de aniversário do contato.
// PATCH /api/marketing/contatos/:id/mensagem
func (h *MarketingHandler) MensagemEnviada(c *fiber.Ctx) error {
	out, err := h.uc.RegistrarMensagemEnviada(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contato não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Mensagem registrada com sucesso", Dados: out})
}

// Delete remove um contato.
// DELETE /api/marketing/contatos/:id
func (h *MarketingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contato não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Contato excluído com sucesso"})
}
