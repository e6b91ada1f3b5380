package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain"
)

// PecaHandler trata as requisições HTTP do catálogo de peças (protegido).
// O estoque não é editável por aqui: só muda via transições de OS e compras.
type PecaHandler struct {
	uc *usecase.PecaUseCase
}

// NewPecaHandler constrói o handler.
func NewPecaHandler(uc *usecase.PecaUseCase) *PecaHandler {
	return &PecaHandler{uc: uc}
}

// Create cadastra uma peça.
// POST /api/pecas
func (h *PecaHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarPecaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de peça já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Peça cadastrada com sucesso", Dados: out})
}

// GetByID busca uma peça.
// GET /api/pecas/:id
func (h *PecaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "peça não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List lista peças paginadas.
// GET /api/pecas?limit=&offset=
func (h *PecaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update atualiza uma peça (exceto o estoque).
// PUT /api/pecas/:id
func (h *PecaHandler) Update(c *fiber.Ctx) error {
	var in dto.CriarPecaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "peça não encontrada"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Peça atualizada com sucesso", Dados: out})
}

// Delete remove uma peça.
// DELETE /api/pecas/:id
func (h *PecaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "peça não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Peça excluída com sucesso"})
}
