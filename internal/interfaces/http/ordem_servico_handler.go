package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	appos "github.com/oficinago/oficina-api/internal/application/ordemservico"
	"github.com/oficinago/oficina-api/internal/domain"
)

// OrdemServicoHandler trata as requisições HTTP de ordens de serviço
// (protegido).
type OrdemServicoHandler struct {
	uc *appos.UseCase
}

// NewOrdemServicoHandler constrói o handler.
func NewOrdemServicoHandler(uc *appos.UseCase) *OrdemServicoHandler {
	return &OrdemServicoHandler{uc: uc}
}

// Create cria uma OS a partir de um orçamento aprovado (ou avulsa).
// POST /api/ordens-servico
func (h *OrdemServicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarOrdemServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Ordem de serviço criada com sucesso", Dados: dto.NovaOrdemServicoResponse(out)})
}

// GetByID busca uma OS detalhada.
// GET /api/ordens-servico/:id
func (h *OrdemServicoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(out)
}

// List lista todas as ordens com os campos de pagamento derivados.
// GET /api/ordens-servico
func (h *OrdemServicoHandler) List(c *fiber.Ctx) error {
	ordens, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OrdemServicoResponse, 0, len(ordens))
	for _, o := range ordens {
		out = append(out, dto.NovaOrdemServicoResponse(o))
	}
	return c.JSON(out)
}

// Update aplica uma atualização parcial; transições de status disparam a
// baixa ou devolução de estoque das peças do orçamento.
// PUT /api/ordens-servico/:id
func (h *OrdemServicoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarOrdemServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Ordem de serviço atualizada com sucesso", Dados: dto.NovaOrdemServicoResponse(out)})
}

// Delete remove a OS em cascata (receitas vinculadas e reversão do orçamento).
// DELETE /api/ordens-servico/:id
func (h *OrdemServicoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Context(), c.Params("id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Ordem de serviço excluída com sucesso"})
}

// mapErr traduz erros de domínio de OS para status HTTP.
func (h *OrdemServicoHandler) mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrOrcamentoNaoAprovado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUOTE_NOT_APPROVED", Message: "orçamento não está aprovado"})
	case errors.Is(err, domain.ErrOrcamentoComOS):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_WORK_ORDER", Message: "orçamento já possui ordem de serviço"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
