package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	appfinanceiro "github.com/oficinago/oficina-api/internal/application/financeiro"
	"github.com/oficinago/oficina-api/internal/domain"
)

// FinanceiroHandler trata as requisições HTTP de receitas, despesas e do
// resumo financeiro (protegido).
type FinanceiroHandler struct {
	uc *appfinanceiro.UseCase
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(uc *appfinanceiro.UseCase) *FinanceiroHandler {
	return &FinanceiroHandler{uc: uc}
}

// CreateReceita cria uma receita avulsa.
// POST /api/financeiro/receitas
func (h *FinanceiroHandler) CreateReceita(c *fiber.Ctx) error {
	var in dto.CriarReceitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarReceita(c.Context(), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Receita cadastrada com sucesso", Dados: out})
}

// ListReceitas lista receitas com status e valores efetivos derivados das OS
// vinculadas.
// GET /api/financeiro/receitas
func (h *FinanceiroHandler) ListReceitas(c *fiber.Ctx) error {
	out, err := h.uc.ListarReceitas(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateReceita atualiza uma receita avulsa.
// PUT /api/financeiro/receitas/:id
func (h *FinanceiroHandler) UpdateReceita(c *fiber.Ctx) error {
	var in dto.CriarReceitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarReceita(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Receita atualizada com sucesso", Dados: out})
}

// ToggleReceita alterna Pendente/Recebido de uma receita avulsa, carimbando a
// data de recebimento.
// PATCH /api/financeiro/receitas/:id/status
func (h *FinanceiroHandler) ToggleReceita(c *fiber.Ctx) error {
	out, err := h.uc.AlternarStatusReceita(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Status da receita atualizado com sucesso", Dados: out})
}

// DeleteReceita remove uma receita avulsa.
// DELETE /api/financeiro/receitas/:id
func (h *FinanceiroHandler) DeleteReceita(c *fiber.Ctx) error {
	if err := h.uc.ExcluirReceita(c.Context(), c.Params("id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Receita excluída com sucesso"})
}

// CreateDespesa cria uma despesa.
// POST /api/financeiro/despesas
func (h *FinanceiroHandler) CreateDespesa(c *fiber.Ctx) error {
	var in dto.CriarDespesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarDespesa(c.Context(), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Despesa cadastrada com sucesso", Dados: out})
}

// ListDespesas lista as despesas.
// GET /api/financeiro/despesas
func (h *FinanceiroHandler) ListDespesas(c *fiber.Ctx) error {
	out, err := h.uc.ListarDespesas(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ToggleDespesa alterna Pendente/Pago de uma despesa, carimbando a data de
// pagamento.
// PATCH /api/financeiro/despesas/:id/status
func (h *FinanceiroHandler) ToggleDespesa(c *fiber.Ctx) error {
	out, err := h.uc.AlternarStatusDespesa(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Status da despesa atualizado com sucesso", Dados: out})
}

// DeleteDespesa remove uma despesa.
// DELETE /api/financeiro/despesas/:id
func (h *FinanceiroHandler) DeleteDespesa(c *fiber.Ctx) error {
	if err := h.uc.ExcluirDespesa(c.Context(), c.Params("id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Despesa excluída com sucesso"})
}

// Resumo devolve os totais consolidados do financeiro.
// GET /api/financeiro/resumo
func (h *FinanceiroHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// mapErr traduz erros de domínio do financeiro para status HTTP.
func (h *FinanceiroHandler) mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrReceitaVinculada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LINKED_REVENUE", Message: "receita vinculada a uma ordem de serviço; altere pela OS"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
