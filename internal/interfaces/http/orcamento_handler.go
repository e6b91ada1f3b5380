package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	apporcamento "github.com/oficinago/oficina-api/internal/application/orcamento"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// OrcamentoHandler trata as requisições HTTP de orçamentos (protegido).
type OrcamentoHandler struct {
	uc *apporcamento.UseCase
}

// NewOrcamentoHandler constrói o handler.
func NewOrcamentoHandler(uc *apporcamento.UseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc}
}

// Create cria um orçamento com linhas iniciais opcionais.
// POST /api/orcamentos
func (h *OrcamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Orçamento criado com sucesso", Dados: out})
}

// GetByID busca um orçamento detalhado (cliente, veículo e linhas).
// GET /api/orcamentos/:id
func (h *OrcamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(out)
}

// List lista todos os orçamentos detalhados.
// GET /api/orcamentos
func (h *OrcamentoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update atualiza os campos editáveis de um orçamento.
// PUT /api/orcamentos/:id
func (h *OrcamentoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Orçamento atualizado com sucesso", Dados: out})
}

// UpdateStatus transita o status do orçamento. Reverter um orçamento aprovado
// que já gerou OS desfaz a OS e suas receitas.
// PATCH /api/orcamentos/:id/status
func (h *OrcamentoHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.AtualizarStatusOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	status := entity.StatusOrcamento(in.Status)
	if !status.Valido() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status de orçamento inválido"})
	}
	if err := h.uc.AtualizarStatus(c.Context(), c.Params("id"), status); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Status do orçamento atualizado com sucesso"})
}

// Delete remove um orçamento sem OS derivada.
// DELETE /api/orcamentos/:id
func (h *OrcamentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Context(), c.Params("id")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Orçamento excluído com sucesso"})
}

// AddPeca adiciona uma linha de peça e recalcula o total.
// POST /api/orcamentos/:id/pecas
func (h *OrcamentoHandler) AddPeca(c *fiber.Ctx) error {
	var in dto.LinhaPecaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AdicionarPeca(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Peça adicionada ao orçamento", Dados: out})
}

// RemovePeca remove uma linha de peça e recalcula o total.
// DELETE /api/orcamentos/:id/pecas/:linhaId
func (h *OrcamentoHandler) RemovePeca(c *fiber.Ctx) error {
	if err := h.uc.RemoverPeca(c.Context(), c.Params("id"), c.Params("linhaId")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Peça removida do orçamento"})
}

// AddServico adiciona uma linha de serviço e recalcula o total.
// POST /api/orcamentos/:id/servicos
func (h *OrcamentoHandler) AddServico(c *fiber.Ctx) error {
	var in dto.LinhaServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AdicionarServico(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Serviço adicionado ao orçamento", Dados: out})
}

// RemoveServico remove uma linha de serviço e recalcula o total.
// DELETE /api/orcamentos/:id/servicos/:linhaId
func (h *OrcamentoHandler) RemoveServico(c *fiber.Ctx) error {
	if err := h.uc.RemoverServico(c.Context(), c.Params("id"), c.Params("linhaId")); err != nil {
		return h.mapErr(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Serviço removido do orçamento"})
}

// mapErr traduz erros de domínio de orçamento para status HTTP.
func (h *OrcamentoHandler) mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrOrcamentoNaoEditavel):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_EDITABLE", Message: "orçamento não está pendente"})
	case errors.Is(err, domain.ErrOrcamentoComOS):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_WORK_ORDER", Message: "orçamento já possui ordem de serviço"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
