package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain"
)

// FornecedorHandler trata as requisições HTTP de fornecedores (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create cadastra um fornecedor.
// POST /api/fornecedores
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "CNPJ já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Fornecedor cadastrado com sucesso", Dados: out})
}

// GetByID busca um fornecedor.
// GET /api/fornecedores/:id
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List lista os fornecedores.
// GET /api/fornecedores
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update atualiza um fornecedor.
// PUT /api/fornecedores/:id
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Fornecedor atualizado com sucesso", Dados: out})
}

// Delete remove um fornecedor.
// DELETE /api/fornecedores/:id
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Fornecedor excluído com sucesso"})
}
