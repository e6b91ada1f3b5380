package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain"
)

// CategoriaHandler trata as requisições HTTP de categorias financeiras
// (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Create cadastra uma categoria.
// POST /api/categorias
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe categoria com este nome e tipo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Categoria cadastrada com sucesso", Dados: out})
}

// List lista as categorias.
// GET /api/categorias
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update atualiza uma categoria.
// PUT /api/categorias/:id
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.CriarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe categoria com este nome e tipo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Categoria atualizada com sucesso", Dados: out})
}

// Delete remove uma categoria.
// DELETE /api/categorias/:id
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoria não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Categoria excluída com sucesso"})
}
