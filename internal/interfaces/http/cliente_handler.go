package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain"
)

// ClienteHandler trata as requisições HTTP de clientes e seus veículos
// (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create cria um cliente.
// POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "documento já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Cliente cadastrado com sucesso", Dados: out})
}

// GetByID busca um cliente.
// GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List lista clientes paginados.
// GET /api/clientes?limit=&offset=
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update atualiza um cliente.
// PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.CriarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Cliente atualizado com sucesso", Dados: out})
}

// Delete remove um cliente.
// DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Cliente excluído com sucesso"})
}

// AddVeiculo cadastra um veículo adicional do cliente.
// POST /api/clientes/:id/veiculos
func (h *ClienteHandler) AddVeiculo(c *fiber.Ctx) error {
	var in dto.CriarVeiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AdicionarVeiculo(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Veículo cadastrado com sucesso", Dados: out})
}

// ListVeiculos lista os veículos do cliente.
// GET /api/clientes/:id/veiculos
func (h *ClienteHandler) ListVeiculos(c *fiber.Ctx) error {
	out, err := h.uc.ListarVeiculos(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteVeiculo remove um veículo do cliente.
// DELETE /api/clientes/:id/veiculos/:veiculoId
func (h *ClienteHandler) DeleteVeiculo(c *fiber.Ctx) error {
	if err := h.uc.ExcluirVeiculo(c.Params("id"), c.Params("veiculoId")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "veículo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Veículo excluído com sucesso"})
}
