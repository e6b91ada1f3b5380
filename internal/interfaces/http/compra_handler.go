package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcompras "github.com/oficinago/oficina-api/internal/application/compras"
	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
)

// CompraHandler trata as requisições HTTP de compras de peças (protegido).
type CompraHandler struct {
	uc *appcompras.UseCase
}

// NewCompraHandler constrói o handler.
func NewCompraHandler(uc *appcompras.UseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Create registra uma compra: incrementa o estoque da peça, atualiza seu custo
// e lança (ou soma) a despesa da nota, tudo na mesma transação.
// POST /api/compras
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor ou peça não encontrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "Compra registrada com sucesso", Dados: out})
}

// List devolve o histórico de compras com nomes de fornecedor e peça.
// GET /api/compras
func (h *CompraHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
