package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appdocumentos "github.com/oficinago/oficina-api/internal/application/documentos"
	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
)

// DocumentoHandler trata o download dos documentos PDF (protegido).
type DocumentoHandler struct {
	uc *appdocumentos.UseCase
}

// NewDocumentoHandler constrói o handler.
func NewDocumentoHandler(uc *appdocumentos.UseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// OrcamentoPDF baixa o PDF de um orçamento.
// GET /api/orcamentos/:id/pdf
func (h *DocumentoHandler) OrcamentoPDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.OrcamentoPDF(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err, "orçamento não encontrado")
	}
	return enviarPDF(c, pdf, nome)
}

// OrdemServicoPDF baixa o PDF de uma ordem de serviço.
// GET /api/ordens-servico/:id/pdf
func (h *DocumentoHandler) OrdemServicoPDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.OrdemServicoPDF(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapErr(c, err, "ordem de serviço não encontrada")
	}
	return enviarPDF(c, pdf, nome)
}

func (h *DocumentoHandler) mapErr(c *fiber.Ctx, err error, notFound string) error {
	if errors.Is(err, domain.ErrNaoEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func enviarPDF(c *fiber.Ctx, pdf []byte, nome string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdf)
}
