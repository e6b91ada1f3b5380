package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/application/usecase"
)

// DashboardHandler trata o endpoint do painel inicial (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo devolve os contadores e totais do painel: clientes, orçamentos
// pendentes, ordens em andamento, faturamento do mês, contas a receber/pagar e
// as ordens mais recentes.
// GET /api/dashboard
//
// Não recebe parâmetros; o mês corrente é calculado no servidor.
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
