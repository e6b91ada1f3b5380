package dto

import (
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// CriarOrdemServicoRequest abertura de ordem de serviço. OrcamentoID, quando
// presente, deve referir um orçamento aprovado.
type CriarOrdemServicoRequest struct {
	ClienteID      string  `json:"cliente_id"`
	VeiculoID      *string `json:"veiculo_id"`
	OrcamentoID    *string `json:"orcamento_id"`
	DataInicio     string  `json:"data_inicio"`
	PrazoConclusao *string `json:"prazo_conclusao"`
	KmAtual        *string `json:"km_atual"`
	Observacoes    *string `json:"observacoes"`
}

// AtualizarOrdemServicoRequest atualização parcial; campos nil ficam como estão.
type AtualizarOrdemServicoRequest struct {
	StatusServico  *string          `json:"status_servico"`
	ValorPago      *decimal.Decimal `json:"valor_pago"`
	Desconto       *decimal.Decimal `json:"desconto"`
	FormaPagamento *string          `json:"forma_pagamento"`
	PrazoConclusao *string          `json:"prazo_conclusao"`
	KmAtual        *string          `json:"km_atual"`
	Observacoes    *string          `json:"observacoes"`
}

// OrdemServicoResponse ordem de serviço com os valores derivados de pagamento.
type OrdemServicoResponse struct {
	*entity.OrdemServico
	ValorAPagar     decimal.Decimal        `json:"valor_a_pagar"`
	StatusPagamento entity.StatusPagamento `json:"status_pagamento"`
}

// NovaOrdemServicoResponse monta a resposta derivando os campos de pagamento.
func NovaOrdemServicoResponse(os *entity.OrdemServico) OrdemServicoResponse {
	return OrdemServicoResponse{
		OrdemServico:    os,
		ValorAPagar:     os.ValorAPagar(),
		StatusPagamento: os.StatusPagamento(),
	}
}
