package dto

import "github.com/shopspring/decimal"

// OrdemRecente linha do painel de ordens recentes.
type OrdemRecente struct {
	ID      string          `json:"id"`
	Numero  string          `json:"numero"`
	Cliente string          `json:"cliente"`
	Veiculo string          `json:"veiculo"`
	Status  string          `json:"status"`
	Valor   decimal.Decimal `json:"valor"`
}

// DashboardResponse indicadores agregados da oficina.
type DashboardResponse struct {
	ClientesAtivos      int             `json:"clientes_ativos"`
	OrcamentosPendentes int             `json:"orcamentos_pendentes"`
	ServicosAndamento   int             `json:"servicos_andamento"`
	FaturamentoMensal   decimal.Decimal `json:"faturamento_mensal"`
	TotalRecebido       decimal.Decimal `json:"total_recebido"`
	TotalAReceber       decimal.Decimal `json:"total_a_receber"`
	ContasEmAtraso      decimal.Decimal `json:"contas_em_atraso"`
	TotalPago           decimal.Decimal `json:"total_pago"`
	TotalAPagar         decimal.Decimal `json:"total_a_pagar"`
	OrdensRecentes      []OrdemRecente  `json:"ordens_recentes"`
}
