package dto

import "github.com/shopspring/decimal"

// LinhaPecaRequest linha de peça de um orçamento.
type LinhaPecaRequest struct {
	PecaID        string          `json:"peca_id"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// LinhaServicoRequest linha de serviço de um orçamento.
type LinhaServicoRequest struct {
	ServicoID string          `json:"servico_id"`
	Horas     decimal.Decimal `json:"horas"`
	ValorHora decimal.Decimal `json:"valor_hora"`
}

// CriarOrcamentoRequest orçamento com linhas iniciais opcionais.
type CriarOrcamentoRequest struct {
	ClienteID     string                `json:"cliente_id"`
	VeiculoID     *string               `json:"veiculo_id"`
	DataOrcamento string                `json:"data_orcamento"`
	Validade      *string               `json:"validade"`
	KmAtual       *string               `json:"km_atual"`
	Observacoes   *string               `json:"observacoes"`
	Pecas         []LinhaPecaRequest    `json:"pecas"`
	Servicos      []LinhaServicoRequest `json:"servicos"`
}

// AtualizarOrcamentoRequest campos editáveis de um orçamento pendente.
type AtualizarOrcamentoRequest struct {
	VeiculoID   *string `json:"veiculo_id"`
	Validade    *string `json:"validade"`
	KmAtual     *string `json:"km_atual"`
	Observacoes *string `json:"observacoes"`
}

// AtualizarStatusOrcamentoRequest transição de status do orçamento.
type AtualizarStatusOrcamentoRequest struct {
	Status string `json:"status"`
}
