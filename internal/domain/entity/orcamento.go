package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOrcamento é o ciclo de vida de um orçamento.
type StatusOrcamento string

const (
	OrcamentoPendente  StatusOrcamento = "Pendente"
	OrcamentoAprovado  StatusOrcamento = "Aprovado"
	OrcamentoReprovado StatusOrcamento = "Reprovado"
	OrcamentoCancelado StatusOrcamento = "Cancelado"
)

// Valido informa se o status é um dos valores conhecidos.
func (s StatusOrcamento) Valido() bool {
	switch s {
	case OrcamentoPendente, OrcamentoAprovado, OrcamentoReprovado, OrcamentoCancelado:
		return true
	}
	return false
}

// Orcamento representa um orçamento (proposta de peças e serviços).
// ValorTotal é um cache derivado das linhas; é recalculado e persistido a cada
// inclusão/remoção de linha, nunca lido como fonte de verdade.
type Orcamento struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numero"`
	ClienteID     string          `json:"cliente_id"`
	VeiculoID     *string         `json:"veiculo_id,omitempty"`
	Status        StatusOrcamento `json:"status"`
	DataOrcamento time.Time       `json:"data_orcamento"`
	Validade      *time.Time      `json:"validade,omitempty"`
	KmAtual       *string         `json:"km_atual,omitempty"`
	Observacoes   *string         `json:"observacoes,omitempty"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrcamentoPeca é uma linha de peça de um orçamento.
type OrcamentoPeca struct {
	ID            string          `json:"id"`
	OrcamentoID   string          `json:"orcamento_id"`
	PecaID        string          `json:"peca_id"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrcamentoServico é uma linha de serviço de um orçamento.
type OrcamentoServico struct {
	ID          string          `json:"id"`
	OrcamentoID string          `json:"orcamento_id"`
	ServicoID   string          `json:"servico_id"`
	Horas       decimal.Decimal `json:"horas"`
	ValorHora   decimal.Decimal `json:"valor_hora"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrcamentoPecaDetalhada é a linha de peça com o nome da peça resolvido.
type OrcamentoPecaDetalhada struct {
	OrcamentoPeca
	PecaNome string `json:"peca_nome"`
}

// OrcamentoServicoDetalhado é a linha de serviço com o nome do serviço resolvido.
type OrcamentoServicoDetalhado struct {
	OrcamentoServico
	ServicoNome string `json:"servico_nome"`
}

// OrcamentoDetalhado agrega o orçamento com cliente, veículo e linhas
// (o "include relacional" carregado em uma única leitura).
type OrcamentoDetalhado struct {
	Orcamento
	Cliente  *Cliente                     `json:"cliente,omitempty"`
	Veiculo  *Veiculo                     `json:"veiculo,omitempty"`
	Pecas    []*OrcamentoPecaDetalhada    `json:"pecas"`
	Servicos []*OrcamentoServicoDetalhado `json:"servicos"`
}
