package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusServico é o estado de execução de uma ordem de serviço.
// Andamento e Aguardando Peças são estados ativos; Finalizado e Entregue são
// estados finais. A fronteira ativo→final é o que dispara a baixa de estoque.
type StatusServico string

const (
	ServicoAndamento       StatusServico = "Andamento"
	ServicoAguardandoPecas StatusServico = "Aguardando Peças"
	ServicoFinalizado      StatusServico = "Finalizado"
	ServicoEntregue        StatusServico = "Entregue"
)

// Valido informa se o status é um dos valores conhecidos.
func (s StatusServico) Valido() bool {
	switch s {
	case ServicoAndamento, ServicoAguardandoPecas, ServicoFinalizado, ServicoEntregue:
		return true
	}
	return false
}

// Ativo informa se o status pertence à classe ativa (antes da finalização).
func (s StatusServico) Ativo() bool {
	return s == ServicoAndamento || s == ServicoAguardandoPecas
}

// Final informa se o status pertence à classe final.
func (s StatusServico) Final() bool {
	return s == ServicoFinalizado || s == ServicoEntregue
}

// EfeitoEstoque é o efeito de uma transição de status sobre o estoque.
type EfeitoEstoque int

const (
	EfeitoNenhum   EfeitoEstoque = iota
	EfeitoConsumir               // ativo → final: baixa as peças do orçamento
	EfeitoDevolver               // final → ativo: devolve as peças ao estoque
)

// EfeitoTransicao classifica a transição de status. Transições dentro da mesma
// classe (ex.: Finalizado→Entregue) não têm efeito. Deve ser avaliada com o
// status anteriormente PERSISTIDO, nunca com o estado vindo do cliente.
func EfeitoTransicao(de, para StatusServico) EfeitoEstoque {
	switch {
	case de.Ativo() && para.Final():
		return EfeitoConsumir
	case de.Final() && para.Ativo():
		return EfeitoDevolver
	}
	return EfeitoNenhum
}

// StatusPagamento é o estado de pagamento derivado de uma OS.
type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "Pendente"
	PagamentoPago     StatusPagamento = "Pago"
)

// OrdemServico é o registro de execução do reparo, derivado de um orçamento
// aprovado. ValorTotal é copiado do orçamento na criação.
type OrdemServico struct {
	ID             string          `json:"id"`
	Numero         string          `json:"numero"`
	ClienteID      string          `json:"cliente_id"`
	VeiculoID      *string         `json:"veiculo_id,omitempty"`
	OrcamentoID    *string         `json:"orcamento_id,omitempty"`
	StatusServico  StatusServico   `json:"status_servico"`
	DataInicio     time.Time       `json:"data_inicio"`
	PrazoConclusao *time.Time      `json:"prazo_conclusao,omitempty"`
	KmAtual        *string         `json:"km_atual,omitempty"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	Desconto       decimal.Decimal `json:"desconto"`
	ValorPago      decimal.Decimal `json:"valor_pago"`
	FormaPagamento *string         `json:"forma_pagamento,omitempty"`
	Observacoes    *string         `json:"observacoes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ValorAPagar devolve valor_total − desconto − valor_pago.
// Sempre derivado; nunca é lido de uma coluna como fonte de verdade.
func (o *OrdemServico) ValorAPagar() decimal.Decimal {
	return o.ValorTotal.Sub(o.Desconto).Sub(o.ValorPago)
}

// StatusPagamento deriva o estado de pagamento: Pago sse valor a pagar <= 0.
func (o *OrdemServico) StatusPagamento() StatusPagamento {
	if o.ValorAPagar().LessThanOrEqual(decimal.Zero) {
		return PagamentoPago
	}
	return PagamentoPendente
}

// OrdemServicoDetalhada agrega a OS com cliente, veículo e o orçamento de
// origem com suas linhas.
type OrdemServicoDetalhada struct {
	OrdemServico
	Cliente   *Cliente            `json:"cliente,omitempty"`
	Veiculo   *Veiculo            `json:"veiculo,omitempty"`
	Orcamento *OrcamentoDetalhado `json:"orcamento,omitempty"`
}
