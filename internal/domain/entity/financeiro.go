package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de lançamentos financeiros.
const (
	ContaPendente = "Pendente"
	ContaRecebido = "Recebido"
	ContaPago     = "Pago"
)

// Tipos de despesa.
const (
	DespesaFixa     = "Fixa"
	DespesaVariavel = "Variável"
)

// Receita é um lançamento de entrada no financeiro.
//
// Quando OrdemServicoID está preenchido, o status e os valores efetivos são
// derivados da OS vinculada (valor_pago/valor_a_pagar); o campo Status só é
// autoritativo para receitas avulsas. Ver financeiro.Derivar.
type Receita struct {
	ID              string          `json:"id"`
	Numero          string          `json:"numero"`
	Descricao       string          `json:"descricao"`
	Valor           decimal.Decimal `json:"valor"`
	Status          string          `json:"status"`
	DataVencimento  time.Time       `json:"data_vencimento"`
	DataRecebimento *time.Time      `json:"data_recebimento,omitempty"`
	CategoriaID     *string         `json:"categoria_id,omitempty"`
	OrdemServicoID  *string         `json:"ordem_servico_id,omitempty"`
	FormaPagamento  *string         `json:"forma_pagamento,omitempty"`
	Observacoes     *string         `json:"observacoes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Vinculada informa se a receita está atrelada a uma ordem de serviço.
func (r *Receita) Vinculada() bool { return r.OrdemServicoID != nil }

// Despesa é um lançamento de saída no financeiro.
type Despesa struct {
	ID             string          `json:"id"`
	Numero         string          `json:"numero"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Status         string          `json:"status"` // Pendente, Pago
	Tipo           string          `json:"tipo"`   // Fixa, Variável
	DataVencimento time.Time       `json:"data_vencimento"`
	DataPagamento  *time.Time      `json:"data_pagamento,omitempty"`
	CategoriaID    *string         `json:"categoria_id,omitempty"`
	FormaPagamento *string         `json:"forma_pagamento,omitempty"`
	Observacoes    *string         `json:"observacoes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Tipos de categoria.
const (
	CategoriaReceita = "receita"
	CategoriaDespesa = "despesa"
	CategoriaAmbos   = "ambos"
)

// Categoria classifica receitas e despesas.
type Categoria struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Tipo      string    `json:"tipo"` // receita, despesa, ambos
	Cor       *string   `json:"cor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
