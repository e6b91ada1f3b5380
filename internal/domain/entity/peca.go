package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Peca representa uma peça do estoque da oficina.
// Estoque nil significa "não controlado"; para a aritmética de baixa/devolução
// é tratado como 0. A quantidade só é alterada pelo motor de estoque
// (transições de OS) ou pelo registro de compra de peças.
type Peca struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Codigo        *string         `json:"codigo,omitempty"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorCusto    *decimal.Decimal `json:"valor_custo,omitempty"`
	Estoque       *int            `json:"estoque"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EstoqueAtual devolve a quantidade em mãos, tratando nil como 0.
func (p *Peca) EstoqueAtual() int {
	if p.Estoque == nil {
		return 0
	}
	return *p.Estoque
}

// Servico representa um serviço do catálogo, cobrado por hora.
type Servico struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	Descricao *string         `json:"descricao,omitempty"`
	ValorHora decimal.Decimal `json:"valor_hora"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
