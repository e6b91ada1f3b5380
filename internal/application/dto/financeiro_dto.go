package dto

import (
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/financeiro"
)

// CriarReceitaRequest receita avulsa (não vinculada a ordem de serviço).
type CriarReceitaRequest struct {
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento string          `json:"data_vencimento"`
	DataRecebimento *string        `json:"data_recebimento"`
	Status         *string         `json:"status"`
	CategoriaID    *string         `json:"categoria_id"`
	FormaPagamento *string         `json:"forma_pagamento"`
	Observacoes    *string         `json:"observacoes"`
}

// CriarDespesaRequest despesa fixa ou variável.
type CriarDespesaRequest struct {
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Tipo           string          `json:"tipo"`
	DataVencimento string          `json:"data_vencimento"`
	CategoriaID    *string         `json:"categoria_id"`
	FornecedorID   *string         `json:"fornecedor_id"`
	Observacoes    *string         `json:"observacoes"`
}

// ReceitaResponse receita com os valores efetivos. Para receitas vinculadas a
// uma ordem de serviço os campos refletem a ordem, não a linha persistida.
type ReceitaResponse struct {
	*entity.Receita
	ValorEfetivo  decimal.Decimal `json:"valor_efetivo"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	ValorAPagar   decimal.Decimal `json:"valor_a_pagar"`
	StatusEfetivo string          `json:"status_efetivo"`
}

// NovaReceitaResponse monta a resposta a partir da derivação financeira.
func NovaReceitaResponse(r *entity.Receita, os *entity.OrdemServico) ReceitaResponse {
	ef := financeiro.Derivar(r, os)
	return ReceitaResponse{
		Receita:       r,
		ValorEfetivo:  ef.ValorTotal,
		ValorPago:     ef.ValorPago,
		ValorAPagar:   ef.ValorAPagar,
		StatusEfetivo: string(ef.Status),
	}
}
