package orcamento

import (
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// CalcularTotal implementa o agregador de linhas do orçamento (serviço de domínio).
// Total = Σ(quantidade × valor unitário das peças) + Σ(horas × valor hora dos serviços),
// arredondado a 2 casas (half-up). Conjuntos vazios resultam em 0.
func CalcularTotal(pecas []*entity.OrcamentoPeca, servicos []*entity.OrcamentoServico) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pecas {
		total = total.Add(p.ValorUnitario.Mul(decimal.NewFromInt(int64(p.Quantidade))))
	}
	for _, s := range servicos {
		total = total.Add(s.ValorHora.Mul(s.Horas))
	}
	return total.Round(2)
}
