package orcamento

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCalcularTotal(t *testing.T) {
	pecas := []*entity.OrcamentoPeca{
		{Quantidade: 2, ValorUnitario: dec("150.00")},
		{Quantidade: 1, ValorUnitario: dec("89.90")},
	}
	servicos := []*entity.OrcamentoServico{
		{Horas: dec("3"), ValorHora: dec("120.00")},
		{Horas: dec("1.5"), ValorHora: dec("100.00")},
	}

	total := CalcularTotal(pecas, servicos)

	// 300 + 89.90 + 360 + 150 = 899.90
	assert.True(t, dec("899.90").Equal(total), "total = %s", total)
}

func TestCalcularTotalVazio(t *testing.T) {
	total := CalcularTotal(nil, nil)
	assert.True(t, total.IsZero())
}

func TestCalcularTotalArredondaParaDuasCasas(t *testing.T) {
	servicos := []*entity.OrcamentoServico{
		{Horas: dec("0.333"), ValorHora: dec("100.00")},
	}

	total := CalcularTotal(nil, servicos)

	assert.True(t, dec("33.30").Equal(total), "total = %s", total)
}

func TestCalcularTotalSomentePecas(t *testing.T) {
	pecas := []*entity.OrcamentoPeca{
		{Quantidade: 4, ValorUnitario: dec("25.50")},
	}

	total := CalcularTotal(pecas, nil)

	assert.True(t, dec("102.00").Equal(total))
}
