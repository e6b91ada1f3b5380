package financeiro

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func str(s string) *string { return &s }

func TestDerivarReceitaVinculadaParcial(t *testing.T) {
	rec := &entity.Receita{ID: "r1", OrdemServicoID: str("os1"), Valor: dec("1000.00"), Status: entity.ContaPendente}
	os := &entity.OrdemServico{
		ID:         "os1",
		ValorTotal: dec("1000.00"),
		Desconto:   dec("100.00"),
		ValorPago:  dec("300.00"),
	}

	ef := Derivar(rec, os)

	assert.True(t, ef.Vinculada)
	assert.True(t, dec("900.00").Equal(ef.ValorTotal))
	assert.True(t, dec("300.00").Equal(ef.ValorPago))
	assert.True(t, dec("600.00").Equal(ef.ValorAPagar))
	assert.Equal(t, entity.ContaPendente, ef.Status)
}

func TestDerivarReceitaVinculadaQuitada(t *testing.T) {
	rec := &entity.Receita{ID: "r1", OrdemServicoID: str("os1"), Status: entity.ContaPendente}
	os := &entity.OrdemServico{
		ID:         "os1",
		ValorTotal: dec("500.00"),
		Desconto:   decimal.Zero,
		ValorPago:  dec("500.00"),
	}

	ef := Derivar(rec, os)

	assert.Equal(t, entity.ContaRecebido, ef.Status)
	assert.True(t, ef.ValorAPagar.IsZero())
}

func TestDerivarReceitaAvulsa(t *testing.T) {
	rec := &entity.Receita{ID: "r1", Valor: dec("250.00"), Status: entity.ContaRecebido}

	ef := Derivar(rec, nil)

	assert.False(t, ef.Vinculada)
	assert.Equal(t, entity.ContaRecebido, ef.Status)
	assert.True(t, dec("250.00").Equal(ef.ValorPago))
	assert.True(t, ef.ValorAPagar.IsZero())
}

func TestDerivarReceitaVinculadaSemOS(t *testing.T) {
	// OS removida: os campos próprios do lançamento valem ao pé da letra.
	rec := &entity.Receita{ID: "r1", OrdemServicoID: str("os1"), Valor: dec("250.00"), Status: entity.ContaPendente}

	ef := Derivar(rec, nil)

	assert.False(t, ef.Vinculada)
	assert.True(t, dec("250.00").Equal(ef.ValorTotal))
}

func TestCalcularResumoPagamentoParcial(t *testing.T) {
	receitas := []*entity.Receita{
		{ID: "r1", OrdemServicoID: str("os1"), Status: entity.ContaPendente},
		{ID: "r2", Valor: dec("200.00"), Status: entity.ContaRecebido},
		{ID: "r3", Valor: dec("150.00"), Status: entity.ContaPendente},
	}
	ordens := map[string]*entity.OrdemServico{
		"os1": {ID: "os1", ValorTotal: dec("1000.00"), Desconto: dec("100.00"), ValorPago: dec("300.00")},
	}
	despesas := []*entity.Despesa{
		{ID: "d1", Valor: dec("400.00"), Status: entity.ContaPago},
		{ID: "d2", Valor: dec("80.00"), Status: entity.ContaPendente},
	}

	r := CalcularResumo(receitas, despesas, ordens)

	// 300 parciais da OS + 200 avulsa recebida.
	assert.True(t, dec("500.00").Equal(r.TotalRecebido), "recebido = %s", r.TotalRecebido)
	// 600 restantes da OS + 150 avulsa pendente.
	assert.True(t, dec("750.00").Equal(r.TotalAReceber), "a receber = %s", r.TotalAReceber)
	assert.True(t, dec("400.00").Equal(r.TotalPago))
	assert.True(t, dec("80.00").Equal(r.TotalAPagar))
	assert.True(t, dec("100.00").Equal(r.Saldo))
	assert.Equal(t, 1, r.ReceitasRecebidas)
	assert.Equal(t, 2, r.ReceitasPendentes)
	assert.Equal(t, 1, r.DespesasPagas)
	assert.Equal(t, 1, r.DespesasPendentes)
}

func TestEmAtraso(t *testing.T) {
	hoje := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	ontem := hoje.AddDate(0, 0, -1)
	amanha := hoje.AddDate(0, 0, 1)

	receitas := []*entity.Receita{
		// Avulsa pendente vencida ontem: entra pelo valor cheio.
		{ID: "r1", Valor: dec("150.00"), Status: entity.ContaPendente, DataVencimento: ontem},
		// Avulsa pendente vence amanhã: não entra.
		{ID: "r2", Valor: dec("70.00"), Status: entity.ContaPendente, DataVencimento: amanha},
		// Avulsa recebida, mesmo vencida: não entra.
		{ID: "r3", Valor: dec("90.00"), Status: entity.ContaRecebido, DataVencimento: ontem},
		// Vinculada vencida com pagamento parcial: entra pelo valor a pagar derivado.
		{ID: "r4", OrdemServicoID: str("os1"), Valor: dec("1000.00"), Status: entity.ContaPendente, DataVencimento: ontem},
		// Vinculada vencida e quitada pela OS: não entra.
		{ID: "r5", OrdemServicoID: str("os2"), Valor: dec("500.00"), Status: entity.ContaPendente, DataVencimento: ontem},
		// Vinculada sem OS correspondente: ignorada.
		{ID: "r6", OrdemServicoID: str("fantasma"), Valor: dec("999.00"), Status: entity.ContaPendente, DataVencimento: ontem},
	}
	ordens := map[string]*entity.OrdemServico{
		"os1": {ID: "os1", ValorTotal: dec("1000.00"), Desconto: dec("100.00"), ValorPago: dec("300.00")},
		"os2": {ID: "os2", ValorTotal: dec("500.00"), ValorPago: dec("500.00")},
	}

	total := EmAtraso(receitas, ordens, hoje)

	// 150 avulsa + 600 em aberto da OS parcial.
	assert.True(t, dec("750.00").Equal(total), "em atraso = %s", total)
}

func TestEmAtrasoVencerHojeNaoEhAtraso(t *testing.T) {
	hoje := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	venceHoje := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	receitas := []*entity.Receita{
		{ID: "r1", Valor: dec("100.00"), Status: entity.ContaPendente, DataVencimento: venceHoje},
	}

	assert.True(t, EmAtraso(receitas, nil, hoje).IsZero())
}

func TestCalcularResumoIgnoraVinculadaSemOS(t *testing.T) {
	receitas := []*entity.Receita{
		{ID: "r1", OrdemServicoID: str("fantasma"), Valor: dec("999.00"), Status: entity.ContaPendente},
	}

	r := CalcularResumo(receitas, nil, map[string]*entity.OrdemServico{})

	assert.True(t, r.TotalRecebido.IsZero())
	assert.True(t, r.TotalAReceber.IsZero())
	assert.Equal(t, 0, r.ReceitasPendentes)
}
