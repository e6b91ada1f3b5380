// Package financeiro concentra a derivação de estado efetivo dos lançamentos
// financeiros. Receitas vinculadas a uma ordem de serviço têm status e valores
// dirigidos pela OS (valor_pago/valor_a_pagar); o campo status armazenado na
// receita só vale para lançamentos avulsos. Toda exibição, filtro ou agregação
// de receita vinculada passa por Derivar — ler o campo cru é um bug.
package financeiro

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// ReceitaEfetiva é o estado efetivo de uma receita após a derivação.
type ReceitaEfetiva struct {
	Receita    *entity.Receita
	Status     string
	ValorTotal decimal.Decimal
	ValorPago  decimal.Decimal
	ValorAPagar decimal.Decimal
	Vinculada  bool
}

// Derivar calcula o estado efetivo de uma receita. Para receitas vinculadas,
// os é a ordem de serviço correspondente: valorTotal = os.valor_total − desconto,
// valorPago = os.valor_pago, status = Recebido sse valorAPagar <= 0. Para
// receitas avulsas (ou vinculadas cuja OS não existe mais), os campos próprios
// do lançamento valem ao pé da letra.
func Derivar(r *entity.Receita, os *entity.OrdemServico) ReceitaEfetiva {
	if r.Vinculada() && os != nil {
		valorTotal := os.ValorTotal.Sub(os.Desconto)
		valorPago := os.ValorPago
		valorAPagar := valorTotal.Sub(valorPago)
		status := entity.ContaPendente
		if valorAPagar.LessThanOrEqual(decimal.Zero) {
			status = entity.ContaRecebido
		}
		return ReceitaEfetiva{
			Receita:     r,
			Status:      status,
			ValorTotal:  valorTotal,
			ValorPago:   valorPago,
			ValorAPagar: valorAPagar,
			Vinculada:   true,
		}
	}
	pago := decimal.Zero
	aPagar := r.Valor
	if r.Status == entity.ContaRecebido {
		pago = r.Valor
		aPagar = decimal.Zero
	}
	return ReceitaEfetiva{
		Receita:     r,
		Status:      r.Status,
		ValorTotal:  r.Valor,
		ValorPago:   pago,
		ValorAPagar: aPagar,
	}
}

// Resumo agrega os totais do financeiro.
type Resumo struct {
	TotalRecebido        decimal.Decimal `json:"total_recebido"`
	TotalAReceber        decimal.Decimal `json:"total_a_receber"`
	TotalPago            decimal.Decimal `json:"total_pago"`
	TotalAPagar          decimal.Decimal `json:"total_a_pagar"`
	Saldo                decimal.Decimal `json:"saldo"`
	ReceitasRecebidas    int             `json:"receitas_recebidas"`
	ReceitasPendentes    int             `json:"receitas_pendentes"`
	DespesasPagas        int             `json:"despesas_pagas"`
	DespesasPendentes    int             `json:"despesas_pendentes"`
}

// CalcularResumo agrega receitas e despesas considerando pagamentos parciais
// das ordens de serviço. Para cada receita vinculada: o valor pago entra em
// "recebido" assim que for > 0 (independente de quitação) e o valor a pagar
// entra em "a receber" enquanto for > 0; receitas vinculadas sem OS
// correspondente são ignoradas. Saldo = recebido − despesas pagas.
func CalcularResumo(receitas []*entity.Receita, despesas []*entity.Despesa, ordens map[string]*entity.OrdemServico) Resumo {
	r := Resumo{
		TotalRecebido: decimal.Zero,
		TotalAReceber: decimal.Zero,
		TotalPago:     decimal.Zero,
		TotalAPagar:   decimal.Zero,
	}

	for _, rec := range receitas {
		if rec.Vinculada() {
			os, ok := ordens[*rec.OrdemServicoID]
			if !ok {
				continue
			}
			ef := Derivar(rec, os)
			if ef.ValorPago.GreaterThan(decimal.Zero) {
				r.TotalRecebido = r.TotalRecebido.Add(ef.ValorPago)
				if ef.ValorAPagar.LessThanOrEqual(decimal.Zero) {
					r.ReceitasRecebidas++
				}
			}
			if ef.ValorAPagar.GreaterThan(decimal.Zero) {
				r.TotalAReceber = r.TotalAReceber.Add(ef.ValorAPagar)
				r.ReceitasPendentes++
			} else if ef.ValorPago.IsZero() {
				r.TotalAReceber = r.TotalAReceber.Add(ef.ValorTotal)
				r.ReceitasPendentes++
			}
			continue
		}
		if rec.Status == entity.ContaRecebido {
			r.TotalRecebido = r.TotalRecebido.Add(rec.Valor)
			r.ReceitasRecebidas++
		} else {
			r.TotalAReceber = r.TotalAReceber.Add(rec.Valor)
			r.ReceitasPendentes++
		}
	}

	for _, d := range despesas {
		switch d.Status {
		case entity.ContaPago:
			r.TotalPago = r.TotalPago.Add(d.Valor)
			r.DespesasPagas++
		case entity.ContaPendente:
			r.TotalAPagar = r.TotalAPagar.Add(d.Valor)
			r.DespesasPendentes++
		}
	}

	r.Saldo = r.TotalRecebido.Sub(r.TotalPago)
	return r
}

// EmAtraso soma o valor em aberto das receitas cuja data de vencimento é
// anterior ao dia de hoje. Receitas vinculadas entram pelo valor a pagar
// derivado da OS (vinculadas sem OS são ignoradas); quitadas não entram.
// A comparação é por dia: vencer hoje ainda não é atraso.
func EmAtraso(receitas []*entity.Receita, ordens map[string]*entity.OrdemServico, hoje time.Time) decimal.Decimal {
	corte := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
	total := decimal.Zero
	for _, rec := range receitas {
		var os *entity.OrdemServico
		if rec.Vinculada() {
			o, ok := ordens[*rec.OrdemServicoID]
			if !ok {
				continue
			}
			os = o
		}
		ef := Derivar(rec, os)
		if !ef.ValorAPagar.GreaterThan(decimal.Zero) {
			continue
		}
		if rec.DataVencimento.Before(corte) {
			total = total.Add(ef.ValorAPagar)
		}
	}
	return total
}
