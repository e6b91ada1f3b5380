package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEfeitoTransicao(t *testing.T) {
	tests := []struct {
		nome   string
		de     StatusServico
		para   StatusServico
		efeito EfeitoEstoque
	}{
		{"ativo para final consome", ServicoAndamento, ServicoFinalizado, EfeitoConsumir},
		{"aguardando pecas para entregue consome", ServicoAguardandoPecas, ServicoEntregue, EfeitoConsumir},
		{"final para ativo devolve", ServicoFinalizado, ServicoAndamento, EfeitoDevolver},
		{"entregue para aguardando pecas devolve", ServicoEntregue, ServicoAguardandoPecas, EfeitoDevolver},
		{"dentro da classe ativa nada", ServicoAndamento, ServicoAguardandoPecas, EfeitoNenhum},
		{"dentro da classe final nada", ServicoFinalizado, ServicoEntregue, EfeitoNenhum},
		{"mesmo status nada", ServicoAndamento, ServicoAndamento, EfeitoNenhum},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			assert.Equal(t, tt.efeito, EfeitoTransicao(tt.de, tt.para))
		})
	}
}

func TestValorAPagar(t *testing.T) {
	os := &OrdemServico{
		ValorTotal: decimal.NewFromInt(1000),
		Desconto:   decimal.NewFromInt(100),
		ValorPago:  decimal.NewFromInt(300),
	}

	assert.True(t, decimal.NewFromInt(600).Equal(os.ValorAPagar()))
	assert.Equal(t, PagamentoPendente, os.StatusPagamento())
}

func TestStatusPagamentoQuitado(t *testing.T) {
	os := &OrdemServico{
		ValorTotal: decimal.NewFromInt(500),
		Desconto:   decimal.NewFromInt(50),
		ValorPago:  decimal.NewFromInt(450),
	}

	assert.True(t, os.ValorAPagar().IsZero())
	assert.Equal(t, PagamentoPago, os.StatusPagamento())
}

func TestStatusPagamentoPagoAcimaDoTotal(t *testing.T) {
	os := &OrdemServico{
		ValorTotal: decimal.NewFromInt(200),
		ValorPago:  decimal.NewFromInt(250),
	}

	assert.Equal(t, PagamentoPago, os.StatusPagamento())
}

func TestStatusServicoClasses(t *testing.T) {
	assert.True(t, ServicoAndamento.Ativo())
	assert.True(t, ServicoAguardandoPecas.Ativo())
	assert.True(t, ServicoFinalizado.Final())
	assert.True(t, ServicoEntregue.Final())
	assert.False(t, StatusServico("qualquer").Valido())
}
