package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func orcamentoDeTeste() *entity.OrcamentoDetalhado {
	data := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	validade := data.AddDate(0, 0, 15)
	return &entity.OrcamentoDetalhado{
		Orcamento: entity.Orcamento{
			ID:            "orc1",
			Numero:        "ORC-0042",
			ClienteID:     "c1",
			Status:        entity.OrcamentoAprovado,
			DataOrcamento: data,
			Validade:      &validade,
			KmAtual:       strPtr("85000"),
			Observacoes:   strPtr("Trocar também o filtro de ar na próxima revisão."),
			ValorTotal:    decimal.RequireFromString("1250.00"),
		},
		Cliente: &entity.Cliente{
			ID:        "c1",
			Nome:      "João da Silva",
			Documento: "123.456.789-00",
			Telefone:  strPtr("(11) 99999-0000"),
		},
		Veiculo: &entity.Veiculo{
			ID: "v1", ClienteID: "c1",
			Marca: "Fiat", Modelo: "Uno", Ano: "2015", Placa: "ABC-1234",
		},
		Pecas: []*entity.OrcamentoPecaDetalhada{
			{
				OrcamentoPeca: entity.OrcamentoPeca{
					ID: "op1", OrcamentoID: "orc1", PecaID: "p1",
					Quantidade:    2,
					ValorUnitario: decimal.RequireFromString("150.00"),
				},
				PecaNome: "Pastilha de freio",
			},
		},
		Servicos: []*entity.OrcamentoServicoDetalhado{
			{
				OrcamentoServico: entity.OrcamentoServico{
					ID: "os1", OrcamentoID: "orc1", ServicoID: "s1",
					Horas:     decimal.RequireFromString("5"),
					ValorHora: decimal.RequireFromString("190.00"),
				},
				ServicoNome: "Revisão de freios",
			},
		},
	}
}

func TestGerarOrcamentoPDF(t *testing.T) {
	g := NewMarotoGerador("Oficina do Zé")

	pdf, err := g.GerarOrcamentoPDF(context.Background(), orcamentoDeTeste())
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGerarOrdemServicoPDF(t *testing.T) {
	g := NewMarotoGerador("Oficina do Zé")
	orc := orcamentoDeTeste()
	prazo := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	os := &entity.OrdemServicoDetalhada{
		OrdemServico: entity.OrdemServico{
			ID:             "os1",
			Numero:         "OS-0007",
			ClienteID:      "c1",
			OrcamentoID:    &orc.ID,
			StatusServico:  entity.ServicoAndamento,
			DataInicio:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			PrazoConclusao: &prazo,
			ValorTotal:     orc.ValorTotal,
			Desconto:       decimal.RequireFromString("50.00"),
			ValorPago:      decimal.RequireFromString("200.00"),
		},
		Cliente:   orc.Cliente,
		Veiculo:   orc.Veiculo,
		Orcamento: orc,
	}

	pdf, err := g.GerarOrdemServicoPDF(context.Background(), os)
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

// GerarOrcamentoPDF não deve depender de cliente/veículo carregados; um
// orçamento sem include relacional ainda gera documento.
func TestGerarOrcamentoPDFSemClienteNemVeiculo(t *testing.T) {
	g := NewMarotoGerador("Oficina do Zé")
	orc := orcamentoDeTeste()
	orc.Cliente = nil
	orc.Veiculo = nil
	orc.Validade = nil
	orc.Observacoes = nil

	pdf, err := g.GerarOrcamentoPDF(context.Background(), orc)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestFormatMoney(t *testing.T) {
	casos := []struct {
		in  string
		out string
	}{
		{"0", "R$ 0,00"},
		{"5.5", "R$ 5,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000", "R$ 1.000.000,00"},
		{"-350.75", "R$ -350,75"},
	}
	for _, c := range casos {
		assert.Equal(t, c.out, formatMoney(decimal.RequireFromString(c.in)), c.in)
	}
}
