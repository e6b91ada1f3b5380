// Package pdf implementa a geração dos documentos imprimíveis da oficina
// (orçamento e ordem de serviço) usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da oficina  │  Nº do documento + Data          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + documento + contato                         │
//	│  VEÍCULO: Marca/Modelo/Ano/Placa + Km                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA PEÇAS: Qtd | Descrição | Valor Unit. | Subtotal      │
//	│  TABELA SERVIÇOS: Horas | Descrição | Valor/h | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Total / Desconto / Pago / A PAGAR                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/application/documentos"
	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documentos.GeradorPDF = (*MarotoGerador)(nil)

// MarotoGerador implementa documentos.GeradorPDF usando Maroto v2.
type MarotoGerador struct {
	nomeOficina string
}

// NewMarotoGerador constrói o gerador. nomeOficina aparece no cabeçalho dos
// documentos.
func NewMarotoGerador(nomeOficina string) *MarotoGerador {
	return &MarotoGerador{nomeOficina: nomeOficina}
}

// GerarOrcamentoPDF gera o PDF de um orçamento e devolve seus bytes.
func (g *MarotoGerador) GerarOrcamentoPDF(_ context.Context, orc *entity.OrcamentoDetalhado) ([]byte, error) {
	m := maroto.New(g.configPagina("Orçamento " + orc.Numero))

	m.AddRows(g.headerRow("ORÇAMENTO", orc.Numero, orc.DataOrcamento.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(orc.Cliente))
	m.AddRows(veiculoRow(orc.Veiculo, orc.KmAtual))
	if orc.Validade != nil {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Válido até: "+orc.Validade.Format("02/01/2006"), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(orc.Pecas) > 0 {
		m.AddRows(tableHeaderRow("Qtd.", "Peça", "Valor Unit.", "Subtotal"))
		for _, p := range orc.Pecas {
			qtd := decimal.NewFromInt(int64(p.Quantidade))
			m.AddRows(tableDetailRow(
				fmt.Sprintf("%d", p.Quantidade),
				p.PecaNome,
				formatMoney(p.ValorUnitario),
				formatMoney(p.ValorUnitario.Mul(qtd)),
			))
		}
	}
	if len(orc.Servicos) > 0 {
		m.AddRows(tableHeaderRow("Horas", "Serviço", "Valor/h", "Subtotal"))
		for _, s := range orc.Servicos {
			m.AddRows(tableDetailRow(
				s.Horas.StringFixed(1),
				s.ServicoNome,
				formatMoney(s.ValorHora),
				formatMoney(s.ValorHora.Mul(s.Horas)),
			))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("TOTAL:", orc.ValorTotal))

	if orc.Observacoes != nil && *orc.Observacoes != "" {
		m.AddRows(observacoesRows(*orc.Observacoes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GerarOrdemServicoPDF gera o PDF de uma ordem de serviço e devolve seus bytes.
func (g *MarotoGerador) GerarOrdemServicoPDF(_ context.Context, os *entity.OrdemServicoDetalhada) ([]byte, error) {
	m := maroto.New(g.configPagina("Ordem de Serviço " + os.Numero))

	m.AddRows(g.headerRow("ORDEM DE SERVIÇO", os.Numero, os.DataInicio.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(os.Cliente))
	m.AddRows(veiculoRow(os.Veiculo, os.KmAtual))
	m.AddRows(statusRow(os))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if os.Orcamento != nil {
		if len(os.Orcamento.Pecas) > 0 {
			m.AddRows(tableHeaderRow("Qtd.", "Peça", "Valor Unit.", "Subtotal"))
			for _, p := range os.Orcamento.Pecas {
				qtd := decimal.NewFromInt(int64(p.Quantidade))
				m.AddRows(tableDetailRow(
					fmt.Sprintf("%d", p.Quantidade),
					p.PecaNome,
					formatMoney(p.ValorUnitario),
					formatMoney(p.ValorUnitario.Mul(qtd)),
				))
			}
		}
		if len(os.Orcamento.Servicos) > 0 {
			m.AddRows(tableHeaderRow("Horas", "Serviço", "Valor/h", "Subtotal"))
			for _, s := range os.Orcamento.Servicos {
				m.AddRows(tableDetailRow(
					s.Horas.StringFixed(1),
					s.ServicoNome,
					formatMoney(s.ValorHora),
					formatMoney(s.ValorHora.Mul(s.Horas)),
				))
			}
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(pagamentoRows(os)...)

	if os.Observacoes != nil && *os.Observacoes != "" {
		m.AddRows(observacoesRows(*os.Observacoes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func (g *MarotoGerador) configPagina(titulo string) *marotoentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(g.nomeOficina, true).
		Build()
}

// headerRow: nome da oficina (esq) e número + data do documento (dir).
func (g *MarotoGerador) headerRow(tipo, numero, data string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.nomeOficina, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(tipo, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: identificação do cliente.
func clienteRow(c *entity.Cliente) core.Row {
	if c == nil {
		return row.New(2)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Tel: %s   |   Email: %s",
				c.Documento,
				derefOr(c.Telefone, "—"),
				derefOr(c.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// veiculoRow: identificação do veículo (se houver).
func veiculoRow(v *entity.Veiculo, kmAtual *string) core.Row {
	if v == nil {
		return row.New(2)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s %s   |   Placa: %s   |   Km: %s",
				v.Marca, v.Modelo, v.Ano, v.Placa, derefOr(kmAtual, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// statusRow: status de serviço e prazo da OS.
func statusRow(os *entity.OrdemServicoDetalhada) core.Row {
	prazo := "—"
	if os.PrazoConclusao != nil {
		prazo = os.PrazoConclusao.Format("02/01/2006")
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Status: %s   |   Prazo de conclusão: %s",
				os.StatusServico, prazo,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho de tabela de linhas.
func tableHeaderRow(c1, c2, c3, c4 string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(c1, 2, align.Center),
		h(c2, 5, align.Left),
		h(c3, 2, align.Right),
		h(c4, 3, align.Right),
	)
}

// tableDetailRow: uma linha de peça ou serviço.
func tableDetailRow(qtd, descricao, unitario, subtotal string) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(qtd, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(descricao, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(unitario, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(subtotal, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalRow: total único alinhado à direita (orçamentos).
func totalRow(label string, valor decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMoney(valor), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// pagamentoRows: bloco de valores da OS (total, desconto, pago, a pagar).
func pagamentoRows(os *entity.OrdemServicoDetalhada) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	aPagar := os.ValorAPagar()
	cor := colorPrimary
	return []core.Row{
		row.New(20).Add(
			col.New(3),
			col.New(3).Add(
				label("Total:"),
				label("Desconto:"),
				label("Pago:"),
			),
			col.New(3).Add(
				value(formatMoney(os.ValorTotal)),
				value(formatMoney(os.Desconto)),
				value(formatMoney(os.ValorPago)),
			),
			col.New(3),
		),
		row.New(8).Add(
			col.New(6),
			col.New(3).Add(text.New("A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: cor, Top: 1, Right: 2,
			})),
			col.New(3).Add(text.New(formatMoney(aPagar), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: cor, Top: 1, Right: 1,
			})),
		),
	}
}

// observacoesRows: bloco de observações livres ao pé do documento.
func observacoesRows(obs string) []core.Row {
	return []core.Row{
		row.New(3),
		row.New(5).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(obs, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// formatMoney formata um decimal como "R$ 1.234,56".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2) // "1234.56"
	inteiro, frac := s, "00"
	if i := len(s) - 3; i >= 0 && s[i] == '.' {
		inteiro, frac = s[:i], s[i+1:]
	}
	neg := false
	if len(inteiro) > 0 && inteiro[0] == '-' {
		neg = true
		inteiro = inteiro[1:]
	}

	n := len(inteiro)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}

	out := "R$ " + string(buf) + "," + frac
	if neg {
		out = "R$ -" + string(buf) + "," + frac
	}
	return out
}
