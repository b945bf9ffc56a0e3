// Package pdf gera o relatório em PDF de uma simulação de Split Payment
// usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + identificação da simulação                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÂMETROS: faturamento, alíquota, ciclo financeiro         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: ano | capital atual | capital c/ split | diferença  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACUMULADO + MEMÓRIA DE CÁLCULO                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/pkg/moeda"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ simulador.GeradorRelatorioPDF = (*MarotoRelatorioGenerator)(nil)

// MarotoRelatorioGenerator implementa simulador.GeradorRelatorioPDF.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorio gera o PDF e devolve seus bytes.
func (g *MarotoRelatorioGenerator) GerarRelatorio(_ context.Context, s *simulacao.Simulacao) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Simulador de Split Payment - Relatório de Impacto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(parametrosRows(s)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(tabelaProjecao(s.Projecao)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(acumuladoRows(s.Projecao)...)
	m.AddRows(memoriaRows(s.Memoria)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(s *simulacao.Simulacao) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Impacto do Split Payment no Capital de Giro", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Transição IVA Dual (CBS/IBS) 2026–2033", props.Text{
				Size: 9, Top: 7, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Simulação %s", s.ID), props.Text{
				Size: 7, Align: align.Right, Color: colorGray,
			}),
			text.New(s.CriadaEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 4, Align: align.Right,
			}),
		),
	)
}

func parametrosRows(s *simulacao.Simulacao) []core.Row {
	e := s.Entrada
	return []core.Row{
		row.New(6).Add(
			celulaRotulo("Faturamento mensal"),
			celulaValor(moeda.FormatarMoeda(e.Faturamento)),
			celulaRotulo("Alíquota efetiva"),
			celulaValor(moeda.FormatarPercentual(e.Aliquota)),
		),
		row.New(6).Add(
			celulaRotulo("Ciclo (PMR/PMP/PME)"),
			celulaValor(fmt.Sprintf("%d / %d / %d dias", e.PMR, e.PMP, e.PME)),
			celulaRotulo("Margem operacional"),
			celulaValor(moeda.FormatarPercentual(e.Margem)),
		),
		row.New(6).Add(
			celulaRotulo("Vendas à vista / a prazo"),
			celulaValor(fmt.Sprintf("%s / %s",
				moeda.FormatarPercentual(e.PercVista), moeda.FormatarPercentual(e.PercPrazo))),
			celulaRotulo("Cenário de crescimento"),
			celulaValor(fmt.Sprintf("%s (%s a.a.)",
				s.Projecao.Cenario, moeda.FormatarPercentual(s.Projecao.TaxaCrescimento))),
		),
	}
}

func celulaRotulo(rotulo string) core.Col {
	return col.New(3).Add(text.New(rotulo, props.Text{Size: 8, Color: colorGray}))
}

func celulaValor(valor string) core.Col {
	return col.New(3).Add(text.New(valor, props.Text{Size: 8, Style: fontstyle.Bold}))
}

func tabelaProjecao(proj *simulacao.ResultadoProjecao) []core.Row {
	rows := []core.Row{
		row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
			cabecalho(2, "Ano"),
			cabecalho(3, "Capital atual"),
			cabecalho(3, "Capital c/ split"),
			cabecalho(2, "Diferença"),
			cabecalho(2, "Impacto"),
		),
	}

	anos := make([]int, 0, len(proj.ResultadosAnuais))
	for ano := range proj.ResultadosAnuais {
		anos = append(anos, ano)
	}
	sort.Ints(anos)

	for _, ano := range anos {
		res := proj.ResultadosAnuais[ano]
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", ano), props.Text{Size: 8})),
			col.New(3).Add(text.New(moeda.FormatarMoeda(res.Atual.CapitalGiroDisponivel), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(moeda.FormatarMoeda(res.IVAComSplit.CapitalGiroDisponivel), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(moeda.FormatarMoeda(res.DiferencaCapitalGiro), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(moeda.FormatarNumero(res.PercentualImpacto)+"%", props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func cabecalho(largura int, titulo string) core.Col {
	return col.New(largura).Add(text.New(titulo, props.Text{
		Size: 8, Style: fontstyle.Bold, Color: colorWhite,
	}))
}

func acumuladoRows(proj *simulacao.ResultadoProjecao) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(6).Add(
				text.New("Necessidade adicional acumulada", props.Text{Size: 8, Color: colorGray}),
				text.New(moeda.FormatarMoeda(proj.Acumulado.TotalNecessidadeCapitalGiro), props.Text{
					Size: 11, Top: 3, Style: fontstyle.Bold, Color: colorPrimary,
				}),
			),
			col.New(6).Add(
				text.New("Custo financeiro total do período", props.Text{Size: 8, Color: colorGray}),
				text.New(moeda.FormatarMoeda(proj.Acumulado.CustoFinanceiroTotal), props.Text{
					Size: 11, Top: 3, Style: fontstyle.Bold, Color: colorPrimary,
				}),
			),
		),
	}
}

func memoriaRows(mem simulacao.MemoriaCalculo) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Memória de cálculo", props.Text{Size: 10, Top: 3, Style: fontstyle.Bold}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(mem.Formula, props.Text{Size: 8, Color: colorGray}),
		)),
	}
	for _, passo := range mem.Passos {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(passo, props.Text{Size: 7}),
		)))
	}
	for _, obs := range mem.Observacoes {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("Obs.: "+obs, props.Text{Size: 7, Style: fontstyle.Italic, Color: colorGray}),
		)))
	}
	return rows
}
