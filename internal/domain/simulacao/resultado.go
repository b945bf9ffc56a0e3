package simulacao

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

// ResultadoRegime capital de giro disponível e carga tributária de um regime
// (sistema atual, IVA sem split, IVA com split).
type ResultadoRegime struct {
	CapitalGiroDisponivel decimal.Decimal                 `json:"capitalGiroDisponivel"`
	Impostos              tributacao.DetalhamentoImpostos `json:"impostos"`

	// Decomposição da retenção (preenchida apenas no regime com split)
	ValorImpostoTotal       decimal.Decimal `json:"valorImpostoTotal"`
	ValorImpostoSplit       decimal.Decimal `json:"valorImpostoSplit"`
	ValorImpostoNormal      decimal.Decimal `json:"valorImpostoNormal"`
	PercentualImplementacao decimal.Decimal `json:"percentualImplementacao"`
	TempoMedioCapitalGiro   decimal.Decimal `json:"tempoMedioCapitalGiro"` // dias
}

// ImpactoMargem erosão da margem operacional causada pelo custo do capital
// de giro adicional.
type ImpactoMargem struct {
	CustoMensalCapitalGiro decimal.Decimal `json:"custoMensalCapitalGiro"`
	ImpactoPercentual      decimal.Decimal `json:"impactoPercentual"` // p.p. sobre o faturamento
	MargemOriginal         decimal.Decimal `json:"margemOriginal"`
	MargemAjustada         decimal.Decimal `json:"margemAjustada"`
}

// ResultadoAnual fotografia do impacto do Split Payment para um ano da transição.
// Imutável depois de criado; consumido pela projeção temporal e pela camada HTTP.
type ResultadoAnual struct {
	Ano int `json:"ano"`

	Atual       ResultadoRegime `json:"resultadoAtual"`
	IVASemSplit ResultadoRegime `json:"resultadoIVASemSplit"`
	IVAComSplit ResultadoRegime `json:"resultadoSplitPayment"`

	DiferencaCapitalGiro            decimal.Decimal `json:"diferencaCapitalGiro"`         // com split − atual (negativa = retenção)
	DiferencaCapitalGiroSemSplit    decimal.Decimal `json:"diferencaCapitalGiroSemSplit"` // sem split − atual
	PercentualImpacto               decimal.Decimal `json:"percentualImpacto"`            // %
	NecessidadeAdicionalCapitalGiro decimal.Decimal `json:"necessidadeAdicionalCapitalGiro"`

	Margem ImpactoMargem `json:"impactoMargem"`

	// Simplificado indica resultado de fallback (estimativa de passada única).
	Simplificado bool `json:"simplificado,omitempty"`
}

// ImpactoAcumulado agregados da projeção no horizonte simulado.
type ImpactoAcumulado struct {
	TotalNecessidadeCapitalGiro decimal.Decimal `json:"totalNecessidadeCapitalGiro"`
	CustoFinanceiroTotal        decimal.Decimal `json:"custoFinanceiroTotal"`
}

// SeriesComparativas vetores alinhados por ano para os gráficos da interface.
type SeriesComparativas struct {
	Anos            []int             `json:"anos"`
	CapitalAtual    []decimal.Decimal `json:"capitalAtual"`
	CapitalComSplit []decimal.Decimal `json:"capitalComSplit"`
	Diferenca       []decimal.Decimal `json:"diferenca"`
	Faturamento     []decimal.Decimal `json:"faturamento"`
}

// ResultadoProjecao impacto ano a ano no horizonte [AnoInicial, AnoFinal].
type ResultadoProjecao struct {
	AnoInicial      int             `json:"anoInicial"`
	AnoFinal        int             `json:"anoFinal"`
	Cenario         string          `json:"cenario"`
	TaxaCrescimento decimal.Decimal `json:"taxaCrescimento"` // fração a.a.

	ResultadosAnuais map[int]*ResultadoAnual `json:"resultadosAnuais"`
	Acumulado        ImpactoAcumulado        `json:"impactoAcumulado"`
	Series           SeriesComparativas      `json:"series"`

	// Parcial indica projeção best-effort interrompida por falha em algum ano.
	Parcial bool `json:"parcial,omitempty"`
}

// MemoriaCalculo trilha de auditoria legível de uma simulação.
type MemoriaCalculo struct {
	Formula     string   `json:"formula"`
	Passos      []string `json:"passos"`
	Observacoes []string `json:"observacoes"`
}

// LinhaExportacao resumo anual para exportação em planilha.
type LinhaExportacao struct {
	Ano                  int             `csv:"ano" json:"ano"`
	Faturamento          decimal.Decimal `csv:"faturamento" json:"faturamento"`
	CapitalAtual         decimal.Decimal `csv:"capital_giro_atual" json:"capitalAtual"`
	CapitalComSplit      decimal.Decimal `csv:"capital_giro_split" json:"capitalComSplit"`
	Diferenca            decimal.Decimal `csv:"diferenca" json:"diferenca"`
	PercentualImpacto    decimal.Decimal `csv:"percentual_impacto" json:"percentualImpacto"`
	NecessidadeAdicional decimal.Decimal `csv:"necessidade_adicional" json:"necessidadeAdicional"`
	CustoMensalCapital   decimal.Decimal `csv:"custo_mensal_capital" json:"custoMensalCapital"`
	MargemAjustada       decimal.Decimal `csv:"margem_ajustada" json:"margemAjustada"`
}
