package simulador

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

// Cenários de crescimento da receita.
const (
	CenarioConservador   = "conservador"
	CenarioModerado      = "moderado"
	CenarioOtimista      = "otimista"
	CenarioPersonalizado = "personalizado"
)

var (
	taxaConservadora = decimal.NewFromFloat(0.02)
	taxaModerada     = decimal.NewFromFloat(0.05)
	taxaOtimista     = decimal.NewFromFloat(0.08)
)

// TaxaDoCenario resolve o cenário em taxa anual de crescimento (fração).
// No cenário personalizado a taxa informada é normalizada (45 → 0,45).
func TaxaDoCenario(cenario string, taxaPersonalizada decimal.Decimal) (decimal.Decimal, error) {
	switch cenario {
	case CenarioConservador:
		return taxaConservadora, nil
	case CenarioModerado, "":
		return taxaModerada, nil
	case CenarioOtimista:
		return taxaOtimista, nil
	case CenarioPersonalizado:
		return simulacao.NormalizarFracao(taxaPersonalizada), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: cenário %q desconhecido", domain.ErrInvalidInput, cenario)
	}
}

// CalcularProjecaoTemporal repete a análise de impacto ano a ano no horizonte
// [anoInicial, anoFinal], aplicando crescimento composto da receita: cada ano
// parte do faturamento já crescido dos anos anteriores (arredondado a 2 casas
// para conter deriva de ponto flutuante), não da base original.
//
// Falha de um ano não aborta a projeção: o ano cai para o cálculo simplificado
// e o resultado é marcado como parcial.
func (a *AnalisadorImpacto) CalcularProjecaoTemporal(entrada simulacao.EntradaSimulacao, anoInicial, anoFinal int, cenario string, taxaPersonalizada decimal.Decimal) (*simulacao.ResultadoProjecao, error) {
	if anoInicial < tributacao.AnoInicioTransicao || anoFinal > tributacao.AnoFimTransicao || anoInicial > anoFinal {
		return nil, fmt.Errorf("%w: intervalo %d–%d", domain.ErrAnoForaDoIntervalo, anoInicial, anoFinal)
	}

	taxa, err := TaxaDoCenario(cenario, taxaPersonalizada)
	if err != nil {
		return nil, err
	}
	if cenario == "" {
		cenario = CenarioModerado
	}

	entrada = entrada.Normalizar()

	proj := &simulacao.ResultadoProjecao{
		AnoInicial:       anoInicial,
		AnoFinal:         anoFinal,
		Cenario:          cenario,
		TaxaCrescimento:  taxa,
		ResultadosAnuais: make(map[int]*simulacao.ResultadoAnual, anoFinal-anoInicial+1),
	}

	fatorCrescimento := umDecimal.Add(taxa)
	entradaAno := entrada

	for ano := anoInicial; ano <= anoFinal; ano++ {
		res, errAno := a.CalcularImpactoCapitalGiro(entradaAno, ano)
		if errAno != nil {
			a.log.Error().Err(errAno).Int("ano", ano).
				Msg("projeção: ano caiu para o cálculo simplificado")
			res = a.CalcularImpactoSimplificado(entradaAno, ano)
			proj.Parcial = true
		}

		proj.ResultadosAnuais[ano] = res
		proj.Acumulado.TotalNecessidadeCapitalGiro = proj.Acumulado.TotalNecessidadeCapitalGiro.
			Add(res.NecessidadeAdicionalCapitalGiro)
		proj.Acumulado.CustoFinanceiroTotal = proj.Acumulado.CustoFinanceiroTotal.
			Add(res.Margem.CustoMensalCapitalGiro.Mul(dozeDecimal))

		proj.Series.Anos = append(proj.Series.Anos, ano)
		proj.Series.CapitalAtual = append(proj.Series.CapitalAtual, res.Atual.CapitalGiroDisponivel)
		proj.Series.CapitalComSplit = append(proj.Series.CapitalComSplit, res.IVAComSplit.CapitalGiroDisponivel)
		proj.Series.Diferenca = append(proj.Series.Diferenca, res.DiferencaCapitalGiro)
		proj.Series.Faturamento = append(proj.Series.Faturamento, entradaAno.Faturamento)

		// receita do próximo ano: crescimento composto sobre a já projetada
		entradaAno.Faturamento = entradaAno.Faturamento.Mul(fatorCrescimento).Round(2)
	}

	sort.Ints(proj.Series.Anos)

	return proj, nil
}

// MontarLinhasExportacao projeta o resultado anual em linhas de planilha,
// ordenadas por ano.
func MontarLinhasExportacao(proj *simulacao.ResultadoProjecao) []simulacao.LinhaExportacao {
	if proj == nil {
		return nil
	}

	anos := make([]int, 0, len(proj.ResultadosAnuais))
	for ano := range proj.ResultadosAnuais {
		anos = append(anos, ano)
	}
	sort.Ints(anos)

	linhas := make([]simulacao.LinhaExportacao, 0, len(anos))
	for i, ano := range anos {
		res := proj.ResultadosAnuais[ano]
		var faturamento decimal.Decimal
		if i < len(proj.Series.Faturamento) {
			faturamento = proj.Series.Faturamento[i]
		}
		linhas = append(linhas, simulacao.LinhaExportacao{
			Ano:                  ano,
			Faturamento:          faturamento,
			CapitalAtual:         res.Atual.CapitalGiroDisponivel.Round(2),
			CapitalComSplit:      res.IVAComSplit.CapitalGiroDisponivel.Round(2),
			Diferenca:            res.DiferencaCapitalGiro.Round(2),
			PercentualImpacto:    res.PercentualImpacto.Round(4),
			NecessidadeAdicional: res.NecessidadeAdicionalCapitalGiro.Round(2),
			CustoMensalCapital:   res.Margem.CustoMensalCapitalGiro.Round(2),
			MargemAjustada:       res.Margem.MargemAjustada.Round(4),
		})
	}
	return linhas
}
