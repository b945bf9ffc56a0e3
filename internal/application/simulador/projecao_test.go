package simulador_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain"
)

func TestTaxaDoCenario(t *testing.T) {
	taxa, err := simulador.TaxaDoCenario(simulador.CenarioConservador, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, taxa.Equal(dec(0.02)))

	taxa, err = simulador.TaxaDoCenario("", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, taxa.Equal(dec(0.05)), "cenário vazio assume o moderado")

	taxa, err = simulador.TaxaDoCenario(simulador.CenarioPersonalizado, dec(45))
	require.NoError(t, err)
	assert.True(t, taxa.Equal(dec(0.45)), "taxa personalizada em 0–100 é normalizada")

	_, err = simulador.TaxaDoCenario("agressivo", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cenário desconhecido deve falhar")
}

func TestCalcularProjecaoTemporal_HorizonteInvalido(t *testing.T) {
	a := analisadorTeste()
	entrada := entradaReferencia()

	_, err := a.CalcularProjecaoTemporal(entrada, 2025, 2033, "", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrAnoForaDoIntervalo, "início antes de 2026")

	_, err = a.CalcularProjecaoTemporal(entrada, 2026, 2034, "", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrAnoForaDoIntervalo, "fim depois de 2033")

	_, err = a.CalcularProjecaoTemporal(entrada, 2030, 2027, "", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrAnoForaDoIntervalo, "início maior que o fim")
}

func TestCalcularProjecaoTemporal_HorizonteCompleto(t *testing.T) {
	proj, err := analisadorTeste().CalcularProjecaoTemporal(entradaReferencia(), 2026, 2033, simulador.CenarioModerado, decimal.Zero)
	require.NoError(t, err)

	assert.Len(t, proj.ResultadosAnuais, 8, "um resultado por ano de 2026 a 2033")
	assert.False(t, proj.Parcial, "sem falha interna a projeção é completa")
	assert.Equal(t, simulador.CenarioModerado, proj.Cenario)
}

// A receita cresce de forma composta: cada ano parte da receita já projetada.
func TestCalcularProjecaoTemporal_CrescimentoComposto(t *testing.T) {
	proj, err := analisadorTeste().CalcularProjecaoTemporal(entradaReferencia(), 2026, 2028, simulador.CenarioModerado, decimal.Zero)
	require.NoError(t, err)

	require.Len(t, proj.Series.Faturamento, 3)
	assert.True(t, proj.Series.Faturamento[0].Equal(dec(1_000_000)),
		"o primeiro ano usa a receita base sem crescimento")
	assert.True(t, proj.Series.Faturamento[1].Equal(dec(1_050_000)),
		"segundo ano: 1.000.000 × 1,05")
	assert.True(t, proj.Series.Faturamento[2].Equal(dec(1_102_500)),
		"terceiro ano: composto sobre o segundo, não sobre a base")
}

func TestCalcularProjecaoTemporal_AcumuladoSomaOsAnos(t *testing.T) {
	proj, err := analisadorTeste().CalcularProjecaoTemporal(entradaReferencia(), 2026, 2033, "", decimal.Zero)
	require.NoError(t, err)

	soma := decimal.Zero
	for _, res := range proj.ResultadosAnuais {
		soma = soma.Add(res.NecessidadeAdicionalCapitalGiro)
	}
	assert.True(t, proj.Acumulado.TotalNecessidadeCapitalGiro.Equal(soma),
		"o acumulado deve ser exatamente a soma das necessidades anuais")
	assert.True(t, proj.Acumulado.CustoFinanceiroTotal.IsPositive())
}

// O gap anual cresce ao longo da transição: a fração retida sobe todo ano e a
// receita projetada também.
func TestCalcularProjecaoTemporal_GapCresceNaTransicao(t *testing.T) {
	proj, err := analisadorTeste().CalcularProjecaoTemporal(entradaReferencia(), 2026, 2032, "", decimal.Zero)
	require.NoError(t, err)

	anterior := decimal.Zero
	for ano := 2026; ano <= 2032; ano++ {
		gap := proj.ResultadosAnuais[ano].DiferencaCapitalGiro.Abs()
		assert.True(t, gap.GreaterThan(anterior),
			"gap de %d (%s) deveria superar o do ano anterior (%s)", ano, gap, anterior)
		anterior = gap
	}
}

func TestMontarLinhasExportacao(t *testing.T) {
	proj, err := analisadorTeste().CalcularProjecaoTemporal(entradaReferencia(), 2026, 2033, "", decimal.Zero)
	require.NoError(t, err)

	linhas := simulador.MontarLinhasExportacao(proj)

	require.Len(t, linhas, 8)
	for i := 1; i < len(linhas); i++ {
		assert.Greater(t, linhas[i].Ano, linhas[i-1].Ano, "linhas ordenadas por ano")
	}
	assert.Equal(t, 2026, linhas[0].Ano)
	assert.True(t, linhas[0].CapitalAtual.Equal(dec(735_000)))
	assert.True(t, linhas[0].Diferenca.Equal(dec(-26_500)))

	assert.Nil(t, simulador.MontarLinhasExportacao(nil), "projeção nula gera planilha nula")
}
