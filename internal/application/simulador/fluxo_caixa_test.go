package simulador_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

func TestCalcularTempoMedioCapitalGiro(t *testing.T) {
	// 30%% à vista × 25 dias + 70%% a prazo × (25 − 30) dias = 7,5 − 3,5 = 4
	tempo := simulador.CalcularTempoMedioCapitalGiro(30, simulador.PrazoRecolhimentoDias, dec(0.30), dec(0.70))
	assert.True(t, tempo.Equal(dec(4)),
		"float tributário médio esperado de 4 dias, obtido %s", tempo)
}

func TestCalcularTempoMedioCapitalGiro_PMRLongoNegativa(t *testing.T) {
	tempo := simulador.CalcularTempoMedioCapitalGiro(60, simulador.PrazoRecolhimentoDias, dec(0.30), dec(0.70))
	assert.True(t, tempo.IsNegative(),
		"quando o recebimento ocorre depois do recolhimento o float é negativo")
}

func TestCalcularFluxoCaixaAtual(t *testing.T) {
	res := simulador.CalcularFluxoCaixaAtual(entradaReferencia().Normalizar(), tributacao.NewSistemaAtual())

	assert.True(t, res.CapitalGiroDisponivel.Equal(dec(735_000)))
	assert.True(t, res.ValorImpostoTotal.Equal(dec(265_000)))
	assert.True(t, res.Impostos.Total.Equal(res.ValorImpostoTotal))
}

func TestCalcularFluxoCaixaSplitPayment_DecomposicaoPorAno(t *testing.T) {
	entrada := entradaReferencia().Normalizar()
	provedor := tributacao.NewSistemaAtual()

	res := simulador.CalcularFluxoCaixaSplitPayment(entrada, 2026, provedor)
	assert.True(t, res.ValorImpostoSplit.Equal(dec(26_500)), "10%% retido em 2026")
	assert.True(t, res.ValorImpostoNormal.Equal(dec(238_500)))
	assert.True(t, res.CapitalGiroDisponivel.Equal(res.ValorImpostoNormal),
		"com retenção parcial o float é só a parcela não retida")

	res = simulador.CalcularFluxoCaixaSplitPayment(entrada, 2025, provedor)
	assert.True(t, res.ValorImpostoSplit.IsZero())
	assert.True(t, res.CapitalGiroDisponivel.Equal(dec(265_000)),
		"sem implementação o imposto líquido inteiro permanece no caixa")

	res = simulador.CalcularFluxoCaixaSplitPayment(entrada, 2033, provedor)
	assert.True(t, res.ValorImpostoSplit.Equal(dec(265_000)), "retenção integral no regime final")
	assert.True(t, res.CapitalGiroDisponivel.IsZero())
}

func TestCalcularFluxoCaixaSemSplit(t *testing.T) {
	res := simulador.CalcularFluxoCaixaSemSplit(entradaReferencia().Normalizar())

	assert.True(t, res.CapitalGiroDisponivel.Equal(dec(265_000)))
	assert.True(t, res.ValorImpostoNormal.Equal(dec(265_000)))
	assert.True(t, res.ValorImpostoSplit.IsZero())
}

func TestCalcularFluxoCaixaSplitPayment_AnoSemImplementacao(t *testing.T) {
	// antes da transição o regime com split degenera no regime sem retenção
	entrada := entradaReferencia().Normalizar()

	comSplit := simulador.CalcularFluxoCaixaSplitPayment(entrada, 2025, tributacao.NewSistemaAtual())
	semSplit := simulador.CalcularFluxoCaixaSemSplit(entrada)

	assert.True(t, comSplit.CapitalGiroDisponivel.Equal(semSplit.CapitalGiroDisponivel))
	assert.True(t, comSplit.ValorImpostoTotal.Equal(semSplit.ValorImpostoTotal))
	assert.True(t, comSplit.ValorImpostoNormal.Equal(semSplit.ValorImpostoNormal))
	assert.True(t, comSplit.PercentualImplementacao.IsZero())
}
