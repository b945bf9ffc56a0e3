package simulador_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/infrastructure/memoria"
)

func usecaseTeste() *simulador.SimulacaoUseCase {
	return simulador.NewSimulacaoUseCase(analisadorTeste(), memoria.NewSimulacaoRepository(), logTeste())
}

func TestSimular_FluxoCompleto(t *testing.T) {
	uc := usecaseTeste()

	s, err := uc.Simular(context.Background(), entradaReferencia(), simulador.OpcoesSimulacao{})
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CriadaEm.IsZero())
	require.NotNil(t, s.Projecao)
	assert.Equal(t, 2026, s.Projecao.AnoInicial, "sem opções o horizonte default é 2026–2033")
	assert.Equal(t, 2033, s.Projecao.AnoFinal)
	require.NotNil(t, s.ImpactoBase)
	assert.Equal(t, 2026, s.ImpactoBase.Ano, "ano-base default é o início do horizonte")
	assert.NotEmpty(t, s.Memoria.Passos, "a memória de cálculo acompanha toda simulação")
	assert.Len(t, s.Exportacao, 8)
}

func TestSimular_PersisteERecupera(t *testing.T) {
	uc := usecaseTeste()

	s, err := uc.Simular(context.Background(), entradaReferencia(), simulador.OpcoesSimulacao{
		AnoInicial: 2027,
		AnoFinal:   2029,
		Cenario:    simulador.CenarioOtimista,
	})
	require.NoError(t, err)

	recuperada, err := uc.BuscarPorID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, recuperada.ID)
	assert.Equal(t, simulador.CenarioOtimista, recuperada.Projecao.Cenario)
	assert.Len(t, recuperada.Exportacao, 3)
}

func TestSimular_HorizonteInvalidoNaoPersiste(t *testing.T) {
	uc := usecaseTeste()

	_, err := uc.Simular(context.Background(), entradaReferencia(), simulador.OpcoesSimulacao{
		AnoInicial: 2024,
		AnoFinal:   2033,
	})
	assert.ErrorIs(t, err, domain.ErrAnoForaDoIntervalo)
}

func TestBuscarPorID_Inexistente(t *testing.T) {
	uc := usecaseTeste()

	_, err := uc.BuscarPorID(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMontarMemoriaCalculo_Observacoes(t *testing.T) {
	entrada := entradaReferencia().Normalizar()
	entrada.SplitPayment = false
	entrada.ReducaoEspecial = decimal.NewFromFloat(0.30)

	impacto := analisadorTeste().ImpactoOuFallback(entrada, 2026)
	mem := simulador.MontarMemoriaCalculo(entrada, impacto)

	assert.Len(t, mem.Passos, 8)
	assert.NotEmpty(t, mem.Formula)

	var temSplitDesativado, temReducao bool
	for _, obs := range mem.Observacoes {
		if obs == "Split Payment desativado: o resultado com retenção equivale ao IVA sem split." {
			temSplitDesativado = true
		}
		if len(obs) > 0 && obs[0] == 'R' {
			temReducao = true
		}
	}
	assert.True(t, temSplitDesativado, "memória deve registrar o split desativado")
	assert.True(t, temReducao, "memória deve registrar a redução setorial")
}
