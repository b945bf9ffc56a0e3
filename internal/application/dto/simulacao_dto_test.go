package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfiscal/simulador-api/internal/application/dto"
	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

func TestSimularRequest_FormaPlana(t *testing.T) {
	corpo := []byte(`{
		"dados": {
			"faturamento": 1000000,
			"aliquota": 26.5,
			"pmr": 30,
			"percVista": 30,
			"percPrazo": 70,
			"tipoEmpresa": "servicos"
		},
		"cenario": "moderado"
	}`)

	var req dto.SimularRequest
	require.NoError(t, json.Unmarshal(corpo, &req))

	entrada, err := req.EntradaDominio()
	require.NoError(t, err)

	assert.True(t, entrada.Faturamento.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, tributacao.EmpresaServicos, entrada.TipoEmpresa)
	assert.True(t, entrada.SplitPayment, "splitPayment ausente assume true")
}

func TestSimularRequest_FormaAninhada(t *testing.T) {
	corpo := []byte(`{
		"dadosAninhados": {
			"empresa": {"faturamento": 500000, "margem": 0.2, "tipoEmpresa": "industria"},
			"cicloFinanceiro": {"pmr": 45, "pmp": 30, "pme": 20, "percVista": 0.4, "percPrazo": 0.6},
			"parametrosFiscais": {"aliquota": 0.22, "splitPayment": false}
		}
	}`)

	var req dto.SimularRequest
	require.NoError(t, json.Unmarshal(corpo, &req))

	entrada, err := req.EntradaDominio()
	require.NoError(t, err)

	assert.True(t, entrada.Faturamento.Equal(decimal.NewFromInt(500_000)))
	assert.Equal(t, 45, entrada.PMR)
	assert.Equal(t, tributacao.EmpresaIndustria, entrada.TipoEmpresa)
	assert.False(t, entrada.SplitPayment, "splitPayment explícito deve ser respeitado")
}

func TestSimularRequest_FormasAmbiguas(t *testing.T) {
	req := dto.SimularRequest{
		Dados: &dto.EntradaPlanaDTO{},
		DadosAninhados: &dto.EntradaAninhadaDTO{
			Empresa:           &dto.EmpresaDTO{},
			CicloFinanceiro:   &dto.CicloFinanceiroDTO{},
			ParametrosFiscais: &dto.ParametrosFiscaisDTO{},
		},
	}

	_, err := req.EntradaDominio()
	assert.ErrorIs(t, err, domain.ErrFormatoInvalido,
		"enviar as duas formas ao mesmo tempo é ambíguo e deve ser rejeitado")
}

func TestSimularRequest_SemDados(t *testing.T) {
	var req dto.SimularRequest
	_, err := req.EntradaDominio()
	assert.ErrorIs(t, err, domain.ErrFormatoInvalido)
}

func TestEntradaAninhada_BlocoFaltando(t *testing.T) {
	aninhada := dto.EntradaAninhadaDTO{
		Empresa:         &dto.EmpresaDTO{},
		CicloFinanceiro: &dto.CicloFinanceiroDTO{},
		// parametrosFiscais ausente
	}

	_, err := aninhada.Aplanar()
	assert.ErrorIs(t, err, domain.ErrFormatoInvalido)
}

func TestEstrategiasRequest_ComDadosProprios(t *testing.T) {
	corpo := []byte(`{
		"dados": {"faturamento": 1000000, "aliquota": 0.265},
		"ano": 2027,
		"estrategias": {
			"ajustePrecos": {"ativar": true, "percentualAumento": 0.05}
		}
	}`)

	var req dto.EstrategiasRequest
	require.NoError(t, json.Unmarshal(corpo, &req))

	entrada, err := req.EntradaDominio()
	require.NoError(t, err)

	assert.True(t, entrada.Faturamento.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, 2027, req.Ano)
	assert.True(t, req.Estrategias.AjustePrecos.Ativar)
	assert.True(t, req.Estrategias.AjustePrecos.PercentualAumento.Equal(decimal.NewFromFloat(0.05)))
}

func TestEstrategiasRequest_IgnoraCamposDesconhecidos(t *testing.T) {
	// clientes antigos ainda mandam "focoAjuste" no mixProdutos
	corpo := []byte(`{
		"dados": {"faturamento": 1000000, "aliquota": 0.265},
		"estrategias": {
			"mixProdutos": {"ativar": true, "percentualAjuste": 0.2, "focoAjuste": "ciclo", "impactoMargem": 0.01}
		}
	}`)

	var req dto.EstrategiasRequest
	require.NoError(t, json.Unmarshal(corpo, &req))

	assert.True(t, req.Estrategias.MixProdutos.Ativar)
	assert.True(t, req.Estrategias.MixProdutos.ImpactoMargem.Equal(decimal.NewFromFloat(0.01)))
}
