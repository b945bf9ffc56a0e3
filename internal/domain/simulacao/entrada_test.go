package simulacao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestNormalizarFracao(t *testing.T) {
	assert.True(t, simulacao.NormalizarFracao(dec(0.25)).Equal(dec(0.25)),
		"valores já em 0–1 passam intactos")
	assert.True(t, simulacao.NormalizarFracao(dec(25)).Equal(dec(0.25)),
		"valores em 0–100 são divididos por 100")
	assert.True(t, simulacao.NormalizarFracao(dec(-5)).IsZero(),
		"negativos viram zero")
	assert.True(t, simulacao.NormalizarFracao(decimal.NewFromInt(1)).Equal(decimal.NewFromInt(1)),
		"exatamente 1 é fração válida, não 1 por cento")
}

func TestNormalizar_EscalasMistas(t *testing.T) {
	e := simulacao.EntradaSimulacao{
		Faturamento: dec(1_000_000),
		Aliquota:    dec(26.5), // escala 0–100
		Margem:      dec(0.25), // escala 0–1
		PercVista:   dec(30),
		PercPrazo:   dec(70),
	}.Normalizar()

	assert.True(t, e.Aliquota.Equal(dec(0.265)))
	assert.True(t, e.Margem.Equal(dec(0.25)))
	assert.True(t, e.PercVista.Equal(dec(0.30)))
	assert.True(t, e.PercPrazo.Equal(dec(0.70)))
}

func TestNormalizar_ReconciliaDistribuicao(t *testing.T) {
	e := simulacao.EntradaSimulacao{
		Faturamento: dec(1_000_000),
		PercVista:   dec(0.30),
		PercPrazo:   dec(0.30), // soma 0,60: inconsistente
	}.Normalizar()

	assert.True(t, e.PercPrazo.Equal(dec(0.70)),
		"PercPrazo deve virar o complemento de PercVista quando a soma foge de 1")
}

func TestNormalizar_DistribuicaoDentroDaTolerancia(t *testing.T) {
	e := simulacao.EntradaSimulacao{
		PercVista: dec(0.30),
		PercPrazo: dec(0.705), // desvio de 0,005, dentro da tolerância
	}.Normalizar()

	assert.True(t, e.PercPrazo.Equal(dec(0.705)),
		"desvios pequenos de arredondamento não devem disparar a reconciliação")
}

func TestNormalizar_Defaults(t *testing.T) {
	e := simulacao.EntradaSimulacao{Faturamento: dec(1000)}.Normalizar()

	assert.True(t, e.TaxaCapitalGiro.Equal(simulacao.TaxaCapitalGiroDefault))
	assert.Equal(t, tributacao.CategoriaPadrao, e.CategoriaIVA)
	assert.Equal(t, tributacao.EmpresaComercio, e.TipoEmpresa)
}

func TestNormalizar_SaneiaNegativos(t *testing.T) {
	e := simulacao.EntradaSimulacao{
		Faturamento: dec(-100),
		Creditos:    dec(-50),
		PMR:         -10,
	}.Normalizar()

	assert.True(t, e.Faturamento.IsZero())
	assert.True(t, e.Creditos.IsZero())
	assert.Equal(t, 0, e.PMR)
}

func TestImpostoLiquido(t *testing.T) {
	e := simulacao.EntradaSimulacao{
		Faturamento: dec(1_000_000),
		Aliquota:    dec(0.265),
		Creditos:    dec(26_500),
	}

	assert.True(t, e.ImpostoLiquido().Equal(dec(238_500)))

	e.Creditos = dec(400_000)
	assert.True(t, e.ImpostoLiquido().IsZero(),
		"créditos acima da carga devem resultar em imposto líquido zero")
}
