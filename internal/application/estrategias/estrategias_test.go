package estrategias_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfiscal/simulador-api/internal/application/estrategias"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// entradaTeste empresa de referência já normalizada.
func entradaTeste() simulacao.EntradaSimulacao {
	return simulacao.EntradaSimulacao{
		Faturamento:  dec(1_000_000),
		Aliquota:     dec(0.265),
		PMR:          30,
		PMP:          30,
		PercVista:    dec(0.30),
		PercPrazo:    dec(0.70),
		Margem:       dec(0.25),
		SplitPayment: true,
	}.Normalizar()
}

// impactoTeste linha de base com gap de R$ 26.500 (ano-teste de 2026).
func impactoTeste() *simulacao.ResultadoAnual {
	return &simulacao.ResultadoAnual{
		Ano:                             2026,
		DiferencaCapitalGiro:            dec(-26_500),
		NecessidadeAdicionalCapitalGiro: dec(31_800),
	}
}

func TestAvaliarAjustePrecos(t *testing.T) {
	cfg := simulacao.ConfigAjustePrecos{
		Ativar:            true,
		PercentualAumento: dec(0.05),
		Elasticidade:      dec(-0.5),
		PeriodoAjuste:     3,
	}

	res := estrategias.AvaliarAjustePrecos(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	// receita nova = 1.000.000 × 1,05 × (1 − 0,5 × 0,05) = 1.023.750
	assert.True(t, res.MitigacaoMensal.Equal(dec(5_937.50)),
		"mitigação = delta de receita × margem: esperado 5937,50, obtido %s", res.MitigacaoMensal)
	assert.True(t, res.MitigacaoTotal.Equal(res.MitigacaoMensal.Mul(dec(12))),
		"mitigação total projeta 12 meses de efeito")
	// perda pela elasticidade = 1.050.000 − 1.023.750 = 26.250 por 3 meses
	assert.True(t, res.CustoTotal.Equal(dec(78_750)),
		"custo acumulado no período de acomodação, obtido %s", res.CustoTotal)
	assert.True(t, res.EfetividadePercentual.IsPositive())
}

func TestAvaliarAjustePrecos_AumentoInvalido(t *testing.T) {
	res := estrategias.AvaliarAjustePrecos(entradaTeste(), simulacao.ConfigAjustePrecos{Ativar: true}, impactoTeste())

	assert.NotEmpty(t, res.Erro, "aumento ausente deve invalidar a estratégia, não abortar")
	assert.True(t, res.EfetividadePercentual.IsZero())
}

func TestAvaliarRenegociacaoPrazos(t *testing.T) {
	cfg := simulacao.ConfigRenegociacaoPrazos{
		Ativar:                 true,
		AumentoPrazo:           15,
		PercentualFornecedores: dec(0.60),
		Contrapartidas:         dec(0.02),
	}

	res := estrategias.AvaliarRenegociacaoPrazos(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	// pagamentos mensais = 1.000.000 × 0,75 × 0,70 = 525.000; diário = 17.500
	// mitigação = 17.500 × 15 × 0,60 × 0,98 = 154.350
	assert.True(t, res.MitigacaoMensal.Equal(dec(154_350)),
		"obtido %s", res.MitigacaoMensal)
	assert.True(t, res.CustoMensal.Equal(dec(6_300)),
		"contrapartida de 2%% sobre a base renegociada, obtido %s", res.CustoMensal)
}

func TestAvaliarRenegociacaoPrazos_PrazoInvalido(t *testing.T) {
	res := estrategias.AvaliarRenegociacaoPrazos(entradaTeste(),
		simulacao.ConfigRenegociacaoPrazos{Ativar: true, PercentualFornecedores: dec(0.5)}, impactoTeste())
	assert.NotEmpty(t, res.Erro)
}

func TestAvaliarAntecipacaoRecebiveis(t *testing.T) {
	cfg := simulacao.ConfigAntecipacaoRecebiveis{
		Ativar:                true,
		PercentualAntecipacao: dec(0.50),
		TaxaDesconto:          dec(0.018),
	}

	res := estrategias.AvaliarAntecipacaoRecebiveis(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	// antecipado = 1.000.000 × 0,70 × 0,50 = 350.000
	// custo = 350.000 × 1,8% × (30/30) = 6.300
	assert.True(t, res.CustoMensal.Equal(dec(6_300)), "obtido %s", res.CustoMensal)
	assert.True(t, res.MitigacaoMensal.Equal(dec(343_700)), "obtido %s", res.MitigacaoMensal)
}

func TestAvaliarCapitalGiro(t *testing.T) {
	cfg := simulacao.ConfigCapitalGiro{
		Ativar:         true,
		TaxaJuros:      dec(0.015),
		PrazoPagamento: 12,
		Carencia:       3,
	}

	res := estrategias.AvaliarCapitalGiro(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	assert.True(t, res.MitigacaoTotal.Equal(dec(31_800)),
		"a mitigação é o principal captado (necessidade × 100%%), sem recorrência mensal")
	assert.True(t, res.CustoTotal.IsPositive(), "juros de carência + Tabela Price")
	assert.True(t, res.CustoTotal.LessThan(res.MitigacaoTotal),
		"em taxas normais o custo do empréstimo não supera o principal")
}

func TestAvaliarCapitalGiro_CarenciaMaiorQueOPrazo(t *testing.T) {
	res := estrategias.AvaliarCapitalGiro(entradaTeste(), simulacao.ConfigCapitalGiro{
		Ativar: true, TaxaJuros: dec(0.015), PrazoPagamento: 6, Carencia: 6,
	}, impactoTeste())
	assert.NotEmpty(t, res.Erro)
}

func TestAvaliarCapitalGiro_SemNecessidade(t *testing.T) {
	res := estrategias.AvaliarCapitalGiro(entradaTeste(), simulacao.ConfigCapitalGiro{
		Ativar: true, TaxaJuros: dec(0.015),
	}, &simulacao.ResultadoAnual{})
	assert.NotEmpty(t, res.Erro, "sem gap não há o que financiar")
}

func TestAvaliarMixProdutos(t *testing.T) {
	cfg := simulacao.ConfigMixProdutos{
		Ativar:           true,
		PercentualAjuste: dec(0.20),
		ImpactoReceita:   dec(0.03),
		ImpactoMargem:    dec(0.01),
	}

	res := estrategias.AvaliarMixProdutos(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	// 1.000.000 × 3% × 0,25 + 1.000.000 × 1% = 7.500 + 10.000 = 17.500
	assert.True(t, res.MitigacaoMensal.Equal(dec(17_500)), "obtido %s", res.MitigacaoMensal)
	// atrito de 5% sobre a fatia realocada de 20%
	assert.True(t, res.CustoMensal.Equal(dec(10_000)), "obtido %s", res.CustoMensal)
}

func TestAvaliarMeiosPagamento(t *testing.T) {
	cfg := simulacao.ConfigMeiosPagamento{
		Ativar:            true,
		DistribuicaoAtual: simulacao.DistribuicaoPagamento{Vista: dec(0.30), Prazo: dec(0.70)},
		DistribuicaoNova:  simulacao.DistribuicaoPagamento{Vista: dec(0.50), Prazo: dec(0.50)},
		TaxaIncentivo:     dec(0.01),
	}

	res := estrategias.AvaliarMeiosPagamento(entradaTeste(), cfg, impactoTeste())

	require.Empty(t, res.Erro)
	assert.True(t, res.CustoMensal.Equal(dec(5_000)),
		"incentivo de 1%% sobre as vendas à vista novas, obtido %s", res.CustoMensal)
	assert.True(t, res.MitigacaoMensal.IsPositive())
}

func TestAvaliarMeiosPagamento_DistribuicaoNaoSoma100(t *testing.T) {
	cfg := simulacao.ConfigMeiosPagamento{
		Ativar:            true,
		DistribuicaoAtual: simulacao.DistribuicaoPagamento{Vista: dec(0.30), Prazo: dec(0.30)},
		DistribuicaoNova:  simulacao.DistribuicaoPagamento{Vista: dec(0.50), Prazo: dec(0.50)},
	}

	res := estrategias.AvaliarMeiosPagamento(entradaTeste(), cfg, impactoTeste())

	assert.Equal(t, "distribuição de pagamento deve somar 100%", res.Erro)
}

func TestAvaliarMeiosPagamento_SemMigracaoParaVista(t *testing.T) {
	cfg := simulacao.ConfigMeiosPagamento{
		Ativar:            true,
		DistribuicaoAtual: simulacao.DistribuicaoPagamento{Vista: dec(0.50), Prazo: dec(0.50)},
		DistribuicaoNova:  simulacao.DistribuicaoPagamento{Vista: dec(0.40), Prazo: dec(0.60)},
	}

	res := estrategias.AvaliarMeiosPagamento(entradaTeste(), cfg, impactoTeste())

	assert.NotEmpty(t, res.Erro, "reduzir as vendas à vista não mitiga o impacto")
}

func TestUseCaseAvaliar_SoEstrategiasAtivas(t *testing.T) {
	uc := estrategias.NewEstrategiaUseCase(logger.New(logger.Config{Env: "development", Level: "error"}))

	cfg := simulacao.ConfigEstrategias{
		AjustePrecos: simulacao.ConfigAjustePrecos{Ativar: true, PercentualAumento: dec(0.05), PeriodoAjuste: 3},
		CapitalGiro:  simulacao.ConfigCapitalGiro{Ativar: true, TaxaJuros: dec(0.015), PrazoPagamento: 12},
	}

	avaliacao := uc.Avaliar(entradaTeste(), cfg, impactoTeste())

	assert.Len(t, avaliacao.Resultados, 2, "só as estratégias marcadas entram na avaliação")
	assert.Contains(t, avaliacao.Resultados, simulacao.EstrategiaAjustePrecos)
	assert.Contains(t, avaliacao.Resultados, simulacao.EstrategiaCapitalGiro)
	require.NotNil(t, avaliacao.Combinado)
	require.NotNil(t, avaliacao.Otima)
}

func TestUseCaseAvaliar_ConfiguracaoInvalidaNaoInterrompe(t *testing.T) {
	uc := estrategias.NewEstrategiaUseCase(logger.New(logger.Config{Env: "development", Level: "error"}))

	cfg := simulacao.ConfigEstrategias{
		AjustePrecos: simulacao.ConfigAjustePrecos{Ativar: true}, // sem aumento: inválida
		CapitalGiro:  simulacao.ConfigCapitalGiro{Ativar: true, TaxaJuros: dec(0.015), PrazoPagamento: 12},
	}

	avaliacao := uc.Avaliar(entradaTeste(), cfg, impactoTeste())

	require.Len(t, avaliacao.Resultados, 2)
	assert.NotEmpty(t, avaliacao.Resultados[simulacao.EstrategiaAjustePrecos].Erro)
	assert.Empty(t, avaliacao.Resultados[simulacao.EstrategiaCapitalGiro].Erro,
		"a falha de uma estratégia não contamina as demais")
}
