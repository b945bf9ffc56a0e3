package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// AvaliarAjustePrecos estima o efeito de repassar o impacto aos preços.
//
// Receita nova = faturamento × (1 + aumento) × (1 + elasticidade × aumento);
// o benefício de caixa é a variação de receita vezes a margem, e o custo é a
// receita perdida pela reação da demanda ao longo do período de acomodação.
func AvaliarAjustePrecos(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigAjustePrecos, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaAjustePrecos

	aumento := simulacao.NormalizarFracao(cfg.PercentualAumento)
	if !aumento.IsPositive() {
		return resultadoInvalido(nome, "percentual de aumento deve ser positivo")
	}

	fat := entrada.Faturamento
	reacaoDemanda := umDecimal.Add(cfg.Elasticidade.Mul(aumento))
	fatNovo := fat.Mul(umDecimal.Add(aumento)).Mul(reacaoDemanda)
	deltaReceita := fatNovo.Sub(fat)

	mitigacaoMensal := deltaReceita.Mul(entrada.Margem)
	if mitigacaoMensal.IsNegative() {
		mitigacaoMensal = decimal.Zero
	}

	// receita perdida pela elasticidade: diferença entre o repasse cheio e o
	// realizado após a reação da demanda
	perdaMensal := fat.Mul(umDecimal.Add(aumento)).Sub(fatNovo)
	if perdaMensal.IsNegative() {
		perdaMensal = decimal.Zero
	}

	periodo := cfg.PeriodoAjuste
	if periodo <= 0 {
		periodo = 3
	}

	res := montarResultado(nome, mitigacaoMensal, perdaMensal, gapBase(impacto))
	res.CustoTotal = perdaMensal.Mul(decimal.NewFromInt(int64(periodo)))
	res.CustoBeneficio = custoBeneficio(res.CustoTotal, res.MitigacaoTotal)
	return res
}
