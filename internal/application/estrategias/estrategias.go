// Package estrategias avalia as seis alavancas de mitigação do impacto do
// Split Payment no capital de giro, o efeito combinado com desconto de
// sobreposição e a busca da combinação ótima (fronteira de Pareto).
package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// DuracaoEfeitoMeses horizonte assumido para converter o benefício mensal de
// uma estratégia em mitigação total.
const DuracaoEfeitoMeses = 12

var (
	umDecimal     = decimal.NewFromInt(1)
	cemDecimal    = decimal.NewFromInt(100)
	trintaDecimal = decimal.NewFromInt(30)
	dozeDecimal   = decimal.NewFromInt(12)
	duracaoEfeito = decimal.NewFromInt(DuracaoEfeitoMeses)
)

// gapBase valor absoluto do gap de capital de giro da linha de base.
func gapBase(impacto *simulacao.ResultadoAnual) decimal.Decimal {
	if impacto == nil {
		return decimal.Zero
	}
	return impacto.DiferencaCapitalGiro.Abs()
}

// efetividade percentual do gap coberto pela mitigação total, piso em zero.
func efetividade(mitigacaoTotal, gap decimal.Decimal) decimal.Decimal {
	if gap.IsZero() || mitigacaoTotal.IsNegative() {
		return decimal.Zero
	}
	return mitigacaoTotal.Div(gap).Mul(cemDecimal)
}

// custoBeneficio razão custo ÷ mitigação; zero quando não há mitigação.
func custoBeneficio(custo, mitigacao decimal.Decimal) decimal.Decimal {
	if mitigacao.IsPositive() {
		return custo.Div(mitigacao)
	}
	return decimal.Zero
}

// montarResultado preenche os campos derivados comuns a todas as estratégias.
func montarResultado(nome string, mitigacaoMensal, custoMensal, gap decimal.Decimal) *simulacao.ResultadoEstrategia {
	mitigacaoTotal := mitigacaoMensal.Mul(duracaoEfeito)
	custoTotal := custoMensal.Mul(duracaoEfeito)
	return &simulacao.ResultadoEstrategia{
		Nome:                  nome,
		EfetividadePercentual: efetividade(mitigacaoTotal, gap),
		MitigacaoMensal:       mitigacaoMensal,
		MitigacaoTotal:        mitigacaoTotal,
		CustoMensal:           custoMensal,
		CustoTotal:            custoTotal,
		CustoBeneficio:        custoBeneficio(custoTotal, mitigacaoTotal),
	}
}

// resultadoInvalido resultado com erro de configuração: efetividade zerada.
func resultadoInvalido(nome, motivo string) *simulacao.ResultadoEstrategia {
	return &simulacao.ResultadoEstrategia{Nome: nome, Erro: motivo}
}
