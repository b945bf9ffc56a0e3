package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// AvaliarCapitalGiro modela uma linha de crédito dimensionada sobre a
// necessidade adicional de capital de giro da linha de base.
//
// Custo = juros simples durante a carência + juros embutidos nas parcelas
// (Tabela Price) no restante do prazo. A mitigação é o próprio principal:
// entrada única de caixa, sem recorrência mensal.
func AvaliarCapitalGiro(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigCapitalGiro, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaCapitalGiro

	taxa := simulacao.NormalizarFracao(cfg.TaxaJuros)
	if !taxa.IsPositive() {
		return resultadoInvalido(nome, "taxa de juros deve ser positiva")
	}

	captacao := simulacao.NormalizarFracao(cfg.ValorCaptacao)
	if captacao.IsZero() {
		captacao = umDecimal
	}

	prazo := cfg.PrazoPagamento
	if prazo <= 0 {
		prazo = 12
	}
	carencia := cfg.Carencia
	if carencia < 0 {
		carencia = 0
	}
	if carencia >= prazo {
		return resultadoInvalido(nome, "carência deve ser menor que o prazo de pagamento")
	}

	var necessidade decimal.Decimal
	if impacto != nil {
		necessidade = impacto.NecessidadeAdicionalCapitalGiro
	}
	principal := necessidade.Mul(captacao)
	if !principal.IsPositive() {
		return resultadoInvalido(nome, "não há necessidade adicional de capital a financiar")
	}

	jurosCarencia := principal.Mul(taxa).Mul(decimal.NewFromInt(int64(carencia)))

	// Tabela Price no período de amortização: pmt = P × i / (1 − (1+i)^−n)
	n := int64(prazo - carencia)
	fator := umDecimal.Add(taxa).Pow(decimal.NewFromInt(n))
	parcela := principal.Mul(taxa).Mul(fator).Div(fator.Sub(umDecimal))
	jurosAmortizacao := parcela.Mul(decimal.NewFromInt(n)).Sub(principal)

	custoTotal := jurosCarencia.Add(jurosAmortizacao)

	res := &simulacao.ResultadoEstrategia{
		Nome:                  nome,
		EfetividadePercentual: efetividade(principal, gapBase(impacto)),
		MitigacaoMensal:       principal,
		MitigacaoTotal:        principal,
		CustoMensal:           custoTotal.Div(decimal.NewFromInt(int64(prazo))),
		CustoTotal:            custoTotal,
		CustoBeneficio:        custoBeneficio(custoTotal, principal),
	}
	return res
}
