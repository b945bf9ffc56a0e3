package tributacao

import "github.com/shopspring/decimal"

// Período de transição da Reforma Tributária.
const (
	AnoInicioTransicao = 2026
	AnoFimTransicao    = 2033
)

// Cronogramas de implementação por tributo, em fração (0–1).
//
// CBS: ano-teste de 2026 (10%) e substituição integral de PIS/COFINS em 2027.
// IBS: começa em 2029 substituindo ICMS/ISS em degraus de 10 p.p. até 2032,
// extinção completa dos tributos estaduais/municipais em 2033.
// Split Payment: fração das transações sujeitas à retenção na liquidação,
// acompanhando o avanço conjunto dos dois tributos.
var (
	cronogramaCBS = map[int]decimal.Decimal{
		2026: decimal.NewFromFloat(0.10),
		2027: umDecimal,
		2028: umDecimal,
		2029: umDecimal,
		2030: umDecimal,
		2031: umDecimal,
		2032: umDecimal,
		2033: umDecimal,
	}

	cronogramaIBS = map[int]decimal.Decimal{
		2026: decimal.Zero,
		2027: decimal.Zero,
		2028: decimal.Zero,
		2029: decimal.NewFromFloat(0.10),
		2030: decimal.NewFromFloat(0.20),
		2031: decimal.NewFromFloat(0.30),
		2032: decimal.NewFromFloat(0.40),
		2033: umDecimal,
	}

	cronogramaSplit = map[int]decimal.Decimal{
		2026: decimal.NewFromFloat(0.10),
		2027: decimal.NewFromFloat(0.25),
		2028: decimal.NewFromFloat(0.40),
		2029: decimal.NewFromFloat(0.55),
		2030: decimal.NewFromFloat(0.70),
		2031: decimal.NewFromFloat(0.85),
		2032: umDecimal,
		2033: umDecimal,
	}
)

// percentual devolve a fração do cronograma para o ano, com clamp nas bordas:
// antes de 2026 a implementação é 0, depois de 2033 é a fração final.
func percentual(cronograma map[int]decimal.Decimal, ano int) decimal.Decimal {
	if ano < AnoInicioTransicao {
		return decimal.Zero
	}
	if ano > AnoFimTransicao {
		ano = AnoFimTransicao
	}
	return cronograma[ano]
}

// PercentualImplementacaoCBS fração do PIS/COFINS já substituída pela CBS no ano.
func PercentualImplementacaoCBS(ano int) decimal.Decimal {
	return percentual(cronogramaCBS, ano)
}

// PercentualImplementacaoIBS fração do ICMS/IPI/ISS já substituída pelo IBS no ano.
func PercentualImplementacaoIBS(ano int) decimal.Decimal {
	return percentual(cronogramaIBS, ano)
}

// PercentualImplementacaoSplit fração das transações sujeitas ao Split Payment no ano.
func PercentualImplementacaoSplit(ano int) decimal.Decimal {
	return percentual(cronogramaSplit, ano)
}
