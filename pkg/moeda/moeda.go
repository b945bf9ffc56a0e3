// Package moeda formata valores monetários e percentuais no padrão brasileiro
// (separador de milhar ".", decimal ","), usando os dados de locale do x/text.
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda devolve o valor como moeda brasileira, ex: "R$ 1.234.567,89".
func FormatarMoeda(valor decimal.Decimal) string {
	f, _ := valor.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

// FormatarPercentual devolve a fração como percentual, ex: 0.265 -> "26,50%".
func FormatarPercentual(fracao decimal.Decimal) string {
	f, _ := fracao.Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return printer.Sprintf("%v%%", number.Decimal(f, number.Scale(2)))
}

// FormatarNumero devolve o valor com separadores brasileiros e 2 casas, sem símbolo.
func FormatarNumero(valor decimal.Decimal) string {
	f, _ := valor.Round(2).Float64()
	return printer.Sprintf("%v", number.Decimal(f, number.Scale(2)))
}
