// Package tributacao implementa os serviços de domínio do IVA Dual (CBS/IBS)
// da Reforma Tributária (LC 214/2025): fórmulas dos novos tributos, cronograma
// de transição 2026–2033 e a composição proporcional com o sistema atual.
package tributacao

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CategoriaIVA classifica o tratamento do setor perante o IVA Dual.
type CategoriaIVA string

const (
	CategoriaPadrao   CategoriaIVA = "standard" // alíquota cheia
	CategoriaReduzida CategoriaIVA = "reduced"  // redução de 50% (Anexo III LC 214)
	CategoriaIsenta   CategoriaIVA = "exempt"   // alíquota zero
)

// Alíquotas de referência do IVA Dual. A soma (26,5%) é a alíquota padrão
// estimada pelo Ministério da Fazenda.
var (
	AliquotaCBSReferencia = decimal.NewFromFloat(0.088)
	AliquotaIBSReferencia = decimal.NewFromFloat(0.177)
)

var (
	umDecimal  = decimal.NewFromInt(1)
	cemDecimal = decimal.NewFromInt(100)
	meio       = decimal.NewFromFloat(0.5)
)

// OpcoesIBS parâmetros adicionais do cálculo do IBS.
type OpcoesIBS struct {
	// ReducaoEspecial redução setorial adicional da alíquota, em fração (0–1).
	ReducaoEspecial decimal.Decimal
}

// aliquotaEfetiva aplica a categoria sobre a alíquota nominal.
// Categoria desconhecida é tratada como padrão, com warning (nunca erro).
func aliquotaEfetiva(aliquota decimal.Decimal, categoria CategoriaIVA) decimal.Decimal {
	switch categoria {
	case CategoriaPadrao, "":
		return aliquota
	case CategoriaReduzida:
		return aliquota.Mul(meio)
	case CategoriaIsenta:
		return decimal.Zero
	default:
		log.Warn().Str("categoria", string(categoria)).
			Msg("tributacao: categoria IVA desconhecida, assumindo padrão")
		return aliquota
	}
}

// sanearValor coerção de valores inválidos para defaults seguros, com warning.
// O motor nunca interrompe um cálculo por entrada numérica ruim; degrada a precisão.
func sanearValor(v decimal.Decimal, campo string) decimal.Decimal {
	if v.IsNegative() {
		log.Warn().Str("campo", campo).Str("valor", v.String()).
			Msg("tributacao: valor negativo, assumindo zero")
		return decimal.Zero
	}
	return v
}

// sanearAliquota normaliza alíquotas recebidas na escala 0–100 para 0–1.
func sanearAliquota(aliquota decimal.Decimal, campo string) decimal.Decimal {
	aliquota = sanearValor(aliquota, campo)
	if aliquota.GreaterThan(umDecimal) {
		return aliquota.Div(cemDecimal)
	}
	return aliquota
}

// CalcularCBS calcula a Contribuição sobre Bens e Serviços.
// CBS = max(0, base × alíquota efetiva − créditos).
func CalcularCBS(base, aliquota, creditos decimal.Decimal, categoria CategoriaIVA) decimal.Decimal {
	base = sanearValor(base, "base")
	aliquota = sanearAliquota(aliquota, "aliquotaCBS")
	creditos = sanearValor(creditos, "creditos")

	imposto := base.Mul(aliquotaEfetiva(aliquota, categoria)).Sub(creditos)
	if imposto.IsNegative() {
		return decimal.Zero
	}
	return imposto
}

// CalcularIBS calcula o Imposto sobre Bens e Serviços.
// Além da categoria, aplica a redução setorial: alíquota × (1 − reducaoEspecial).
func CalcularIBS(base, aliquota, creditos decimal.Decimal, categoria CategoriaIVA, opcoes *OpcoesIBS) decimal.Decimal {
	base = sanearValor(base, "base")
	aliquota = sanearAliquota(aliquota, "aliquotaIBS")
	creditos = sanearValor(creditos, "creditos")

	efetiva := aliquotaEfetiva(aliquota, categoria)
	if opcoes != nil && opcoes.ReducaoEspecial.IsPositive() {
		reducao := opcoes.ReducaoEspecial
		if reducao.GreaterThan(umDecimal) {
			reducao = reducao.Div(cemDecimal)
		}
		efetiva = efetiva.Mul(umDecimal.Sub(reducao))
	}

	imposto := base.Mul(efetiva).Sub(creditos)
	if imposto.IsNegative() {
		return decimal.Zero
	}
	return imposto
}

// TotalIVA decomposição do IVA Dual.
type TotalIVA struct {
	CBS   decimal.Decimal
	IBS   decimal.Decimal
	Total decimal.Decimal
}

// CalcularTotalIVA compõe CBS e IBS para a mesma base e categoria.
func CalcularTotalIVA(base, aliquotaCBS, aliquotaIBS, creditosCBS, creditosIBS decimal.Decimal, categoria CategoriaIVA, opcoes *OpcoesIBS) TotalIVA {
	cbs := CalcularCBS(base, aliquotaCBS, creditosCBS, categoria)
	ibs := CalcularIBS(base, aliquotaIBS, creditosIBS, categoria, opcoes)
	return TotalIVA{CBS: cbs, IBS: ibs, Total: cbs.Add(ibs)}
}
