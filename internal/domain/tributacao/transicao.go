package tributacao

import "github.com/shopspring/decimal"

// OpcoesTransicao parâmetros do cálculo dos novos tributos durante a transição.
type OpcoesTransicao struct {
	AliquotaCBS     decimal.Decimal // zero = referência 8,8%
	AliquotaIBS     decimal.Decimal // zero = referência 17,7%
	CreditosCBS     decimal.Decimal
	CreditosIBS     decimal.Decimal
	Categoria       CategoriaIVA
	ReducaoEspecial decimal.Decimal
}

// CalcularTransicaoIVADual compõe a carga tributária de um ano da transição:
// os tributos legados são reduzidos por (1 − fração implementada) do tributo
// que os substitui e os novos tributos entram na fração implementada.
//
// Fração zero resulta em campo explicitamente zerado (nunca omitido), para que
// as somas a jusante fiquem bem definidas.
func CalcularTransicaoIVADual(base decimal.Decimal, ano int, atuais DetalhamentoImpostos, opcoes *OpcoesTransicao) DetalhamentoImpostos {
	if opcoes == nil {
		opcoes = &OpcoesTransicao{}
	}

	aliquotaCBS := opcoes.AliquotaCBS
	if aliquotaCBS.IsZero() {
		aliquotaCBS = AliquotaCBSReferencia
	}
	aliquotaIBS := opcoes.AliquotaIBS
	if aliquotaIBS.IsZero() {
		aliquotaIBS = AliquotaIBSReferencia
	}

	pCBS := PercentualImplementacaoCBS(ano)
	pIBS := PercentualImplementacaoIBS(ano)

	var det DetalhamentoImpostos

	// legados federais substituídos pela CBS
	fatorCBS := umDecimal.Sub(pCBS)
	det.PIS = atuais.PIS.Mul(fatorCBS)
	det.COFINS = atuais.COFINS.Mul(fatorCBS)

	// legados estaduais/municipais substituídos pelo IBS
	fatorIBS := umDecimal.Sub(pIBS)
	det.ICMS = atuais.ICMS.Mul(fatorIBS)
	det.IPI = atuais.IPI.Mul(fatorIBS)
	det.ISS = atuais.ISS.Mul(fatorIBS)

	det.CBS = decimal.Zero
	if pCBS.IsPositive() {
		det.CBS = pCBS.Mul(CalcularCBS(base, aliquotaCBS, opcoes.CreditosCBS, opcoes.Categoria))
	}

	det.IBS = decimal.Zero
	if pIBS.IsPositive() {
		det.IBS = pIBS.Mul(CalcularIBS(base, aliquotaIBS, opcoes.CreditosIBS, opcoes.Categoria, &OpcoesIBS{
			ReducaoEspecial: opcoes.ReducaoEspecial,
		}))
	}

	return det.Fechar()
}
