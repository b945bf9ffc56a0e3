package tributacao

import "github.com/shopspring/decimal"

// TipoEmpresa determina quais tributos do sistema atual incidem sobre a receita.
type TipoEmpresa string

const (
	EmpresaComercio  TipoEmpresa = "comercio"  // PIS/COFINS + ICMS
	EmpresaIndustria TipoEmpresa = "industria" // PIS/COFINS + ICMS + IPI
	EmpresaServicos  TipoEmpresa = "servicos"  // PIS/COFINS + ISS
)

// Alíquotas nominais do regime não-cumulativo de PIS/COFINS.
var (
	aliquotaPIS    = decimal.NewFromFloat(0.0165)
	aliquotaCOFINS = decimal.NewFromFloat(0.076)

	// parcela do IPI dentro do resíduo estadual/federal da indústria
	parcelaIPIIndustria = decimal.NewFromFloat(0.20)
)

// ParametrosSetoriais parâmetros específicos do setor da empresa simulada.
// Campos zerados assumem os defaults de referência.
type ParametrosSetoriais struct {
	TipoEmpresa     TipoEmpresa
	AliquotaCBS     decimal.Decimal // alíquota setorial da CBS (zero = referência 8,8%)
	AliquotaIBS     decimal.Decimal // alíquota setorial do IBS (zero = referência 17,7%)
	CategoriaIVA    CategoriaIVA
	ReducaoEspecial decimal.Decimal
	// CronogramaSplit cronograma próprio do setor para a retenção (Anexo IV);
	// nil usa o cronograma geral.
	CronogramaSplit map[int]decimal.Decimal
}

// SistemaAtual calcula os tributos do sistema vigente (PIS/COFINS/ICMS/IPI/ISS)
// e expõe os percentuais de implementação da transição. Implementa o port
// simulacao.ProvedorSistemaTributario.
type SistemaAtual struct{}

// NewSistemaAtual cria o serviço.
func NewSistemaAtual() *SistemaAtual { return &SistemaAtual{} }

// PercentualImplementacao fração das transações sujeitas ao Split Payment no
// ano, respeitando cronograma setorial quando definido.
func (s *SistemaAtual) PercentualImplementacao(ano int, params *ParametrosSetoriais) decimal.Decimal {
	if params != nil && params.CronogramaSplit != nil {
		return percentual(params.CronogramaSplit, ano)
	}
	return PercentualImplementacaoSplit(ano)
}

// ImpostosAtuais distribui a carga efetiva (base × alíquota − créditos) entre os
// tributos do sistema atual.
//
// A decomposição parte das alíquotas nominais de PIS (1,65%) e COFINS (7,6%);
// o resíduo da alíquota efetiva vai para ICMS (comércio), ICMS+IPI (indústria)
// ou ISS (serviços). Créditos reduzem todos os tributos proporcionalmente,
// nunca abaixo de zero.
func (s *SistemaAtual) ImpostosAtuais(base, aliquota, creditos decimal.Decimal, params *ParametrosSetoriais) DetalhamentoImpostos {
	base = sanearValor(base, "faturamento")
	aliquota = sanearAliquota(aliquota, "aliquota")
	creditos = sanearValor(creditos, "creditos")

	tipo := EmpresaComercio
	if params != nil && params.TipoEmpresa != "" {
		tipo = params.TipoEmpresa
	}

	var det DetalhamentoImpostos

	pisCofins := aliquotaPIS.Add(aliquotaCOFINS)
	if aliquota.LessThanOrEqual(pisCofins) {
		// alíquota efetiva abaixo de 9,25%: reparte só entre PIS e COFINS
		if pisCofins.IsPositive() {
			det.PIS = base.Mul(aliquota).Mul(aliquotaPIS).Div(pisCofins)
			det.COFINS = base.Mul(aliquota).Mul(aliquotaCOFINS).Div(pisCofins)
		}
	} else {
		det.PIS = base.Mul(aliquotaPIS)
		det.COFINS = base.Mul(aliquotaCOFINS)

		residuo := base.Mul(aliquota.Sub(pisCofins))
		switch tipo {
		case EmpresaServicos:
			det.ISS = residuo
		case EmpresaIndustria:
			det.IPI = residuo.Mul(parcelaIPIIndustria)
			det.ICMS = residuo.Sub(det.IPI)
		default:
			det.ICMS = residuo
		}
	}

	det = det.Fechar()

	// créditos abatem proporcionalmente cada tributo
	if creditos.IsPositive() && det.Total.IsPositive() {
		liquido := det.Total.Sub(creditos)
		if liquido.IsNegative() {
			return DetalhamentoImpostos{}.Fechar()
		}
		fator := liquido.Div(det.Total)
		det.PIS = det.PIS.Mul(fator)
		det.COFINS = det.COFINS.Mul(fator)
		det.ICMS = det.ICMS.Mul(fator)
		det.IPI = det.IPI.Mul(fator)
		det.ISS = det.ISS.Mul(fator)
		det = det.Fechar()
	}

	return det
}
