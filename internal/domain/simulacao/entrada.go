// Package simulacao define os tipos de valor do simulador de Split Payment:
// a entrada plana normalizada, os resultados por regime/ano/projeção e os
// registros de configuração e resultado das estratégias de mitigação.
package simulacao

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

var (
	umDecimal  = decimal.NewFromInt(1)
	cemDecimal = decimal.NewFromInt(100)
)

// TaxaCapitalGiroDefault custo mensal de capital de giro usado quando a entrada
// não informa um valor (2,1% a.m.).
var TaxaCapitalGiroDefault = decimal.NewFromFloat(0.021)

// toleranciaDistribuicao desvio aceito em |percVista + percPrazo − 1|.
var toleranciaDistribuicao = decimal.NewFromFloat(0.01)

// EntradaSimulacao registro plano com os dados da empresa simulada.
// Frações podem chegar na escala 0–100 ou 0–1; Normalizar padroniza para 0–1.
type EntradaSimulacao struct {
	Faturamento  decimal.Decimal `json:"faturamento"`  // receita mensal, R$
	Aliquota     decimal.Decimal `json:"aliquota"`     // alíquota efetiva total, fração
	PMR          int             `json:"pmr"`          // prazo médio de recebimento, dias
	PMP          int             `json:"pmp"`          // prazo médio de pagamento, dias
	PME          int             `json:"pme"`          // prazo médio de estocagem, dias
	PercVista    decimal.Decimal `json:"percVista"`    // fração das vendas à vista
	PercPrazo    decimal.Decimal `json:"percPrazo"`    // fração das vendas a prazo
	Margem       decimal.Decimal `json:"margem"`       // margem operacional, fração
	Creditos     decimal.Decimal `json:"creditos"`     // créditos tributários a abater, R$
	SplitPayment bool            `json:"splitPayment"` // modela a retenção na liquidação

	// parâmetros do IVA Dual (zero = referência)
	AliquotaCBS     decimal.Decimal         `json:"aliquotaCBS"`
	AliquotaIBS     decimal.Decimal         `json:"aliquotaIBS"`
	CategoriaIVA    tributacao.CategoriaIVA `json:"categoriaIVA"`
	ReducaoEspecial decimal.Decimal         `json:"reducaoEspecial"`

	TaxaCapitalGiro decimal.Decimal        `json:"taxaCapitalGiro"` // custo mensal do capital, fração
	TipoEmpresa     tributacao.TipoEmpresa `json:"tipoEmpresa"`     // comercio | industria | servicos
}

// NormalizarFracao padroniza um campo percentual para a escala 0–1.
// Valores acima de 1 são interpretados como 0–100; negativos viram zero.
func NormalizarFracao(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(umDecimal) {
		return v.Div(cemDecimal)
	}
	return v
}

// Normalizar devolve a entrada com todos os campos percentuais na escala 0–1 e
// os defaults aplicados. A distribuição vista/prazo é reconciliada: quando a
// soma foge de 1, PercPrazo passa a ser o complemento de PercVista.
func (e EntradaSimulacao) Normalizar() EntradaSimulacao {
	if e.Faturamento.IsNegative() {
		e.Faturamento = decimal.Zero
	}
	if e.Creditos.IsNegative() {
		e.Creditos = decimal.Zero
	}
	if e.PMR < 0 {
		e.PMR = 0
	}
	if e.PMP < 0 {
		e.PMP = 0
	}
	if e.PME < 0 {
		e.PME = 0
	}

	e.Aliquota = NormalizarFracao(e.Aliquota)
	e.Margem = NormalizarFracao(e.Margem)
	e.PercVista = NormalizarFracao(e.PercVista)
	e.PercPrazo = NormalizarFracao(e.PercPrazo)
	e.ReducaoEspecial = NormalizarFracao(e.ReducaoEspecial)
	e.AliquotaCBS = NormalizarFracao(e.AliquotaCBS)
	e.AliquotaIBS = NormalizarFracao(e.AliquotaIBS)
	e.TaxaCapitalGiro = NormalizarFracao(e.TaxaCapitalGiro)

	soma := e.PercVista.Add(e.PercPrazo)
	if soma.Sub(umDecimal).Abs().GreaterThan(toleranciaDistribuicao) {
		e.PercPrazo = umDecimal.Sub(e.PercVista)
		if e.PercPrazo.IsNegative() {
			e.PercVista = umDecimal
			e.PercPrazo = decimal.Zero
		}
	}

	if e.TaxaCapitalGiro.IsZero() {
		e.TaxaCapitalGiro = TaxaCapitalGiroDefault
	}
	if e.CategoriaIVA == "" {
		e.CategoriaIVA = tributacao.CategoriaPadrao
	}
	if e.TipoEmpresa == "" {
		e.TipoEmpresa = tributacao.EmpresaComercio
	}

	return e
}

// ParametrosSetoriais projeta a entrada nos parâmetros setoriais do domínio tributário.
func (e EntradaSimulacao) ParametrosSetoriais() *tributacao.ParametrosSetoriais {
	return &tributacao.ParametrosSetoriais{
		TipoEmpresa:     e.TipoEmpresa,
		AliquotaCBS:     e.AliquotaCBS,
		AliquotaIBS:     e.AliquotaIBS,
		CategoriaIVA:    e.CategoriaIVA,
		ReducaoEspecial: e.ReducaoEspecial,
	}
}

// ImpostoLiquido carga tributária efetiva mensal: max(0, faturamento × alíquota − créditos).
func (e EntradaSimulacao) ImpostoLiquido() decimal.Decimal {
	imposto := e.Faturamento.Mul(e.Aliquota).Sub(e.Creditos)
	if imposto.IsNegative() {
		return decimal.Zero
	}
	return imposto
}
