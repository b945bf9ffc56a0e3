package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

// EntradaPlanaDTO forma plana da entrada, espelho do formulário da interface.
// Percentuais aceitos em 0–1 ou 0–100 (normalizados pelo domínio).
type EntradaPlanaDTO struct {
	Faturamento  decimal.Decimal `json:"faturamento"`
	Aliquota     decimal.Decimal `json:"aliquota"`
	PMR          int             `json:"pmr"`
	PMP          int             `json:"pmp"`
	PME          int             `json:"pme"`
	PercVista    decimal.Decimal `json:"percVista"`
	PercPrazo    decimal.Decimal `json:"percPrazo"`
	Margem       decimal.Decimal `json:"margem"`
	Creditos     decimal.Decimal `json:"creditos"`
	SplitPayment *bool           `json:"splitPayment"` // ausente = true

	AliquotaCBS     decimal.Decimal `json:"aliquotaCBS"`
	AliquotaIBS     decimal.Decimal `json:"aliquotaIBS"`
	CategoriaIVA    string          `json:"categoriaIVA"`
	ReducaoEspecial decimal.Decimal `json:"reducaoEspecial"`

	TaxaCapitalGiro decimal.Decimal `json:"taxaCapitalGiro"`
	TipoEmpresa     string          `json:"tipoEmpresa"`
}

// EmpresaDTO bloco "empresa" da forma aninhada.
type EmpresaDTO struct {
	Faturamento decimal.Decimal `json:"faturamento"`
	Margem      decimal.Decimal `json:"margem"`
	TipoEmpresa string          `json:"tipoEmpresa"`
}

// CicloFinanceiroDTO bloco "cicloFinanceiro" da forma aninhada.
type CicloFinanceiroDTO struct {
	PMR       int             `json:"pmr"`
	PMP       int             `json:"pmp"`
	PME       int             `json:"pme"`
	PercVista decimal.Decimal `json:"percVista"`
	PercPrazo decimal.Decimal `json:"percPrazo"`
}

// ParametrosFiscaisDTO bloco "parametrosFiscais" da forma aninhada.
type ParametrosFiscaisDTO struct {
	Aliquota        decimal.Decimal `json:"aliquota"`
	Creditos        decimal.Decimal `json:"creditos"`
	SplitPayment    *bool           `json:"splitPayment"`
	AliquotaCBS     decimal.Decimal `json:"aliquotaCBS"`
	AliquotaIBS     decimal.Decimal `json:"aliquotaIBS"`
	CategoriaIVA    string          `json:"categoriaIVA"`
	ReducaoEspecial decimal.Decimal `json:"reducaoEspecial"`
	TaxaCapitalGiro decimal.Decimal `json:"taxaCapitalGiro"`
}

// EntradaAninhadaDTO forma aninhada usada pelas telas de cadastro da interface.
type EntradaAninhadaDTO struct {
	Empresa           *EmpresaDTO           `json:"empresa"`
	CicloFinanceiro   *CicloFinanceiroDTO   `json:"cicloFinanceiro"`
	ParametrosFiscais *ParametrosFiscaisDTO `json:"parametrosFiscais"`
}

// Aplanar converte a forma aninhada para a plana.
func (n *EntradaAninhadaDTO) Aplanar() (*EntradaPlanaDTO, error) {
	if n == nil || n.Empresa == nil || n.CicloFinanceiro == nil || n.ParametrosFiscais == nil {
		return nil, fmt.Errorf("%w: blocos empresa, cicloFinanceiro e parametrosFiscais são obrigatórios", domain.ErrFormatoInvalido)
	}
	return &EntradaPlanaDTO{
		Faturamento:     n.Empresa.Faturamento,
		Margem:          n.Empresa.Margem,
		TipoEmpresa:     n.Empresa.TipoEmpresa,
		PMR:             n.CicloFinanceiro.PMR,
		PMP:             n.CicloFinanceiro.PMP,
		PME:             n.CicloFinanceiro.PME,
		PercVista:       n.CicloFinanceiro.PercVista,
		PercPrazo:       n.CicloFinanceiro.PercPrazo,
		Aliquota:        n.ParametrosFiscais.Aliquota,
		Creditos:        n.ParametrosFiscais.Creditos,
		SplitPayment:    n.ParametrosFiscais.SplitPayment,
		AliquotaCBS:     n.ParametrosFiscais.AliquotaCBS,
		AliquotaIBS:     n.ParametrosFiscais.AliquotaIBS,
		CategoriaIVA:    n.ParametrosFiscais.CategoriaIVA,
		ReducaoEspecial: n.ParametrosFiscais.ReducaoEspecial,
		TaxaCapitalGiro: n.ParametrosFiscais.TaxaCapitalGiro,
	}, nil
}

// ParaDominio converte o DTO plano na entrada de domínio (sem normalizar;
// Normalizar é responsabilidade do caso de uso).
func (d *EntradaPlanaDTO) ParaDominio() simulacao.EntradaSimulacao {
	split := true
	if d.SplitPayment != nil {
		split = *d.SplitPayment
	}
	return simulacao.EntradaSimulacao{
		Faturamento:     d.Faturamento,
		Aliquota:        d.Aliquota,
		PMR:             d.PMR,
		PMP:             d.PMP,
		PME:             d.PME,
		PercVista:       d.PercVista,
		PercPrazo:       d.PercPrazo,
		Margem:          d.Margem,
		Creditos:        d.Creditos,
		SplitPayment:    split,
		AliquotaCBS:     d.AliquotaCBS,
		AliquotaIBS:     d.AliquotaIBS,
		CategoriaIVA:    tributacao.CategoriaIVA(d.CategoriaIVA),
		ReducaoEspecial: d.ReducaoEspecial,
		TaxaCapitalGiro: d.TaxaCapitalGiro,
		TipoEmpresa:     tributacao.TipoEmpresa(d.TipoEmpresa),
	}
}

// SimularRequest corpo de POST /api/simulacoes. Exatamente uma das formas
// (plana em "dados" ou aninhada em "dadosAninhados") deve ser enviada;
// payloads ambíguos são rejeitados na borda.
type SimularRequest struct {
	Dados          *EntradaPlanaDTO    `json:"dados,omitempty"`
	DadosAninhados *EntradaAninhadaDTO `json:"dadosAninhados,omitempty"`

	AnoInicial      int             `json:"anoInicial"`
	AnoFinal        int             `json:"anoFinal"`
	AnoBase         int             `json:"anoBase"`
	Cenario         string          `json:"cenario"`
	TaxaCrescimento decimal.Decimal `json:"taxaCrescimento"` // cenário personalizado
}

// EntradaDominio resolve a forma enviada e devolve a entrada de domínio.
func (r *SimularRequest) EntradaDominio() (simulacao.EntradaSimulacao, error) {
	switch {
	case r.Dados != nil && r.DadosAninhados != nil:
		return simulacao.EntradaSimulacao{}, fmt.Errorf("%w: envie apenas uma das formas (dados ou dadosAninhados)", domain.ErrFormatoInvalido)
	case r.Dados != nil:
		return r.Dados.ParaDominio(), nil
	case r.DadosAninhados != nil:
		plana, err := r.DadosAninhados.Aplanar()
		if err != nil {
			return simulacao.EntradaSimulacao{}, err
		}
		return plana.ParaDominio(), nil
	default:
		return simulacao.EntradaSimulacao{}, fmt.Errorf("%w: corpo sem dados da simulação", domain.ErrFormatoInvalido)
	}
}
