package simulador

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

// fatorSeguranca margem aplicada sobre o gap para dimensionar a necessidade
// adicional de capital de giro.
var fatorSeguranca = decimal.NewFromFloat(1.2)

// AnalisadorImpacto orquestra as três simulações paralelas (sistema atual,
// IVA sem split, IVA com split) e deriva as métricas diferenciais de um ano.
type AnalisadorImpacto struct {
	provedor ProvedorSistemaTributario
	log      *logger.Logger
}

// NewAnalisadorImpacto constrói o analisador.
func NewAnalisadorImpacto(provedor ProvedorSistemaTributario, log *logger.Logger) *AnalisadorImpacto {
	return &AnalisadorImpacto{provedor: provedor, log: log}
}

// CalcularImpactoCapitalGiro calcula o impacto do Split Payment no capital de
// giro para um ano da transição. Puro e idempotente: entradas idênticas
// produzem resultados idênticos.
//
// Falhas internas retornam *domain.ErroCalculo; o chamador decide se usa o
// resultado simplificado de CalcularImpactoSimplificado ou propaga.
func (a *AnalisadorImpacto) CalcularImpactoCapitalGiro(entrada simulacao.EntradaSimulacao, ano int) (res *simulacao.ResultadoAnual, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &domain.ErroCalculo{Etapa: "impacto-base", Ano: ano, Err: fmt.Errorf("%v", r)}
		}
	}()

	entrada = entrada.Normalizar()

	// 1. Regime atual
	atual := CalcularFluxoCaixaAtual(entrada, a.provedor)

	// 2. Carga tributária do ano de transição, semeada pelos impostos atuais
	impostosIVA := tributacao.CalcularTransicaoIVADual(entrada.Faturamento, ano, atual.Impostos, &tributacao.OpcoesTransicao{
		AliquotaCBS:     entrada.AliquotaCBS,
		AliquotaIBS:     entrada.AliquotaIBS,
		CreditosCBS:     entrada.Creditos,
		Categoria:       entrada.CategoriaIVA,
		ReducaoEspecial: entrada.ReducaoEspecial,
	})

	// 3. IVA sem split: só a composição dos tributos muda; o capital disponível
	// é o mesmo do regime atual. O que altera o timing de caixa é a retenção,
	// não a reforma em si.
	semSplit := atual
	semSplit.Impostos = impostosIVA
	semSplit.ValorImpostoTotal = impostosIVA.Total

	// 4. IVA com split: retenção sobre a fração implementada do ano
	comSplit := semSplit
	if entrada.SplitPayment {
		fluxoSplit := CalcularFluxoCaixaSplitPayment(entrada, ano, a.provedor)
		comSplit.CapitalGiroDisponivel = atual.CapitalGiroDisponivel.
			Sub(atual.ValorImpostoTotal.Mul(fluxoSplit.PercentualImplementacao))
		comSplit.ValorImpostoSplit = fluxoSplit.ValorImpostoSplit
		comSplit.ValorImpostoNormal = fluxoSplit.ValorImpostoNormal
		comSplit.PercentualImplementacao = fluxoSplit.PercentualImplementacao
	}

	// 5. Métricas diferenciais
	diferenca := comSplit.CapitalGiroDisponivel.Sub(atual.CapitalGiroDisponivel)
	diferencaSem := semSplit.CapitalGiroDisponivel.Sub(atual.CapitalGiroDisponivel)

	percentualImpacto := decimal.Zero
	if !atual.CapitalGiroDisponivel.IsZero() {
		percentualImpacto = diferenca.Div(atual.CapitalGiroDisponivel).Mul(cemDecimal)
	}

	necessidade := diferenca.Abs().Mul(fatorSeguranca)

	// 6. Erosão da margem operacional
	custoMensal := diferenca.Abs().Mul(entrada.TaxaCapitalGiro)
	impactoPercentual := decimal.Zero
	if entrada.Faturamento.IsPositive() {
		impactoPercentual = custoMensal.Div(entrada.Faturamento).Mul(cemDecimal)
	}
	margemAjustada := entrada.Margem.Sub(impactoPercentual.Div(cemDecimal))
	if margemAjustada.IsNegative() {
		margemAjustada = decimal.Zero
	}

	return &simulacao.ResultadoAnual{
		Ano:                             ano,
		Atual:                           atual,
		IVASemSplit:                     semSplit,
		IVAComSplit:                     comSplit,
		DiferencaCapitalGiro:            diferenca,
		DiferencaCapitalGiroSemSplit:    diferencaSem,
		PercentualImpacto:               percentualImpacto,
		NecessidadeAdicionalCapitalGiro: necessidade,
		Margem: simulacao.ImpactoMargem{
			CustoMensalCapitalGiro: custoMensal,
			ImpactoPercentual:      impactoPercentual,
			MargemOriginal:         entrada.Margem,
			MargemAjustada:         margemAjustada,
		},
	}, nil
}

// CalcularImpactoSimplificado estimativa de passada única usada como fallback:
// considera apenas o imposto bruto retido na fração implementada do ano.
func (a *AnalisadorImpacto) CalcularImpactoSimplificado(entrada simulacao.EntradaSimulacao, ano int) *simulacao.ResultadoAnual {
	entrada = entrada.Normalizar()

	p := a.provedor.PercentualImplementacao(ano, entrada.ParametrosSetoriais())
	impostoBruto := entrada.Faturamento.Mul(entrada.Aliquota)
	retido := impostoBruto.Mul(p)

	capitalAtual := entrada.Faturamento.Sub(impostoBruto)
	diferenca := retido.Neg()

	percentualImpacto := decimal.Zero
	if !capitalAtual.IsZero() {
		percentualImpacto = diferenca.Div(capitalAtual).Mul(cemDecimal)
	}

	return &simulacao.ResultadoAnual{
		Ano: ano,
		Atual: simulacao.ResultadoRegime{
			CapitalGiroDisponivel: capitalAtual,
			ValorImpostoTotal:     impostoBruto,
		},
		IVASemSplit: simulacao.ResultadoRegime{
			CapitalGiroDisponivel: capitalAtual,
			ValorImpostoTotal:     impostoBruto,
		},
		IVAComSplit: simulacao.ResultadoRegime{
			CapitalGiroDisponivel:   capitalAtual.Sub(retido),
			ValorImpostoTotal:       impostoBruto,
			ValorImpostoSplit:       retido,
			ValorImpostoNormal:      impostoBruto.Sub(retido),
			PercentualImplementacao: p,
		},
		DiferencaCapitalGiro:            diferenca,
		PercentualImpacto:               percentualImpacto,
		NecessidadeAdicionalCapitalGiro: diferenca.Abs().Mul(fatorSeguranca),
		Margem: simulacao.ImpactoMargem{
			CustoMensalCapitalGiro: diferenca.Abs().Mul(entrada.TaxaCapitalGiro),
			MargemOriginal:         entrada.Margem,
			MargemAjustada:         entrada.Margem,
		},
		Simplificado: true,
	}
}

// ImpactoOuFallback devolve o impacto completo ou, em caso de falha, o
// simplificado, registrando o erro. Nunca propaga exceção ao chamador.
func (a *AnalisadorImpacto) ImpactoOuFallback(entrada simulacao.EntradaSimulacao, ano int) *simulacao.ResultadoAnual {
	res, err := a.CalcularImpactoCapitalGiro(entrada, ano)
	if err != nil {
		a.log.Error().Err(err).Int("ano", ano).
			Msg("impacto completo falhou, usando cálculo simplificado")
		return a.CalcularImpactoSimplificado(entrada, ano)
	}
	return res
}
