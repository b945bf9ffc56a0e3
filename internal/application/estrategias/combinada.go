package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// Fatores de desconto por dimensão quando mais de uma estratégia é combinada:
// alavancas que mexem na mesma variável não somam efeito integral.
var (
	descontoPMR    = decimal.NewFromFloat(0.80)
	descontoPMP    = decimal.NewFromFloat(0.90)
	descontoMargem = decimal.NewFromFloat(0.85)
)

// dimensão afetada por cada estratégia; capitalGiro entra sem desconto por ser
// aporte externo, não alavanca operacional.
var dimensaoEstrategia = map[string]string{
	simulacao.EstrategiaAntecipacaoRecebiveis: "pmr",
	simulacao.EstrategiaMeiosPagamento:        "pmr",
	simulacao.EstrategiaRenegociacaoPrazos:    "pmp",
	simulacao.EstrategiaAjustePrecos:          "margem",
	simulacao.EstrategiaMixProdutos:           "margem",
}

var fatorDimensao = map[string]decimal.Decimal{
	"pmr":    descontoPMR,
	"pmp":    descontoPMP,
	"margem": descontoMargem,
}

// CalcularEfetividadeCombinada agrega o efeito das estratégias ativas e válidas
// com desconto de sobreposição por dimensão (PMR 0,8 / PMP 0,9 / margem 0,85) e
// recalcula PMR, PMP e margem resultantes. A efetividade nunca passa de 100%.
func CalcularEfetividadeCombinada(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigEstrategias, resultados map[string]*simulacao.ResultadoEstrategia, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoCombinado {
	ativos := make([]*simulacao.ResultadoEstrategia, 0, len(resultados))
	for _, nome := range []string{
		simulacao.EstrategiaAjustePrecos,
		simulacao.EstrategiaRenegociacaoPrazos,
		simulacao.EstrategiaAntecipacaoRecebiveis,
		simulacao.EstrategiaCapitalGiro,
		simulacao.EstrategiaMixProdutos,
		simulacao.EstrategiaMeiosPagamento,
	} {
		if r, ok := resultados[nome]; ok && r.Erro == "" {
			ativos = append(ativos, r)
		}
	}
	if len(ativos) == 0 {
		return &simulacao.ResultadoCombinado{
			PMRAjustado:    decimal.NewFromInt(int64(entrada.PMR)),
			PMPAjustado:    decimal.NewFromInt(int64(entrada.PMP)),
			MargemAjustada: entrada.Margem,
		}
	}

	// agrega mitigação por dimensão
	porDimensao := map[string]decimal.Decimal{}
	custoTotal := decimal.Zero
	nomes := make([]string, 0, len(ativos))
	for _, r := range ativos {
		dim := dimensaoEstrategia[r.Nome] // "" = sem desconto
		porDimensao[dim] = porDimensao[dim].Add(r.MitigacaoTotal)
		custoTotal = custoTotal.Add(r.CustoTotal)
		nomes = append(nomes, r.Nome)
	}

	mitigacaoTotal := decimal.Zero
	for dim, soma := range porDimensao {
		if fator, ok := fatorDimensao[dim]; ok && len(ativos) > 1 {
			soma = soma.Mul(fator)
		}
		mitigacaoTotal = mitigacaoTotal.Add(soma)
	}

	efet := efetividade(mitigacaoTotal, gapBase(impacto))
	if efet.GreaterThan(cemDecimal) {
		efet = cemDecimal
	}

	return &simulacao.ResultadoCombinado{
		Estrategias:           nomes,
		EfetividadePercentual: efet,
		MitigacaoTotal:        mitigacaoTotal,
		CustoTotal:            custoTotal,
		CustoBeneficio:        custoBeneficio(custoTotal, mitigacaoTotal),
		PMRAjustado:           pmrAjustado(entrada, cfg, resultados),
		PMPAjustado:           pmpAjustado(entrada, cfg, resultados),
		MargemAjustada:        margemAjustada(entrada, cfg, resultados),
	}
}

func ativo(resultados map[string]*simulacao.ResultadoEstrategia, nome string) bool {
	r, ok := resultados[nome]
	return ok && r.Erro == ""
}

// pmrAjustado PMR resultante das alavancas de recebimento.
func pmrAjustado(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigEstrategias, resultados map[string]*simulacao.ResultadoEstrategia) decimal.Decimal {
	pmr := decimal.NewFromInt(int64(entrada.PMR))

	if ativo(resultados, simulacao.EstrategiaMeiosPagamento) {
		deltaVista := simulacao.NormalizarFracao(cfg.MeiosPagamento.DistribuicaoNova.Vista).
			Sub(simulacao.NormalizarFracao(cfg.MeiosPagamento.DistribuicaoAtual.Vista))
		if deltaVista.IsPositive() {
			pmr = pmr.Sub(decimal.NewFromInt(int64(entrada.PMR)).Mul(deltaVista))
		}
	}
	if ativo(resultados, simulacao.EstrategiaAntecipacaoRecebiveis) {
		reducao := decimal.NewFromInt(int64(entrada.PMR)).
			Mul(simulacao.NormalizarFracao(cfg.AntecipacaoRecebiveis.PercentualAntecipacao)).
			Mul(entrada.PercPrazo)
		pmr = pmr.Sub(reducao)
	}

	if pmr.IsNegative() {
		return decimal.Zero
	}
	return pmr
}

// pmpAjustado PMP resultante da renegociação com fornecedores.
func pmpAjustado(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigEstrategias, resultados map[string]*simulacao.ResultadoEstrategia) decimal.Decimal {
	pmp := decimal.NewFromInt(int64(entrada.PMP))
	if ativo(resultados, simulacao.EstrategiaRenegociacaoPrazos) {
		extra := decimal.NewFromInt(int64(cfg.RenegociacaoPrazos.AumentoPrazo)).
			Mul(simulacao.NormalizarFracao(cfg.RenegociacaoPrazos.PercentualFornecedores))
		pmp = pmp.Add(extra)
	}
	return pmp
}

// margemAjustada margem resultante das alavancas de preço e mix.
func margemAjustada(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigEstrategias, resultados map[string]*simulacao.ResultadoEstrategia) decimal.Decimal {
	margem := entrada.Margem
	if ativo(resultados, simulacao.EstrategiaMixProdutos) {
		margem = margem.Add(simulacao.NormalizarFracao(cfg.MixProdutos.ImpactoMargem))
	}
	if ativo(resultados, simulacao.EstrategiaAjustePrecos) {
		aumento := simulacao.NormalizarFracao(cfg.AjustePrecos.PercentualAumento)
		margem = margem.Add(aumento.Mul(entrada.Margem))
	}
	return margem
}
