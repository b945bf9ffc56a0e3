package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// desvio aceito em |vista + prazo − 1| após normalização.
var toleranciaSoma = decimal.NewFromFloat(0.01)

func distribuicaoValida(d simulacao.DistribuicaoPagamento) (simulacao.DistribuicaoPagamento, bool) {
	d.Vista = simulacao.NormalizarFracao(d.Vista)
	d.Prazo = simulacao.NormalizarFracao(d.Prazo)
	soma := d.Vista.Add(d.Prazo)
	return d, soma.Sub(umDecimal).Abs().LessThanOrEqual(toleranciaSoma)
}

// AvaliarMeiosPagamento estima o efeito de migrar vendas a prazo para à vista
// via incentivo financeiro.
//
// Benefício = dias de PMR reduzidos × receita diária − custo do incentivo
// concedido sobre as vendas à vista da nova distribuição.
func AvaliarMeiosPagamento(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigMeiosPagamento, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaMeiosPagamento

	atual, okAtual := distribuicaoValida(cfg.DistribuicaoAtual)
	nova, okNova := distribuicaoValida(cfg.DistribuicaoNova)
	if !okAtual || !okNova {
		return resultadoInvalido(nome, "distribuição de pagamento deve somar 100%")
	}

	deltaVista := nova.Vista.Sub(atual.Vista)
	if !deltaVista.IsPositive() {
		return resultadoInvalido(nome, "a nova distribuição deve aumentar as vendas à vista")
	}

	taxaIncentivo := simulacao.NormalizarFracao(cfg.TaxaIncentivo)

	diasReduzidos := decimal.NewFromInt(int64(entrada.PMR)).Mul(deltaVista)
	receitaDiaria := entrada.Faturamento.Div(trintaDecimal)

	custoMensal := entrada.Faturamento.Mul(nova.Vista).Mul(taxaIncentivo)
	mitigacaoMensal := diasReduzidos.Mul(receitaDiaria).Sub(custoMensal)
	if mitigacaoMensal.IsNegative() {
		mitigacaoMensal = decimal.Zero
	}

	return montarResultado(nome, mitigacaoMensal, custoMensal, gapBase(impacto))
}
