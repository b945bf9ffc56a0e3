package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// AvaliarAntecipacaoRecebiveis estima o efeito de antecipar uma fração das
// vendas a prazo a uma taxa de desconto mensal.
//
// Custo do desconto proporcional ao prazo antecipado (PMR/30 meses);
// benefício líquido = valor antecipado − custo.
func AvaliarAntecipacaoRecebiveis(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigAntecipacaoRecebiveis, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaAntecipacaoRecebiveis

	percAntecipacao := simulacao.NormalizarFracao(cfg.PercentualAntecipacao)
	if !percAntecipacao.IsPositive() {
		return resultadoInvalido(nome, "percentual de antecipação deve ser positivo")
	}
	taxaDesconto := simulacao.NormalizarFracao(cfg.TaxaDesconto)
	if !taxaDesconto.IsPositive() {
		return resultadoInvalido(nome, "taxa de desconto deve ser positiva")
	}

	valorPrazo := entrada.Faturamento.Mul(entrada.PercPrazo)
	valorAntecipado := valorPrazo.Mul(percAntecipacao)

	mesesAntecipados := decimal.NewFromInt(int64(entrada.PMR)).Div(trintaDecimal)
	custoMensal := valorAntecipado.Mul(taxaDesconto).Mul(mesesAntecipados)
	mitigacaoMensal := valorAntecipado.Sub(custoMensal)
	if mitigacaoMensal.IsNegative() {
		mitigacaoMensal = decimal.Zero
	}

	return montarResultado(nome, mitigacaoMensal, custoMensal, gapBase(impacto))
}
