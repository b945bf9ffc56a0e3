package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// parcela estimada do custo operacional paga a fornecedores renegociáveis.
var parcelaFornecedores = decimal.NewFromFloat(0.70)

// AvaliarRenegociacaoPrazos estima o alívio de caixa de alongar o prazo de
// pagamento a fornecedores.
//
// Pagamentos mensais ≈ 70% de (faturamento × (1 − margem)). O benefício é o
// pagamento diário retido pelos dias adicionais, na fração de fornecedores que
// aceita, líquido das contrapartidas concedidas.
func AvaliarRenegociacaoPrazos(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigRenegociacaoPrazos, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaRenegociacaoPrazos

	if cfg.AumentoPrazo <= 0 {
		return resultadoInvalido(nome, "aumento de prazo deve ser positivo (dias)")
	}
	percFornecedores := simulacao.NormalizarFracao(cfg.PercentualFornecedores)
	if !percFornecedores.IsPositive() {
		return resultadoInvalido(nome, "percentual de fornecedores deve ser positivo")
	}
	contrapartida := simulacao.NormalizarFracao(cfg.Contrapartidas)

	pagamentosMensais := entrada.Faturamento.Mul(umDecimal.Sub(entrada.Margem)).Mul(parcelaFornecedores)
	pagamentoDiario := pagamentosMensais.Div(trintaDecimal)

	dias := decimal.NewFromInt(int64(cfg.AumentoPrazo))
	mitigacaoMensal := pagamentoDiario.Mul(dias).Mul(percFornecedores).Mul(umDecimal.Sub(contrapartida))
	custoMensal := pagamentosMensais.Mul(percFornecedores).Mul(contrapartida)

	return montarResultado(nome, mitigacaoMensal, custoMensal, gapBase(impacto))
}
