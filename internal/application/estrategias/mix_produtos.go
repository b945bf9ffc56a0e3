package estrategias

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// atrito comercial estimado da realocação do mix (treinamento, reposicionamento).
var atritoMix = decimal.NewFromFloat(0.05)

// AvaliarMixProdutos estima o efeito de deslocar o mix para produtos de giro e
// margem mais favoráveis.
//
// Benefício = variação de receita × margem + ganho de margem × receita.
// Custo = atrito comercial sobre a fatia de receita realocada.
func AvaliarMixProdutos(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigMixProdutos, impacto *simulacao.ResultadoAnual) *simulacao.ResultadoEstrategia {
	nome := simulacao.EstrategiaMixProdutos

	percAjuste := simulacao.NormalizarFracao(cfg.PercentualAjuste)
	if !percAjuste.IsPositive() {
		return resultadoInvalido(nome, "percentual de ajuste do mix deve ser positivo")
	}

	impactoReceita := simulacao.NormalizarFracao(cfg.ImpactoReceita)
	impactoMargem := simulacao.NormalizarFracao(cfg.ImpactoMargem)

	fat := entrada.Faturamento
	mitigacaoMensal := fat.Mul(impactoReceita).Mul(entrada.Margem).Add(fat.Mul(impactoMargem))
	if mitigacaoMensal.IsNegative() {
		mitigacaoMensal = decimal.Zero
	}

	custoMensal := fat.Mul(percAjuste).Mul(atritoMix)

	return montarResultado(nome, mitigacaoMensal, custoMensal, gapBase(impacto))
}
