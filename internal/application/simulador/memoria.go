package simulador

import (
	"fmt"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
	"github.com/splitfiscal/simulador-api/pkg/moeda"
)

// MontarMemoriaCalculo produz a trilha de auditoria legível da simulação:
// fórmula aplicada, passos numéricos do ano-base e observações sobre o regime.
func MontarMemoriaCalculo(entrada simulacao.EntradaSimulacao, impacto *simulacao.ResultadoAnual) simulacao.MemoriaCalculo {
	mem := simulacao.MemoriaCalculo{
		Formula: "Capital Retido = (Faturamento × Alíquota − Créditos) × % Implementação do Ano",
	}
	if impacto == nil {
		return mem
	}

	liquido := entrada.ImpostoLiquido()

	mem.Passos = append(mem.Passos,
		fmt.Sprintf("1. Faturamento mensal: %s", moeda.FormatarMoeda(entrada.Faturamento)),
		fmt.Sprintf("2. Alíquota efetiva: %s", moeda.FormatarPercentual(entrada.Aliquota)),
		fmt.Sprintf("3. Imposto líquido (após créditos de %s): %s",
			moeda.FormatarMoeda(entrada.Creditos), moeda.FormatarMoeda(liquido)),
		fmt.Sprintf("4. Percentual de implementação em %d: %s",
			impacto.Ano, moeda.FormatarPercentual(impacto.IVAComSplit.PercentualImplementacao)),
		fmt.Sprintf("5. Valor retido via Split Payment: %s",
			moeda.FormatarMoeda(impacto.IVAComSplit.ValorImpostoSplit)),
		fmt.Sprintf("6. Diferença de capital de giro: %s",
			moeda.FormatarMoeda(impacto.DiferencaCapitalGiro)),
		fmt.Sprintf("7. Necessidade adicional (gap × 1,2): %s",
			moeda.FormatarMoeda(impacto.NecessidadeAdicionalCapitalGiro)),
		fmt.Sprintf("8. Custo mensal do capital (%s a.m.): %s",
			moeda.FormatarPercentual(entrada.TaxaCapitalGiro),
			moeda.FormatarMoeda(impacto.Margem.CustoMensalCapitalGiro)),
	)

	if entrada.CategoriaIVA == tributacao.CategoriaReduzida {
		mem.Observacoes = append(mem.Observacoes,
			"Setor com alíquota reduzida (50% da alíquota padrão do IVA Dual).")
	}
	if entrada.CategoriaIVA == tributacao.CategoriaIsenta {
		mem.Observacoes = append(mem.Observacoes,
			"Setor isento: CBS e IBS zerados; impacto decorre apenas dos tributos remanescentes.")
	}
	if entrada.ReducaoEspecial.IsPositive() {
		mem.Observacoes = append(mem.Observacoes,
			fmt.Sprintf("Redução setorial adicional do IBS: %s.", moeda.FormatarPercentual(entrada.ReducaoEspecial)))
	}
	if !entrada.SplitPayment {
		mem.Observacoes = append(mem.Observacoes,
			"Split Payment desativado: o resultado com retenção equivale ao IVA sem split.")
	}
	if impacto.Simplificado {
		mem.Observacoes = append(mem.Observacoes,
			"Resultado obtido pelo cálculo simplificado (fallback de passada única).")
	}

	return mem
}
