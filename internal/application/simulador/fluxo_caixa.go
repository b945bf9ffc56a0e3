package simulador

import (
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

var (
	umDecimal   = decimal.NewFromInt(1)
	cemDecimal  = decimal.NewFromInt(100)
	dozeDecimal = decimal.NewFromInt(12)
)

// PrazoRecolhimentoDias prazo legal de recolhimento do imposto apurado, em dias
// após a competência.
const PrazoRecolhimentoDias = 25

// CalcularTempoMedioCapitalGiro dias médios em que o valor do imposto permanece
// no caixa da empresa antes do recolhimento, ponderado pela distribuição
// vista/prazo das vendas.
//
// Venda à vista: o dinheiro entra no ato e sai no recolhimento (prazo cheio).
// Venda a prazo: entra no PMR, então o float é (prazoRecolhimento - PMR) e pode
// ser negativo quando o recebimento ocorre depois do recolhimento.
func CalcularTempoMedioCapitalGiro(pmr int, prazoRecolhimento int, percVista, percPrazo decimal.Decimal) decimal.Decimal {
	prazo := decimal.NewFromInt(int64(prazoRecolhimento))
	floatPrazo := prazo.Sub(decimal.NewFromInt(int64(pmr)))
	return percVista.Mul(prazo).Add(percPrazo.Mul(floatPrazo))
}

// CalcularFluxoCaixaAtual capital de giro disponível no sistema tributário
// vigente: faturamento menos a carga tributária líquida do mês.
func CalcularFluxoCaixaAtual(entrada simulacao.EntradaSimulacao, provedor ProvedorSistemaTributario) simulacao.ResultadoRegime {
	impostos := provedor.ImpostosAtuais(entrada.Faturamento, entrada.Aliquota, entrada.Creditos, entrada.ParametrosSetoriais())

	return simulacao.ResultadoRegime{
		CapitalGiroDisponivel: entrada.Faturamento.Sub(impostos.Total),
		Impostos:              impostos,
		ValorImpostoTotal:     impostos.Total,
		TempoMedioCapitalGiro: CalcularTempoMedioCapitalGiro(entrada.PMR, PrazoRecolhimentoDias, entrada.PercVista, entrada.PercPrazo),
	}
}

// CalcularFluxoCaixaSplitPayment decompõe o imposto líquido do mês entre a
// parcela retida na liquidação (split) e a parcela recolhida pelo regime normal,
// conforme o percentual de implementação do ano.
//
// O capital disponível aqui é o float tributário que permanece com a empresa:
// com o split parcialmente ativo, apenas a parcela não retida; sem implementação
// alguma, o imposto líquido inteiro.
func CalcularFluxoCaixaSplitPayment(entrada simulacao.EntradaSimulacao, ano int, provedor ProvedorSistemaTributario) simulacao.ResultadoRegime {
	p := provedor.PercentualImplementacao(ano, entrada.ParametrosSetoriais())
	if !p.IsPositive() {
		// ano sem implementação: degenera no regime sem retenção
		return CalcularFluxoCaixaSemSplit(entrada)
	}

	liquido := entrada.ImpostoLiquido()
	valorSplit := liquido.Mul(p)
	valorNormal := liquido.Sub(valorSplit)

	return simulacao.ResultadoRegime{
		CapitalGiroDisponivel:   valorNormal,
		ValorImpostoTotal:       liquido,
		ValorImpostoSplit:       valorSplit,
		ValorImpostoNormal:      valorNormal,
		PercentualImplementacao: p,
		TempoMedioCapitalGiro:   CalcularTempoMedioCapitalGiro(entrada.PMR, PrazoRecolhimentoDias, entrada.PercVista, entrada.PercPrazo),
	}
}

// CalcularFluxoCaixaSemSplit float tributário sem retenção: o imposto líquido
// permanece integralmente no caixa até o recolhimento. É o caso degenerado de
// CalcularFluxoCaixaSplitPayment quando o percentual de implementação é zero.
func CalcularFluxoCaixaSemSplit(entrada simulacao.EntradaSimulacao) simulacao.ResultadoRegime {
	liquido := entrada.ImpostoLiquido()
	return simulacao.ResultadoRegime{
		CapitalGiroDisponivel: liquido,
		ValorImpostoTotal:     liquido,
		ValorImpostoNormal:    liquido,
		TempoMedioCapitalGiro: CalcularTempoMedioCapitalGiro(entrada.PMR, PrazoRecolhimentoDias, entrada.PercVista, entrada.PercPrazo),
	}
}
