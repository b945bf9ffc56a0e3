package estrategias

import (
	"math/bits"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// TamanhoMaximoCombinacao limite de estratégias por combinação avaliada.
const TamanhoMaximoCombinacao = 5

// EfetividadeAlvo efetividade mínima buscada na seleção da combinação.
var EfetividadeAlvo = decimal.NewFromInt(70)

// desconto linear por estratégia adicional na combinação: 1 − 0,05 × (n − 1).
var descontoPorEstrategia = decimal.NewFromFloat(0.05)

type combinacao struct {
	nomes       []string
	mitigacao   decimal.Decimal
	efetividade decimal.Decimal
	custo       decimal.Decimal
}

// IdentificarCombinacaoOtima enumera todos os subconjuntos não vazios (até
// TamanhoMaximoCombinacao) das estratégias válidas e seleciona, na fronteira de
// Pareto efetividade × custo, o subconjunto de menor custo com efetividade ≥
// alvo ou, na falta dele, o de melhor relação custo-benefício.
func IdentificarCombinacaoOtima(resultados map[string]*simulacao.ResultadoEstrategia, impacto *simulacao.ResultadoAnual) *simulacao.CombinacaoOtima {
	validos := make([]*simulacao.ResultadoEstrategia, 0, len(resultados))
	for _, nome := range []string{
		simulacao.EstrategiaAjustePrecos,
		simulacao.EstrategiaRenegociacaoPrazos,
		simulacao.EstrategiaAntecipacaoRecebiveis,
		simulacao.EstrategiaCapitalGiro,
		simulacao.EstrategiaMixProdutos,
		simulacao.EstrategiaMeiosPagamento,
	} {
		if r, ok := resultados[nome]; ok && r.Erro == "" && r.MitigacaoTotal.IsPositive() {
			validos = append(validos, r)
		}
	}
	if len(validos) == 0 {
		return nil
	}

	gap := gapBase(impacto)

	// enumeração por máscara de bits: com seis estratégias são no máximo 63
	// subconjuntos, dos quais só os de tamanho ≤ TamanhoMaximoCombinacao contam
	var combinacoes []combinacao
	for mascara := 1; mascara < 1<<len(validos); mascara++ {
		n := bits.OnesCount(uint(mascara))
		if n > TamanhoMaximoCombinacao {
			continue
		}

		var c combinacao
		for i, r := range validos {
			if mascara&(1<<i) == 0 {
				continue
			}
			c.nomes = append(c.nomes, r.Nome)
			c.mitigacao = c.mitigacao.Add(r.MitigacaoTotal)
			c.custo = c.custo.Add(r.CustoTotal)
		}

		desconto := umDecimal.Sub(descontoPorEstrategia.Mul(decimal.NewFromInt(int64(n - 1))))
		c.mitigacao = c.mitigacao.Mul(desconto)
		c.efetividade = efetividade(c.mitigacao, gap)
		if c.efetividade.GreaterThan(cemDecimal) {
			c.efetividade = cemDecimal
		}
		combinacoes = append(combinacoes, c)
	}

	frente := fronteiraPareto(combinacoes)

	// menor custo entre as que alcançam a efetividade alvo
	var escolhida *combinacao
	for i := range frente {
		c := &frente[i]
		if c.efetividade.LessThan(EfetividadeAlvo) {
			continue
		}
		if escolhida == nil || c.custo.LessThan(escolhida.custo) {
			escolhida = c
		}
	}

	// fallback: melhor relação custo-benefício da fronteira
	if escolhida == nil {
		for i := range frente {
			c := &frente[i]
			if !c.mitigacao.IsPositive() {
				continue
			}
			if escolhida == nil ||
				custoBeneficio(c.custo, c.mitigacao).LessThan(custoBeneficio(escolhida.custo, escolhida.mitigacao)) {
				escolhida = c
			}
		}
	}
	if escolhida == nil {
		return nil
	}

	sort.Strings(escolhida.nomes)
	return &simulacao.CombinacaoOtima{
		Estrategias:           escolhida.nomes,
		EfetividadePercentual: escolhida.efetividade,
		CustoTotal:            escolhida.custo,
		CustoBeneficio:        custoBeneficio(escolhida.custo, escolhida.mitigacao),
	}
}

// fronteiraPareto mantém as combinações não dominadas: nenhuma outra tem
// efetividade maior ou igual com custo menor ou igual (e vantagem estrita em
// pelo menos um dos eixos).
func fronteiraPareto(combinacoes []combinacao) []combinacao {
	var frente []combinacao
	for i, c := range combinacoes {
		dominada := false
		for j, outra := range combinacoes {
			if i == j {
				continue
			}
			melhorOuIgual := outra.efetividade.GreaterThanOrEqual(c.efetividade) &&
				outra.custo.LessThanOrEqual(c.custo)
			estrita := outra.efetividade.GreaterThan(c.efetividade) ||
				outra.custo.LessThan(c.custo)
			if melhorOuIgual && estrita {
				dominada = true
				break
			}
		}
		if !dominada {
			frente = append(frente, c)
		}
	}
	return frente
}
