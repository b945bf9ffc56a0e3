package estrategias

import (
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

// AvaliacaoEstrategias resultado consolidado da avaliação: cada estratégia
// ativa, o efeito combinado e a combinação ótima encontrada.
type AvaliacaoEstrategias struct {
	Resultados map[string]*simulacao.ResultadoEstrategia `json:"resultados"`
	Combinado  *simulacao.ResultadoCombinado             `json:"efeitoCombinado"`
	Otima      *simulacao.CombinacaoOtima                `json:"combinacaoOtima"`
}

// EstrategiaUseCase avalia as estratégias de mitigação contra um impacto-base.
type EstrategiaUseCase struct {
	log *logger.Logger
}

// NewEstrategiaUseCase constrói o caso de uso.
func NewEstrategiaUseCase(log *logger.Logger) *EstrategiaUseCase {
	return &EstrategiaUseCase{log: log}
}

// Avaliar roda os avaliadores das estratégias marcadas como ativas, o efeito
// combinado e a busca da combinação ótima. Configuração inválida de uma
// estratégia não interrompe a avaliação das demais.
func (uc *EstrategiaUseCase) Avaliar(entrada simulacao.EntradaSimulacao, cfg simulacao.ConfigEstrategias, impacto *simulacao.ResultadoAnual) *AvaliacaoEstrategias {
	entrada = entrada.Normalizar()

	resultados := make(map[string]*simulacao.ResultadoEstrategia)

	if cfg.AjustePrecos.Ativar {
		resultados[simulacao.EstrategiaAjustePrecos] = AvaliarAjustePrecos(entrada, cfg.AjustePrecos, impacto)
	}
	if cfg.RenegociacaoPrazos.Ativar {
		resultados[simulacao.EstrategiaRenegociacaoPrazos] = AvaliarRenegociacaoPrazos(entrada, cfg.RenegociacaoPrazos, impacto)
	}
	if cfg.AntecipacaoRecebiveis.Ativar {
		resultados[simulacao.EstrategiaAntecipacaoRecebiveis] = AvaliarAntecipacaoRecebiveis(entrada, cfg.AntecipacaoRecebiveis, impacto)
	}
	if cfg.CapitalGiro.Ativar {
		resultados[simulacao.EstrategiaCapitalGiro] = AvaliarCapitalGiro(entrada, cfg.CapitalGiro, impacto)
	}
	if cfg.MixProdutos.Ativar {
		resultados[simulacao.EstrategiaMixProdutos] = AvaliarMixProdutos(entrada, cfg.MixProdutos, impacto)
	}
	if cfg.MeiosPagamento.Ativar {
		resultados[simulacao.EstrategiaMeiosPagamento] = AvaliarMeiosPagamento(entrada, cfg.MeiosPagamento, impacto)
	}

	for nome, r := range resultados {
		if r.Erro != "" {
			uc.log.Warn().Str("estrategia", nome).Str("motivo", r.Erro).
				Msg("estratégia com configuração inválida")
		}
	}

	return &AvaliacaoEstrategias{
		Resultados: resultados,
		Combinado:  CalcularEfetividadeCombinada(entrada, cfg, resultados, impacto),
		Otima:      IdentificarCombinacaoOtima(resultados, impacto),
	}
}
