package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splitfiscal/simulador-api/internal/application/dto"
	"github.com/splitfiscal/simulador-api/internal/application/estrategias"
	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

// EstrategiaHandler avalia estratégias de mitigação sobre uma simulação
// persistida ou sobre dados enviados no próprio corpo.
type EstrategiaHandler struct {
	simulacoes *simulador.SimulacaoUseCase
	analisador *simulador.AnalisadorImpacto
	uc         *estrategias.EstrategiaUseCase
}

// NewEstrategiaHandler constrói o handler.
func NewEstrategiaHandler(simulacoes *simulador.SimulacaoUseCase, analisador *simulador.AnalisadorImpacto, uc *estrategias.EstrategiaUseCase) *EstrategiaHandler {
	return &EstrategiaHandler{simulacoes: simulacoes, analisador: analisador, uc: uc}
}

// Avaliar calcula mitigação, custo e efetividade de cada estratégia ativa,
// a combinação informada e a combinação ótima.
// POST /api/simulacoes/estrategias
func (h *EstrategiaHandler) Avaliar(c *fiber.Ctx) error {
	var req dto.EstrategiasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	entrada, impacto, err := h.resolverBase(c, &req)
	if err != nil {
		return respostaErro(c, err)
	}

	avaliacao := h.uc.Avaliar(entrada, req.Estrategias, impacto)
	return c.JSON(avaliacao)
}

// resolverBase obtém a entrada e o impacto-base: da simulação persistida
// quando simulacaoId é enviado, senão recalculando a partir do corpo.
func (h *EstrategiaHandler) resolverBase(c *fiber.Ctx, req *dto.EstrategiasRequest) (simulacao.EntradaSimulacao, *simulacao.ResultadoAnual, error) {
	ano := req.Ano
	if ano == 0 {
		ano = tributacao.AnoInicioTransicao
	}

	if req.SimulacaoID != "" {
		s, err := h.simulacoes.BuscarPorID(c.Context(), req.SimulacaoID)
		if err != nil {
			return simulacao.EntradaSimulacao{}, nil, err
		}
		// entrada persistida já está normalizada
		if req.Ano != 0 && (s.ImpactoBase == nil || s.ImpactoBase.Ano != req.Ano) {
			return s.Entrada, h.analisador.ImpactoOuFallback(s.Entrada, req.Ano), nil
		}
		return s.Entrada, s.ImpactoBase, nil
	}

	entrada, err := req.EntradaDominio()
	if err != nil {
		return simulacao.EntradaSimulacao{}, nil, err
	}
	entrada = entrada.Normalizar()
	return entrada, h.analisador.ImpactoOuFallback(entrada, ano), nil
}
