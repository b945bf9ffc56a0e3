package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/splitfiscal/simulador-api/internal/application/dto"
	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain"
)

// SimulacaoHandler trata as requisições HTTP do simulador.
type SimulacaoHandler struct {
	uc *simulador.SimulacaoUseCase
}

// NewSimulacaoHandler constrói o handler.
func NewSimulacaoHandler(uc *simulador.SimulacaoUseCase) *SimulacaoHandler {
	return &SimulacaoHandler{uc: uc}
}

// Criar executa uma simulação completa e devolve o resultado persistido.
// POST /api/simulacoes
func (h *SimulacaoHandler) Criar(c *fiber.Ctx) error {
	var req dto.SimularRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	entrada, err := req.EntradaDominio()
	if err != nil {
		return respostaErro(c, err)
	}
	s, err := h.uc.Simular(c.Context(), entrada, simulador.OpcoesSimulacao{
		AnoInicial:        req.AnoInicial,
		AnoFinal:          req.AnoFinal,
		AnoBase:           req.AnoBase,
		Cenario:           req.Cenario,
		TaxaPersonalizada: req.TaxaCrescimento,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// BuscarPorID recupera uma simulação já executada.
// GET /api/simulacoes/:id
func (h *SimulacaoHandler) BuscarPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	s, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(s)
}

// respostaErro mapeia os erros de domínio para o status HTTP e o envelope
// padrão. Erros de cálculo interno viram 500 sem vazar detalhes do motor.
func respostaErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrFormatoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: err.Error()})
	case errors.Is(err, domain.ErrAnoForaDoIntervalo):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "YEAR_OUT_OF_RANGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "simulação não encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno ao processar a simulação"})
	}
}
