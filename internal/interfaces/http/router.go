package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splitfiscal/simulador-api/internal/application/estrategias"
	"github.com/splitfiscal/simulador-api/internal/application/simulador"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	SimulacaoUC  *simulador.SimulacaoUseCase
	EstrategiaUC *estrategias.EstrategiaUseCase
	Analisador   *simulador.AnalisadorImpacto
	RelatorioPDF simulador.GeradorRelatorioPDF
	Exportador   simulador.ExportadorPlanilha
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	simulacoes := api.Group("/simulacoes")
	simulacaoHandler := NewSimulacaoHandler(deps.SimulacaoUC)
	estrategiaHandler := NewEstrategiaHandler(deps.SimulacaoUC, deps.Analisador, deps.EstrategiaUC)
	relatorioHandler := NewRelatorioHandler(deps.SimulacaoUC, deps.RelatorioPDF, deps.Exportador)

	simulacoes.Post("/", simulacaoHandler.Criar)
	simulacoes.Post("/estrategias", estrategiaHandler.Avaliar)
	simulacoes.Get("/:id", simulacaoHandler.BuscarPorID)
	simulacoes.Get("/:id/relatorio.pdf", relatorioHandler.RelatorioPDF)
	simulacoes.Get("/:id/exportacao.csv", relatorioHandler.ExportacaoCSV)
}
