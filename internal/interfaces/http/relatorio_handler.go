package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/splitfiscal/simulador-api/internal/application/dto"
	"github.com/splitfiscal/simulador-api/internal/application/simulador"
)

// RelatorioHandler serve as saídas de uma simulação persistida: relatório
// executivo em PDF e planilha CSV com os resultados anuais.
type RelatorioHandler struct {
	simulacoes *simulador.SimulacaoUseCase
	pdf        simulador.GeradorRelatorioPDF
	planilha   simulador.ExportadorPlanilha
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(simulacoes *simulador.SimulacaoUseCase, pdf simulador.GeradorRelatorioPDF, planilha simulador.ExportadorPlanilha) *RelatorioHandler {
	return &RelatorioHandler{simulacoes: simulacoes, pdf: pdf, planilha: planilha}
}

// RelatorioPDF gera o relatório de impacto em PDF.
// GET /api/simulacoes/:id/relatorio.pdf
func (h *RelatorioHandler) RelatorioPDF(c *fiber.Ctx) error {
	s, err := h.simulacoes.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	doc, err := h.pdf.GerarRelatorio(c.Context(), s)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: "falha ao gerar o relatório"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="simulacao-%s.pdf"`, s.ID))
	return c.Send(doc)
}

// ExportacaoCSV devolve a planilha com as linhas anuais da projeção.
// GET /api/simulacoes/:id/exportacao.csv
func (h *RelatorioHandler) ExportacaoCSV(c *fiber.Ctx) error {
	s, err := h.simulacoes.BuscarPorID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	out, err := h.planilha.Exportar(c.Context(), s)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "falha ao exportar a planilha"})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="simulacao-%s.csv"`, s.ID))
	return c.Send(out)
}
