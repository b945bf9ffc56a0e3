package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
	"github.com/splitfiscal/simulador-api/internal/infrastructure/memoria"
	"github.com/splitfiscal/simulador-api/internal/infrastructure/pdf"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

func simulacaoCompleta(t *testing.T) *simulacao.Simulacao {
	t.Helper()

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	analisador := simulador.NewAnalisadorImpacto(tributacao.NewSistemaAtual(), log)
	uc := simulador.NewSimulacaoUseCase(analisador, memoria.NewSimulacaoRepository(), log)

	entrada := simulacao.EntradaSimulacao{
		Faturamento:  decimal.NewFromInt(1_000_000),
		Aliquota:     decimal.NewFromFloat(0.265),
		PMR:          30,
		PMP:          30,
		PME:          30,
		PercVista:    decimal.NewFromFloat(0.30),
		PercPrazo:    decimal.NewFromFloat(0.70),
		Margem:       decimal.NewFromFloat(0.25),
		SplitPayment: true,
	}

	s, err := uc.Simular(context.Background(), entrada, simulador.OpcoesSimulacao{})
	require.NoError(t, err, "a simulação de referência deve executar sem erro")
	return s
}

func TestGerarRelatorioProduzPDF(t *testing.T) {
	gerador := pdf.NewMarotoRelatorioGenerator()

	doc, err := gerador.GerarRelatorio(context.Background(), simulacaoCompleta(t))

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	require.Equal(t, "%PDF", string(doc[:4]), "o documento deve começar com a assinatura PDF")
}
