package simulador

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
)

// ProvedorSistemaTributario capacidade mínima que o motor exige do cálculo do
// sistema tributário vigente: carga atual por tributo e avanço do cronograma.
// Implementado por tributacao.SistemaAtual; injetado para permitir cronogramas
// e composições alternativas em teste.
type ProvedorSistemaTributario interface {
	PercentualImplementacao(ano int, params *tributacao.ParametrosSetoriais) decimal.Decimal
	ImpostosAtuais(base, aliquota, creditos decimal.Decimal, params *tributacao.ParametrosSetoriais) tributacao.DetalhamentoImpostos
}

// SimulacaoRepository persiste execuções do simulador.
type SimulacaoRepository interface {
	Salvar(ctx context.Context, s *simulacao.Simulacao) error
	BuscarPorID(ctx context.Context, id string) (*simulacao.Simulacao, error)
}

// GeradorRelatorioPDF gera o relatório em PDF de uma simulação.
type GeradorRelatorioPDF interface {
	GerarRelatorio(ctx context.Context, s *simulacao.Simulacao) ([]byte, error)
}

// ExportadorPlanilha serializa o resumo anual para planilha (CSV).
type ExportadorPlanilha interface {
	Exportar(ctx context.Context, s *simulacao.Simulacao) ([]byte, error)
}
