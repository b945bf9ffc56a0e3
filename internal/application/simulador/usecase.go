// Package simulador contém os casos de uso do motor de cálculo do Split
// Payment: fluxo de caixa por regime, análise de impacto anual, projeção
// temporal 2026–2033 e a montagem da memória de cálculo.
package simulador

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

// OpcoesSimulacao parâmetros da execução: horizonte, cenário e ano-base.
type OpcoesSimulacao struct {
	AnoInicial        int
	AnoFinal          int
	Cenario           string
	TaxaPersonalizada decimal.Decimal
	AnoBase           int // zero = AnoInicial
}

// SimulacaoUseCase executa a simulação completa e persiste o resultado.
type SimulacaoUseCase struct {
	analisador *AnalisadorImpacto
	repo       SimulacaoRepository
	log        *logger.Logger
}

// NewSimulacaoUseCase constrói o caso de uso.
func NewSimulacaoUseCase(analisador *AnalisadorImpacto, repo SimulacaoRepository, log *logger.Logger) *SimulacaoUseCase {
	return &SimulacaoUseCase{analisador: analisador, repo: repo, log: log}
}

// Simular roda impacto do ano-base + projeção temporal + memória de cálculo +
// linhas de exportação, e grava a execução no repositório.
//
// Erros de validação (horizonte fora de 2026–2033, cenário desconhecido) são
// propagados; falhas internas do motor degradam para o cálculo simplificado.
func (uc *SimulacaoUseCase) Simular(ctx context.Context, entrada simulacao.EntradaSimulacao, opcoes OpcoesSimulacao) (*simulacao.Simulacao, error) {
	if opcoes.AnoInicial == 0 {
		opcoes.AnoInicial = tributacao.AnoInicioTransicao
	}
	if opcoes.AnoFinal == 0 {
		opcoes.AnoFinal = tributacao.AnoFimTransicao
	}
	anoBase := opcoes.AnoBase
	if anoBase == 0 {
		anoBase = opcoes.AnoInicial
	}

	entrada = entrada.Normalizar()

	projecao, err := uc.analisador.CalcularProjecaoTemporal(entrada, opcoes.AnoInicial, opcoes.AnoFinal, opcoes.Cenario, opcoes.TaxaPersonalizada)
	if err != nil {
		return nil, err
	}

	impactoBase := uc.analisador.ImpactoOuFallback(entrada, anoBase)

	s := &simulacao.Simulacao{
		ID:          uuid.NewString(),
		CriadaEm:    time.Now().UTC(),
		Entrada:     entrada,
		ImpactoBase: impactoBase,
		Projecao:    projecao,
		Memoria:     MontarMemoriaCalculo(entrada, impactoBase),
		Exportacao:  MontarLinhasExportacao(projecao),
	}

	if err := uc.repo.Salvar(ctx, s); err != nil {
		return nil, fmt.Errorf("salvar simulação: %w", err)
	}

	uc.log.Info().Str("id", s.ID).Int("anoBase", anoBase).
		Str("cenario", projecao.Cenario).
		Msg("simulação concluída")

	return s, nil
}

// BuscarPorID recupera uma simulação persistida.
func (uc *SimulacaoUseCase) BuscarPorID(ctx context.Context, id string) (*simulacao.Simulacao, error) {
	return uc.repo.BuscarPorID(ctx, id)
}
