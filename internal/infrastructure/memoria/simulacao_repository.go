// Package memoria guarda simulações em memória quando não há banco configurado.
// Escrita única por simulação, múltiplas leituras; os dados não sobrevivem a
// um restart do processo.
package memoria

import (
	"context"
	"sync"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

var _ simulador.SimulacaoRepository = (*SimulacaoRepo)(nil)

// SimulacaoRepo repositório em memória, seguro para acesso concorrente.
type SimulacaoRepo struct {
	mu    sync.RWMutex
	porID map[string]*simulacao.Simulacao
}

// NewSimulacaoRepository constrói o repositório.
func NewSimulacaoRepository() *SimulacaoRepo {
	return &SimulacaoRepo{porID: make(map[string]*simulacao.Simulacao)}
}

// Salvar guarda a simulação.
func (r *SimulacaoRepo) Salvar(_ context.Context, s *simulacao.Simulacao) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.porID[s.ID] = s
	return nil
}

// BuscarPorID devolve a simulação ou domain.ErrNotFound.
func (r *SimulacaoRepo) BuscarPorID(_ context.Context, id string) (*simulacao.Simulacao, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.porID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
