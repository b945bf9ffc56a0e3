package dto

import (
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

// EstrategiasRequest corpo de POST /api/simulacoes/estrategias.
//
// A linha de base pode vir de uma simulação persistida (simulacaoId) ou ser
// calculada na hora a partir dos dados enviados e do ano informado.
type EstrategiasRequest struct {
	SimulacaoID string `json:"simulacaoId,omitempty"`

	Dados          *EntradaPlanaDTO    `json:"dados,omitempty"`
	DadosAninhados *EntradaAninhadaDTO `json:"dadosAninhados,omitempty"`
	Ano            int                 `json:"ano"`

	Estrategias simulacao.ConfigEstrategias `json:"estrategias"`
}

// EntradaDominio resolve a forma enviada (quando não há simulacaoId).
func (r *EstrategiasRequest) EntradaDominio() (simulacao.EntradaSimulacao, error) {
	req := SimularRequest{Dados: r.Dados, DadosAninhados: r.DadosAninhados}
	return req.EntradaDominio()
}
