package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

var _ simulador.SimulacaoRepository = (*SimulacaoRepo)(nil)

// SimulacaoRepo persiste execuções do simulador na tabela simulacoes.
// Entrada e resultado vão como JSONB; colunas escalares ficam disponíveis para
// consultas e relatórios agregados.
//
// Schema esperado:
//
//	CREATE TABLE simulacoes (
//	    id          UUID PRIMARY KEY,
//	    criada_em   TIMESTAMPTZ NOT NULL,
//	    faturamento NUMERIC(18,2) NOT NULL,
//	    ano_inicial INT NOT NULL,
//	    ano_final   INT NOT NULL,
//	    cenario     TEXT NOT NULL,
//	    payload     JSONB NOT NULL
//	);
type SimulacaoRepo struct {
	pool *pgxpool.Pool
}

// NewSimulacaoRepository constrói o adaptador.
func NewSimulacaoRepository(pool *pgxpool.Pool) *SimulacaoRepo {
	return &SimulacaoRepo{pool: pool}
}

// Salvar grava a execução completa.
func (r *SimulacaoRepo) Salvar(ctx context.Context, s *simulacao.Simulacao) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializar simulação: %w", err)
	}

	query := `
		INSERT INTO simulacoes (id, criada_em, faturamento, ano_inicial, ano_final, cenario, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		s.ID, s.CriadaEm, s.Entrada.Faturamento,
		s.Projecao.AnoInicial, s.Projecao.AnoFinal, s.Projecao.Cenario,
		payload,
	)
	if err != nil {
		return fmt.Errorf("insert simulação: %w", err)
	}
	return nil
}

// BuscarPorID recupera a execução pelo identificador.
func (r *SimulacaoRepo) BuscarPorID(ctx context.Context, id string) (*simulacao.Simulacao, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM simulacoes WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select simulação: %w", err)
	}

	var s simulacao.Simulacao
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("desserializar simulação: %w", err)
	}
	return &s, nil
}
