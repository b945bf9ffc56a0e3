// Package csv exporta os resultados anuais da simulação em planilha CSV.
package csv

import (
	"context"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
)

var _ simulador.ExportadorPlanilha = (*ExportadorCSV)(nil)

// ExportadorCSV serializa as linhas de exportação com gocsv.
type ExportadorCSV struct{}

func NewExportadorCSV() *ExportadorCSV { return &ExportadorCSV{} }

// Exportar devolve o CSV (UTF-8, cabeçalho na primeira linha) da simulação.
func (e *ExportadorCSV) Exportar(_ context.Context, s *simulacao.Simulacao) ([]byte, error) {
	if len(s.Exportacao) == 0 {
		return nil, fmt.Errorf("simulação %s sem linhas de exportação", s.ID)
	}
	out, err := gocsv.MarshalBytes(&s.Exportacao)
	if err != nil {
		return nil, fmt.Errorf("serializar CSV da simulação %s: %w", s.ID, err)
	}
	return out, nil
}
