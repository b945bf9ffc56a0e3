package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrFormatoInvalido    = errors.New("formato de dados inválido: esperada estrutura plana")
	ErrAnoForaDoIntervalo = errors.New("ano fora do período de transição (2026–2033)")
)

// ErroCalculo descreve uma falha dentro do motor de cálculo. O chamador decide
// explicitamente se usa o resultado simplificado de fallback ou propaga a falha.
type ErroCalculo struct {
	Etapa string // etapa do cálculo que falhou (ex: "impacto-base", "projecao")
	Ano   int    // ano sendo calculado, 0 se não se aplica
	Err   error
}

func (e *ErroCalculo) Error() string {
	if e.Ano != 0 {
		return fmt.Sprintf("cálculo %s (ano %d): %v", e.Etapa, e.Ano, e.Err)
	}
	return fmt.Sprintf("cálculo %s: %v", e.Etapa, e.Err)
}

func (e *ErroCalculo) Unwrap() error { return e.Err }
