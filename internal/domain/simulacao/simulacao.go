package simulacao

import "time"

// Simulacao registro completo de uma execução do simulador: entrada normalizada,
// impacto do ano-base, projeção no horizonte e artefatos de auditoria/exportação.
// Escrito uma única vez por execução e lido pelas camadas de apresentação.
type Simulacao struct {
	ID       string    `json:"id"`
	CriadaEm time.Time `json:"criadaEm"`

	Entrada     EntradaSimulacao   `json:"entrada"`
	ImpactoBase *ResultadoAnual    `json:"impactoBase"`
	Projecao    *ResultadoProjecao `json:"projecaoTemporal"`
	Memoria     MemoriaCalculo     `json:"memoriaCalculo"`
	Exportacao  []LinhaExportacao  `json:"resultadosExportacao"`
}
