package simulacao

import "github.com/shopspring/decimal"

// Nomes canônicos das seis estratégias de mitigação.
const (
	EstrategiaAjustePrecos          = "ajustePrecos"
	EstrategiaRenegociacaoPrazos    = "renegociacaoPrazos"
	EstrategiaAntecipacaoRecebiveis = "antecipacaoRecebiveis"
	EstrategiaCapitalGiro           = "capitalGiro"
	EstrategiaMixProdutos           = "mixProdutos"
	EstrategiaMeiosPagamento        = "meiosPagamento"
)

// ConfigAjustePrecos repasse do impacto aos preços.
type ConfigAjustePrecos struct {
	Ativar            bool            `json:"ativar"`
	PercentualAumento decimal.Decimal `json:"percentualAumento"` // fração
	Elasticidade      decimal.Decimal `json:"elasticidade"`      // tipicamente negativa
	PeriodoAjuste     int             `json:"periodoAjuste"`     // meses de acomodação
}

// ConfigRenegociacaoPrazos alongamento de prazos com fornecedores.
type ConfigRenegociacaoPrazos struct {
	Ativar                 bool            `json:"ativar"`
	AumentoPrazo           int             `json:"aumentoPrazo"`           // dias adicionais de PMP
	PercentualFornecedores decimal.Decimal `json:"percentualFornecedores"` // fração da base que aceita
	Contrapartidas         decimal.Decimal `json:"contrapartidas"`         // custo concedido, fração
}

// ConfigAntecipacaoRecebiveis desconto de duplicatas/recebíveis.
type ConfigAntecipacaoRecebiveis struct {
	Ativar                bool            `json:"ativar"`
	PercentualAntecipacao decimal.Decimal `json:"percentualAntecipacao"` // fração das vendas a prazo
	TaxaDesconto          decimal.Decimal `json:"taxaDesconto"`          // fração a.m.
}

// ConfigCapitalGiro linha de crédito para recompor o caixa.
type ConfigCapitalGiro struct {
	Ativar         bool            `json:"ativar"`
	ValorCaptacao  decimal.Decimal `json:"valorCaptacao"`  // fração da necessidade adicional
	TaxaJuros      decimal.Decimal `json:"taxaJuros"`      // fração a.m.
	PrazoPagamento int             `json:"prazoPagamento"` // meses
	Carencia       int             `json:"carencia"`       // meses
}

// ConfigMixProdutos realocação do mix para produtos de ciclo/margem favoráveis.
type ConfigMixProdutos struct {
	Ativar           bool            `json:"ativar"`
	PercentualAjuste decimal.Decimal `json:"percentualAjuste"` // fração da receita realocada
	ImpactoReceita   decimal.Decimal `json:"impactoReceita"`   // variação da receita, fração
	ImpactoMargem    decimal.Decimal `json:"impactoMargem"`    // ganho de margem, fração
}

// DistribuicaoPagamento repartição vista/prazo das vendas (soma deve dar 1).
type DistribuicaoPagamento struct {
	Vista decimal.Decimal `json:"vista"`
	Prazo decimal.Decimal `json:"prazo"`
}

// ConfigMeiosPagamento incentivo à migração de vendas a prazo para à vista.
type ConfigMeiosPagamento struct {
	Ativar            bool                  `json:"ativar"`
	DistribuicaoAtual DistribuicaoPagamento `json:"distribuicaoAtual"`
	DistribuicaoNova  DistribuicaoPagamento `json:"distribuicaoNova"`
	TaxaIncentivo     decimal.Decimal       `json:"taxaIncentivo"` // desconto concedido à vista, fração
}

// ConfigEstrategias configuração das seis estratégias de mitigação.
type ConfigEstrategias struct {
	AjustePrecos          ConfigAjustePrecos          `json:"ajustePrecos"`
	RenegociacaoPrazos    ConfigRenegociacaoPrazos    `json:"renegociacaoPrazos"`
	AntecipacaoRecebiveis ConfigAntecipacaoRecebiveis `json:"antecipacaoRecebiveis"`
	CapitalGiro           ConfigCapitalGiro           `json:"capitalGiro"`
	MixProdutos           ConfigMixProdutos           `json:"mixProdutos"`
	MeiosPagamento        ConfigMeiosPagamento        `json:"meiosPagamento"`
}

// ResultadoEstrategia efeito estimado de uma estratégia contra o gap de capital.
type ResultadoEstrategia struct {
	Nome                  string          `json:"nome"`
	EfetividadePercentual decimal.Decimal `json:"efetividadePercentual"` // % do gap mitigado
	MitigacaoMensal       decimal.Decimal `json:"mitigacaoMensal"`       // R$/mês
	MitigacaoTotal        decimal.Decimal `json:"mitigacaoTotal"`        // R$ no horizonte de efeito
	CustoMensal           decimal.Decimal `json:"custoMensal"`
	CustoTotal            decimal.Decimal `json:"custoTotal"`
	CustoBeneficio        decimal.Decimal `json:"custoBeneficio"` // custo ÷ mitigação

	// Erro descreve configuração inválida; efetividade zerada, nunca exceção.
	Erro string `json:"erro,omitempty"`
}

// ResultadoCombinado efeito conjunto das estratégias ativas com desconto de
// sobreposição por dimensão. Efetividade limitada a 100%.
type ResultadoCombinado struct {
	Estrategias           []string        `json:"estrategias"`
	EfetividadePercentual decimal.Decimal `json:"efetividadePercentual"`
	MitigacaoTotal        decimal.Decimal `json:"mitigacaoTotal"`
	CustoTotal            decimal.Decimal `json:"custoTotal"`
	CustoBeneficio        decimal.Decimal `json:"custoBeneficio"`

	PMRAjustado    decimal.Decimal `json:"pmrAjustado"`
	PMPAjustado    decimal.Decimal `json:"pmpAjustado"`
	MargemAjustada decimal.Decimal `json:"margemAjustada"`
}

// CombinacaoOtima subconjunto de estratégias selecionado pela fronteira de Pareto.
type CombinacaoOtima struct {
	Estrategias           []string        `json:"estrategias"`
	EfetividadePercentual decimal.Decimal `json:"efetividadePercentual"`
	CustoTotal            decimal.Decimal `json:"custoTotal"`
	CustoBeneficio        decimal.Decimal `json:"custoBeneficio"`
}
