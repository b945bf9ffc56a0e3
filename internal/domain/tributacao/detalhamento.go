package tributacao

import "github.com/shopspring/decimal"

// DetalhamentoImpostos decompõe a carga tributária por tributo.
// Criado por SistemaAtual.ImpostosAtuais / CalcularTransicaoIVADual; depois de
// Fechar() o registro não deve mais ser alterado.
type DetalhamentoImpostos struct {
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	ICMS   decimal.Decimal `json:"icms"`
	IPI    decimal.Decimal `json:"ipi"`
	ISS    decimal.Decimal `json:"iss"`
	CBS    decimal.Decimal `json:"cbs"`
	IBS    decimal.Decimal `json:"ibs"`
	Total  decimal.Decimal `json:"total"`
}

// Fechar recalcula o Total como a soma de todos os tributos e devolve o registro.
func (d DetalhamentoImpostos) Fechar() DetalhamentoImpostos {
	d.Total = d.PIS.Add(d.COFINS).Add(d.ICMS).Add(d.IPI).Add(d.ISS).Add(d.CBS).Add(d.IBS)
	return d
}
