package entities

import (
	"github.com/shopspring/decimal"

	"oficina_mb/internal/domain/format"
)

// ComputeTotal sums qtd × parsed(un) over both line-item sequences. Items
// with malformed qtd or un contribute zero. The result is not clamped:
// negative quantities, if typed, flow through as plain arithmetic.
func ComputeTotal(pecas []Peca, servicos []Servico) float64 {
	total := decimal.Zero
	for _, p := range pecas {
		total = total.Add(format.LineAmount(p.Qtd, p.Un))
	}
	for _, s := range servicos {
		total = total.Add(format.LineAmount(s.Qtd, s.Un))
	}
	f, _ := total.Float64()
	return f
}

// RecomputeTotal refreshes Total from the current line items. Called after
// every add/edit/remove; the stored value is never carried across a
// mutation.
func (o *Orcamento) RecomputeTotal() {
	o.Total = ComputeTotal(o.Pecas, o.Servicos)
}
