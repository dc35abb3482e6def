package inventory

import (
	"github.com/shopspring/decimal"

	"stocktrack/internal/model"
)

// LowStockThreshold is the quantity below which a record counts as low stock.
const LowStockThreshold = 10

// Stats summarizes a record collection. It is computed fresh for every
// request and never persisted or cached.
type Stats struct {
	TotalItems    int             `json:"totalItems"`
	LowStockCount int             `json:"lowStockCount"`
	TotalValue    decimal.Decimal `json:"-"`
}

// Compute reduces products into summary metrics. TotalValue keeps full
// precision; use RoundedTotalValue for display.
func Compute(products []model.Product) Stats {
	s := Stats{TotalItems: len(products), TotalValue: decimal.Zero}
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			s.LowStockCount++
		}
		s.TotalValue = s.TotalValue.Add(p.TotalValue())
	}
	return s
}

// RoundedTotalValue returns the total value rounded to the nearest whole
// unit, for display only.
func (s Stats) RoundedTotalValue() int64 {
	return s.TotalValue.Round(0).IntPart()
}
