package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as JSON numbers rather than quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents one inventory record, owned by a single user.
type Product struct {
	ID          string          `json:"id"`
	OwnerID     int64           `json:"-"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	PhotoMIME   string          `json:"photo_mime,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TotalValue returns price multiplied by quantity at full precision.
func (p Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
