package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input holds candidate field values for a product record, as submitted by
// the client. Quantity and price are kept as strings so the validator owns
// the parsing rules.
type Input struct {
	Name        string
	SKU         string
	Category    string
	Quantity    string
	Price       string
	Description string
}

// Draft is a validated, normalized product payload ready for the store.
type Draft struct {
	Name        string
	SKU         string
	Category    string
	Quantity    int
	Price       decimal.Decimal
	Description string
}

// FieldErrors maps field names to human-readable validation messages.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validate checks all fields of in and either returns a normalized draft or
// the full set of violations. All independent violations are collected in a
// single pass so the caller can report them together; on any error the draft
// is nil and nothing is partially applied.
func Validate(in Input) (*Draft, FieldErrors) {
	errs := FieldErrors{}
	d := &Draft{
		Name:        strings.TrimSpace(in.Name),
		SKU:         strings.TrimSpace(in.SKU),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
	}

	if d.Name == "" {
		errs["name"] = "Product name is required"
	}
	if d.SKU == "" {
		errs["sku"] = "SKU is required"
	}
	if d.Category == "" {
		errs["category"] = "Category is required"
	}

	if strings.TrimSpace(in.Quantity) == "" {
		errs["quantity"] = "Quantity is required"
	} else if qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity)); err != nil || qty < 0 {
		errs["quantity"] = "Quantity must be a non-negative number"
	} else {
		d.Quantity = qty
	}

	if strings.TrimSpace(in.Price) == "" {
		errs["price"] = "Price is required"
	} else if price, err := decimal.NewFromString(strings.TrimSpace(in.Price)); err != nil || !price.IsPositive() {
		errs["price"] = "Price must be a positive number"
	} else {
		d.Price = price
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return d, nil
}
