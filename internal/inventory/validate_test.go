package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validInput() Input {
	return Input{
		Name:     "Wireless Mouse",
		SKU:      "TECH-001",
		Category: "Electronics",
		Quantity: "45",
		Price:    "29.99",
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	in := validInput()
	in.Description = "  2.4GHz receiver included  "

	draft, errs := Validate(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if draft.Quantity != 45 {
		t.Errorf("expected quantity 45, got %d", draft.Quantity)
	}
	if !draft.Price.Equal(decimal.RequireFromString("29.99")) {
		t.Errorf("expected price 29.99, got %s", draft.Price)
	}
	if draft.Description != "2.4GHz receiver included" {
		t.Errorf("expected trimmed description, got %q", draft.Description)
	}
}

func TestValidateMissingFieldsReportedIndividually(t *testing.T) {
	fields := []string{"name", "sku", "category", "quantity", "price"}

	for _, field := range fields {
		in := validInput()
		switch field {
		case "name":
			in.Name = "   "
		case "sku":
			in.SKU = ""
		case "category":
			in.Category = ""
		case "quantity":
			in.Quantity = ""
		case "price":
			in.Price = ""
		}

		draft, errs := Validate(in)
		if draft != nil {
			t.Errorf("%s: expected nil draft", field)
		}
		if len(errs) != 1 {
			t.Errorf("%s: expected exactly 1 error, got %v", field, errs)
		}
		if _, ok := errs[field]; !ok {
			t.Errorf("%s: expected error for that field, got %v", field, errs)
		}
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	draft, errs := Validate(Input{Quantity: "-3", Price: "0"})
	if draft != nil {
		t.Error("expected nil draft")
	}
	if len(errs) != 5 {
		t.Errorf("expected 5 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateQuantityRules(t *testing.T) {
	cases := []struct {
		quantity string
		ok       bool
	}{
		{"0", true},
		{"125", true},
		{"-1", false},
		{"12.5", false},
		{"many", false},
	}

	for _, tc := range cases {
		in := validInput()
		in.Quantity = tc.quantity
		_, errs := Validate(in)
		if tc.ok && errs != nil {
			t.Errorf("quantity %q: unexpected errors %v", tc.quantity, errs)
		}
		if !tc.ok && errs["quantity"] == "" {
			t.Errorf("quantity %q: expected a quantity error", tc.quantity)
		}
	}
}

func TestValidatePriceMustBePositive(t *testing.T) {
	for _, price := range []string{"0", "-5", "free"} {
		in := validInput()
		in.Price = price
		_, errs := Validate(in)
		if errs["price"] == "" {
			t.Errorf("price %q: expected a price error", price)
		}
	}
}

func TestValidateDescriptionOptional(t *testing.T) {
	draft, errs := Validate(validInput())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if draft.Description != "" {
		t.Errorf("expected empty description, got %q", draft.Description)
	}
}
