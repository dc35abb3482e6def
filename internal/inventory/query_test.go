package inventory

import (
	"testing"

	"github.com/shopspring/decimal"

	"stocktrack/internal/model"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Wireless Mouse", SKU: "TECH-001", Category: "Electronics", Quantity: 45, Price: price("29.99")},
		{Name: "Office Chair", SKU: "FURN-001", Category: "Furniture", Quantity: 12, Price: price("199.99")},
		{Name: "Notebook Set", SKU: "STAT-001", Category: "Stationery", Quantity: 125, Price: price("12.99")},
	}
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	products := sampleProducts()[:2]

	got := Apply(products, Query{Search: "tech"})
	if len(got) != 1 || got[0].Name != "Wireless Mouse" {
		t.Errorf("search 'tech': expected only Wireless Mouse, got %v", names(got))
	}

	// "o" matches "Mouse" and "Office" case-insensitively.
	got = Apply(products, Query{Search: "o"})
	if len(got) != 2 {
		t.Errorf("search 'o': expected both records, got %v", names(got))
	}

	got = Apply(products, Query{Search: "TECH"})
	if len(got) != 1 {
		t.Errorf("search should be case-insensitive, got %v", names(got))
	}
}

func TestApplyEmptySearchMatchesEverything(t *testing.T) {
	products := sampleProducts()
	got := Apply(products, Query{})
	if len(got) != len(products) {
		t.Errorf("expected all %d records, got %d", len(products), len(got))
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, Query{Category: "Furniture"})
	if len(got) != 1 || got[0].Category != "Furniture" {
		t.Errorf("expected only Furniture, got %v", names(got))
	}

	got = Apply(products, Query{Category: AllCategories})
	if len(got) != len(products) {
		t.Errorf("'all' should disable the filter, got %d records", len(got))
	}

	// Exact match only.
	got = Apply(products, Query{Category: "furniture"})
	if len(got) != 0 {
		t.Errorf("category filter should be exact, got %v", names(got))
	}
}

func TestApplySortStability(t *testing.T) {
	products := []model.Product{
		{Name: "B", Price: price("5")},
		{Name: "A", Price: price("5")},
	}

	got := Apply(products, Query{SortField: SortByPrice, SortOrder: OrderAsc})
	if got[0].Name != "B" || got[1].Name != "A" {
		t.Errorf("equal prices must preserve input order, got %v", names(got))
	}
}

func TestApplySortFieldsAndOrder(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, Query{SortField: SortByName})
	if got[0].Name != "Notebook Set" || got[2].Name != "Wireless Mouse" {
		t.Errorf("sort by name asc: got %v", names(got))
	}

	got = Apply(products, Query{SortField: SortByQuantity, SortOrder: OrderDesc})
	if got[0].Quantity != 125 || got[2].Quantity != 12 {
		t.Errorf("sort by quantity desc: got %v", names(got))
	}

	got = Apply(products, Query{SortField: SortByPrice})
	if !got[0].Price.Equal(price("12.99")) {
		t.Errorf("sort by price asc: got %v", names(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	original := names(products)

	Apply(products, Query{SortField: SortByPrice, SortOrder: OrderDesc, Search: "o"})

	for i, n := range names(products) {
		if n != original[i] {
			t.Fatalf("input slice was mutated: %v", names(products))
		}
	}
}
