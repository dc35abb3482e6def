package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stocktrack/internal/model"
)

// Sort fields and orders accepted by Apply.
const (
	SortByName     = "name"
	SortBySKU      = "sku"
	SortByCategory = "category"
	SortByQuantity = "quantity"
	SortByPrice    = "price"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// AllCategories is the sentinel category value that disables filtering.
const AllCategories = "all"

// Query describes how a record list should be searched, filtered and sorted.
// Zero values mean: match everything, all categories, sort by name ascending.
type Query struct {
	Search    string
	Category  string
	SortField string
	SortOrder string
}

// Apply runs the query over products and returns a new ordered slice. The
// input is never mutated; the whole pipeline is re-run on every call.
//
// Search is a case-insensitive substring match against name, SKU and
// category (a record matches if any of the three contains it). The category
// filter is an exact match, disabled by "all" or empty. Sorting is stable,
// so records that compare equal keep their pre-sort relative order.
func Apply(products []model.Product, q Query) []model.Product {
	out := make([]model.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}

	field := q.SortField
	if field == "" {
		field = SortByName
	}
	desc := q.SortOrder == OrderDesc

	// The collator is not safe for concurrent use, so each call gets its own.
	coll := collate.New(language.English)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(coll, out[i], out[j], field)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out
}

func matchesSearch(p model.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search) ||
		strings.Contains(strings.ToLower(p.Category), search)
}

func compareBy(coll *collate.Collator, a, b model.Product, field string) int {
	switch field {
	case SortBySKU:
		return coll.CompareString(a.SKU, b.SKU)
	case SortByCategory:
		return coll.CompareString(a.Category, b.Category)
	case SortByQuantity:
		switch {
		case a.Quantity < b.Quantity:
			return -1
		case a.Quantity > b.Quantity:
			return 1
		}
		return 0
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	default:
		return coll.CompareString(a.Name, b.Name)
	}
}
