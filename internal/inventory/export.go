package inventory

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"stocktrack/internal/model"
)

// ErrNoRecords is returned by all exporters when there is nothing to export.
var ErrNoRecords = errors.New("no records to export")

// csvDateFormat is used for the Created At column and export filenames.
const csvDateFormat = "2006-01-02"

// ExportCSV renders products as a CSV document and returns the payload with
// a suggested filename. Quotes inside text fields are escaped by doubling,
// per RFC 4180.
func ExportCSV(products []model.Product) ([]byte, string, error) {
	if len(products) == 0 {
		return nil, "", ErrNoRecords
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "SKU", "Category", "Quantity", "Price", "Total Value", "Description", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range products {
		createdAt := "N/A"
		if !p.CreatedAt.IsZero() {
			createdAt = p.CreatedAt.Format(csvDateFormat)
		}
		row := []string{
			p.Name,
			p.SKU,
			p.Category,
			fmt.Sprintf("%d", p.Quantity),
			p.Price.String(),
			p.TotalValue().StringFixed(2),
			p.Description,
			createdAt,
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flushing csv: %w", err)
	}

	name := fmt.Sprintf("inventory-%s.csv", time.Now().Format(csvDateFormat))
	return buf.Bytes(), name, nil
}

// exportRecord is the JSON export shape. Field order here fixes the key
// order in the output.
type exportRecord struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalValue  string          `json:"totalValue"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ExportJSON renders products as a pretty-printed JSON array.
func ExportJSON(products []model.Product) ([]byte, string, error) {
	if len(products) == 0 {
		return nil, "", ErrNoRecords
	}

	records := make([]exportRecord, 0, len(products))
	for _, p := range products {
		records = append(records, exportRecord{
			Name:        p.Name,
			SKU:         p.SKU,
			Category:    p.Category,
			Quantity:    p.Quantity,
			Price:       p.Price,
			TotalValue:  p.TotalValue().StringFixed(2),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encoding json export: %w", err)
	}

	name := fmt.Sprintf("inventory-%s.json", time.Now().Format(csvDateFormat))
	return data, name, nil
}

// reportTemplate is the self-contained HTML report. All record fields pass
// through html/template's contextual escaping, so user-supplied text cannot
// inject markup.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Inventory Report - {{.Date}}</title>
<style>
body { font-family: sans-serif; margin: 40px; color: #2c3e50; }
h1 { margin-bottom: 4px; }
.subtitle { color: #7f8c8d; margin-bottom: 24px; }
.stats { display: flex; gap: 16px; margin-bottom: 32px; }
.stat { background: #ecf0f1; padding: 16px 24px; border-radius: 8px; text-align: center; }
.stat .label { font-size: 12px; color: #7f8c8d; text-transform: uppercase; }
.stat .value { font-size: 26px; font-weight: bold; }
table { width: 100%; border-collapse: collapse; }
th { background: #34495e; color: white; padding: 10px; text-align: left; }
td { padding: 10px; border-bottom: 1px solid #ecf0f1; }
.footer { margin-top: 32px; color: #7f8c8d; font-size: 12px; text-align: center; }
</style>
</head>
<body>
<h1>Inventory Report</h1>
<p class="subtitle">Generated on {{.Date}}</p>
<div class="stats">
<div class="stat"><div class="label">Total Items</div><div class="value">{{.Stats.TotalItems}}</div></div>
<div class="stat"><div class="label">Low Stock Items</div><div class="value">{{.Stats.LowStockCount}}</div></div>
<div class="stat"><div class="label">Total Inventory Value</div><div class="value">{{.TotalValue}}</div></div>
</div>
<table>
<thead>
<tr><th>Name</th><th>SKU</th><th>Category</th><th>Quantity</th><th>Price</th><th>Total Value</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.SKU}}</td><td>{{.Category}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.TotalValue}}</td></tr>
{{end}}</tbody>
</table>
<div class="footer">This report contains {{.Stats.TotalItems}} items with a total value of {{.TotalValue}}</div>
</body>
</html>
`))

type reportRow struct {
	Name       string
	SKU        string
	Category   string
	Quantity   int
	Price      string
	TotalValue string
}

type reportData struct {
	Date       string
	Stats      Stats
	TotalValue string
	Rows       []reportRow
}

// ExportHTML renders products and their summary stats as a printable HTML
// report.
func ExportHTML(products []model.Product, stats Stats) ([]byte, string, error) {
	if len(products) == 0 {
		return nil, "", ErrNoRecords
	}

	data := reportData{
		Date:       time.Now().Format(csvDateFormat),
		Stats:      stats,
		TotalValue: fmt.Sprintf("%d", stats.RoundedTotalValue()),
		Rows:       make([]reportRow, 0, len(products)),
	}
	for _, p := range products {
		data.Rows = append(data.Rows, reportRow{
			Name:       p.Name,
			SKU:        p.SKU,
			Category:   p.Category,
			Quantity:   p.Quantity,
			Price:      p.Price.StringFixed(2),
			TotalValue: p.TotalValue().StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, "", fmt.Errorf("rendering report: %w", err)
	}

	name := fmt.Sprintf("inventory-report-%s.html", data.Date)
	return buf.Bytes(), name, nil
}
