package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"stocktrack/internal/imaging"
	"stocktrack/internal/inventory"
	"stocktrack/internal/model"
	"stocktrack/internal/store"
)

// ProductsHandler handles inventory record endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

// flexString accepts a JSON number or string, preserving the raw text so the
// validator owns the parsing rules for quantity and price.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(data)
	return nil
}

type productRequest struct {
	Name        string     `json:"name"`
	SKU         string     `json:"sku"`
	Category    string     `json:"category"`
	Quantity    flexString `json:"quantity"`
	Price       flexString `json:"price"`
	Description string     `json:"description"`
}

func (req productRequest) input() inventory.Input {
	return inventory.Input{
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Quantity:    string(req.Quantity),
		Price:       string(req.Price),
		Description: req.Description,
	}
}

// queryFromRequest extracts search/filter/sort parameters.
func queryFromRequest(r *http.Request) inventory.Query {
	q := r.URL.Query()
	return inventory.Query{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		SortField: q.Get("sort"),
		SortOrder: q.Get("order"),
	}
}

// fetchOwned loads a record by path ID and checks ownership, writing the
// error response itself when the record is missing or foreign.
func (h *ProductsHandler) fetchOwned(w http.ResponseWriter, r *http.Request) *model.Product {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return nil
	}

	product, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return nil
	}

	switch err := inventory.Authorize(product, claims.UserID); {
	case errors.Is(err, inventory.ErrNotFound):
		jsonError(w, http.StatusNotFound, "Item not found")
		return nil
	case errors.Is(err, inventory.ErrForbidden):
		jsonError(w, http.StatusForbidden, "You do not have access to this item")
		return nil
	}
	return product
}

// List handles GET /api/inventory.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	products, err := store.ListProductsByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	products = inventory.Apply(products, queryFromRequest(r))
	jsonList(w, http.StatusOK, products, len(products))
}

// Create handles POST /api/inventory.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, errs := inventory.Validate(req.input())
	if errs != nil {
		jsonFieldErrors(w, errs)
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, claims.UserID, draft)
	if errors.Is(err, store.ErrDuplicateSKU) {
		jsonError(w, http.StatusConflict, "SKU already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonData(w, http.StatusCreated, product, "Item created successfully")
}

// Get handles GET /api/inventory/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product := h.fetchOwned(w, r)
	if product == nil {
		return
	}
	jsonData(w, http.StatusOK, product, "")
}

// Update handles PUT /api/inventory/{id}. All editable fields are replaced;
// owner and ID are immutable.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	product := h.fetchOwned(w, r)
	if product == nil {
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, errs := inventory.Validate(req.input())
	if errs != nil {
		jsonFieldErrors(w, errs)
		return
	}

	updated, err := store.UpdateProduct(r.Context(), h.DB, product.ID, draft)
	if errors.Is(err, store.ErrDuplicateSKU) {
		jsonError(w, http.StatusConflict, "SKU already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	jsonData(w, http.StatusOK, updated, "Item updated successfully")
}

// Delete handles DELETE /api/inventory/{id}. Deletion is permanent.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	product := h.fetchOwned(w, r)
	if product == nil {
		return
	}

	if err := store.DeleteProduct(r.Context(), h.DB, product.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonData(w, http.StatusOK, nil, "Item deleted successfully")
}

// Stats handles GET /api/inventory/stats. Stats are recomputed on every
// call; nothing is cached.
func (h *ProductsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	products, err := store.ListProductsByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load items")
		return
	}

	stats := inventory.Compute(products)
	jsonData(w, http.StatusOK, map[string]any{
		"totalItems":    stats.TotalItems,
		"lowStockCount": stats.LowStockCount,
		"totalValue":    stats.RoundedTotalValue(),
	}, "")
}

// Export handles GET /api/inventory/export/{format}. The same query
// parameters as the list endpoint apply, so a filtered view can be exported.
func (h *ProductsHandler) Export(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	products, err := store.ListProductsByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load items")
		return
	}
	products = inventory.Apply(products, queryFromRequest(r))

	var (
		data        []byte
		filename    string
		contentType string
	)
	switch format := r.PathValue("format"); format {
	case "csv":
		data, filename, err = inventory.ExportCSV(products)
		contentType = "text/csv; charset=utf-8"
	case "json":
		data, filename, err = inventory.ExportJSON(products)
		contentType = "application/json"
	case "html":
		data, filename, err = inventory.ExportHTML(products, inventory.Compute(products))
		contentType = "text/html; charset=utf-8"
	default:
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
		return
	}

	if errors.Is(err, inventory.ErrNoRecords) {
		jsonError(w, http.StatusBadRequest, "No data to export")
		return
	}
	if err != nil {
		slog.Error("export failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to export items")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// UploadPhoto handles PUT /api/inventory/{id}/photo.
func (h *ProductsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	product := h.fetchOwned(w, r)
	if product == nil {
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetProductPhoto(r.Context(), h.DB, product.ID, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonData(w, http.StatusOK, nil, "Photo uploaded")
}

// GetPhoto handles GET /api/inventory/{id}/photo.
func (h *ProductsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	product := h.fetchOwned(w, r)
	if product == nil {
		return
	}

	data, mime, err := store.GetProductPhoto(r.Context(), h.DB, product.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}
