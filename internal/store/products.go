package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stocktrack/internal/inventory"
	"stocktrack/internal/model"
)

// ErrDuplicateSKU is returned when a create or update would reuse an SKU
// that already belongs to another record. SKUs are unique across the whole
// store, not per owner.
var ErrDuplicateSKU = errors.New("sku already exists")

const productColumns = `id, owner_id, name, sku, category, quantity, price, description, photo_mime, created_at, updated_at`

// CreateProduct inserts a validated draft as a new record owned by ownerID.
// The ID is assigned here and timestamps are stamped by the database.
func CreateProduct(ctx context.Context, db *sql.DB, ownerID int64, d *inventory.Draft) (*model.Product, error) {
	taken, err := skuTaken(ctx, db, d.SKU, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSKU
	}

	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO products (id, owner_id, name, sku, category, quantity, price, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, ownerID, d.Name, d.SKU, d.Category, d.Quantity, d.Price.String(), d.Description,
	)
	if err != nil {
		// The unique index is the backstop for concurrent creates.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a record by ID, or (nil, nil) if it does not exist.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id,
	)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProductsByOwner returns all records owned by ownerID, newest first.
// Records of other owners are never returned.
func ListProductsByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE owner_id = ? ORDER BY created_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// UpdateProduct replaces all caller-editable fields of a record. The owner
// and ID never change; updated_at is stamped by the database.
func UpdateProduct(ctx context.Context, db *sql.DB, id string, d *inventory.Draft) (*model.Product, error) {
	taken, err := skuTaken(ctx, db, d.SKU, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSKU
	}

	_, err = db.ExecContext(ctx,
		`UPDATE products
		 SET name = ?, sku = ?, category = ?, quantity = ?, price = ?, description = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		d.Name, d.SKU, d.Category, d.Quantity, d.Price.String(), d.Description, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("updating product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// DeleteProduct permanently removes a record. There is no soft delete.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// SetProductPhoto stores a product's photo data.
func SetProductPhoto(ctx context.Context, db *sql.DB, id string, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting product photo: %w", err)
	}
	return nil
}

// GetProductPhoto returns a product's photo data and MIME type.
func GetProductPhoto(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM products WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product photo: %w", err)
	}
	return photo, mime.String, nil
}

// skuTaken reports whether sku is already used by a record other than
// excludeID.
func skuTaken(ctx context.Context, db *sql.DB, sku, excludeID string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE sku = ? AND id != ?`, sku, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking sku: %w", err)
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// scanProduct reads one product row using the productColumns order.
func scanProduct(scan func(dest ...any) error) (*model.Product, error) {
	p := &model.Product{}
	var price string
	var description, photoMime sql.NullString
	err := scan(&p.ID, &p.OwnerID, &p.Name, &p.SKU, &p.Category, &p.Quantity,
		&price, &description, &photoMime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price %q: %w", price, err)
	}
	p.Price = parsed
	p.Description = description.String
	p.PhotoMIME = photoMime.String
	return p, nil
}
