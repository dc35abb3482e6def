package inventory

import (
	"errors"

	"stocktrack/internal/model"
)

// Ownership guard outcomes.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("record belongs to another user")
)

// Authorize checks that p exists and is owned by userID. It must be called
// before any single-record read, update or delete. List operations are
// owner-scoped at the store query instead, so they need no per-record check.
func Authorize(p *model.Product, userID int64) error {
	if p == nil {
		return ErrNotFound
	}
	if p.OwnerID != userID {
		return ErrForbidden
	}
	return nil
}
