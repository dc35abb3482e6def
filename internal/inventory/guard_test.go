package inventory

import (
	"errors"
	"testing"

	"stocktrack/internal/model"
)

func TestAuthorize(t *testing.T) {
	p := &model.Product{ID: "abc", OwnerID: 1}

	if err := Authorize(p, 1); err != nil {
		t.Errorf("owner access: unexpected error %v", err)
	}
	if err := Authorize(p, 2); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign access: expected ErrForbidden, got %v", err)
	}
	if err := Authorize(nil, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing record: expected ErrNotFound, got %v", err)
	}
}
