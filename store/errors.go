package store

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Normalized error kinds. Handlers map these to status codes; anything else
// is a backing-store failure surfaced as a generic 500.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value")
	ErrConflict  = errors.New("version conflict")
)

// normalize logs raw store failures and translates gorm errors into the
// package's sentinel kinds. The advisory duplicate pre-checks are a fast
// path only; the database's unique constraint is the authoritative guard,
// so its violation must land on the same ErrDuplicate.
func normalize(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return err
	default:
		log.Printf("store: %s failed: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
}
