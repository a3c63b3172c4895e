package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/translation"
)

// BaseRow is the storage-facing view of a base record: its key, attribute
// values, and which columns changed since load. Stores assign the key on
// first insert when the facade has not already done so.
type BaseRow struct {
	ID          uuid.UUID
	Values      map[string]any
	DirtyFields []string
	Persisted   bool
}

// Store is the persistence collaborator consumed by the record facade. An
// implementation may run both save phases inside a transaction; the facade
// does not require it.
type Store interface {
	// LoadTranslations returns the persisted translations owned by the given
	// record, as clean in-memory records.
	LoadTranslations(ctx context.Context, m *model.Model, ownerID uuid.UUID) ([]*translation.Translation, error)
	// SaveBase inserts or updates the base row. On insert the generated key
	// is written back onto row.ID and row.Persisted is set.
	SaveBase(ctx context.Context, m *model.Model, row *BaseRow) error
	// SaveTranslation inserts or updates one translation row. Implementations
	// persist only the dirty content fields on update.
	SaveTranslation(ctx context.Context, m *model.Model, tr *translation.Translation) error
}

// PersistenceError reports a failed base or translation persist with enough
// context to diagnose which row failed. Locale is empty for base-row
// failures.
type PersistenceError struct {
	Model  string
	Locale string
	Fields []string
	Err    error
}

func (e *PersistenceError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("storage: persist %s: %v", e.Model, e.Err)
	}
	detail := ""
	if len(e.Fields) > 0 {
		detail = " fields " + strings.Join(e.Fields, ",")
	}
	return fmt.Sprintf("storage: persist %s translation %s%s: %v", e.Model, e.Locale, detail, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotFoundError represents missing records from storage lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
