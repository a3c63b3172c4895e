package locales

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository resolves locale registry rows.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*Locale, error)
	GetDefault(ctx context.Context) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	Create(ctx context.Context, locale *Locale) (*Locale, error)
}

// NewLocaleRepository builds the go-repository-bun handlers for the locale
// model. Code is the natural identifier.
func NewLocaleRepository(db *bun.DB) repository.Repository[*Locale] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Locale]{
		NewRecord: func() *Locale { return &Locale{} },
		GetID: func(l *Locale) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Locale, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Locale) string {
			return l.Code
		},
	})
}
