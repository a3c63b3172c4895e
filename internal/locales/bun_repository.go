package locales

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/storage"
)

// BunRepository is the bun-backed locale registry.
type BunRepository struct {
	repo repository.Repository[*Locale]
}

// NewBunRepository constructs a locale repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a locale repository with optional
// caching. Registry rows change rarely, so hosts typically wrap them.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewLocaleRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	result, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, code)
	}
	return result, nil
}

func (r *BunRepository) GetDefault(ctx context.Context) (*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_default = ?", true)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &storage.NotFoundError{Resource: "locale", Key: "default"}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.code ASC")
		}),
	)
	return records, err
}

func (r *BunRepository) Create(ctx context.Context, locale *Locale) (*Locale, error) {
	created, err := r.repo.Create(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("locale repository error: %w", err)
	}
	return created, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &storage.NotFoundError{
			Resource: "locale",
			Key:      key,
		}
	}
	return fmt.Errorf("locale repository error: %w", err)
}
