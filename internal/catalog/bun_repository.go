package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunDocumentRepository persists catalog documents through a Bun-backed database.
type BunDocumentRepository struct {
	repo repository.Repository[*Document]
}

// NewBunDocumentRepository constructs a Bun-backed document repository.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache wraps the repository with a read-through
// cache when both a cache service and key serializer are supplied.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunDocumentRepository {
	base := NewDocumentModelRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunDocumentRepository{repo: wrapped}
}

// Get loads and decodes the catalog document stored under key.
func (r *BunDocumentRepository) Get(ctx context.Context, key string) (Catalog, error) {
	record, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return Catalog{}, mapRepositoryError(err, "catalog document", key)
	}

	var doc Catalog
	if err := json.Unmarshal(record.Data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%w: decode document %q: %v", ErrStoreUnavailable, key, err)
	}
	return doc, nil
}

// Put encodes and stores the whole catalog document under key, creating the
// row on first write and replacing it afterwards.
func (r *BunDocumentRepository) Put(ctx context.Context, key string, catalog Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("%w: encode document %q: %v", ErrStoreUnavailable, key, err)
	}

	existing, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return mapRepositoryError(err, "catalog document", key)
		}
		record := &Document{
			ID:        uuid.New(),
			Namespace: key,
			Data:      data,
			UpdatedAt: time.Now().UTC(),
		}
		if _, err := r.repo.Create(ctx, record); err != nil {
			return mapRepositoryError(err, "catalog document", key)
		}
		return nil
	}

	existing.Data = data
	existing.UpdatedAt = time.Now().UTC()
	if _, err := r.repo.Update(ctx, existing); err != nil {
		return mapRepositoryError(err, "catalog document", key)
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%w: %s %q: %v", ErrStoreUnavailable, resource, key, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
