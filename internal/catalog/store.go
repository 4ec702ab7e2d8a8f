package catalog

import (
	"context"
	"sync"

	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// DefaultNamespace is the document key used when none is configured. It
// matches the storage key of the original deployment so existing documents
// keep loading.
const DefaultNamespace = "crystal_plaza_menu_data"

// DocumentRepository abstracts the durable store: one whole-catalog JSON
// document per namespace key, read once at session start and written in full
// after every committed mutation.
type DocumentRepository interface {
	Get(ctx context.Context, key string) (Catalog, error)
	Put(ctx context.Context, key string, catalog Catalog) error
}

// Store owns the in-memory catalog aggregate. It is the single source of
// truth: every mutation is expressed as "replace the whole catalog with this
// new value" and persisted best-effort afterwards. There is exactly one
// writer (the admin session); guest reads may run concurrently.
type Store struct {
	mu        sync.RWMutex
	catalog   Catalog
	documents DocumentRepository
	namespace string
	seed      func() Catalog
	logger    interfaces.Logger
}

// StoreOption configures the store at construction time.
type StoreOption func(*Store)

// WithNamespace overrides the document key for the catalog document.
func WithNamespace(namespace string) StoreOption {
	return func(s *Store) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// WithSeed overrides the catalog used when the durable store has no document.
func WithSeed(seed func() Catalog) StoreOption {
	return func(s *Store) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// WithStoreLogger injects the store logger. Defaults to a no-op logger.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore constructs a catalog store over the supplied document repository.
func NewStore(documents DocumentRepository, opts ...StoreOption) *Store {
	s := &Store{
		documents: documents,
		namespace: DefaultNamespace,
		seed:      func() Catalog { return Catalog{} },
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the catalog document from the durable store, falling back to
// the seed catalog when the document is absent or the store is unreachable.
// Load never fails: a broken store degrades to seed data.
func (s *Store) Load(ctx context.Context) Catalog {
	loaded := s.seed()
	if s.documents != nil {
		doc, err := s.documents.Get(ctx, s.namespace)
		switch {
		case err == nil:
			loaded = doc
		case IsNotFound(err):
			s.logger.Info("catalog.load.seed", "namespace", s.namespace)
		default:
			s.logger.Warn("catalog.load.fallback", "namespace", s.namespace, "error", err)
		}
	}

	s.mu.Lock()
	s.catalog = loaded.Clone()
	s.mu.Unlock()
	return loaded
}

// Current returns a deep copy of the committed aggregate.
func (s *Store) Current() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

// Replace commits the supplied catalog as the new aggregate and persists it
// in full. Persistence is best effort: a write failure is logged and the
// in-memory commit stands, so an otherwise-valid user action never aborts.
func (s *Store) Replace(ctx context.Context, catalog Catalog) {
	committed := catalog.Clone()

	s.mu.Lock()
	s.catalog = committed
	s.mu.Unlock()

	if s.documents == nil {
		return
	}
	if err := s.documents.Put(ctx, s.namespace, committed); err != nil {
		s.logger.Warn("catalog.save.failed", "namespace", s.namespace, "error", err)
		return
	}
	s.logger.Debug("catalog.save.ok", "namespace", s.namespace,
		"categories", len(committed.Categories), "items", len(committed.Items))
}

// Namespace returns the configured document key.
func (s *Store) Namespace() string {
	return s.namespace
}
