// Package di wires the menu module: storage, logging, translation, session,
// the curation engine, and the admin command handlers, all derived from one
// validated configuration.
package di

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/commands"
	curationcmd "github.com/crystalplaza/go-menu/internal/commands/curation"
	"github.com/crystalplaza/go-menu/internal/curation"
	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/internal/logging/gologger"
	"github.com/crystalplaza/go-menu/internal/runtimeconfig"
	"github.com/crystalplaza/go-menu/internal/session"
	"github.com/crystalplaza/go-menu/internal/translate"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
)

// CommandHandlers groups the admin command surface so hosts can register
// every handler with their dispatcher in one pass.
type CommandHandlers struct {
	AddCategory    *curationcmd.AddCategoryHandler
	EditCategory   *curationcmd.EditCategoryHandler
	DeleteCategory *curationcmd.DeleteCategoryHandler
	AddItem        *curationcmd.AddItemHandler
	EditItem       *curationcmd.EditItemHandler
	DeleteItem     *curationcmd.DeleteItemHandler
}

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	documents   catalog.DocumentRepository
	store       *catalog.Store
	seed        func() catalog.Catalog
	idGenerator curation.IDGenerator

	translator  translate.Translator
	curationSvc curation.Service
	sessionSvc  *session.Service

	handlers CommandHandlers
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies an already-open database handle, bypassing DSN-based opening.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache supplies the read-through cache used by the bun document repository.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithDocumentRepository overrides the catalog document repository binding.
func WithDocumentRepository(repo catalog.DocumentRepository) Option {
	return func(c *Container) {
		c.documents = repo
	}
}

// WithSeed overrides the catalog used when the durable store has no document.
func WithSeed(seed func() catalog.Catalog) Option {
	return func(c *Container) {
		c.seed = seed
	}
}

// WithIDGenerator overrides the id generator used for new catalog records.
func WithIDGenerator(generator curation.IDGenerator) Option {
	return func(c *Container) {
		c.idGenerator = generator
	}
}

// WithTranslator overrides the translation gateway binding.
func WithTranslator(translator translate.Translator) Option {
	return func(c *Container) {
		c.translator = translator
	}
}

// WithCurationService overrides the default curation service binding.
func WithCurationService(svc curation.Service) Option {
	return func(c *Container) {
		c.curationSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureStore()
	c.configureTranslator()

	if err := c.configureSession(); err != nil {
		return nil, err
	}

	if c.curationSvc == nil {
		c.curationSvc = curation.NewService(c.store,
			curation.WithTranslator(c.translator),
			curation.WithLogger(logging.CurationLogger(c.loggerProvider)),
			curation.WithIDGenerator(c.idGenerator),
		)
	}

	c.configureCommands()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStorage() error {
	if c.documents != nil {
		return nil
	}

	storage := c.Config.Storage
	switch storage.Provider {
	case "", "memory":
		c.documents = catalog.NewMemoryDocumentRepository()
		return nil
	case "bun":
		if c.bunDB == nil {
			db, err := openDatabase(storage)
			if err != nil {
				return err
			}
			c.bunDB = db
		}
		if err := catalog.CreateDocumentTable(context.Background(), c.bunDB); err != nil {
			return fmt.Errorf("di: ensure catalog table: %w", err)
		}
		if c.Config.Cache.Enabled && c.cacheService != nil && c.keySerializer != nil {
			c.documents = catalog.NewBunDocumentRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
			return nil
		}
		c.documents = catalog.NewBunDocumentRepository(c.bunDB)
		return nil
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrStorageProviderUnknown, storage.Provider)
	}
}

func openDatabase(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		sqlDB, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open sqlite database: %w", err)
		}
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		sqlDB, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open postgres database: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrStorageDriverUnknown, cfg.Driver)
	}
}

func (c *Container) configureStore() {
	storeOpts := []catalog.StoreOption{
		catalog.WithStoreLogger(logging.CatalogLogger(c.loggerProvider)),
	}
	if c.Config.Storage.Namespace != "" {
		storeOpts = append(storeOpts, catalog.WithNamespace(c.Config.Storage.Namespace))
	}
	if c.seed != nil {
		storeOpts = append(storeOpts, catalog.WithSeed(c.seed))
	}
	c.store = catalog.NewStore(c.documents, storeOpts...)
}

func (c *Container) configureTranslator() {
	if c.translator != nil {
		return
	}
	if !c.Config.Features.Translation {
		c.translator = translate.Disabled()
		return
	}

	geminiOpts := []translate.GeminiOption{
		translate.WithLogger(logging.TranslateLogger(c.loggerProvider)),
	}
	if model := c.Config.Translation.Model; model != "" {
		geminiOpts = append(geminiOpts, translate.WithModel(model))
	}
	if endpoint := c.Config.Translation.Endpoint; endpoint != "" {
		geminiOpts = append(geminiOpts, translate.WithEndpoint(endpoint))
	}
	if timeout := c.Config.Translation.Timeout; timeout > 0 {
		geminiOpts = append(geminiOpts, translate.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	c.translator = translate.NewGeminiClient(c.Config.Translation.APIKey, geminiOpts...)
}

func (c *Container) configureSession() error {
	if !c.Config.Features.Session {
		return nil
	}

	svc, err := session.NewService(session.Credentials{
		Username: c.Config.Session.Username,
		Password: c.Config.Session.Password,
	}, session.WithLogger(logging.SessionLogger(c.loggerProvider)))
	if err != nil {
		return err
	}
	c.sessionSvc = svc
	return nil
}

func (c *Container) configureCommands() {
	logger := commands.CommandLogger(c.loggerProvider, "curation")
	c.handlers = CommandHandlers{
		AddCategory:    curationcmd.NewAddCategoryHandler(c.curationSvc, logger),
		EditCategory:   curationcmd.NewEditCategoryHandler(c.curationSvc, logger),
		DeleteCategory: curationcmd.NewDeleteCategoryHandler(c.curationSvc, logger),
		AddItem:        curationcmd.NewAddItemHandler(c.curationSvc, logger),
		EditItem:       curationcmd.NewEditItemHandler(c.curationSvc, logger),
		DeleteItem:     curationcmd.NewDeleteItemHandler(c.curationSvc, logger),
	}
}

// Store returns the catalog store.
func (c *Container) Store() *catalog.Store {
	return c.store
}

// DocumentRepository returns the configured durable store binding.
func (c *Container) DocumentRepository() catalog.DocumentRepository {
	return c.documents
}

// CurationService returns the configured curation service.
func (c *Container) CurationService() curation.Service {
	return c.curationSvc
}

// SessionService returns the admin session service, nil when the session
// feature is disabled.
func (c *Container) SessionService() *session.Service {
	return c.sessionSvc
}

// Translator returns the configured translation gateway.
func (c *Container) Translator() translate.Translator {
	return c.translator
}

// Commands returns the admin command handlers.
func (c *Container) Commands() CommandHandlers {
	return c.handlers
}

// LoggerProvider returns the configured logger provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DB returns the database handle when the bun storage provider is active.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}
