// Package menu is a multilingual restaurant menu engine: a curated catalog of
// categories and food items carrying synchronized English, Arabic, Russian,
// and Chinese text, with an admin curation surface and a read-only guest view.
package menu

import (
	"context"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/curation"
	"github.com/crystalplaza/go-menu/internal/di"
	"github.com/crystalplaza/go-menu/internal/guest"
	"github.com/crystalplaza/go-menu/internal/query"
	"github.com/crystalplaza/go-menu/internal/session"
	"github.com/crystalplaza/go-menu/internal/translate"
)

// Core catalog types.
type (
	Language         = catalog.Language
	MultilingualText = catalog.MultilingualText
	Category         = catalog.Category
	FoodItem         = catalog.FoodItem
	Catalog          = catalog.Catalog
	NotFoundError    = catalog.NotFoundError
)

// Supported languages.
const (
	LanguageEnglish = catalog.LanguageEnglish
	LanguageArabic  = catalog.LanguageArabic
	LanguageRussian = catalog.LanguageRussian
	LanguageChinese = catalog.LanguageChinese
)

// Dashboard query types.
type (
	Query        = query.Query
	Sort         = query.Sort
	Availability = query.Availability
)

// Query selector values.
const (
	CategoryAll = query.CategoryAll

	SortDefault    = query.SortDefault
	SortAscending  = query.SortAscending
	SortDescending = query.SortDescending

	AvailabilityAll       = query.AvailabilityAll
	AvailabilityAvailable = query.AvailabilityAvailable
	AvailabilityHidden    = query.AvailabilityHidden
)

// Guest view types.
type (
	ItemView     = guest.ItemView
	Tab          = guest.Tab
	LanguageInfo = guest.LanguageInfo
	Direction    = guest.Direction
)

// Curation surface types.
type (
	CurationService       = curation.Service
	AddCategoryRequest    = curation.AddCategoryRequest
	EditCategoryRequest   = curation.EditCategoryRequest
	DeleteCategoryRequest = curation.DeleteCategoryRequest
	AddItemRequest        = curation.AddItemRequest
	EditItemRequest       = curation.EditItemRequest
	DeleteItemRequest     = curation.DeleteItemRequest
	ItemPatch             = curation.ItemPatch
)

// Session and translation surface types.
type (
	SessionService = *session.Service
	Credentials    = session.Credentials
	Translator     = translate.Translator
)

// Curation and session errors surfaced to hosts.
var (
	ErrCategoryNameRequired = curation.ErrCategoryNameRequired
	ErrItemNameRequired     = curation.ErrItemNameRequired
	ErrDeleteNotConfirmed   = curation.ErrDeleteNotConfirmed
	ErrCredentialsRequired  = session.ErrCredentialsRequired
	ErrDocumentNotFound     = catalog.ErrDocumentNotFound
	ErrStoreUnavailable     = catalog.ErrStoreUnavailable
)

// ParseLanguage maps a code to a supported language, defaulting to English.
func ParseLanguage(code string) Language {
	return catalog.ParseLanguage(code)
}

// SupportedLanguages lists the guest language toggle entries.
func SupportedLanguages() []LanguageInfo {
	return guest.SupportedLanguages()
}

// Module represents the top level menu runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a menu module using the provided configuration and optional
// DI overrides. Storage defaults to the seed catalog until Start loads the
// persisted document.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	defaultOpts := []di.Option{di.WithSeed(SeedCatalog)}
	container, err := di.NewContainer(cfg, append(defaultOpts, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Start loads the persisted catalog document, falling back to the seed
// catalog when the store is empty or unreachable.
func (m *Module) Start(ctx context.Context) Catalog {
	return m.container.Store().Load(ctx)
}

// Catalog returns a deep copy of the committed catalog aggregate.
func (m *Module) Catalog() Catalog {
	return m.container.Store().Current()
}

// Curation returns the admin curation service.
func (m *Module) Curation() CurationService {
	return m.container.CurationService()
}

// Session returns the admin session service, nil when the session feature is
// disabled.
func (m *Module) Session() SessionService {
	return m.container.SessionService()
}

// Commands returns the admin command handlers for dispatcher registration.
func (m *Module) Commands() di.CommandHandlers {
	return m.container.Commands()
}

// Dashboard applies the admin dashboard query pipeline over the current
// catalog: category filter, multilingual search, availability filter, sort.
func (m *Module) Dashboard(q Query) []FoodItem {
	return query.Items(m.Catalog(), q)
}

// GuestMenu resolves the guest view for one language and category selection:
// available items only, localized, in catalog insertion order.
func (m *Module) GuestMenu(lang Language, category string) []ItemView {
	return guest.Menu(m.Catalog(), lang, category)
}

// GuestTabs resolves the localized category tabs in insertion order.
func (m *Module) GuestTabs(lang Language) []Tab {
	return guest.Tabs(m.Catalog(), lang)
}
