// Package curation implements the admin-side business rules for the menu
// catalog: id assignment, validation, merge-on-edit semantics, and the
// translation-completeness policy applied on every save.
package curation

import (
	"context"
	"errors"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/logging"
	"github.com/crystalplaza/go-menu/internal/translate"
	"github.com/crystalplaza/go-menu/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrCategoryNameRequired = errors.New("curation: category canonical name is required")
	ErrItemNameRequired     = errors.New("curation: item canonical name is required")
	ErrDeleteNotConfirmed   = errors.New("curation: destructive delete requires an explicit confirmation")
)

// Service exposes the content curation use-cases. Every operation commits a
// whole new catalog through the store, or fails without mutating anything.
type Service interface {
	AddCategory(ctx context.Context, req AddCategoryRequest) (catalog.Catalog, error)
	EditCategory(ctx context.Context, req EditCategoryRequest) (catalog.Catalog, error)
	DeleteCategory(ctx context.Context, req DeleteCategoryRequest) (catalog.Catalog, error)
	AddItem(ctx context.Context, req AddItemRequest) (catalog.Catalog, error)
	EditItem(ctx context.Context, req EditItemRequest) (catalog.Catalog, error)
	DeleteItem(ctx context.Context, req DeleteItemRequest) (catalog.Catalog, error)
}

// AddCategoryRequest captures the information required to create a category.
type AddCategoryRequest struct {
	Name catalog.MultilingualText
}

// EditCategoryRequest replaces the name of an existing category in place.
type EditCategoryRequest struct {
	ID   string
	Name catalog.MultilingualText
}

// DeleteCategoryRequest removes a category. Confirmed records that the user
// answered the confirmation prompt upstream; the engine refuses destructive
// deletes without it. Items referencing the category are left untouched.
type DeleteCategoryRequest struct {
	ID        string
	Confirmed bool
}

// AddItemRequest captures the fields supplied on item creation. Pointer
// fields distinguish "omitted" from explicit false/zero so defaults apply
// only when the caller stayed silent.
type AddItemRequest struct {
	Name           catalog.MultilingualText
	Description    catalog.MultilingualText
	Price          *float64
	Category       string
	ImageURL       string
	IsVegan        *bool
	IsVegetarian   *bool
	IsSpicy        *bool
	IsAvailable    *bool
	IsSpecialOffer *bool
}

// EditItemRequest merges the patch over an existing item.
type EditItemRequest struct {
	ID    string
	Patch ItemPatch
}

// DeleteItemRequest removes an item by id after upstream confirmation.
type DeleteItemRequest struct {
	ID        string
	Confirmed bool
}

// IDGenerator produces opaque unique ids for new records.
type IDGenerator func() string

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithIDGenerator overrides the id generator used for new records.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithTranslator injects the translation gateway. Defaults to a disabled
// gateway, which leaves translated slots empty.
func WithTranslator(translator translate.Translator) ServiceOption {
	return func(s *service) {
		if translator != nil {
			s.translator = translator
		}
	}
}

// WithLogger injects the curation logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	store      *catalog.Store
	translator translate.Translator
	id         IDGenerator
	logger     interfaces.Logger
}

// NewService constructs the curation engine over the supplied catalog store.
func NewService(store *catalog.Store, opts ...ServiceOption) Service {
	s := &service{
		store:      store,
		translator: translate.Disabled(),
		id:         uuid.NewString,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCategory validates, translates, and appends a new category.
func (s *service) AddCategory(ctx context.Context, req AddCategoryRequest) (catalog.Catalog, error) {
	if req.Name.Canonical() == "" {
		return catalog.Catalog{}, ErrCategoryNameRequired
	}

	name := s.ensureTranslations(ctx, req.Name)

	next := s.store.Current()
	next.Categories = append(next.Categories, catalog.Category{
		ID:   s.id(),
		Name: name,
	})
	s.store.Replace(ctx, next)
	s.logger.Info("curation.category.added", "name", name.Canonical())
	return next, nil
}

// EditCategory replaces only the name field, preserving position.
func (s *service) EditCategory(ctx context.Context, req EditCategoryRequest) (catalog.Catalog, error) {
	if req.Name.Canonical() == "" {
		return catalog.Catalog{}, ErrCategoryNameRequired
	}

	next := s.store.Current()
	idx := categoryIndex(next, req.ID)
	if idx < 0 {
		return catalog.Catalog{}, &catalog.NotFoundError{Resource: "category", Key: req.ID}
	}

	next.Categories[idx].Name = s.ensureTranslations(ctx, req.Name)
	s.store.Replace(ctx, next)
	s.logger.Info("curation.category.edited", "category_id", req.ID)
	return next, nil
}

// DeleteCategory removes the category. Items referencing it keep their
// dangling reference; readers treat them as uncategorized.
func (s *service) DeleteCategory(ctx context.Context, req DeleteCategoryRequest) (catalog.Catalog, error) {
	if !req.Confirmed {
		return catalog.Catalog{}, ErrDeleteNotConfirmed
	}

	next := s.store.Current()
	idx := categoryIndex(next, req.ID)
	if idx < 0 {
		return catalog.Catalog{}, &catalog.NotFoundError{Resource: "category", Key: req.ID}
	}

	next.Categories = append(next.Categories[:idx], next.Categories[idx+1:]...)
	s.store.Replace(ctx, next)
	s.logger.Info("curation.category.deleted", "category_id", req.ID)
	return next, nil
}

// AddItem validates, applies creation defaults, translates, and appends a
// new item to the end of the sequence.
func (s *service) AddItem(ctx context.Context, req AddItemRequest) (catalog.Catalog, error) {
	if req.Name.Canonical() == "" {
		return catalog.Catalog{}, ErrItemNameRequired
	}

	item := catalog.FoodItem{
		ID:          s.id(),
		Name:        s.ensureTranslations(ctx, req.Name),
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.Description.Canonical() != "" {
		item.Description = s.ensureTranslations(ctx, req.Description)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsVegan != nil {
		item.IsVegan = *req.IsVegan
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.IsSpicy != nil {
		item.IsSpicy = *req.IsSpicy
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsSpecialOffer != nil {
		item.IsSpecialOffer = *req.IsSpecialOffer
	}

	next := s.store.Current()
	next.Items = append(next.Items, item)
	s.store.Replace(ctx, next)
	s.logger.Info("curation.item.added", "item_id", item.ID, "name", item.Name.Canonical())
	return next, nil
}

// EditItem merges the patch over the existing record and re-runs the
// translation policy for any replaced text field.
func (s *service) EditItem(ctx context.Context, req EditItemRequest) (catalog.Catalog, error) {
	next := s.store.Current()
	idx := itemIndex(next, req.ID)
	if idx < 0 {
		return catalog.Catalog{}, &catalog.NotFoundError{Resource: "item", Key: req.ID}
	}

	if req.Patch.Name != nil && req.Patch.Name.Canonical() == "" {
		return catalog.Catalog{}, ErrItemNameRequired
	}

	merged := mergeItem(next.Items[idx], req.Patch)
	merged.Name = s.ensureTranslations(ctx, merged.Name)
	if merged.Description.Canonical() != "" {
		merged.Description = s.ensureTranslations(ctx, merged.Description)
	}
	next.Items[idx] = merged

	s.store.Replace(ctx, next)
	s.logger.Info("curation.item.edited", "item_id", req.ID)
	return next, nil
}

// DeleteItem removes the item by id.
func (s *service) DeleteItem(ctx context.Context, req DeleteItemRequest) (catalog.Catalog, error) {
	if !req.Confirmed {
		return catalog.Catalog{}, ErrDeleteNotConfirmed
	}

	next := s.store.Current()
	idx := itemIndex(next, req.ID)
	if idx < 0 {
		return catalog.Catalog{}, &catalog.NotFoundError{Resource: "item", Key: req.ID}
	}

	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	s.store.Replace(ctx, next)
	s.logger.Info("curation.item.deleted", "item_id", req.ID)
	return next, nil
}

// ensureTranslations applies the translation-completeness policy to one text
// field: skip the gateway when all four slots are already filled, otherwise
// call it once and pin the canonical slot to the original input. Gateway
// failure never blocks the save; the field keeps whatever slots it had.
func (s *service) ensureTranslations(ctx context.Context, text catalog.MultilingualText) catalog.MultilingualText {
	if text.Complete() {
		return text
	}
	if !translate.Translatable(text.EN) {
		return text
	}

	translated, err := s.translator.Translate(ctx, text.EN)
	if err != nil {
		s.logger.Warn("curation.translate.unavailable", "error", err)
		return text
	}

	// The gateway is trusted for translated slots only.
	translated.EN = text.EN
	return translated
}

func categoryIndex(c catalog.Catalog, id string) int {
	for i, cat := range c.Categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}

func itemIndex(c catalog.Catalog, id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
