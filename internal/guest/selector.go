// Package guest derives the read-only guest-facing view: available items
// only, category scoped, rendered in one of the four supported languages.
// Guests never trigger translation and never mutate the catalog.
package guest

import "github.com/crystalplaza/go-menu/internal/catalog"

// ItemView is the label bundle for one item resolved to a single language.
// Missing translated slots render as empty strings; the selector never
// substitutes English for an untranslated slot.
type ItemView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	ImageURL       string  `json:"imageUrl"`
	IsVegan        bool    `json:"isVegan"`
	IsVegetarian   bool    `json:"isVegetarian"`
	IsSpicy        bool    `json:"isSpicy"`
	IsSpecialOffer bool    `json:"isSpecialOffer"`
}

// Tab is a category tab resolved to a single language, in catalog insertion
// order.
type Tab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryAll shows every available item regardless of category.
const CategoryAll = "all"

// VisibleItems selects the guest-visible subset: available items in catalog
// insertion order, optionally scoped to one category. Items with a dangling
// category reference only appear under CategoryAll.
func VisibleItems(c catalog.Catalog, category string) []catalog.FoodItem {
	out := make([]catalog.FoodItem, 0, len(c.Items))
	for _, item := range c.Items {
		if !item.IsAvailable {
			continue
		}
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Localize resolves one item's label bundle for the requested language.
func Localize(item catalog.FoodItem, lang catalog.Language) ItemView {
	return ItemView{
		ID:             item.ID,
		Name:           item.Name.Get(lang),
		Description:    item.Description.Get(lang),
		Price:          item.Price,
		Category:       item.Category,
		ImageURL:       item.ImageURL,
		IsVegan:        item.IsVegan,
		IsVegetarian:   item.IsVegetarian,
		IsSpicy:        item.IsSpicy,
		IsSpecialOffer: item.IsSpecialOffer,
	}
}

// Menu resolves the full guest view for one language and category selection.
func Menu(c catalog.Catalog, lang catalog.Language, category string) []ItemView {
	items := VisibleItems(c, category)
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		out = append(out, Localize(item, lang))
	}
	return out
}

// Tabs resolves the category tabs for one language, preserving insertion
// order so the guest page tab order follows the admin's arrangement.
func Tabs(c catalog.Catalog, lang catalog.Language) []Tab {
	out := make([]Tab, 0, len(c.Categories))
	for _, cat := range c.Categories {
		out = append(out, Tab{ID: cat.ID, Name: cat.Name.Get(lang)})
	}
	return out
}
