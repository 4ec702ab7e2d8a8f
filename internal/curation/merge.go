package curation

import "github.com/crystalplaza/go-menu/internal/catalog"

// ItemPatch carries the fields an edit replaces. Nil means "leave as is".
// Name and Description replace the whole MultilingualText rather than
// merging per language: a changed canonical text makes old translations
// stale, so partial merges would keep text that no longer matches.
type ItemPatch struct {
	Name           *catalog.MultilingualText
	Description    *catalog.MultilingualText
	Price          *float64
	Category       *string
	ImageURL       *string
	IsVegan        *bool
	IsVegetarian   *bool
	IsSpicy        *bool
	IsAvailable    *bool
	IsSpecialOffer *bool
}

// mergeItem applies the patch over the existing record with shallow
// field-replacement semantics.
func mergeItem(existing catalog.FoodItem, patch ItemPatch) catalog.FoodItem {
	merged := existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		merged.ImageURL = *patch.ImageURL
	}
	if patch.IsVegan != nil {
		merged.IsVegan = *patch.IsVegan
	}
	if patch.IsVegetarian != nil {
		merged.IsVegetarian = *patch.IsVegetarian
	}
	if patch.IsSpicy != nil {
		merged.IsSpicy = *patch.IsSpicy
	}
	if patch.IsAvailable != nil {
		merged.IsAvailable = *patch.IsAvailable
	}
	if patch.IsSpecialOffer != nil {
		merged.IsSpecialOffer = *patch.IsSpecialOffer
	}
	return merged
}
