package guest_test

import (
	"testing"

	"github.com/crystalplaza/go-menu/internal/catalog"
	"github.com/crystalplaza/go-menu/internal/guest"
)

func guestCatalog() catalog.Catalog {
	return catalog.Catalog{
		Categories: []catalog.Category{
			{ID: "cat-1", Name: catalog.MultilingualText{EN: "Appetizers", AR: "مقبلات", RU: "Закуски", ZH: "小吃"}},
			{ID: "cat-2", Name: catalog.MultilingualText{EN: "Drinks"}},
		},
		Items: []catalog.FoodItem{
			{
				ID:          "item-1",
				Name:        catalog.MultilingualText{EN: "Hummus", AR: "حمص", RU: "Хумус", ZH: "鹰嘴豆泥"},
				Category:    "cat-1",
				Price:       15,
				IsAvailable: true,
			},
			{
				ID:          "item-2",
				Name:        catalog.MultilingualText{EN: "Off Menu Special"},
				Category:    "cat-1",
				IsAvailable: false,
			},
			{
				ID:          "item-3",
				Name:        catalog.MultilingualText{EN: "Orphan Dish"},
				Category:    "gone",
				IsAvailable: true,
			},
		},
	}
}

func TestVisibleItemsFiltersUnavailable(t *testing.T) {
	items := guest.VisibleItems(guestCatalog(), guest.CategoryAll)
	if len(items) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(items))
	}
	for _, item := range items {
		if !item.IsAvailable {
			t.Fatalf("unavailable item %q leaked into the guest view", item.ID)
		}
	}
}

func TestVisibleItemsCategoryScope(t *testing.T) {
	items := guest.VisibleItems(guestCatalog(), "cat-1")
	if len(items) != 1 || items[0].ID != "item-1" {
		t.Fatalf("expected only item-1 under cat-1, got %+v", items)
	}
}

func TestVisibleItemsDanglingReferenceOnlyUnderAll(t *testing.T) {
	scoped := guest.VisibleItems(guestCatalog(), "cat-2")
	if len(scoped) != 0 {
		t.Fatalf("dangling item must not appear under another category, got %+v", scoped)
	}

	all := guest.VisibleItems(guestCatalog(), guest.CategoryAll)
	found := false
	for _, item := range all {
		if item.ID == "item-3" {
			found = true
		}
	}
	if !found {
		t.Fatal("dangling item must appear under the all scope")
	}
}

func TestLocalizeRendersBlankForMissingSlots(t *testing.T) {
	item := catalog.FoodItem{
		ID:   "item-1",
		Name: catalog.MultilingualText{EN: "Hummus"},
	}

	view := guest.Localize(item, catalog.LanguageRussian)
	if view.Name != "" {
		t.Fatalf("missing translation must render blank, got %q", view.Name)
	}

	english := guest.Localize(item, catalog.LanguageEnglish)
	if english.Name != "Hummus" {
		t.Fatalf("canonical render broken: %q", english.Name)
	}
}

func TestMenuLocalizesVisibleItems(t *testing.T) {
	views := guest.Menu(guestCatalog(), catalog.LanguageArabic, "cat-1")
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].Name != "حمص" {
		t.Fatalf("expected Arabic name, got %q", views[0].Name)
	}
	if views[0].Price != 15 {
		t.Fatalf("price lost in localization: %v", views[0].Price)
	}
}

func TestTabsPreserveInsertionOrder(t *testing.T) {
	tabs := guest.Tabs(guestCatalog(), catalog.LanguageChinese)
	if len(tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(tabs))
	}
	if tabs[0].ID != "cat-1" || tabs[1].ID != "cat-2" {
		t.Fatalf("tab order must follow catalog insertion order, got %+v", tabs)
	}
	if tabs[0].Name != "小吃" {
		t.Fatalf("expected Chinese tab label, got %q", tabs[0].Name)
	}
	if tabs[1].Name != "" {
		t.Fatalf("untranslated tab must render blank, got %q", tabs[1].Name)
	}
}

func TestSupportedLanguages(t *testing.T) {
	langs := guest.SupportedLanguages()
	if len(langs) != 4 {
		t.Fatalf("expected 4 languages, got %d", len(langs))
	}
	if langs[0].Code != catalog.LanguageEnglish {
		t.Fatalf("English must lead the toggle order, got %q", langs[0].Code)
	}
	for _, lang := range langs {
		want := guest.DirectionLTR
		if lang.Code == catalog.LanguageArabic {
			want = guest.DirectionRTL
		}
		if lang.Direction != want {
			t.Fatalf("language %q: expected direction %q, got %q", lang.Code, want, lang.Direction)
		}
	}
}
