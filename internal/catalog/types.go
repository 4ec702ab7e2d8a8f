package catalog

import "strings"

// Language identifies one of the four supported menu languages.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageRussian Language = "ru"
	LanguageChinese Language = "zh"
)

// Languages lists every supported language in display order. English is the
// canonical language; the rest are translation targets.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageArabic, LanguageRussian, LanguageChinese}
}

// ParseLanguage resolves a language code, defaulting to English for anything
// it does not recognise.
func ParseLanguage(code string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case LanguageArabic:
		return LanguageArabic
	case LanguageRussian:
		return LanguageRussian
	case LanguageChinese:
		return LanguageChinese
	default:
		return LanguageEnglish
	}
}

// MultilingualText pairs the canonical English text with its translated
// variants. The canonical slot is always authoritative; translated slots may
// be empty, meaning "not translated yet".
type MultilingualText struct {
	EN string `json:"en"`
	AR string `json:"ar"`
	RU string `json:"ru"`
	ZH string `json:"zh"`
}

// Get returns the slot for the requested language. Empty slots are returned
// as-is; callers decide whether a blank render is acceptable.
func (t MultilingualText) Get(lang Language) string {
	switch lang {
	case LanguageArabic:
		return t.AR
	case LanguageRussian:
		return t.RU
	case LanguageChinese:
		return t.ZH
	default:
		return t.EN
	}
}

// Complete reports whether all four slots hold non-empty text.
func (t MultilingualText) Complete() bool {
	return t.EN != "" && t.AR != "" && t.RU != "" && t.ZH != ""
}

// Canonical returns the trimmed canonical (English) text.
func (t MultilingualText) Canonical() string {
	return strings.TrimSpace(t.EN)
}

// Category groups food items for guest-facing tabs and admin filtering.
type Category struct {
	ID   string           `json:"id"`
	Name MultilingualText `json:"name"`
}

// FoodItem is a single dish on the menu. Category holds an id reference that
// is not enforced as a foreign key: items may dangle after a category delete
// and every reader must tolerate that.
type FoodItem struct {
	ID             string           `json:"id"`
	Name           MultilingualText `json:"name"`
	Description    MultilingualText `json:"description"`
	Price          float64          `json:"price"`
	Category       string           `json:"category"`
	ImageURL       string           `json:"imageUrl"`
	IsVegan        bool             `json:"isVegan"`
	IsVegetarian   bool             `json:"isVegetarian"`
	IsSpicy        bool             `json:"isSpicy"`
	IsAvailable    bool             `json:"isAvailable"`
	IsSpecialOffer bool             `json:"isSpecialOffer"`
}

// Catalog is the aggregate root: every category and item, in insertion
// order. Category order drives guest tab order, item order drives the
// default display order. All mutation happens by whole-aggregate
// replacement through the Store.
type Catalog struct {
	Categories []Category `json:"categories"`
	Items      []FoodItem `json:"items"`
}

// Clone returns a deep copy so callers can build a new aggregate without
// touching the committed one.
func (c Catalog) Clone() Catalog {
	copied := Catalog{}
	if len(c.Categories) > 0 {
		copied.Categories = make([]Category, len(c.Categories))
		copy(copied.Categories, c.Categories)
	}
	if len(c.Items) > 0 {
		copied.Items = make([]FoodItem, len(c.Items))
		copy(copied.Items, c.Items)
	}
	return copied
}

// Category returns the category with the given id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Item returns the item with the given id.
func (c Catalog) Item(id string) (FoodItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return FoodItem{}, false
}
