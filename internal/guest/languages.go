package guest

import "github.com/crystalplaza/go-menu/internal/catalog"

// Direction is the text direction of a language.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// LanguageInfo describes one selectable guest language.
type LanguageInfo struct {
	Code       catalog.Language `json:"code"`
	Display    string           `json:"display_name"`
	NativeName string           `json:"native_name"`
	Direction  Direction        `json:"direction"`
}

// SupportedLanguages lists the four guest languages in toggle order.
func SupportedLanguages() []LanguageInfo {
	return []LanguageInfo{
		{Code: catalog.LanguageEnglish, Display: "English", NativeName: "English", Direction: DirectionLTR},
		{Code: catalog.LanguageArabic, Display: "Arabic", NativeName: "العربية", Direction: DirectionRTL},
		{Code: catalog.LanguageRussian, Display: "Russian", NativeName: "Русский", Direction: DirectionLTR},
		{Code: catalog.LanguageChinese, Display: "Chinese", NativeName: "中文", Direction: DirectionLTR},
	}
}
