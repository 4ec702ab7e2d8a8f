// Package translate holds the async boundary between the curation engine and
// the external AI translation service. The gateway receives one canonical
// English string and returns a complete four-language record, or a failure
// signal; it never touches catalog state itself.
package translate

import (
	"context"
	"errors"
	"strings"

	"github.com/crystalplaza/go-menu/internal/catalog"
)

// MinSourceLength is the minimum trimmed input length worth sending to the
// gateway. Shorter inputs short-circuit without a network call.
const MinSourceLength = 2

// ErrTranslationUnavailable covers every gateway failure mode: missing
// credential, transport error, empty body, malformed payload, timeout.
// Callers treat them all identically and proceed without translations.
var ErrTranslationUnavailable = errors.New("translate: translation unavailable")

// ErrSourceTooShort signals an input below MinSourceLength.
var ErrSourceTooShort = errors.New("translate: source text too short")

// Translator sends canonical English text to the translation service and
// returns all four language slots populated. The canonical slot of the
// result is not trustworthy: the service may paraphrase, so callers must
// force-overwrite it with the original input.
type Translator interface {
	Translate(ctx context.Context, text string) (catalog.MultilingualText, error)
}

// TranslatorFunc adapts a function to the Translator contract.
type TranslatorFunc func(ctx context.Context, text string) (catalog.MultilingualText, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(ctx context.Context, text string) (catalog.MultilingualText, error) {
	return f(ctx, text)
}

// Disabled returns a translator that always reports the gateway unavailable.
// It keeps wiring simple for configs without a credential.
func Disabled() Translator {
	return TranslatorFunc(func(context.Context, string) (catalog.MultilingualText, error) {
		return catalog.MultilingualText{}, ErrTranslationUnavailable
	})
}

// Translatable reports whether text is long enough to send to the gateway.
func Translatable(text string) bool {
	return len(strings.TrimSpace(text)) >= MinSourceLength
}
