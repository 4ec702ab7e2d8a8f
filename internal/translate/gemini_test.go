package translate_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crystalplaza/go-menu/internal/translate"
)

func geminiResponse(t *testing.T, payload map[string]string) []byte {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	wrapped, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]string{{"text": string(body)}},
			},
		}},
	})
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return wrapped
}

func TestGeminiTranslatePinsCanonicalSlot(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(geminiResponse(t, map[string]string{
			"en": "Paraphrased Grilled Salmon",
			"ar": "سلمون مشوي",
			"ru": "Лосось на гриле",
			"zh": "烤三文鱼",
		}))
	}))
	defer server.Close()

	client := translate.NewGeminiClient("test-key", translate.WithEndpoint(server.URL))
	got, err := client.Translate(context.Background(), "Grilled Salmon")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if got.EN != "Grilled Salmon" {
		t.Fatalf("canonical slot must be pinned to the input, got %q", got.EN)
	}
	if got.AR != "سلمون مشوي" || got.RU != "Лосось на гриле" || got.ZH != "烤三文鱼" {
		t.Fatalf("translated slots mismatch: %+v", got)
	}
	if !strings.Contains(gotPath, "generateContent") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
}

func TestGeminiTranslateUsesConfiguredModel(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(geminiResponse(t, map[string]string{"en": "x", "ar": "y", "ru": "z", "zh": "w"}))
	}))
	defer server.Close()

	client := translate.NewGeminiClient("test-key",
		translate.WithEndpoint(server.URL),
		translate.WithModel("gemini-custom"),
	)
	if _, err := client.Translate(context.Background(), "House Salad"); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !strings.Contains(gotPath, "gemini-custom") {
		t.Fatalf("expected configured model in path, got %q", gotPath)
	}
}

func TestGeminiTranslateShortInput(t *testing.T) {
	client := translate.NewGeminiClient("test-key")

	_, err := client.Translate(context.Background(), " x ")
	if !errors.Is(err, translate.ErrSourceTooShort) {
		t.Fatalf("expected ErrSourceTooShort, got %v", err)
	}
}

func TestGeminiTranslateMissingCredential(t *testing.T) {
	client := translate.NewGeminiClient("")

	_, err := client.Translate(context.Background(), "Grilled Salmon")
	if !errors.Is(err, translate.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestGeminiTranslateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := translate.NewGeminiClient("test-key", translate.WithEndpoint(server.URL))
	_, err := client.Translate(context.Background(), "Grilled Salmon")
	if !errors.Is(err, translate.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestGeminiTranslateMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]string{{"text": "not json"}},
				},
			}},
		})
		w.Write(wrapped)
	}))
	defer server.Close()

	client := translate.NewGeminiClient("test-key", translate.WithEndpoint(server.URL))
	_, err := client.Translate(context.Background(), "Grilled Salmon")
	if !errors.Is(err, translate.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestDisabledTranslator(t *testing.T) {
	_, err := translate.Disabled().Translate(context.Background(), "Grilled Salmon")
	if !errors.Is(err, translate.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestTranslatable(t *testing.T) {
	if translate.Translatable(" x ") {
		t.Fatal("single character input must not be translatable")
	}
	if !translate.Translatable("ok") {
		t.Fatal("two characters meet the minimum length")
	}
}
