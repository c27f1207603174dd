package translate

import (
	"strings"
	"testing"

	"github.com/goliatone/go-bilingual/internal/dictionary"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

func TestTranslateSlug_PhraseOverTokens(t *testing.T) {
	translator := NewSlugTranslator(nil)

	got := translator.TranslateSlug("phd-spanish-linguistics", interfaces.LanguageSpanish)
	if got != "doctorado-linguistica-espanola" {
		t.Fatalf("TranslateSlug() = %q, want doctorado-linguistica-espanola", got)
	}
}

func TestTranslateSlug_ReverseDirection(t *testing.T) {
	translator := NewSlugTranslator(nil)

	got := translator.TranslateSlug("doctorado-linguistica-espanola", interfaces.LanguageEnglish)
	if got != "phd-spanish-linguistics" {
		t.Fatalf("TranslateSlug() = %q, want phd-spanish-linguistics", got)
	}
}

func TestTranslateSlug_UnmappedTokensPassThrough(t *testing.T) {
	translator := NewSlugTranslator(nil)

	got := translator.TranslateSlug("university-of-example-college", interfaces.LanguageSpanish)
	if got != "universidad-de-example-facultad" {
		t.Fatalf("TranslateSlug() = %q, want universidad-de-example-facultad", got)
	}
}

func TestTranslateSlug_WholeSlugWinsBeforeTokenScan(t *testing.T) {
	dict, err := dictionary.New(map[string]string{
		"open":        "abierto",
		"access":      "acceso",
		"open-access": "acceso-abierto",
	})
	if err != nil {
		t.Fatalf("dictionary.New() error = %v", err)
	}
	translator := NewSlugTranslator(dict)

	if got := translator.TranslateSlug("open-access", interfaces.LanguageSpanish); got != "acceso-abierto" {
		t.Fatalf("TranslateSlug() = %q, want acceso-abierto", got)
	}
}

func TestTranslateSlug_LongestSpanPreferred(t *testing.T) {
	dict, err := dictionary.New(map[string]string{
		"research":         "investigacion",
		"research-methods": "metodos-de-investigacion",
		"methods":          "metodos",
	})
	if err != nil {
		t.Fatalf("dictionary.New() error = %v", err)
	}
	translator := NewSlugTranslator(dict)

	got := translator.TranslateSlug("advanced-research-methods", interfaces.LanguageSpanish)
	if got != "advanced-metodos-de-investigacion" {
		t.Fatalf("TranslateSlug() = %q, want advanced-metodos-de-investigacion", got)
	}
}

func TestTranslateSlug_EmptyAndUnmatched(t *testing.T) {
	translator := NewSlugTranslator(nil)

	if got := translator.TranslateSlug("", interfaces.LanguageSpanish); got != "" {
		t.Fatalf("TranslateSlug(empty) = %q, want empty", got)
	}
	if got := translator.TranslateSlug("wittgenstein", interfaces.LanguageSpanish); got != "wittgenstein" {
		t.Fatalf("TranslateSlug(unmatched) = %q, want wittgenstein", got)
	}
}

func TestTranslateSlug_NormalizesCase(t *testing.T) {
	translator := NewSlugTranslator(nil)

	if got := translator.TranslateSlug("PhD", interfaces.LanguageSpanish); got != "doctorado" {
		t.Fatalf("TranslateSlug(PhD) = %q, want doctorado", got)
	}
}

func TestTranslateSlug_Deterministic(t *testing.T) {
	translator := NewSlugTranslator(nil)

	first := translator.TranslateSlug("phd-funding-strategies", interfaces.LanguageSpanish)
	for i := 0; i < 10; i++ {
		if got := translator.TranslateSlug("phd-funding-strategies", interfaces.LanguageSpanish); got != first {
			t.Fatalf("TranslateSlug() varied between calls: %q vs %q", got, first)
		}
	}
}

func TestTranslateSlug_RoundTripForMappedSlugs(t *testing.T) {
	translator := NewSlugTranslator(nil)

	slugs := []string{
		"phd-spanish-linguistics",
		"funding-strategies",
		"graduate-school",
		"phd-funding-strategies",
		"masters-admissions",
	}
	for _, slug := range slugs {
		spanish := translator.TranslateSlug(slug, interfaces.LanguageSpanish)
		back := translator.TranslateSlug(spanish, interfaces.LanguageEnglish)
		if back != slug {
			t.Fatalf("round trip for %q: got %q via %q", slug, back, spanish)
		}
	}
}

// Unmapped proper nouns are not expected to round trip when the Spanish
// rendering collides with other vocabulary; they pass through instead.
func TestTranslateSlug_ProperNounsAreStable(t *testing.T) {
	translator := NewSlugTranslator(nil)

	spanish := translator.TranslateSlug("salamanca-campus", interfaces.LanguageSpanish)
	if !strings.Contains(spanish, "salamanca") {
		t.Fatalf("proper noun dropped from %q", spanish)
	}
}

func TestTranslateSlug_NoTokensDropped(t *testing.T) {
	translator := NewSlugTranslator(nil)

	input := "phd-admissions-wittgenstein-guides"
	got := translator.TranslateSlug(input, interfaces.LanguageSpanish)

	if got != "doctorado-admisiones-wittgenstein-guias" {
		t.Fatalf("TranslateSlug() = %q, want doctorado-admisiones-wittgenstein-guias", got)
	}
	if !strings.Contains(got, "wittgenstein") {
		t.Fatalf("unmapped token missing from %q", got)
	}
}
