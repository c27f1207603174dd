package translate

import (
	"strings"

	goslug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-bilingual/internal/dictionary"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// SlugTranslator converts hyphen-delimited slugs between English and Spanish
// by greedy longest-match phrase resolution over an immutable dictionary.
// Tokens without an entry pass through verbatim so proper nouns and unmapped
// vocabulary degrade gracefully instead of failing.
type SlugTranslator struct {
	dict *dictionary.Dictionary
}

// NewSlugTranslator constructs a translator over the provided dictionary,
// falling back to the built-in table when none is supplied.
func NewSlugTranslator(dict *dictionary.Dictionary) *SlugTranslator {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &SlugTranslator{dict: dict}
}

var _ interfaces.SlugTranslator = (*SlugTranslator)(nil)

// TranslateSlug translates a hyphen-delimited slug into the target language.
// The whole slug is tried first so fixed compounds win outright; otherwise
// tokens are scanned left to right, preferring the longest matching span.
// Every input token appears in the output, translated or unchanged.
func (t *SlugTranslator) TranslateSlug(slug string, target interfaces.Language) string {
	normalized := normalizeSlug(slug)
	if normalized == "" {
		return slug
	}

	dir := directionFor(target)
	if whole, ok := t.dict.Lookup(normalized, dir); ok {
		return whole
	}

	tokens := strings.Split(normalized, "-")
	pieces := make([]string, 0, len(tokens))
	maxSpan := t.dict.MaxSpan()

	for i := 0; i < len(tokens); {
		span := maxSpan
		if rest := len(tokens) - i; span > rest {
			span = rest
		}

		matched := false
		for ; span >= 1; span-- {
			phrase := strings.Join(tokens[i:i+span], "-")
			if translated, ok := t.dict.Lookup(phrase, dir); ok {
				pieces = append(pieces, translated)
				i += span
				matched = true
				break
			}
		}
		if !matched {
			pieces = append(pieces, tokens[i])
			i++
		}
	}

	return strings.Join(pieces, "-")
}

// Dictionary exposes the table backing this translator.
func (t *SlugTranslator) Dictionary() *dictionary.Dictionary {
	if t == nil {
		return nil
	}
	return t.dict
}

func directionFor(target interfaces.Language) dictionary.Direction {
	if target == interfaces.LanguageSpanish {
		return dictionary.EnglishToSpanish
	}
	return dictionary.SpanishToEnglish
}

// normalizeSlug lowercases and, when the input is not already a valid slug,
// runs it through go-slug's normalizer. Inputs the normalizer rejects fall
// back to plain lowercasing so translation never raises.
func normalizeSlug(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return ""
	}
	if goslug.IsValid(trimmed) {
		return trimmed
	}
	if normalized, err := goslug.Normalize(trimmed); err == nil && normalized != "" {
		return normalized
	}
	return trimmed
}
