package interfaces

import "strings"

// Language identifies one of the two supported content languages.
type Language string

const (
	// LanguageEnglish is the unprefixed default language.
	LanguageEnglish Language = "en"
	// LanguageSpanish is the language served under the /es/ path marker.
	LanguageSpanish Language = "es"
)

// Valid reports whether the language is one of the supported tags.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageSpanish
}

// Other returns the opposite language tag. Unknown tags map to English.
func (l Language) Other() Language {
	if l == LanguageSpanish {
		return LanguageEnglish
	}
	return LanguageSpanish
}

// ParseLanguage normalizes a raw language code into a Language tag.
func ParseLanguage(raw string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en", "en-us", "en-gb":
		return LanguageEnglish, true
	case "es", "es-es", "es-mx":
		return LanguageSpanish, true
	}
	return "", false
}

// SlugTranslator converts hyphen-delimited slugs between the two languages.
// Implementations must be pure: the same input always yields the same output,
// and tokens without a dictionary entry pass through verbatim.
type SlugTranslator interface {
	TranslateSlug(slug string, target Language) string
}

// PathTranslator converts full site paths between the two languages while
// preserving directory depth and the file extension.
type PathTranslator interface {
	TranslatePath(path string, target Language) string
}

// PathMetadata pairs the two language variants of one logical page.
type PathMetadata struct {
	PathEN string `json:"path_en"`
	PathES string `json:"path_es"`
}

// Zero reports whether the pair carries no paths.
func (m PathMetadata) Zero() bool {
	return m.PathEN == "" && m.PathES == ""
}

// Path returns the variant for the requested language.
func (m PathMetadata) Path(lang Language) string {
	if lang == LanguageSpanish {
		return m.PathES
	}
	return m.PathEN
}

// LocalizationStatus reports structural violations for a path pair. An empty
// Errors slice means the pair is valid; the status is the sole error channel
// for the metadata layer.
type LocalizationStatus struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// MetadataBuilder derives and validates bilingual path pairs.
type MetadataBuilder interface {
	NewPathMetadata(path string) PathMetadata
	AlternatePath(path string) string
	ValidatePathStructure(path string, expected Language) bool
	LocalizationStatus(meta PathMetadata) LocalizationStatus
}
