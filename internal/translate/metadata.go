package translate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

const spanishPrefix = "/" + spanishMarker

// MetadataBuilder derives the bilingual path pair for a single input path and
// reports structural violations. The layer never returns errors; the
// violation list from LocalizationStatus is its sole failure channel.
type MetadataBuilder struct {
	paths *PathTranslator
}

// NewMetadataBuilder constructs a builder over the given path translator,
// falling back to the default dictionary when none is supplied.
func NewMetadataBuilder(paths *PathTranslator) *MetadataBuilder {
	if paths == nil {
		paths = NewPathTranslator(nil)
	}
	return &MetadataBuilder{paths: paths}
}

var _ interfaces.MetadataBuilder = (*MetadataBuilder)(nil)

// NewPathMetadata determines the input's language from the /es/ prefix and
// computes the counterpart path, returning both variants labeled correctly.
func (b *MetadataBuilder) NewPathMetadata(path string) interfaces.PathMetadata {
	normalized := ensureLeadingSlash(path)
	if IsSpanishPath(normalized) {
		return interfaces.PathMetadata{
			PathEN: b.paths.TranslatePath(normalized, interfaces.LanguageEnglish),
			PathES: normalized,
		}
	}
	return interfaces.PathMetadata{
		PathEN: normalized,
		PathES: b.paths.TranslatePath(normalized, interfaces.LanguageSpanish),
	}
}

// AlternatePath returns only the opposite-language path for the input.
func (b *MetadataBuilder) AlternatePath(path string) string {
	meta := b.NewPathMetadata(path)
	if IsSpanishPath(ensureLeadingSlash(path)) {
		return meta.PathEN
	}
	return meta.PathES
}

// ValidatePathStructure reports whether the presence or absence of the /es/
// prefix matches the expected language.
func (b *MetadataBuilder) ValidatePathStructure(path string, expected interfaces.Language) bool {
	spanish := IsSpanishPath(ensureLeadingSlash(path))
	return spanish == (expected == interfaces.LanguageSpanish)
}

// LocalizationStatus runs the structural checks over a path pair and returns
// human-readable violation messages. An empty list means the pair is valid.
func (b *MetadataBuilder) LocalizationStatus(meta interfaces.PathMetadata) interfaces.LocalizationStatus {
	errs := []string{}

	pathEN := strings.TrimSpace(meta.PathEN)
	pathES := strings.TrimSpace(meta.PathES)

	if pathEN == pathES {
		errs = append(errs, "English and Spanish paths must be different")
	}
	if IsSpanishPath(pathEN) {
		errs = append(errs, fmt.Sprintf("English path should not start with %s: %s", spanishPrefix, pathEN))
	}
	if !IsSpanishPath(pathES) {
		errs = append(errs, fmt.Sprintf("Spanish path should start with %s: %s", spanishPrefix, pathES))
	}

	return interfaces.LocalizationStatus{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// IsSpanishPath reports whether the path carries the Spanish language marker.
// The check is case-insensitive.
func IsSpanishPath(path string) bool {
	return len(path) >= len(spanishPrefix) && strings.EqualFold(path[:len(spanishPrefix)], spanishPrefix)
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if !strings.HasPrefix(trimmed, "/") {
		return "/" + trimmed
	}
	return trimmed
}
