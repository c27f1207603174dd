package translate

import (
	"strings"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

const spanishMarker = "es/"

// PathTranslator translates entire site paths, segment by segment, while
// preserving directory depth and the file extension and applying or removing
// the /es/ language marker.
type PathTranslator struct {
	slugs *SlugTranslator
}

// NewPathTranslator constructs a path translator over the given slug
// translator, falling back to the default dictionary when none is supplied.
func NewPathTranslator(slugs *SlugTranslator) *PathTranslator {
	if slugs == nil {
		slugs = NewSlugTranslator(nil)
	}
	return &PathTranslator{slugs: slugs}
}

var _ interfaces.PathTranslator = (*PathTranslator)(nil)

// TranslatePath rewrites a site path into the target language. A missing
// leading slash is tolerated rather than rejected; translation is keyed only
// by target so already-translated input degrades to a best-effort result.
func (t *PathTranslator) TranslatePath(path string, target interfaces.Language) string {
	rest := strings.TrimPrefix(strings.TrimSpace(path), "/")
	rest = stripSpanishMarker(rest)

	dir, file := splitDirFile(rest)
	name, ext := splitExtension(file)

	var builder strings.Builder
	builder.WriteString("/")
	if target == interfaces.LanguageSpanish {
		builder.WriteString(spanishMarker)
	}

	if dir != "" {
		segments := strings.Split(dir, "/")
		for i, segment := range segments {
			if i > 0 {
				builder.WriteString("/")
			}
			builder.WriteString(t.slugs.TranslateSlug(segment, target))
		}
		builder.WriteString("/")
	}

	if name != "" {
		builder.WriteString(t.slugs.TranslateSlug(name, target))
	}
	builder.WriteString(ext)

	return builder.String()
}

// Slugs exposes the slug translator backing this path translator.
func (t *PathTranslator) Slugs() *SlugTranslator {
	if t == nil {
		return nil
	}
	return t.slugs
}

func stripSpanishMarker(rest string) string {
	if len(rest) >= len(spanishMarker) && strings.EqualFold(rest[:len(spanishMarker)], spanishMarker) {
		return rest[len(spanishMarker):]
	}
	return rest
}

func splitDirFile(rest string) (string, string) {
	idx := strings.LastIndex(rest, "/")
	if idx < 0 {
		return "", rest
	}
	return rest[:idx], rest[idx+1:]
}

// splitExtension separates the filename stem from its extension. Dotfiles
// and extension-less names yield an empty extension.
func splitExtension(file string) (string, string) {
	idx := strings.LastIndex(file, ".")
	if idx <= 0 {
		return file, ""
	}
	return file[:idx], file[idx:]
}
