package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-bilingual/internal/parity"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Twin is the JSON sidecar generated next to every page. It records the
// page's bilingual linkage and a checksum of the source so consumers can
// detect stale artifacts.
type Twin struct {
	Path           string                  `json:"path"`
	Language       interfaces.Language     `json:"language"`
	Classification parity.Classification   `json:"classification"`
	Pair           interfaces.PathMetadata `json:"pair"`
	URL            string                  `json:"url,omitempty"`
	AlternateURL   string                  `json:"alternate_url,omitempty"`
	Title          string                  `json:"title,omitempty"`
	Summary        string                  `json:"summary,omitempty"`
	Checksum       string                  `json:"checksum"`
	BodyHTML       string                  `json:"body_html,omitempty"`
}

// Marshal renders the twin as indented JSON with a trailing newline.
func (t Twin) Marshal() ([]byte, error) {
	body, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generator: marshal twin %s: %w", t.Path, err)
	}
	return append(body, '\n'), nil
}

// TwinPath derives the sidecar location for a page: the extension is replaced
// with ".twin.json" so the twin sits next to its source.
func TwinPath(sitePath string) string {
	ext := path.Ext(sitePath)
	return strings.TrimSuffix(sitePath, ext) + ".twin.json"
}

// TwinBuilder renders twins, converting Markdown bodies to HTML with the
// shared goldmark engine.
type TwinBuilder struct {
	engine   goldmark.Markdown
	resolver *URLResolver
}

// NewTwinBuilder constructs a builder. The goldmark engine is stateless so a
// single builder can serve concurrent callers.
func NewTwinBuilder(resolver *URLResolver) *TwinBuilder {
	return &TwinBuilder{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		resolver: resolver,
	}
}

// Build assembles the twin for one classified page.
func (b *TwinBuilder) Build(info interfaces.PageInfo, result parity.PageResult) (Twin, error) {
	twin := Twin{
		Path:           result.Path,
		Language:       result.Language,
		Classification: result.Classification,
		Pair:           result.Pair,
		Title:          info.Title,
		Summary:        info.Summary,
		Checksum:       checksum(info.Body),
	}

	url, err := b.resolver.Absolute(result.Path)
	if err != nil {
		return Twin{}, fmt.Errorf("generator: resolve %s: %w", result.Path, err)
	}
	twin.URL = url

	if result.Counterpart != "" {
		alternate, err := b.resolver.Absolute(result.Counterpart)
		if err != nil {
			return Twin{}, fmt.Errorf("generator: resolve %s: %w", result.Counterpart, err)
		}
		twin.AlternateURL = alternate
	}

	if isMarkdownPath(result.Path) && len(info.Body) > 0 {
		var buf bytes.Buffer
		if err := b.engine.Convert(info.Body, &buf); err != nil {
			return Twin{}, fmt.Errorf("generator: render %s: %w", result.Path, err)
		}
		twin.BodyHTML = buf.String()
	}

	return twin, nil
}

func checksum(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func isMarkdownPath(sitePath string) bool {
	switch strings.ToLower(path.Ext(sitePath)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
