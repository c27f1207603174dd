package parity

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-bilingual/internal/translate"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Reader extracts page metadata from raw content bytes. HTML pages declare
// their pair through meta tags and hreflang link elements; Markdown pages
// declare it through frontmatter keys.
type Reader struct{}

// NewReader constructs a page reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ interfaces.PageReader = (*Reader)(nil)

// ReadPage parses source according to the page's extension. The site path
// determines both the format and the page language.
func (r *Reader) ReadPage(sitePath string, source []byte) (interfaces.PageInfo, error) {
	info := interfaces.PageInfo{
		Path:     sitePath,
		Language: languageForPath(sitePath),
		Body:     source,
	}

	switch strings.ToLower(path.Ext(sitePath)) {
	case ".md", ".markdown":
		return readMarkdown(info, source)
	default:
		return readHTML(info, source)
	}
}

func languageForPath(sitePath string) interfaces.Language {
	if translate.IsSpanishPath(sitePath) {
		return interfaces.LanguageSpanish
	}
	return interfaces.LanguageEnglish
}

func readHTML(info interfaces.PageInfo, source []byte) (interfaces.PageInfo, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(source))
	if err != nil {
		return info, fmt.Errorf("parse html %s: %w", info.Path, err)
	}

	info.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if info.Title == "" {
		info.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		info.Summary = strings.TrimSpace(content)
	}

	if lang, ok := doc.Find("html").Attr("lang"); ok {
		if parsed, valid := interfaces.ParseLanguage(lang); valid {
			info.Language = parsed
		}
	}

	if content, ok := doc.Find(`meta[name="path_en"]`).Attr("content"); ok {
		info.Declared.PathEN = strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[name="path_es"]`).Attr("content"); ok {
		info.Declared.PathES = strings.TrimSpace(content)
	}

	doc.Find(`link[rel="alternate"]`).Each(func(_ int, sel *goquery.Selection) {
		lang, hasLang := sel.Attr("hreflang")
		href, hasHref := sel.Attr("href")
		if !hasLang || !hasHref {
			return
		}
		info.Hreflang = append(info.Hreflang, interfaces.HreflangLink{
			Lang: strings.ToLower(strings.TrimSpace(lang)),
			Href: strings.TrimSpace(href),
		})
	})

	return info, nil
}

type markdownEnvelope struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Language string `yaml:"language"`
	PathEN   string `yaml:"path_en"`
	PathES   string `yaml:"path_es"`
	Hreflang []struct {
		Lang string `yaml:"lang"`
		Href string `yaml:"href"`
	} `yaml:"hreflang"`
}

func readMarkdown(info interfaces.PageInfo, source []byte) (interfaces.PageInfo, error) {
	var meta markdownEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return info, fmt.Errorf("parse frontmatter %s: %w", info.Path, err)
	}

	info.Title = strings.TrimSpace(meta.Title)
	info.Summary = strings.TrimSpace(meta.Summary)
	info.Body = body

	if parsed, valid := interfaces.ParseLanguage(meta.Language); valid {
		info.Language = parsed
	}

	info.Declared.PathEN = strings.TrimSpace(meta.PathEN)
	info.Declared.PathES = strings.TrimSpace(meta.PathES)

	for _, link := range meta.Hreflang {
		info.Hreflang = append(info.Hreflang, interfaces.HreflangLink{
			Lang: strings.ToLower(strings.TrimSpace(link.Lang)),
			Href: strings.TrimSpace(link.Href),
		})
	}

	return info, nil
}
