package parity

import (
	"testing"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

func TestReadPage_HTML(t *testing.T) {
	source := []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <title>PhD Funding Guide</title>
  <meta name="description" content="How to fund a doctorate.">
  <meta name="path_en" content="/guides/funding.html">
  <meta name="path_es" content="/es/guias/financiacion.html">
  <link rel="alternate" hreflang="en" href="https://example.edu/guides/funding.html">
  <link rel="alternate" hreflang="es" href="https://example.edu/es/guias/financiacion.html">
  <link rel="alternate" hreflang="x-default" href="https://example.edu/guides/funding.html">
</head>
<body><h1>PhD Funding Guide</h1></body>
</html>`)

	info, err := NewReader().ReadPage("/guides/funding.html", source)
	if err != nil {
		t.Fatalf("ReadPage() error = %v", err)
	}

	if info.Language != interfaces.LanguageEnglish {
		t.Fatalf("Language = %q", info.Language)
	}
	if info.Title != "PhD Funding Guide" {
		t.Fatalf("Title = %q", info.Title)
	}
	if info.Summary != "How to fund a doctorate." {
		t.Fatalf("Summary = %q", info.Summary)
	}
	if info.Declared.PathEN != "/guides/funding.html" || info.Declared.PathES != "/es/guias/financiacion.html" {
		t.Fatalf("Declared = %+v", info.Declared)
	}
	if len(info.Hreflang) != 3 {
		t.Fatalf("expected 3 hreflang links, got %d", len(info.Hreflang))
	}
	if info.Hreflang[1].Lang != "es" || info.Hreflang[1].Href != "https://example.edu/es/guias/financiacion.html" {
		t.Fatalf("Hreflang[1] = %+v", info.Hreflang[1])
	}
}

func TestReadPage_HTMLLangAttributeOverridesPath(t *testing.T) {
	source := []byte(`<html lang="es"><head><title>Nota</title></head><body></body></html>`)

	info, err := NewReader().ReadPage("/notes/nota.html", source)
	if err != nil {
		t.Fatalf("ReadPage() error = %v", err)
	}
	if info.Language != interfaces.LanguageSpanish {
		t.Fatalf("Language = %q, want es", info.Language)
	}
}

func TestReadPage_HTMLFallsBackToHeading(t *testing.T) {
	source := []byte(`<html><body><h1>Admissions Overview</h1></body></html>`)

	info, err := NewReader().ReadPage("/admissions.html", source)
	if err != nil {
		t.Fatalf("ReadPage() error = %v", err)
	}
	if info.Title != "Admissions Overview" {
		t.Fatalf("Title = %q", info.Title)
	}
}

func TestReadPage_Markdown(t *testing.T) {
	source := []byte(`---
title: Estrategias de financiacion
summary: Como financiar un doctorado.
language: es
path_en: /insights/funding-strategies.md
path_es: /es/insights/estrategias-de-financiacion.md
hreflang:
  - lang: en
    href: /insights/funding-strategies.md
  - lang: es
    href: /es/insights/estrategias-de-financiacion.md
---
Contenido del articulo.
`)

	info, err := NewReader().ReadPage("/es/insights/estrategias-de-financiacion.md", source)
	if err != nil {
		t.Fatalf("ReadPage() error = %v", err)
	}

	if info.Language != interfaces.LanguageSpanish {
		t.Fatalf("Language = %q", info.Language)
	}
	if info.Title != "Estrategias de financiacion" {
		t.Fatalf("Title = %q", info.Title)
	}
	if info.Declared.PathEN != "/insights/funding-strategies.md" {
		t.Fatalf("Declared.PathEN = %q", info.Declared.PathEN)
	}
	if len(info.Hreflang) != 2 {
		t.Fatalf("expected 2 hreflang links, got %d", len(info.Hreflang))
	}
	if string(info.Body) != "Contenido del articulo.\n" {
		t.Fatalf("Body = %q", info.Body)
	}
}

func TestReadPage_MarkdownLanguageFromPath(t *testing.T) {
	source := []byte("---\ntitle: Plain\n---\nBody.\n")

	info, err := NewReader().ReadPage("/notes/plain.md", source)
	if err != nil {
		t.Fatalf("ReadPage() error = %v", err)
	}
	if info.Language != interfaces.LanguageEnglish {
		t.Fatalf("Language = %q, want en", info.Language)
	}
}

func TestReadPage_MarkdownInvalidFrontmatter(t *testing.T) {
	source := []byte("---\ntitle: [unterminated\n---\nBody.\n")

	if _, err := NewReader().ReadPage("/notes/broken.md", source); err == nil {
		t.Fatal("expected error for invalid frontmatter")
	}
}
