package generator

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bilingual/internal/parity"
)

type sitemapEntry struct {
	Location   string
	Alternates []sitemapAlternate
}

type sitemapAlternate struct {
	Hreflang string
	Href     string
}

// BuildSitemap renders a sitemap covering every inspectable page in the
// report. Pages from valid pairs carry hreflang alternates for both languages
// plus an x-default pointing at the English variant. Entries are sorted and
// deduplicated so output is stable across runs.
func BuildSitemap(report parity.Report, resolver *URLResolver) (string, error) {
	entries := make([]sitemapEntry, 0, len(report.Pages))
	seen := map[string]struct{}{}
	for _, page := range report.Pages {
		if page.Classification == parity.ClassificationInspectionFailed {
			continue
		}
		location, err := resolver.Absolute(page.Path)
		if err != nil {
			return "", fmt.Errorf("generator: resolve %s: %w", page.Path, err)
		}
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		entry := sitemapEntry{Location: location}
		if page.Classification == parity.ClassificationPairedValid {
			entry.Alternates, err = pairAlternates(page, resolver)
			if err != nil {
				return "", err
			}
		}
		entries = append(entries, entry)
	}

	// Report pages arrive sorted by site path, which keeps locations sorted
	// for a single-host resolver.
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", entry.Location))
		for _, alt := range entry.Alternates {
			builder.WriteString(fmt.Sprintf("    <xhtml:link rel=\"alternate\" hreflang=%q href=%q/>\n", alt.Hreflang, alt.Href))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String(), nil
}

func pairAlternates(page parity.PageResult, resolver *URLResolver) ([]sitemapAlternate, error) {
	hrefEN, err := resolver.Absolute(page.Pair.PathEN)
	if err != nil {
		return nil, fmt.Errorf("generator: resolve %s: %w", page.Pair.PathEN, err)
	}
	hrefES, err := resolver.Absolute(page.Pair.PathES)
	if err != nil {
		return nil, fmt.Errorf("generator: resolve %s: %w", page.Pair.PathES, err)
	}
	return []sitemapAlternate{
		{Hreflang: "en", Href: hrefEN},
		{Hreflang: "es", Href: hrefES},
		{Hreflang: "x-default", Href: hrefEN},
	}, nil
}

// BuildRobots renders a robots.txt advertising the sitemap location.
func BuildRobots(resolver *URLResolver) (string, error) {
	sitemapURL, err := resolver.Artifact(RouteSitemap)
	if err != nil {
		return "", fmt.Errorf("generator: resolve sitemap route: %w", err)
	}

	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Sitemap: %s\n", sitemapURL))
	return builder.String(), nil
}
