package generator

import (
	"strings"
	"testing"
)

func TestURLResolver_Absolute(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager: NewSiteRouteManager("https://example.edu"),
	})

	url, err := resolver.Absolute("/guides/phd.html")
	if err != nil {
		t.Fatalf("Absolute() error = %v", err)
	}
	if url != "https://example.edu/guides/phd.html" {
		t.Fatalf("Absolute() = %q", url)
	}

	url, err = resolver.Absolute("/es/guias/doctorado.html")
	if err != nil {
		t.Fatalf("Absolute() error = %v", err)
	}
	if url != "https://example.edu/es/guias/doctorado.html" {
		t.Fatalf("Absolute() = %q", url)
	}
}

func TestUnescapeSitePath(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"https://example.edu/guides/phd.html", "https://example.edu/guides/phd.html"},
		{"https://example.edu/guides%2Fphd.html", "https://example.edu/guides/phd.html"},
		{"https://example.edu/guides%252Fphd.html", "https://example.edu/guides/phd.html"},
		{"https://example.edu/es%252Fguias%252Fdoctorado.html", "https://example.edu/es/guias/doctorado.html"},
	}
	for _, tc := range cases {
		if got := unescapeSitePath(tc.input); got != tc.want {
			t.Fatalf("unescapeSitePath(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestURLResolver_Artifact(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager: NewSiteRouteManager("https://example.edu/"),
	})

	url, err := resolver.Artifact(RouteSitemap)
	if err != nil {
		t.Fatalf("Artifact() error = %v", err)
	}
	if url != "https://example.edu/sitemap.xml" {
		t.Fatalf("Artifact(sitemap) = %q", url)
	}

	url, err = resolver.Artifact(RouteRobots)
	if err != nil {
		t.Fatalf("Artifact() error = %v", err)
	}
	if url != "https://example.edu/robots.txt" {
		t.Fatalf("Artifact(robots) = %q", url)
	}
}

func TestURLResolver_WithoutManager(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{})

	url, err := resolver.Absolute("/guides/phd.html")
	if err != nil {
		t.Fatalf("Absolute() error = %v", err)
	}
	if url != "/guides/phd.html" {
		t.Fatalf("Absolute() = %q", url)
	}

	url, err = resolver.Artifact(RouteSitemap)
	if err != nil {
		t.Fatalf("Artifact() error = %v", err)
	}
	if url != "/sitemap.xml" {
		t.Fatalf("Artifact(sitemap) = %q", url)
	}

	if _, err := resolver.Artifact("feed"); err == nil {
		t.Fatal("expected error for unknown artifact route")
	}
}

func TestURLResolver_UnknownGroup(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager: NewSiteRouteManager("https://example.edu"),
		Group:   "missing",
	})

	if _, err := resolver.Absolute("/guides/phd.html"); err == nil {
		t.Fatal("expected error for unknown route group")
	} else if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error = %v", err)
	}
}
