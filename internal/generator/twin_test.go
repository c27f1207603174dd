package generator

import (
	"strings"
	"testing"

	"github.com/goliatone/go-bilingual/internal/parity"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

func TestTwinPath(t *testing.T) {
	cases := map[string]string{
		"/guides/phd.html": "/guides/phd.twin.json",
		"/notes/plan.md":   "/notes/plan.twin.json",
		"/guides/phd":      "/guides/phd.twin.json",
	}
	for input, want := range cases {
		if got := TwinPath(input); got != want {
			t.Fatalf("TwinPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTwinBuilder_MarkdownBody(t *testing.T) {
	builder := NewTwinBuilder(NewURLResolver(URLResolverOptions{}))

	info := interfaces.PageInfo{
		Path:     "/notes/plan.md",
		Language: interfaces.LanguageEnglish,
		Title:    "Plan",
		Body:     []byte("# Plan\n\nFirst step.\n"),
	}
	result := parity.PageResult{
		Path:           "/notes/plan.md",
		Language:       interfaces.LanguageEnglish,
		Classification: parity.ClassificationOrphanEnglish,
		Counterpart:    "/es/notes/plan.md",
	}

	twin, err := builder.Build(info, result)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if twin.URL != "/notes/plan.md" {
		t.Fatalf("URL = %q", twin.URL)
	}
	if twin.AlternateURL != "/es/notes/plan.md" {
		t.Fatalf("AlternateURL = %q", twin.AlternateURL)
	}
	if len(twin.Checksum) != 64 {
		t.Fatalf("Checksum = %q", twin.Checksum)
	}
	if !strings.Contains(twin.BodyHTML, "<h1") || !strings.Contains(twin.BodyHTML, "Plan") {
		t.Fatalf("BodyHTML = %q", twin.BodyHTML)
	}
}

func TestTwinBuilder_HTMLBodyNotRendered(t *testing.T) {
	builder := NewTwinBuilder(NewURLResolver(URLResolverOptions{}))

	twin, err := builder.Build(interfaces.PageInfo{
		Path: "/guides/phd.html",
		Body: []byte("<html><body>PhD</body></html>"),
	}, parity.PageResult{
		Path:           "/guides/phd.html",
		Language:       interfaces.LanguageEnglish,
		Classification: parity.ClassificationPairedValid,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if twin.BodyHTML != "" {
		t.Fatalf("BodyHTML should stay empty for HTML sources, got %q", twin.BodyHTML)
	}
}

func TestTwin_MarshalDeterministic(t *testing.T) {
	twin := Twin{
		Path:           "/guides/phd.html",
		Language:       interfaces.LanguageEnglish,
		Classification: parity.ClassificationPairedValid,
		Checksum:       "abc",
	}
	first, err := twin.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := twin.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("twin serialization must be stable")
	}
	if !strings.HasSuffix(string(first), "\n") {
		t.Fatal("twin serialization must end with a newline")
	}
}
