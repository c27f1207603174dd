package dictionary

import (
	"errors"
	"testing"
)

func TestNew_RejectsEmptyEntries(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if _, err := New(map[string]string{}); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestNew_RejectsEmptyEntry(t *testing.T) {
	if _, err := New(map[string]string{"phd": ""}); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if _, err := New(map[string]string{"": "doctorado"}); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
}

func TestNew_RejectsReverseCollision(t *testing.T) {
	_, err := New(map[string]string{
		"university": "universidad",
		"college":    "universidad",
	})
	if !errors.Is(err, ErrReverseCollision) {
		t.Fatalf("expected ErrReverseCollision, got %v", err)
	}
}

func TestNew_AllowsIdentityEntries(t *testing.T) {
	dict, err := New(map[string]string{
		"insights": "insights",
		"help":     "ayuda",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, ok := dict.Lookup("insights", SpanishToEnglish); !ok || got != "insights" {
		t.Fatalf("Lookup(insights, reverse) = %q, %v", got, ok)
	}
}

func TestLookup_BothDirections(t *testing.T) {
	dict, err := New(map[string]string{
		"phd":                 "doctorado",
		"spanish-linguistics": "linguistica-espanola",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, ok := dict.Lookup("phd", EnglishToSpanish); !ok || got != "doctorado" {
		t.Fatalf("Lookup(phd) = %q, %v", got, ok)
	}
	if got, ok := dict.Lookup("linguistica-espanola", SpanishToEnglish); !ok || got != "spanish-linguistics" {
		t.Fatalf("Lookup(linguistica-espanola, reverse) = %q, %v", got, ok)
	}
	if _, ok := dict.Lookup("unknown", EnglishToSpanish); ok {
		t.Fatal("Lookup(unknown) should miss")
	}
}

func TestLookup_NormalizesInput(t *testing.T) {
	dict, err := New(map[string]string{"PhD": "Doctorado"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, ok := dict.Lookup(" PHD ", EnglishToSpanish); !ok || got != "doctorado" {
		t.Fatalf("Lookup normalized = %q, %v", got, ok)
	}
}

func TestMaxSpan_CapsAtPhraseLimit(t *testing.T) {
	dict, err := New(map[string]string{
		"study-abroad": "estudios-en-el-extranjero",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := dict.MaxSpan(); got != 4 {
		t.Fatalf("MaxSpan() = %d, want 4", got)
	}

	long, err := New(map[string]string{
		"a-b-c-d-e-f-g": "h-i-j-k-l-m-n",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := long.MaxSpan(); got != 5 {
		t.Fatalf("MaxSpan() = %d, want cap of 5", got)
	}
}

func TestDefault_ValidAndBidirectional(t *testing.T) {
	dict := Default()
	if dict.Len() == 0 {
		t.Fatal("Default() returned empty dictionary")
	}

	for english, spanish := range dict.Entries() {
		back, ok := dict.Lookup(spanish, SpanishToEnglish)
		if !ok {
			t.Fatalf("reverse lookup missing for %q", spanish)
		}
		if back != english {
			t.Fatalf("reverse lookup for %q = %q, want %q", spanish, back, english)
		}
	}
}
