package dictionary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoEntries indicates a dictionary was constructed without any entries.
	ErrNoEntries = errors.New("dictionary: at least one entry is required")
	// ErrEmptyEntry indicates an entry with an empty key or value.
	ErrEmptyEntry = errors.New("dictionary: entry keys and values cannot be empty")
	// ErrReverseCollision indicates two English entries share one Spanish
	// translation, which would make the derived reverse map lossy.
	ErrReverseCollision = errors.New("dictionary: duplicate Spanish translation")
)

// maxPhraseTokens caps how many hyphen-delimited tokens a single phrase match
// may span during translation.
const maxPhraseTokens = 5

// Direction selects which side of the table drives a lookup.
type Direction int

const (
	// EnglishToSpanish looks entries up by their English key.
	EnglishToSpanish Direction = iota
	// SpanishToEnglish looks entries up through the derived reverse map.
	SpanishToEnglish
)

// Dictionary is an immutable bidirectional English⇄Spanish token and phrase
// table. Keys and values are lowercase hyphen-delimited slugs; multi-word
// phrases use the same hyphen convention as single tokens.
type Dictionary struct {
	forward map[string]string
	reverse map[string]string
	maxSpan int
}

// New constructs a dictionary from English→Spanish entries. The reverse map
// is derived by inverting the forward map; construction fails loudly when two
// distinct English entries map to the same Spanish value so the ambiguity
// surfaces to whoever owns the dictionary content instead of being resolved
// by iteration order.
func New(entries map[string]string) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	forward := make(map[string]string, len(entries))
	reverse := make(map[string]string, len(entries))
	owners := make(map[string]string, len(entries))
	maxSpan := 1

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		key := normalizeTerm(rawKey)
		value := normalizeTerm(entries[rawKey])
		if key == "" || value == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrEmptyEntry, rawKey, entries[rawKey])
		}
		if existing, ok := owners[value]; ok && existing != key {
			return nil, fmt.Errorf("%w: %q is produced by both %q and %q", ErrReverseCollision, value, existing, key)
		}
		owners[value] = key
		forward[key] = value
		reverse[value] = key

		if span := tokenCount(key); span > maxSpan {
			maxSpan = span
		}
		if span := tokenCount(value); span > maxSpan {
			maxSpan = span
		}
	}

	if maxSpan > maxPhraseTokens {
		maxSpan = maxPhraseTokens
	}

	return &Dictionary{
		forward: forward,
		reverse: reverse,
		maxSpan: maxSpan,
	}, nil
}

// Lookup resolves a token or hyphen-joined phrase in the given direction.
func (d *Dictionary) Lookup(phrase string, dir Direction) (string, bool) {
	if d == nil {
		return "", false
	}
	table := d.forward
	if dir == SpanishToEnglish {
		table = d.reverse
	}
	value, ok := table[normalizeTerm(phrase)]
	return value, ok
}

// MaxSpan returns the longest phrase length, in tokens, worth attempting
// during greedy matching. Never exceeds the phrase token cap.
func (d *Dictionary) MaxSpan() int {
	if d == nil || d.maxSpan < 1 {
		return 1
	}
	return d.maxSpan
}

// Len returns the number of entries in the forward table.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.forward)
}

// Entries returns a copy of the forward table, primarily for diagnostics.
func (d *Dictionary) Entries() map[string]string {
	if d == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(d.forward))
	for key, value := range d.forward {
		out[key] = value
	}
	return out
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(term), "-"))
}

func tokenCount(term string) int {
	if term == "" {
		return 0
	}
	return strings.Count(term, "-") + 1
}
