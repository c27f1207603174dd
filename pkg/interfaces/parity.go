package interfaces

import "context"

// HreflangLink is a declared alternate-language link on a content page.
type HreflangLink struct {
	Lang string `json:"lang"`
	Href string `json:"href"`
}

// PageInfo is the discoverable metadata the parity validator reads from a
// content page. Declared is the zero value when the page declares no
// bilingual path pair.
type PageInfo struct {
	Path     string         `json:"path"`
	Language Language       `json:"language"`
	Title    string         `json:"title,omitempty"`
	Summary  string         `json:"summary,omitempty"`
	Declared PathMetadata   `json:"declared"`
	Hreflang []HreflangLink `json:"hreflang,omitempty"`
	Body     []byte         `json:"-"`
}

// PageReader extracts PageInfo from raw page bytes. The path is the
// site-relative URL path of the page and determines the source format.
type PageReader interface {
	ReadPage(path string, source []byte) (PageInfo, error)
}

// NonParityDesignation marks a page as intentionally single-language.
// Designations are authoritative editorial input, never computed.
type NonParityDesignation struct {
	Path     string   `json:"path"`
	Language Language `json:"language"`
	Reason   string   `json:"reason"`
}

// NonParityLookup answers whether a path carries a non-parity designation.
type NonParityLookup interface {
	Designation(ctx context.Context, path string) (NonParityDesignation, bool, error)
}
