package generator

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	manifestFileName    = ".bilingual-manifest.json"
	manifestFileVersion = 1
)

// buildManifest stores metadata about the last successful build to support
// incremental runs: twins whose source checksum is unchanged are skipped.
type buildManifest struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generated_at"`
	Pages       map[string]manifestPage `json:"pages"`
}

type manifestPage struct {
	Path           string    `json:"path"`
	Language       string    `json:"language"`
	Classification string    `json:"classification"`
	Checksum       string    `json:"checksum"`
	Output         string    `json:"output"`
	RenderedAt     time.Time `json:"rendered_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version: manifestFileVersion,
		Pages:   map[string]manifestPage{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Pages == nil {
		manifest.Pages = map[string]manifestPage{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	// encoding/json emits map keys sorted, so serializing the page map
	// directly keeps the file deterministic and parseManifest-compatible.
	out := buildManifest{
		Version:     m.Version,
		GeneratedAt: m.GeneratedAt,
		Pages:       m.Pages,
	}
	if out.Version == 0 {
		out.Version = manifestFileVersion
	}
	if out.Pages == nil {
		out.Pages = map[string]manifestPage{}
	}
	return json.MarshalIndent(out, "", "  ")
}

func (m *buildManifest) pageKey(sitePath string) string {
	return strings.ToLower(strings.TrimSpace(sitePath))
}

func (m *buildManifest) setPage(entry manifestPage) {
	if m == nil {
		return
	}
	if m.Pages == nil {
		m.Pages = map[string]manifestPage{}
	}
	m.Pages[m.pageKey(entry.Path)] = entry
}

func (m *buildManifest) shouldSkipPage(sitePath, checksum, output string) bool {
	if m == nil || len(m.Pages) == 0 {
		return false
	}
	entry, ok := m.Pages[m.pageKey(sitePath)]
	if !ok {
		return false
	}
	if entry.Checksum != checksum {
		return false
	}
	return strings.TrimSpace(entry.Output) == strings.TrimSpace(output)
}

func (m *buildManifest) prunePages(keys map[string]struct{}) {
	if m == nil || len(m.Pages) == 0 {
		return
	}
	for key := range m.Pages {
		if _, ok := keys[key]; !ok {
			delete(m.Pages, key)
		}
	}
}
