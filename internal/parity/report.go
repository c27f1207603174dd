package parity

import (
	"sort"
	"time"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Classification is the parity outcome assigned to a single page.
type Classification string

const (
	// ClassificationPairedValid marks a page whose counterpart exists and
	// whose pair passes every structural and hreflang check.
	ClassificationPairedValid Classification = "paired-valid"
	// ClassificationPairedInvalid marks a page whose counterpart exists but
	// whose pair fails at least one check.
	ClassificationPairedInvalid Classification = "paired-invalid"
	// ClassificationOrphanEnglish marks an English page with no Spanish
	// counterpart and no designation excusing it.
	ClassificationOrphanEnglish Classification = "orphan-english"
	// ClassificationOrphanSpanish marks a Spanish page with no English
	// counterpart and no designation excusing it.
	ClassificationOrphanSpanish Classification = "orphan-spanish"
	// ClassificationNonParityDesignated marks a page editorially designated
	// as intentionally single-language.
	ClassificationNonParityDesignated Classification = "non-parity-designated"
	// ClassificationInspectionFailed marks a page that could not be read or
	// parsed; inspection failures never abort the run.
	ClassificationInspectionFailed Classification = "inspection-failed"
)

// PageResult records the parity outcome for one discovered page.
type PageResult struct {
	Path           string                  `json:"path"`
	Language       interfaces.Language     `json:"language"`
	Classification Classification          `json:"classification"`
	Counterpart    string                  `json:"counterpart,omitempty"`
	Pair           interfaces.PathMetadata `json:"pair"`
	Violations     []string                `json:"violations,omitempty"`
	Reason         string                  `json:"reason,omitempty"`
	Title          string                  `json:"title,omitempty"`
}

// Summary aggregates result counts for one validation run.
type Summary struct {
	Total            int `json:"total"`
	PairedValid      int `json:"paired_valid"`
	PairedInvalid    int `json:"paired_invalid"`
	OrphanEnglish    int `json:"orphan_english"`
	OrphanSpanish    int `json:"orphan_spanish"`
	NonParity        int `json:"non_parity_designated"`
	InspectionFailed int `json:"inspection_failed"`
}

// Report is the full outcome of a parity validation run. Pages are sorted by
// site path so serialized reports are stable across runs.
type Report struct {
	Root        string       `json:"root"`
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     Summary      `json:"summary"`
	Pages       []PageResult `json:"pages"`
}

// Clean reports whether the run found no defects: every page is either part
// of a valid pair or carries a non-parity designation.
func (r Report) Clean() bool {
	return r.Summary.PairedInvalid == 0 &&
		r.Summary.OrphanEnglish == 0 &&
		r.Summary.OrphanSpanish == 0 &&
		r.Summary.InspectionFailed == 0
}

func finalizeReport(root string, results []PageResult, generatedAt time.Time) Report {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.Classification {
		case ClassificationPairedValid:
			summary.PairedValid++
		case ClassificationPairedInvalid:
			summary.PairedInvalid++
		case ClassificationOrphanEnglish:
			summary.OrphanEnglish++
		case ClassificationOrphanSpanish:
			summary.OrphanSpanish++
		case ClassificationNonParityDesignated:
			summary.NonParity++
		case ClassificationInspectionFailed:
			summary.InspectionFailed++
		}
	}

	return Report{
		Root:        root,
		GeneratedAt: generatedAt.UTC(),
		Summary:     summary,
		Pages:       results,
	}
}
