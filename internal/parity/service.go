package parity

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-bilingual/internal/logging"
	"github.com/goliatone/go-bilingual/internal/translate"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Options configures a Validator. Zero-value fields fall back to the default
// reader, the default-dictionary metadata builder, a lookup that never
// matches, and a no-op logger.
type Options struct {
	Reader       interfaces.PageReader
	Metadata     interfaces.MetadataBuilder
	Designations interfaces.NonParityLookup
	Logger       interfaces.Logger
	Now          func() time.Time
}

// Validator walks a content tree and classifies every page by its
// localization parity state. A run inspects each page exactly once and never
// aborts on a page-level failure; unreadable pages surface as results.
type Validator struct {
	reader       interfaces.PageReader
	metadata     interfaces.MetadataBuilder
	designations interfaces.NonParityLookup
	logger       interfaces.Logger
	now          func() time.Time
}

// NewValidator constructs a validator from the supplied options.
func NewValidator(opts Options) *Validator {
	v := &Validator{
		reader:       opts.Reader,
		metadata:     opts.Metadata,
		designations: opts.Designations,
		logger:       opts.Logger,
		now:          opts.Now,
	}
	if v.reader == nil {
		v.reader = NewReader()
	}
	if v.metadata == nil {
		v.metadata = translate.NewMetadataBuilder(nil)
	}
	if v.logger == nil {
		v.logger = logging.NoOp()
	}
	if v.now == nil {
		v.now = time.Now
	}
	return v
}

type pageEntry struct {
	info interfaces.PageInfo
	err  error
}

// Validate walks root, reads every page it finds, and returns a report
// classifying each one. Only a failure to traverse the root itself or a
// cancelled context aborts the run.
func (v *Validator) Validate(ctx context.Context, root string) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(root) == "" {
		return Report{}, fmt.Errorf("parity: content root is required")
	}

	pages := map[string]*pageEntry{}
	var failed []PageResult

	walkErr := filepath.WalkDir(root, func(filePath string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if filePath == root {
				return err
			}
			failed = append(failed, PageResult{
				Path:           sitePathFor(root, filePath),
				Classification: ClassificationInspectionFailed,
				Violations:     []string{err.Error()},
			})
			return nil
		}
		if entry.IsDir() || !isPageFile(filePath) {
			return nil
		}

		sitePath := sitePathFor(root, filePath)
		source, readErr := os.ReadFile(filePath)
		if readErr != nil {
			pages[sitePath] = &pageEntry{
				info: interfaces.PageInfo{Path: sitePath, Language: languageForPath(sitePath)},
				err:  readErr,
			}
			return nil
		}

		info, parseErr := v.reader.ReadPage(sitePath, source)
		pages[sitePath] = &pageEntry{info: info, err: parseErr}
		return nil
	})
	if walkErr != nil {
		return Report{}, fmt.Errorf("parity: walk %s: %w", root, walkErr)
	}

	results := make([]PageResult, 0, len(pages)+len(failed))
	results = append(results, failed...)
	for sitePath, entry := range pages {
		result := v.classify(ctx, sitePath, entry, pages)
		logging.WithPageContext(v.logger, result.Path, string(result.Language), string(result.Classification)).
			Debug("page classified")
		results = append(results, result)
	}

	report := finalizeReport(root, results, v.now())
	v.logger.Info("parity validation complete",
		"root", root,
		"total", report.Summary.Total,
		"paired_valid", report.Summary.PairedValid,
		"paired_invalid", report.Summary.PairedInvalid,
		"orphan_english", report.Summary.OrphanEnglish,
		"orphan_spanish", report.Summary.OrphanSpanish,
		"non_parity_designated", report.Summary.NonParity,
		"inspection_failed", report.Summary.InspectionFailed,
	)
	return report, nil
}

func (v *Validator) classify(ctx context.Context, sitePath string, entry *pageEntry, pages map[string]*pageEntry) PageResult {
	result := PageResult{
		Path:     sitePath,
		Language: entry.info.Language,
		Title:    entry.info.Title,
	}
	if result.Language == "" {
		result.Language = languageForPath(sitePath)
	}

	if entry.err != nil {
		result.Classification = ClassificationInspectionFailed
		result.Violations = []string{entry.err.Error()}
		return result
	}

	if v.designations != nil {
		designation, found, err := v.designations.Designation(ctx, sitePath)
		if err != nil {
			result.Classification = ClassificationInspectionFailed
			result.Violations = []string{fmt.Sprintf("designation lookup failed: %v", err)}
			return result
		}
		if found {
			result.Classification = ClassificationNonParityDesignated
			result.Reason = designation.Reason
			return result
		}
	}

	pair := entry.info.Declared
	if pair.Zero() {
		pair = v.metadata.NewPathMetadata(sitePath)
	}
	result.Pair = pair

	counterpartPath := pair.Path(result.Language.Other())
	if counterpartPath == "" {
		counterpartPath = v.metadata.AlternatePath(sitePath)
	}
	result.Counterpart = counterpartPath

	counterpart, exists := pages[counterpartPath]
	if !exists {
		if result.Language == interfaces.LanguageSpanish {
			result.Classification = ClassificationOrphanSpanish
		} else {
			result.Classification = ClassificationOrphanEnglish
		}
		return result
	}

	violations := append([]string(nil), v.metadata.LocalizationStatus(pair).Errors...)
	violations = append(violations, v.checkHreflang(sitePath, entry, counterpartPath, counterpart)...)

	if len(violations) > 0 {
		result.Classification = ClassificationPairedInvalid
		result.Violations = violations
		return result
	}
	result.Classification = ClassificationPairedValid
	return result
}

// checkHreflang verifies the bidirectional linkage between a page and its
// counterpart: each side must declare an alternate for the other language
// whose URL resolves to the other side's path.
func (v *Validator) checkHreflang(sitePath string, entry *pageEntry, counterpartPath string, counterpart *pageEntry) []string {
	var violations []string

	otherLang := entry.info.Language.Other()
	if !hasAlternate(entry.info.Hreflang, otherLang, counterpartPath) {
		violations = append(violations, fmt.Sprintf("missing %s hreflang alternate pointing to %s", otherLang, counterpartPath))
	}

	if counterpart.err != nil {
		violations = append(violations, fmt.Sprintf("counterpart %s could not be inspected: %v", counterpartPath, counterpart.err))
		return violations
	}
	if !hasAlternate(counterpart.info.Hreflang, entry.info.Language, sitePath) {
		violations = append(violations, fmt.Sprintf("counterpart %s missing %s hreflang alternate pointing to %s", counterpartPath, entry.info.Language, sitePath))
	}
	return violations
}

func hasAlternate(links []interfaces.HreflangLink, lang interfaces.Language, wantPath string) bool {
	for _, link := range links {
		parsed, ok := interfaces.ParseLanguage(link.Lang)
		if !ok || parsed != lang {
			continue
		}
		if hrefPath(link.Href) == wantPath {
			return true
		}
	}
	return false
}

func hrefPath(href string) string {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil || parsed.Path == "" {
		return strings.TrimSpace(href)
	}
	return parsed.Path
}

func sitePathFor(root, filePath string) string {
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		rel = filePath
	}
	return "/" + filepath.ToSlash(rel)
}

func isPageFile(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm", ".md", ".markdown":
		return true
	}
	return false
}
