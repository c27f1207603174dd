package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-bilingual/internal/logging"
	"github.com/goliatone/go-bilingual/internal/parity"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Options configures the artifact generation service.
type Options struct {
	Validator *parity.Validator
	Reader    interfaces.PageReader
	Resolver  *URLResolver
	Logger    interfaces.Logger
	Now       func() time.Time
	Build     *BuildOptions
}

// BuildOptions toggles the artifacts a generation pass emits. A nil value on
// Options selects DefaultBuildOptions.
type BuildOptions struct {
	Incremental bool
	Sitemap     bool
	Robots      bool
	Twins       bool
}

// DefaultBuildOptions enables every artifact and incremental twin skipping.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Incremental: true,
		Sitemap:     true,
		Robots:      true,
		Twins:       true,
	}
}

// Service runs a parity validation pass over a content tree and emits the
// derived artifacts: sitemap.xml, robots.txt, one JSON twin per page, and a
// build manifest that lets the next run skip unchanged twins.
type Service struct {
	validator *parity.Validator
	reader    interfaces.PageReader
	resolver  *URLResolver
	twins     *TwinBuilder
	logger    interfaces.Logger
	now       func() time.Time
	build     BuildOptions
}

// NewService constructs a generation service from the supplied options.
func NewService(opts Options) *Service {
	s := &Service{
		validator: opts.Validator,
		reader:    opts.Reader,
		resolver:  opts.Resolver,
		logger:    opts.Logger,
		now:       opts.Now,
		build:     DefaultBuildOptions(),
	}
	if opts.Build != nil {
		s.build = *opts.Build
	}
	if s.validator == nil {
		s.validator = parity.NewValidator(parity.Options{Logger: opts.Logger})
	}
	if s.reader == nil {
		s.reader = parity.NewReader()
	}
	if s.resolver == nil {
		s.resolver = NewURLResolver(URLResolverOptions{})
	}
	if s.logger == nil {
		s.logger = logging.NoOp()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.twins = NewTwinBuilder(s.resolver)
	return s
}

// BuildResult summarizes one generation run.
type BuildResult struct {
	Report       parity.Report `json:"report"`
	OutputDir    string        `json:"output_dir"`
	TwinsWritten int           `json:"twins_written"`
	TwinsSkipped int           `json:"twins_skipped"`
}

// Build validates root and writes every artifact under outDir. Pages whose
// source is unchanged since the last run keep their existing twins.
func (s *Service) Build(ctx context.Context, root, outDir string) (BuildResult, error) {
	if strings.TrimSpace(outDir) == "" {
		return BuildResult{}, fmt.Errorf("generator: output directory is required")
	}

	report, err := s.validator.Validate(ctx, root)
	if err != nil {
		return BuildResult{}, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BuildResult{}, fmt.Errorf("generator: create %s: %w", outDir, err)
	}

	if s.build.Sitemap {
		sitemap, err := BuildSitemap(report, s.resolver)
		if err != nil {
			return BuildResult{}, err
		}
		if err := writeArtifact(outDir, "/sitemap.xml", []byte(sitemap)); err != nil {
			return BuildResult{}, err
		}
	}

	if s.build.Robots {
		robots, err := BuildRobots(s.resolver)
		if err != nil {
			return BuildResult{}, err
		}
		if err := writeArtifact(outDir, "/robots.txt", []byte(robots)); err != nil {
			return BuildResult{}, err
		}
	}

	result := BuildResult{Report: report, OutputDir: outDir}
	if !s.build.Twins {
		s.logBuildComplete(root, outDir, result)
		return result, nil
	}

	manifest, err := s.loadManifest(outDir)
	if err != nil {
		return BuildResult{}, err
	}
	activeKeys := map[string]struct{}{}

	for _, page := range report.Pages {
		if page.Classification == parity.ClassificationInspectionFailed {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return BuildResult{}, ctxErr
		}

		source, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(page.Path, "/"))))
		if err != nil {
			logging.WithPageContext(s.logger, page.Path, string(page.Language), string(page.Classification)).
				Warn("twin skipped, source unreadable", "error", err)
			continue
		}

		info, err := s.reader.ReadPage(page.Path, source)
		if err != nil {
			logging.WithPageContext(s.logger, page.Path, string(page.Language), string(page.Classification)).
				Warn("twin skipped, source unparsable", "error", err)
			continue
		}

		output := TwinPath(page.Path)
		sum := checksum(info.Body)
		activeKeys[manifest.pageKey(page.Path)] = struct{}{}

		if s.build.Incremental && manifest.shouldSkipPage(page.Path, sum, output) {
			result.TwinsSkipped++
			continue
		}

		twin, err := s.twins.Build(info, page)
		if err != nil {
			return BuildResult{}, err
		}
		body, err := twin.Marshal()
		if err != nil {
			return BuildResult{}, err
		}
		if err := writeArtifact(outDir, output, body); err != nil {
			return BuildResult{}, err
		}

		manifest.setPage(manifestPage{
			Path:           page.Path,
			Language:       string(page.Language),
			Classification: string(page.Classification),
			Checksum:       sum,
			Output:         output,
			RenderedAt:     s.now().UTC(),
		})
		result.TwinsWritten++
	}

	manifest.prunePages(activeKeys)
	manifest.GeneratedAt = s.now().UTC()
	if err := s.saveManifest(outDir, manifest); err != nil {
		return BuildResult{}, err
	}

	s.logBuildComplete(root, outDir, result)
	return result, nil
}

func (s *Service) logBuildComplete(root, outDir string, result BuildResult) {
	s.logger.Info("artifact build complete",
		"root", root,
		"output_dir", outDir,
		"twins_written", result.TwinsWritten,
		"twins_skipped", result.TwinsSkipped,
		"pages", result.Report.Summary.Total,
	)
}

func (s *Service) loadManifest(outDir string) (*buildManifest, error) {
	data, err := os.ReadFile(filepath.Join(outDir, manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newBuildManifest(), nil
		}
		return nil, fmt.Errorf("generator: read manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *Service) saveManifest(outDir string, manifest *buildManifest) error {
	body, err := manifest.marshal()
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return writeArtifact(outDir, "/"+manifestFileName, append(body, '\n'))
}

func writeArtifact(outDir, sitePath string, body []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(sitePath, "/")))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", target, err)
	}
	return nil
}
