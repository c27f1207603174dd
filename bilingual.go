package bilingual

import (
	"context"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-bilingual/internal/designation"
	"github.com/goliatone/go-bilingual/internal/dictionary"
	"github.com/goliatone/go-bilingual/internal/generator"
	"github.com/goliatone/go-bilingual/internal/logging"
	"github.com/goliatone/go-bilingual/internal/logging/gologger"
	"github.com/goliatone/go-bilingual/internal/parity"
	"github.com/goliatone/go-bilingual/internal/translate"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Language exports the language tag used across the module.
type Language = interfaces.Language

const (
	// LanguageEnglish is the unprefixed default language.
	LanguageEnglish = interfaces.LanguageEnglish
	// LanguageSpanish is the language served under the /es/ path marker.
	LanguageSpanish = interfaces.LanguageSpanish
)

// PathMetadata exports the bilingual path pair DTO.
type PathMetadata = interfaces.PathMetadata

// LocalizationStatus exports the structural validation result.
type LocalizationStatus = interfaces.LocalizationStatus

// PageInfo exports the page metadata DTO consumed by the parity validator.
type PageInfo = interfaces.PageInfo

// HreflangLink exports the declared alternate-language link DTO.
type HreflangLink = interfaces.HreflangLink

// NonParityDesignation exports the editorial single-language marker.
type NonParityDesignation = interfaces.NonParityDesignation

// Dictionary exports the immutable slug translation table.
type Dictionary = dictionary.Dictionary

// Designation exports the persisted designation record.
type Designation = designation.Designation

// DesignationRepository exports the designation store contract.
type DesignationRepository = designation.Repository

// Report exports the parity validation report.
type Report = parity.Report

// PageResult exports the per-page parity outcome.
type PageResult = parity.PageResult

// Classification exports the parity outcome tag.
type Classification = parity.Classification

const (
	ClassificationPairedValid         = parity.ClassificationPairedValid
	ClassificationPairedInvalid       = parity.ClassificationPairedInvalid
	ClassificationOrphanEnglish       = parity.ClassificationOrphanEnglish
	ClassificationOrphanSpanish       = parity.ClassificationOrphanSpanish
	ClassificationNonParityDesignated = parity.ClassificationNonParityDesignated
	ClassificationInspectionFailed    = parity.ClassificationInspectionFailed
)

// BuildResult exports the artifact generation summary.
type BuildResult = generator.BuildResult

// Module is the top level runtime facade: slug and path translation, parity
// validation, designations, and artifact generation behind one constructor.
type Module struct {
	cfg Config

	logs         interfaces.LoggerProvider
	dict         *dictionary.Dictionary
	slugs        *translate.SlugTranslator
	paths        *translate.PathTranslator
	metadata     *translate.MetadataBuilder
	designations designation.Repository
	lookup       *designation.Lookup
	routes       *urlkit.RouteManager
	resolver     *generator.URLResolver
	validator    *parity.Validator
	builder      *generator.Service
	db           *bun.DB
}

// Option overrides a module dependency during construction.
type Option func(*Module)

// WithLoggerProvider injects a logger provider. Without one the module logs
// nothing unless the logging feature selects the go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.logs = provider
	}
}

// WithDictionary overrides the translation dictionary.
func WithDictionary(dict *dictionary.Dictionary) Option {
	return func(m *Module) {
		m.dict = dict
	}
}

// WithDesignationRepository overrides the non-parity designation store.
func WithDesignationRepository(repo designation.Repository) Option {
	return func(m *Module) {
		m.designations = repo
	}
}

// WithDB supplies the database handle required by the bun designation
// provider.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithRouteManager overrides the go-urlkit route manager used for absolute
// URL resolution.
func WithRouteManager(manager *urlkit.RouteManager) Option {
	return func(m *Module) {
		m.routes = manager
	}
}

// New constructs a module from the provided configuration and optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.logs == nil && cfg.Features.Logger && strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "gologger") {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.logs = provider
	}

	if m.dict == nil {
		if path := strings.TrimSpace(cfg.Dictionary.Path); path != "" {
			dict, err := dictionary.NewLoader(path).Load(context.Background())
			if err != nil {
				return nil, err
			}
			m.dict = dict
		} else {
			m.dict = dictionary.Default()
		}
	}

	m.slugs = translate.NewSlugTranslator(m.dict)
	m.paths = translate.NewPathTranslator(m.slugs)
	m.metadata = translate.NewMetadataBuilder(m.paths)

	if m.designations == nil {
		switch strings.ToLower(strings.TrimSpace(cfg.Designations.Provider)) {
		case "bun":
			if m.db == nil {
				return nil, ErrDesignationDBRequired
			}
			m.designations = designation.NewBunRepository(m.db)
		default:
			m.designations = designation.NewMemoryRepository()
		}
	}
	m.lookup = designation.NewLookup(m.designations)

	if m.routes == nil {
		if baseURL := strings.TrimSpace(cfg.Site.BaseURL); baseURL != "" {
			m.routes = generator.NewSiteRouteManager(baseURL)
		}
	}
	m.resolver = generator.NewURLResolver(generator.URLResolverOptions{
		Manager: m.routes,
		Group:   cfg.Site.RouteGroup,
	})

	m.validator = parity.NewValidator(parity.Options{
		Metadata:     m.metadata,
		Designations: m.lookup,
		Logger:       logging.ParityLogger(m.logs),
	})
	m.builder = generator.NewService(generator.Options{
		Validator: m.validator,
		Resolver:  m.resolver,
		Logger:    logging.GeneratorLogger(m.logs),
		Build: &generator.BuildOptions{
			Incremental: cfg.Generator.Incremental,
			Sitemap:     cfg.Generator.GenerateSitemap,
			Robots:      cfg.Generator.GenerateRobots,
			Twins:       cfg.Generator.GenerateTwins,
		},
	})

	return m, nil
}

// Dictionary returns the active translation dictionary.
func (m *Module) Dictionary() *Dictionary {
	return m.dict
}

// Slugs returns the configured slug translator.
func (m *Module) Slugs() interfaces.SlugTranslator {
	return m.slugs
}

// Paths returns the configured path translator.
func (m *Module) Paths() interfaces.PathTranslator {
	return m.paths
}

// Metadata returns the configured path metadata builder.
func (m *Module) Metadata() interfaces.MetadataBuilder {
	return m.metadata
}

// Designations returns the configured non-parity designation store.
func (m *Module) Designations() DesignationRepository {
	return m.designations
}

// Validator returns the configured parity validator.
func (m *Module) Validator() *parity.Validator {
	return m.validator
}

// Generator returns the configured artifact generation service.
func (m *Module) Generator() *generator.Service {
	return m.builder
}

// TranslateSlug converts a slug into the target language.
func (m *Module) TranslateSlug(slug string, target Language) string {
	return m.slugs.TranslateSlug(slug, target)
}

// TranslatePath converts a site path into the target language.
func (m *Module) TranslatePath(path string, target Language) string {
	return m.paths.TranslatePath(path, target)
}

// NewPathMetadata derives the bilingual pair for a path.
func (m *Module) NewPathMetadata(path string) PathMetadata {
	return m.metadata.NewPathMetadata(path)
}

// AlternatePath returns the opposite-language variant of a path.
func (m *Module) AlternatePath(path string) string {
	return m.metadata.AlternatePath(path)
}

// ValidatePathStructure reports whether the path shape matches the expected
// language.
func (m *Module) ValidatePathStructure(path string, expected Language) bool {
	return m.metadata.ValidatePathStructure(path, expected)
}

// LocalizationStatus runs the structural checks over a path pair.
func (m *Module) LocalizationStatus(meta PathMetadata) LocalizationStatus {
	return m.metadata.LocalizationStatus(meta)
}

// ValidateParity walks the content tree and classifies every page. An empty
// root falls back to the configured content root.
func (m *Module) ValidateParity(ctx context.Context, root string) (Report, error) {
	if strings.TrimSpace(root) == "" {
		root = m.cfg.Content.Root
	}
	return m.validator.Validate(ctx, root)
}

// BuildArtifacts runs a full generation pass using the configured content
// root and output directory.
func (m *Module) BuildArtifacts(ctx context.Context) (BuildResult, error) {
	if !m.cfg.Generator.Enabled && !m.cfg.Features.Generator {
		return BuildResult{}, ErrGeneratorDisabled
	}
	return m.builder.Build(ctx, m.cfg.Content.Root, m.cfg.Generator.OutputDir)
}
