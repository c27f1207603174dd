package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContentRootRequired indicates the content tree location is missing.
var ErrContentRootRequired = errors.New("bilingual config: content root is required when the generator is enabled")

// ErrGeneratorOutputDirRequired ensures artifact builds have somewhere to write.
var ErrGeneratorOutputDirRequired = errors.New("bilingual config: generator output directory is required when the generator is enabled")

// ErrDesignationProviderUnknown indicates an unsupported designation store.
var ErrDesignationProviderUnknown = errors.New("bilingual config: designation provider is invalid")

// ErrDesignationDBRequired indicates the bun designation store was selected
// without a database handle.
var ErrDesignationDBRequired = errors.New("bilingual config: designation provider \"bun\" requires a database")

// ErrGeneratorDisabled indicates an artifact build was requested while the
// generator is switched off.
var ErrGeneratorDisabled = errors.New("bilingual config: generator is disabled")

var ErrLoggingProviderRequired = errors.New("bilingual config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("bilingual config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("bilingual config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("bilingual config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the bilingual
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled      bool
	Content      ContentConfig
	Dictionary   DictionaryConfig
	Designations DesignationConfig
	Site         SiteConfig
	Generator    GeneratorConfig
	Features     Features
	Logging      LoggingConfig
}

// ContentConfig locates the content tree the validator walks.
type ContentConfig struct {
	Root string
}

// DictionaryConfig points at an optional dictionary file; when Path is empty
// the built-in dictionary is used.
type DictionaryConfig struct {
	Path string
}

// DesignationConfig selects the non-parity designation store.
type DesignationConfig struct {
	Provider string
}

// SiteConfig captures routing configuration for absolute URL resolution.
type SiteConfig struct {
	BaseURL    string
	RouteGroup string
}

// GeneratorConfig captures behaviour for artifact generation.
type GeneratorConfig struct {
	Enabled         bool
	OutputDir       string
	Incremental     bool
	GenerateSitemap bool
	GenerateRobots  bool
	GenerateTwins   bool
}

// Features toggles module functionality.
type Features struct {
	Generator bool
	Commands  bool
	Logger    bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Root: "content",
		},
		Dictionary: DictionaryConfig{},
		Designations: DesignationConfig{
			Provider: "memory",
		},
		Site: SiteConfig{},
		Generator: GeneratorConfig{
			OutputDir:       "dist",
			Incremental:     true,
			GenerateSitemap: true,
			GenerateRobots:  true,
			GenerateTwins:   true,
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Generator.Enabled || cfg.Features.Generator {
		if strings.TrimSpace(cfg.Content.Root) == "" {
			return ErrContentRootRequired
		}
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
	}
	if provider := normalizeProvider(cfg.Designations.Provider); provider != "" && !isSupportedDesignationProvider(provider) {
		return fmt.Errorf("%w: %s", ErrDesignationProviderUnknown, provider)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedDesignationProvider(provider string) bool {
	switch provider {
	case "memory", "bun":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
