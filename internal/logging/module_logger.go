package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

const (
	rootModule        = "bilingual"
	translateModule   = "bilingual.translate"
	parityModule      = "bilingual.parity"
	generatorModule   = "bilingual.generator"
	designationModule = "bilingual.designation"
)

const (
	fieldPagePath = "page_path"
	fieldLanguage = "language"
	fieldOutcome  = "classification"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// TranslateLogger returns the logger namespace reserved for the translators.
func TranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translateModule)
}

// ParityLogger returns the logger namespace reserved for the parity validator.
func ParityLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, parityModule)
}

// GeneratorLogger returns the logger namespace reserved for artifact generation.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// DesignationLogger returns the logger namespace reserved for the designation store.
func DesignationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, designationModule)
}

// WithPageContext enriches the provided logger with common page fields such
// as site path, language, and parity classification. Empty values are ignored.
func WithPageContext(logger interfaces.Logger, path, language, classification string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldPagePath] = trimmed
	}
	if trimmed := strings.TrimSpace(language); trimmed != "" {
		fields[fieldLanguage] = trimmed
	}
	if trimmed := strings.TrimSpace(classification); trimmed != "" {
		fields[fieldOutcome] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
