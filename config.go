package bilingual

import "github.com/goliatone/go-bilingual/internal/runtimeconfig"

var (
	ErrContentRootRequired        = runtimeconfig.ErrContentRootRequired
	ErrGeneratorOutputDirRequired = runtimeconfig.ErrGeneratorOutputDirRequired
	ErrGeneratorDisabled          = runtimeconfig.ErrGeneratorDisabled
	ErrDesignationProviderUnknown = runtimeconfig.ErrDesignationProviderUnknown
	ErrDesignationDBRequired      = runtimeconfig.ErrDesignationDBRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	ContentConfig     = runtimeconfig.ContentConfig
	DictionaryConfig  = runtimeconfig.DictionaryConfig
	DesignationConfig = runtimeconfig.DesignationConfig
	SiteConfig        = runtimeconfig.SiteConfig
	GeneratorConfig   = runtimeconfig.GeneratorConfig
	Features          = runtimeconfig.Features
	LoggingConfig     = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
