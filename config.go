package menu

import "github.com/crystalplaza/go-menu/internal/runtimeconfig"

var (
	ErrStorageProviderUnknown     = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDriverUnknown       = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrSessionCredentialsRequired = runtimeconfig.ErrSessionCredentialsRequired
	ErrTranslationTimeoutInvalid  = runtimeconfig.ErrTranslationTimeoutInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	StorageConfig     = runtimeconfig.StorageConfig
	CacheConfig       = runtimeconfig.CacheConfig
	TranslationConfig = runtimeconfig.TranslationConfig
	SessionConfig     = runtimeconfig.SessionConfig
	Features          = runtimeconfig.Features
	LoggingConfig     = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the opinionated runtime defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
