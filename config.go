package sitecontent

import "github.com/goliatone/go-sitecontent/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrCollectionInvalid       = runtimeconfig.ErrCollectionInvalid
	ErrWatchRequiresCache      = runtimeconfig.ErrWatchRequiresCache
	ErrServerAddrRequired      = runtimeconfig.ErrServerAddrRequired
	ErrServerBasePathInvalid   = runtimeconfig.ErrServerBasePathInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ContentConfig  = runtimeconfig.ContentConfig
	ServerConfig   = runtimeconfig.ServerConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	CacheConfig    = runtimeconfig.CacheConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
