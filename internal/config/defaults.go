package config

const (
	defaultLogDir         = "~/.local/share/deckport/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultBaseURL        = "https://api.scryfall.com"
	defaultUserAgent      = "deckport/0.3"
	defaultRequestDelayMS = 100
	defaultBatchSize      = 75
	defaultTimeoutSeconds = 30

	// maxBatchSize is the identifier limit the collection endpoint accepts per call.
	maxBatchSize = 75
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scryfall: Scryfall{
			BaseURL:        defaultBaseURL,
			UserAgent:      defaultUserAgent,
			RequestDelayMS: defaultRequestDelayMS,
			BatchSize:      defaultBatchSize,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
