package config

const (
	defaultLogDir                = "~/.local/share/outreach/logs"
	defaultLedgerPath            = "~/.local/share/outreach/sent_log.csv"
	defaultLogFormat             = "auto"
	defaultLogLevel              = "info"
	defaultModelBinary           = "llama-server"
	defaultModelPort             = 8953
	defaultModelContextSize      = 4096
	defaultModelThreads          = 6
	defaultMinArtifactGiB        = 4.0
	defaultStartupTimeoutSeconds = 300
	defaultMaxTokens             = 512
	defaultGenTimeoutSeconds     = 120
	defaultSubject               = "Your Development Plan - Personalized Suggestions"
	defaultSMTPPort              = 587
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LedgerPath: defaultLedgerPath,
			LogDir:     defaultLogDir,
		},
		Model: Model{
			Binary:                defaultModelBinary,
			Port:                  defaultModelPort,
			ContextSize:           defaultModelContextSize,
			Threads:               defaultModelThreads,
			MinArtifactGiB:        defaultMinArtifactGiB,
			StartupTimeoutSeconds: defaultStartupTimeoutSeconds,
		},
		Generation: Generation{
			MaxTokens:      defaultMaxTokens,
			TimeoutSeconds: defaultGenTimeoutSeconds,
		},
		Campaign: Campaign{
			Subject: defaultSubject,
			CCCoach: true,
		},
		SMTP: SMTP{
			Port: defaultSMTPPort,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
