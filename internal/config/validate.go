package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is internally consistent. File existence
// is deliberately not checked here; preflight owns that so `config show` and
// friends work before the campaign files are in place.
func (c *Config) Validate() error {
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	if err := c.validateSMTP(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateModel() error {
	if c.Model.Port <= 0 || c.Model.Port > 65535 {
		return fmt.Errorf("model.port must be between 1 and 65535, got %d", c.Model.Port)
	}
	if c.Model.ContextSize <= 0 {
		return errors.New("model.context_size must be positive")
	}
	if c.Model.Threads <= 0 {
		return errors.New("model.threads must be positive")
	}
	if c.Model.MinArtifactGiB < 0 {
		return errors.New("model.min_artifact_gib must not be negative")
	}
	if c.Model.StartupTimeoutSeconds <= 0 {
		return errors.New("model.startup_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateGeneration() error {
	if c.Generation.MaxTokens <= 0 {
		return errors.New("generation.max_tokens must be positive")
	}
	if c.Generation.TimeoutSeconds <= 0 {
		return errors.New("generation.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSMTP() error {
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1 and 65535, got %d", c.SMTP.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
