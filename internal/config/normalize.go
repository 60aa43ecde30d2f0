package config

import "strings"

func (c *Config) normalize() error {
	var err error
	if c.Paths.SurveyPath, err = expandOptional(c.Paths.SurveyPath); err != nil {
		return err
	}
	if c.Paths.LedgerPath, err = expandOptional(c.Paths.LedgerPath); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandOptional(c.Paths.LogDir); err != nil {
		return err
	}
	if c.Model.ArtifactPath, err = expandOptional(c.Model.ArtifactPath); err != nil {
		return err
	}

	c.Model.Binary = strings.TrimSpace(c.Model.Binary)
	c.SMTP.Host = strings.TrimSpace(c.SMTP.Host)
	c.SMTP.Username = strings.TrimSpace(c.SMTP.Username)
	c.SMTP.From = strings.TrimSpace(c.SMTP.From)
	c.Campaign.Subject = strings.TrimSpace(c.Campaign.Subject)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Model.Binary == "" {
		c.Model.Binary = defaultModelBinary
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func expandOptional(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	return expandPath(trimmed)
}
