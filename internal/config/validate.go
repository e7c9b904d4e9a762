package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Quota.DailyTranslationLimit < 0 {
		return fmt.Errorf("quota.daily_translation_limit must be >= 0 (got %d)", c.Quota.DailyTranslationLimit)
	}

	switch strings.ToLower(c.Translate.Provider) {
	case "google", "stub":
	default:
		return fmt.Errorf("translate.provider must be google or stub (got %q)", c.Translate.Provider)
	}

	if err := c.Srs.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func (s *SrsConfig) validate() error {
	if s.MinSpacingDays < 1 {
		return fmt.Errorf("min_spacing_days must be >= 1 (got %d)", s.MinSpacingDays)
	}
	if s.MaxSpacingDays < s.MinSpacingDays {
		return fmt.Errorf("max_spacing_days must be >= min_spacing_days (got %d < %d)", s.MaxSpacingDays, s.MinSpacingDays)
	}
	if s.DifficultSpacingDays < 1 {
		return fmt.Errorf("difficult_spacing_days must be >= 1 (got %d)", s.DifficultSpacingDays)
	}
	return nil
}
