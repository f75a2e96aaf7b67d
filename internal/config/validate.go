package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.CSRFSecret) < 32 || len(c.Auth.CSRFSecret) > 64 {
		return fmt.Errorf("auth.csrf_secret must be 32 to 64 characters (got %d)", len(c.Auth.CSRFSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}
	if err := c.Trust.validate(); err != nil {
		return fmt.Errorf("trust: %w", err)
	}

	if c.RateLimit.SubmissionsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.submissions_per_minute must be > 0 (got %d)", c.RateLimit.SubmissionsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.MaxValueLength <= 0 {
		return fmt.Errorf("max_value_length must be > 0 (got %d)", m.MaxValueLength)
	}
	if m.MaxRationaleLength <= 0 {
		return fmt.Errorf("max_rationale_length must be > 0 (got %d)", m.MaxRationaleLength)
	}
	if m.MaxNoteLength <= 0 {
		return fmt.Errorf("max_note_length must be > 0 (got %d)", m.MaxNoteLength)
	}
	return nil
}

func (t *TrustConfig) validate() error {
	if t.MinReviewed < 0 {
		return fmt.Errorf("min_reviewed must be >= 0 (got %d)", t.MinReviewed)
	}
	if t.MaxPending < 0 {
		return fmt.Errorf("max_pending must be >= 0 (got %d)", t.MaxPending)
	}
	if t.FlaggedRejectRatio <= 0 || t.FlaggedRejectRatio > 1 {
		return fmt.Errorf("flagged_reject_ratio must be in (0, 1] (got %v)", t.FlaggedRejectRatio)
	}
	if t.TrustedMaxRejectRatio < 0 || t.TrustedMaxRejectRatio >= t.FlaggedRejectRatio {
		return fmt.Errorf("trusted_max_reject_ratio must be in [0, flagged_reject_ratio) (got %v)", t.TrustedMaxRejectRatio)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	if d.StatementTimeout < 0 || d.LockTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
