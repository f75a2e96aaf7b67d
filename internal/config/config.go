package config

import (
	"time"

	"github.com/heartmarshall/ballotwiki-backend/internal/trust"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Moderation ModerationConfig `yaml:"moderation"`
	Trust      TrustConfig      `yaml:"trust"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-CSRF-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// Zero disables the corresponding server-side timeout.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"      env:"DATABASE_LOCK_TIMEOUT"      env-default:"5s"`
}

// AuthConfig holds settings for verifying identity and CSRF tokens issued by
// the session layer.
type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"ballotwiki"`
	CSRFSecret string `yaml:"csrf_secret" env:"AUTH_CSRF_SECRET" env-required:"true"`

	// JWTLeeway tolerates clock skew against the session layer.
	JWTLeeway time.Duration `yaml:"jwt_leeway" env:"AUTH_JWT_LEEWAY" env-default:"30s"`
}

// ModerationConfig bounds edit submissions and listings.
type ModerationConfig struct {
	MaxValueLength     int `yaml:"max_value_length"     env:"MODERATION_MAX_VALUE_LENGTH"     env-default:"20000"`
	MaxRationaleLength int `yaml:"max_rationale_length" env:"MODERATION_MAX_RATIONALE_LENGTH" env-default:"2000"`
	MaxNoteLength      int `yaml:"max_note_length"      env:"MODERATION_MAX_NOTE_LENGTH"      env-default:"2000"`
}

// TrustConfig is the threshold table for the contributor trust indicator.
type TrustConfig struct {
	MinReviewed           int     `yaml:"min_reviewed"             env:"TRUST_MIN_REVIEWED"              env-default:"3"`
	MaxPending            int     `yaml:"max_pending"              env:"TRUST_MAX_PENDING"               env-default:"25"`
	FlaggedRejectRatio    float64 `yaml:"flagged_reject_ratio"     env:"TRUST_FLAGGED_REJECT_RATIO"      env-default:"0.5"`
	TrustedMinAccepted    int     `yaml:"trusted_min_accepted"     env:"TRUST_TRUSTED_MIN_ACCEPTED"      env-default:"10"`
	TrustedMaxRejectRatio float64 `yaml:"trusted_max_reject_ratio" env:"TRUST_TRUSTED_MAX_REJECT_RATIO"  env-default:"0.2"`
}

// Thresholds converts the config into the classifier's table.
func (c TrustConfig) Thresholds() trust.Thresholds {
	return trust.Thresholds{
		MinReviewed:           c.MinReviewed,
		MaxPending:            c.MaxPending,
		FlaggedRejectRatio:    c.FlaggedRejectRatio,
		TrustedMinAccepted:    c.TrustedMinAccepted,
		TrustedMaxRejectRatio: c.TrustedMaxRejectRatio,
	}
}

// RateLimitConfig limits edit submissions per user and requests per client
// IP. With an empty RedisURL the submission limiter runs in process.
type RateLimitConfig struct {
	RedisURL             string `yaml:"redis_url"              env:"RATE_LIMIT_REDIS_URL"`
	SubmissionsPerMinute int    `yaml:"submissions_per_minute" env:"RATE_LIMIT_SUBMISSIONS_PER_MINUTE" env-default:"30"`
	RequestsPerMinute    int    `yaml:"requests_per_minute"    env:"RATE_LIMIT_REQUESTS_PER_MINUTE"    env-default:"600"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
