package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry      = time.Hour
	defaultRefreshExpiry  = 7 * 24 * time.Hour
	defaultSessionTimeout = 10 * time.Second
	defaultSessionCache   = 15 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	LogFormat     string
	StorageDriver string

	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	JWTIssuer                  string
	RefreshTokenExpiryDuration time.Duration

	// SessionFetchTimeout bounds every profile fetch made while resolving a
	// session. SessionCacheTTL is how long a resolved bearer token is
	// trusted; negative disables the cache.
	SessionFetchTimeout time.Duration
	SessionCacheTTL     time.Duration
	EnableRoleSwitch    bool

	AuthRateLimit      string
	CORSAllowedOrigins []string
	FrontendBaseURL    string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	PosthogAPIKey   string
	PosthogEndpoint string

	TracingEnabled      bool
	TracingSamplingRate float64
	ServiceVersion      string

	// ReferenceDate pins "today" for period calculations. Zero means the
	// wall clock.
	ReferenceDate time.Time
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "rental-management-app")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	v.SetDefault("SESSION_FETCH_TIMEOUT", "10s")
	v.SetDefault("SESSION_CACHE_TTL", "15s")
	v.SetDefault("ENABLE_ROLE_SWITCH", true)
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SAMPLING_RATE", 1.0)
	v.SetDefault("SERVICE_VERSION", "dev")
	v.SetDefault("REFERENCE_DATE", "")

	v.AutomaticEnv()

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:           strings.ToLower(v.GetString("LOG_FORMAT")),
		StorageDriver:       strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		EnableRoleSwitch:    v.GetBool("ENABLE_ROLE_SWITCH"),
		AuthRateLimit:       v.GetString("AUTH_RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		FrontendBaseURL:     v.GetString("FRONTEND_BASE_URL"),
		GoogleClientID:      v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:   v.GetString("GOOGLE_REDIRECT_URL"),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     v.GetString("POSTHOG_ENDPOINT"),
		TracingEnabled:      v.GetBool("TRACING_ENABLED"),
		TracingSamplingRate: v.GetFloat64("TRACING_SAMPLING_RATE"),
		ServiceVersion:      v.GetString("SERVICE_VERSION"),
	}

	cfg.JWTExpiryDuration = durationOrDefault(v, "JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.RefreshTokenExpiryDuration = durationOrDefault(v, "REFRESH_TOKEN_EXPIRY_DURATION", defaultRefreshExpiry)
	cfg.SessionFetchTimeout = durationOrDefault(v, "SESSION_FETCH_TIMEOUT", defaultSessionTimeout)
	if cfg.SessionFetchTimeout <= 0 {
		slog.Warn("SESSION_FETCH_TIMEOUT must be positive, using default", slog.Duration("default", defaultSessionTimeout))
		cfg.SessionFetchTimeout = defaultSessionTimeout
	}
	cfg.SessionCacheTTL = durationOrDefault(v, "SESSION_CACHE_TTL", defaultSessionCache)

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	switch cfg.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		slog.Warn("Unknown STORAGE_DRIVER, using memory", slog.String("value", cfg.StorageDriver))
		cfg.StorageDriver = StorageMemory
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		slog.Warn("STORAGE_DRIVER is postgres but PGSQL_URL is not set")
	}

	if raw := v.GetString("REFERENCE_DATE"); raw != "" {
		ref, err := domain.ParseDate(raw)
		if err != nil {
			slog.Warn("Invalid REFERENCE_DATE, using the wall clock", slog.String("value", raw))
		} else {
			cfg.ReferenceDate = ref
		}
	}

	// Log warnings for missing critical OAuth ENV variables
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		slog.Info("Google OAuth is not fully configured, Google sign-in will not function")
	}

	return cfg, nil
}

// durationOrDefault parses key, falling back to def with a warning.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			slog.Warn("Invalid duration, using default",
				slog.String("key", key), slog.String("value", raw), slog.Duration("default", def))
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
