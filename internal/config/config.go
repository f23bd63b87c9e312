package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
	Nexuce    NexuceConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// DashboardConfig holds the operator credentials accepted at /login.
// PasswordBcrypt, when set, takes precedence over Password and is compared
// as a bcrypt hash so the plaintext never has to live in the environment.
type DashboardConfig struct {
	Username       string
	Password       string
	PasswordBcrypt string
}

// NexuceConfig holds the upstream provider portal settings.
type NexuceConfig struct {
	BaseURL        string
	Username       string
	Password       string
	TimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "esim-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "supersecret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
		},
		Dashboard: DashboardConfig{
			Username:       os.Getenv("DASHBOARD_USERNAME"),
			Password:       os.Getenv("DASHBOARD_PASSWORD"),
			PasswordBcrypt: os.Getenv("DASHBOARD_PASSWORD_BCRYPT"),
		},
		Nexuce: NexuceConfig{
			BaseURL:        getEnv("NEXUCE_BASE_URL", "https://mobileapp.roamability.com/portal"),
			Username:       os.Getenv("NEXUCE_USERNAME"),
			Password:       os.Getenv("NEXUCE_PASSWORD"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 30),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the outbound call timeout for the provider client.
func (n NexuceConfig) Timeout() time.Duration {
	if n.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(n.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
