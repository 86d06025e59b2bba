package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	limiter "github.com/ulule/limiter/v3"
)

const (
	defaultPort         = "8080"
	defaultEmailFrom    = "Exceptional Building <no-reply@ebs-team.co.uk>"
	defaultRateLimit    = "10-M"
	defaultMaxBodyBytes = 1 << 20
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	ResendAPIKey       string
	ResendBaseURL      string
	EmailFrom          string
	EmailTo            string
	DeliveryLogPath    string
	LogFormat          string
	LogLevel           string
	CORSAllowedOrigins []string
	SendEmailLiveness  bool
	MetricsEnabled     bool
	RateLimit          limiter.Rate
	MaxBodyBytes       int64
	// OpsToken guards the delivery-log endpoint; empty disables it.
	OpsToken string

	// Warnings lists settings that are missing but not fatal. They are
	// logged once the logger exists.
	Warnings []string
}

// Load reads .env when present, then the process environment. Variables
// already set in the environment win over .env values.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(dotenvPath string) (Config, error) {
	if _, err := os.Stat(dotenvPath); err == nil {
		if err := godotenv.Load(dotenvPath); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), defaultPort),
		ResendAPIKey:       strings.TrimSpace(k.String("RESEND_API_KEY")),
		ResendBaseURL:      strings.TrimSpace(k.String("RESEND_BASE_URL")),
		EmailFrom:          valueOrDefault(k.String("EMAIL_FROM"), defaultEmailFrom),
		EmailTo:            strings.TrimSpace(k.String("EMAIL_TO")),
		DeliveryLogPath:    strings.TrimSpace(k.String("DELIVERY_LOG_PATH")),
		LogFormat:          valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		SendEmailLiveness:  parseBool(k.String("SEND_EMAIL_LIVENESS"), true),
		MetricsEnabled:     parseBool(k.String("METRICS_ENABLED"), true),
		OpsToken:           strings.TrimSpace(k.String("OPS_TOKEN")),
	}

	rate, err := limiter.NewRateFromFormatted(valueOrDefault(k.String("RATE_LIMIT"), defaultRateLimit))
	if err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = rate

	cfg.MaxBodyBytes = defaultMaxBodyBytes
	if raw := strings.TrimSpace(k.String("MAX_BODY_BYTES")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, errors.New("MAX_BODY_BYTES must be a positive integer")
		}
		cfg.MaxBodyBytes = n
	}

	if cfg.ResendAPIKey == "" {
		cfg.Warnings = append(cfg.Warnings, "RESEND_API_KEY is not set; emails are kept in memory and not delivered")
		if cfg.EmailTo == "" {
			cfg.Warnings = append(cfg.Warnings, "EMAIL_TO is not set; internal notifications have no recipient")
		}
	} else if cfg.EmailTo == "" {
		return Config{}, errors.New("EMAIL_TO is required when RESEND_API_KEY is set")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = defaultPort
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
