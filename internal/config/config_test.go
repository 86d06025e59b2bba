package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configKeys = []string{
	"APP_ENV", "PORT", "RESEND_API_KEY", "RESEND_BASE_URL", "EMAIL_FROM", "EMAIL_TO",
	"DELIVERY_LOG_PATH", "LOG_FORMAT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	"SEND_EMAIL_LIVENESS", "METRICS_ENABLED", "RATE_LIMIT", "MAX_BODY_BYTES", "OPS_TOKEN",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Fatalf("addr = %q", cfg.HTTPAddr())
	}
	if cfg.EmailFrom != "Exceptional Building <no-reply@ebs-team.co.uk>" {
		t.Fatalf("emailFrom = %q", cfg.EmailFrom)
	}
	if !cfg.SendEmailLiveness || !cfg.MetricsEnabled {
		t.Fatalf("liveness/metrics should default on")
	}
	if cfg.RateLimit.Limit != 10 || cfg.RateLimit.Period != time.Minute {
		t.Fatalf("rate = %+v", cfg.RateLimit)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("maxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if len(cfg.Warnings) != 2 {
		t.Fatalf("warnings = %v, want API key and EMAIL_TO", cfg.Warnings)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9999")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("EMAIL_TO", "office@example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SEND_EMAIL_LIVENESS", "false")
	t.Setenv("RATE_LIMIT", "5-S")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.HTTPAddr() != ":9999" {
		t.Fatalf("addr = %q", cfg.HTTPAddr())
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SendEmailLiveness {
		t.Fatalf("liveness should be off")
	}
	if cfg.RateLimit.Limit != 5 || cfg.RateLimit.Period != time.Second {
		t.Fatalf("rate = %+v", cfg.RateLimit)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("maxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if len(cfg.Warnings) != 0 {
		t.Fatalf("warnings = %v", cfg.Warnings)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_TO", "real@example.com")

	path := filepath.Join(t.TempDir(), ".env")
	content := "# local\nEMAIL_TO=dotenv@example.com\nEMAIL_FROM=\"EBS <dev@example.com>\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.EmailTo != "real@example.com" {
		t.Fatalf("emailTo = %q, want the environment value", cfg.EmailTo)
	}
	if cfg.EmailFrom != "EBS <dev@example.com>" {
		t.Fatalf("emailFrom = %q, want the .env value", cfg.EmailFrom)
	}
	os.Unsetenv("EMAIL_FROM")
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT", "lots")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected RATE_LIMIT error")
	}

	t.Setenv("RATE_LIMIT", "")
	t.Setenv("MAX_BODY_BYTES", "-1")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected MAX_BODY_BYTES error")
	}
}

func TestLoadRequiresEmailToWithAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEND_API_KEY", "re_123")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected EMAIL_TO error when the API key is set")
	}

	t.Setenv("EMAIL_TO", "office@example.com")
	t.Setenv("OPS_TOKEN", " secret ")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.OpsToken != "secret" {
		t.Fatalf("opsToken = %q", cfg.OpsToken)
	}
}
