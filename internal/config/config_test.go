package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ServiceName != "cricket-auction-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.SummaryWorkers != 4 {
		t.Fatalf("unexpected SummaryWorkers: %d", cfg.SummaryWorkers)
	}
	if cfg.AccountsCircuitFailureCount != 5 {
		t.Fatalf("unexpected AccountsCircuitFailureCount: %d", cfg.AccountsCircuitFailureCount)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_SMTPRequiresHostWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SMTP_ENABLED=true without SMTP_HOST")
	}
}

func TestLoad_SMTPConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "auction")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_FROM", "auction@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SMTPEnabled {
		t.Fatalf("expected SMTPEnabled=true")
	}
	if cfg.SMTPHost != "smtp.example.com" {
		t.Fatalf("unexpected SMTPHost: %q", cfg.SMTPHost)
	}
	if cfg.SMTPPort != 465 {
		t.Fatalf("unexpected SMTPPort: %d", cfg.SMTPPort)
	}
	if cfg.SMTPFrom != "auction@example.com" {
		t.Fatalf("unexpected SMTPFrom: %q", cfg.SMTPFrom)
	}
}

func TestLoad_AccountsCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ACCOUNTS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("ACCOUNTS_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AccountsCircuitFailureCount != 3 {
		t.Fatalf("unexpected AccountsCircuitFailureCount: %d", cfg.AccountsCircuitFailureCount)
	}
	if cfg.AccountsCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected AccountsCircuitOpenTimeout: %s", cfg.AccountsCircuitOpenTimeout)
	}
}

func TestLoad_RejectsNonPositiveSummaryWorkers(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SUMMARY_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SUMMARY_WORKERS=0")
	}
}
