package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nikunj436/cricketAuction/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	DBURL                        string
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	AccountsBaseURL              string
	AccountsIntrospectPath       string
	AccountsTimeout              time.Duration
	AccountsCircuitEnabled       bool
	AccountsCircuitFailureCount  int
	AccountsCircuitOpenTimeout   time.Duration
	AccountsCircuitHalfOpenReq   int
	SMTPEnabled                  bool
	SMTPHost                     string
	SMTPPort                     int
	SMTPUser                     string
	SMTPPass                     string
	SMTPFrom                     string
	SummaryWorkers               int
	LogLevel                     logging.Level
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_READ_TIMEOUT must be > 0")
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_WRITE_TIMEOUT must be > 0")
	}

	accountsTimeout, err := time.ParseDuration(getEnv("ACCOUNTS_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_TIMEOUT: %w", err)
	}
	if accountsTimeout <= 0 {
		return Config{}, fmt.Errorf("ACCOUNTS_TIMEOUT must be > 0")
	}

	accountsCircuitEnabled, err := strconv.ParseBool(getEnv("ACCOUNTS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_ENABLED: %w", err)
	}
	accountsCircuitFailureCount, err := getEnvAsInt("ACCOUNTS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if accountsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	accountsCircuitOpenTimeout, err := time.ParseDuration(getEnv("ACCOUNTS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if accountsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	accountsCircuitHalfOpenReq, err := getEnvAsInt("ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if accountsCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("ACCOUNTS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	smtpEnabled, err := strconv.ParseBool(getEnv("SMTP_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_ENABLED: %w", err)
	}
	smtpHost := strings.TrimSpace(getEnv("SMTP_HOST", ""))
	smtpPort, err := getEnvAsInt("SMTP_PORT", 587)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_PORT: %w", err)
	}
	smtpFrom := strings.TrimSpace(getEnv("SMTP_FROM", ""))
	if smtpEnabled {
		if smtpHost == "" {
			return Config{}, fmt.Errorf("SMTP_HOST is required when SMTP_ENABLED=true")
		}
		if smtpPort < 1 || smtpPort > 65535 {
			return Config{}, fmt.Errorf("SMTP_PORT must be a valid port")
		}
		if smtpFrom == "" {
			return Config{}, fmt.Errorf("SMTP_FROM is required when SMTP_ENABLED=true")
		}
	}

	summaryWorkers, err := getEnvAsInt("SUMMARY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUMMARY_WORKERS: %w", err)
	}
	if summaryWorkers < 1 {
		return Config{}, fmt.Errorf("SUMMARY_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "cricket-auction-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                       getEnv("DB_URL", ""),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		AccountsBaseURL:             getEnv("ACCOUNTS_BASE_URL", "http://localhost:8081"),
		AccountsIntrospectPath:      getEnv("ACCOUNTS_INTROSPECT_PATH", "/v1/auth/introspect"),
		AccountsTimeout:             accountsTimeout,
		AccountsCircuitEnabled:      accountsCircuitEnabled,
		AccountsCircuitFailureCount: accountsCircuitFailureCount,
		AccountsCircuitOpenTimeout:  accountsCircuitOpenTimeout,
		AccountsCircuitHalfOpenReq:  accountsCircuitHalfOpenReq,
		SMTPEnabled:                 smtpEnabled,
		SMTPHost:                    smtpHost,
		SMTPPort:                    smtpPort,
		SMTPUser:                    strings.TrimSpace(getEnv("SMTP_USER", "")),
		SMTPPass:                    strings.TrimSpace(getEnv("SMTP_PASS", "")),
		SMTPFrom:                    smtpFrom,
		SummaryWorkers:              summaryWorkers,
		LogLevel:                    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
