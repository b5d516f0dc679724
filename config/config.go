// Package config loads the recognized validation options from the
// environment, per spec.md §6.
//
// Grounded on bosocmputer-account_ocr_gemini's configs/config.go
// (godotenv.Load + os.Getenv-with-default helpers), generalized to a
// returned Options struct instead of package-level vars so a validator
// is configurable per call and safe for concurrent use with distinct
// options (spec.md §5).
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Options holds the recognized configuration options of spec.md §6.
type Options struct {
	SchemaCacheDir      string
	SchemaBaseURL       string
	SchemaRefreshHours  int
	HTTPTimeoutSeconds  int
	MonetaryTolerance   decimal.Decimal
	MaxCFAmountGTQ      decimal.Decimal
	MaxEmissionDaysBack int
	RulebookVersion     string
}

// SchemaRefreshPeriod returns SchemaRefreshHours as a time.Duration.
func (o Options) SchemaRefreshPeriod() time.Duration {
	return time.Duration(o.SchemaRefreshHours) * time.Hour
}

// HTTPTimeout returns HTTPTimeoutSeconds as a time.Duration.
func (o Options) HTTPTimeout() time.Duration {
	return time.Duration(o.HTTPTimeoutSeconds) * time.Second
}

// Default returns the option defaults spec.md §6 names: 24h schema
// refresh, 30s HTTP timeout, 0.01 monetary tolerance, 2500.00 GTQ CF cap,
// 5 days max emission lag.
func Default() Options {
	return Options{
		SchemaCacheDir:      "./schema-cache",
		SchemaBaseURL:       "https://schemas.example-fel-sat.gt/dte",
		SchemaRefreshHours:  24,
		HTTPTimeoutSeconds:  30,
		MonetaryTolerance:   decimal.RequireFromString("0.01"),
		MaxCFAmountGTQ:      decimal.RequireFromString("2500.00"),
		MaxEmissionDaysBack: 5,
		RulebookVersion:     "FEL-Reglas-y-Validaciones-v1.7.9",
	}
}

// Load reads a .env file if present, then overlays environment variables
// onto Default(). Unset variables keep their default.
func Load() Options {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables")
	}

	o := Default()
	o.SchemaCacheDir = getEnv("FEL_SCHEMA_CACHE_DIR", o.SchemaCacheDir)
	o.SchemaBaseURL = getEnv("FEL_SCHEMA_BASE_URL", o.SchemaBaseURL)
	o.SchemaRefreshHours = getEnvInt("FEL_SCHEMA_REFRESH_HOURS", o.SchemaRefreshHours)
	o.HTTPTimeoutSeconds = getEnvInt("FEL_HTTP_TIMEOUT_SECONDS", o.HTTPTimeoutSeconds)
	o.MonetaryTolerance = getEnvDecimal("FEL_MONETARY_TOLERANCE", o.MonetaryTolerance)
	o.MaxCFAmountGTQ = getEnvDecimal("FEL_MAX_CF_AMOUNT_GTQ", o.MaxCFAmountGTQ)
	o.MaxEmissionDaysBack = getEnvInt("FEL_MAX_EMISSION_DAYS_BACK", o.MaxEmissionDaysBack)
	o.RulebookVersion = getEnv("FEL_RULEBOOK_VERSION", o.RulebookVersion)
	return o
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if parsed, err := decimal.NewFromString(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
