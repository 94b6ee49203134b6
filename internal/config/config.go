package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// AllowedOrigins is the fixed CORS allow-list. The first entry doubles as
	// the safe fallback when a request's origin matches nothing.
	AllowedOrigins []string

	// BankSeedPath optionally points to a JSON question dump loaded at boot.
	BankSeedPath string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		AllowedOrigins: csvOr("CORS_ORIGINS", defaultOrigins),
		BankSeedPath:   os.Getenv("BANK_SEED_PATH"),
	}
}

const defaultOrigins = "https://paperpress.vercel.app," +
	"https://paperpressapp.vercel.app," +
	"capacitor://localhost," +
	"ionic://localhost," +
	"http://localhost," +
	"http://localhost:3000"

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
