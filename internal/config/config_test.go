package config_test

import (
	"testing"

	"github.com/paperpress/paperpress-server/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "DB_DSN", "CORS_ORIGINS", "BANK_SEED_PATH"} {
		t.Setenv(k, "")
	}

	cfg := config.FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if len(cfg.AllowedOrigins) != 6 {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	// First entry is the CORS fallback origin.
	if cfg.AllowedOrigins[0] != "https://paperpress.vercel.app" {
		t.Errorf("fallback origin = %q", cfg.AllowedOrigins[0])
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://db/paperpress")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := config.FromEnv()
	if cfg.HTTPAddr != ":9999" || cfg.DBDriver != "postgres" || cfg.DBDSN != "postgres://db/paperpress" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORS_ORIGINS parsing: %v", cfg.AllowedOrigins)
	}
}
