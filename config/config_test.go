package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_MAX_CONNS",
	"CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "sensor_data",
		SSLMode:  "disable",
		MaxConns: 10,
	}
	dsn := db.GetDSN()

	expected := "host=localhost port=5432 user=postgres password=secret dbname=sensor_data sslmode=disable pool_max_conns=10"
	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}

func TestGetDSNCustomValues(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "admin",
		Password: "p@ss",
		Name:     "lab",
		SSLMode:  "require",
		MaxConns: 4,
	}
	dsn := db.GetDSN()

	for _, part := range []string{"host=db.example.com", "port=5433", "sslmode=require", "pool_max_conns=4"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN missing %q, got: %s", part, dsn)
		}
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("TEST_CONFIG_VAR")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want %q", got, "default")
	}

	t.Setenv("TEST_CONFIG_VAR", "custom")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "custom" {
		t.Errorf("getEnv() = %q, want %q", got, "custom")
	}
}

func TestGetIntEnv(t *testing.T) {
	t.Run("fallback when unset", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		got, err := getIntEnv("TEST_INT_VAR", 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 3000 {
			t.Errorf("getIntEnv() = %d, want %d", got, 3000)
		}
	})

	t.Run("parses valid int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "9090")
		got, err := getIntEnv("TEST_INT_VAR", 3000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 9090 {
			t.Errorf("getIntEnv() = %d, want %d", got, 9090)
		}
	})

	t.Run("error on invalid int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not_int")
		if _, err := getIntEnv("TEST_INT_VAR", 3000); err == nil {
			t.Error("expected error for invalid int value")
		}
	})
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION_VAR", "")
	got, err := getDurationEnv("TEST_DURATION_VAR", 5*time.Second)
	if err != nil || got != 5*time.Second {
		t.Errorf("getDurationEnv() = %v, %v; want 5s, nil", got, err)
	}

	t.Setenv("TEST_DURATION_VAR", "250ms")
	got, err = getDurationEnv("TEST_DURATION_VAR", 5*time.Second)
	if err != nil || got != 250*time.Millisecond {
		t.Errorf("getDurationEnv() = %v, %v; want 250ms, nil", got, err)
	}

	t.Setenv("TEST_DURATION_VAR", "soon")
	if _, err := getDurationEnv("TEST_DURATION_VAR", 5*time.Second); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Database.Name != "sensor_data" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "sensor_data")
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("Database.MaxConns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("CORS.AllowedOrigins = %q, want %q", cfg.CORS.AllowedOrigins, "*")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadConfigCustom(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.lab")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "reader")
	t.Setenv("DB_MAX_CONNS", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.lab" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.lab")
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want 5433", cfg.Database.Port)
	}
	if cfg.Database.User != "reader" {
		t.Errorf("Database.User = %q, want %q", cfg.Database.User, "reader")
	}
	if cfg.Database.MaxConns != 3 {
		t.Errorf("Database.MaxConns = %d, want 3", cfg.Database.MaxConns)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 2s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"PORT":             "invalid",
		"DB_PORT":          "x",
		"DB_MAX_CONNS":     "0",
		"SHUTDOWN_TIMEOUT": "forever",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("expected error for %s=%q", key, value)
			}
		})
	}
}
