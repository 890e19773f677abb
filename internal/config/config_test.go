package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Driver != DriverSQLite {
		t.Fatalf("default driver = %q", cfg.Driver)
	}
	if cfg.SQLitePath == "" {
		t.Fatal("expected non-empty sqlite path")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_PostgresFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Driver != DriverPostgres || cfg.Host != "db.internal" || cfg.Port != 6543 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
