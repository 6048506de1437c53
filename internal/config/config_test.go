package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "schoolms" {
		t.Errorf("Database.DBName = %q, want schoolms", cfg.Database.DBName)
	}
	if cfg.Session.Expiration != "12h" {
		t.Errorf("Session.Expiration = %q, want 12h", cfg.Session.Expiration)
	}
	if cfg.Session.Secret != "env-secret" {
		t.Errorf("Session.Secret = %q, want the env override", cfg.Session.Secret)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
session:
  secret: file-secret
  expiration: 1h
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Session.Secret != "file-secret" {
		t.Errorf("Session.Secret = %q, want file-secret", cfg.Session.Secret)
	}
	if cfg.Session.Expiration != "1h" {
		t.Errorf("Session.Expiration = %q, want 1h", cfg.Session.Expiration)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	path := writeConfigFile(t, `
server:
  port: "9090"
session:
  secret: file-secret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want the env value 7070", cfg.Server.Port)
	}
}

func TestLoadConfigRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing session secret",
			content: `
server:
  port: "8080"
`,
		},
		{
			name: "bad session expiration",
			content: `
session:
  secret: s
  expiration: soon
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() succeeded, want validation error")
			}
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.local"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "school"

	want := "postgres://app:pw@db.local:5433/school?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
