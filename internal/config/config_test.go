package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Access.FreeLessons != 2 {
		t.Errorf("free_lessons = %d", cfg.Access.FreeLessons)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Tutor.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d", cfg.Tutor.TimeoutSeconds)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[logging]
level = "debug"

[access]
free_lessons = 3

[tutor]
provider = "openai"
timeout_seconds = 10
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Access.FreeLessons != 3 {
		t.Errorf("free_lessons = %d", cfg.Access.FreeLessons)
	}
	if cfg.Tutor.Provider != "openai" || cfg.Tutor.TimeoutSeconds != 10 {
		t.Errorf("tutor = %+v", cfg.Tutor)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANGLOLINGUA_LOG_LEVEL", "error")
	t.Setenv("ANGLOLINGUA_FREE_LESSONS", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("level = %q, env should win", cfg.Logging.Level)
	}
	if cfg.Access.FreeLessons != 4 {
		t.Errorf("free_lessons = %d, env should win", cfg.Access.FreeLessons)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"negative free lessons", func(c *Config) { c.Access.FreeLessons = -1 }, true},
		{"zero timeout", func(c *Config) { c.Tutor.TimeoutSeconds = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
