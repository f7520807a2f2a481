package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	csv := filepath.Join(t.TempDir(), "grants.csv")
	if err := os.WriteFile(csv, []byte("Charity\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &Config{
		Port:       "8082",
		DataSource: "csv",
		CSVPath:    csv,
		LogLevel:   "info",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "not-a-port" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"unknown source", func(c *Config) { c.DataSource = "fax" }},
		{"csv without path", func(c *Config) { c.CSVPath = "" }},
		{"sqlite without path", func(c *Config) { c.DataSource = "sqlite"; c.SQLiteDBPath = "" }},
		{"missing metadata file", func(c *Config) { c.MetadataPath = "/nonexistent/grantees.toml" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig(t)
			tc.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("DATA_SOURCE")
	os.Unsetenv("PORT")
	c := Load()
	if c.DataSource != "csv" {
		t.Fatalf("default source = %q", c.DataSource)
	}
	if c.Port != "8082" {
		t.Fatalf("default port = %q", c.Port)
	}
}
