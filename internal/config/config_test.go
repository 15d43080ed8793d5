package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, info, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadFromPath failed: %v", err)
	}
	if info.PortSpecified {
		t.Error("PortSpecified should be false without a file")
	}
	if cfg.Business.OfficeFee != 2000.0 {
		t.Errorf("OfficeFee = %v, want 2000.0", cfg.Business.OfficeFee)
	}
	if cfg.Override.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d, want the default 3", cfg.Override.TimeoutSeconds)
	}
}

func TestEnvOverridesWithoutFile(t *testing.T) {
	// A fresh install has no config.toml next to the binary; the env
	// overrides must still land.
	t.Setenv("ZUMURUDA_OVERRIDE_URL", "http://store.local")
	t.Setenv("ZUMURUDA_OVERRIDE_TOKEN", "secret")
	t.Setenv("ZUMURUDA_QUOTE_TEMPLATE_XLSX", "/srv/templates/quote.xlsx")

	cfg, _, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadFromPath failed: %v", err)
	}
	if cfg.Override.BaseURL != "http://store.local" {
		t.Errorf("BaseURL = %q, want the env override", cfg.Override.BaseURL)
	}
	if cfg.Override.AuthToken != "secret" {
		t.Errorf("AuthToken = %q, want the env override", cfg.Override.AuthToken)
	}
	if cfg.Template.QuotePath != "/srv/templates/quote.xlsx" {
		t.Errorf("QuotePath = %q, want the env override", cfg.Template.QuotePath)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `
[override]
base_url = "http://file.local"

[template]
quote_template_path = "file.xlsx"
`)

	t.Setenv("ZUMURUDA_OVERRIDE_URL", "http://env.local")
	t.Setenv("ZUMURUDA_QUOTE_TEMPLATE_XLSX", "env.xlsx")

	cfg, _, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath failed: %v", err)
	}
	if cfg.Override.BaseURL != "http://env.local" {
		t.Errorf("BaseURL = %q, env should win over the file", cfg.Override.BaseURL)
	}
	if cfg.Template.QuotePath != "env.xlsx" {
		t.Errorf("QuotePath = %q, env should win over the file", cfg.Template.QuotePath)
	}
}

func TestTimeoutClamp(t *testing.T) {
	cases := []struct {
		configured int
		want       int
	}{
		{0, 1},
		{-2, 1},
		{1, 1},
		{4, 4},
		{100, 5},
	}
	for _, c := range cases {
		dir := t.TempDir()
		path := writeConfigFile(t, dir, "[override]\ntimeout_seconds = "+strconv.Itoa(c.configured)+"\n")

		cfg, _, err := loadFromPath(path)
		if err != nil {
			t.Fatalf("loadFromPath failed: %v", err)
		}
		if cfg.Override.TimeoutSeconds != c.want {
			t.Errorf("timeout_seconds %d clamped to %d, want %d",
				c.configured, cfg.Override.TimeoutSeconds, c.want)
		}
	}
}

func TestPortSpecifiedDetection(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "[server]\nport = 9000\n")

	cfg, info, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath failed: %v", err)
	}
	if !info.PortSpecified {
		t.Error("PortSpecified should be true when the file sets a port")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}

	path = writeConfigFile(t, t.TempDir(), "[server]\ndev_mode = true\n")
	_, info, err = loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath failed: %v", err)
	}
	if info.PortSpecified {
		t.Error("PortSpecified should be false when the file omits the port")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "this is not toml [[[")

	if _, _, err := loadFromPath(path); err == nil {
		t.Error("loadFromPath should fail on a malformed file")
	}
}
