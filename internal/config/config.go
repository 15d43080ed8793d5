package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Override OverrideConfig `toml:"override"`
	Template TemplateConfig `toml:"template"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig locates the tabular source workbooks.
type DataConfig struct {
	DataDir       string `toml:"data_dir"`
	MasterPattern string `toml:"master_pattern"`
	VacantPattern string `toml:"vacant_pattern"`
}

// BusinessConfig holds pricing and quote settings.
type BusinessConfig struct {
	OfficeFee          float64 `toml:"office_fee"`
	DownloadTTLMinutes int     `toml:"download_ttl_minutes"`
}

// OverrideConfig points at the remote status override store.
// An empty BaseURL means the store is unconfigured and lookups
// use the tabular-derived status only.
type OverrideConfig struct {
	BaseURL        string `toml:"base_url"`
	AuthToken      string `toml:"auth_token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// TemplateConfig holds the quote document template location.
type TemplateConfig struct {
	QuotePath string `toml:"quote_template_path"`
}

// LoadConfigInfo carries metadata about how the config was loaded.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20287,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:       "data",
			MasterPattern: "*master*.xlsx",
			VacantPattern: "*vacant*.xlsx",
		},
		Business: BusinessConfig{
			OfficeFee:          2000.0,
			DownloadTTLMinutes: 15,
		},
		Override: OverrideConfig{
			BaseURL:        "",
			TimeoutSeconds: 3,
		},
		Template: TemplateConfig{
			QuotePath: "",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml from the executable directory
// and reports load metadata. A missing file yields the defaults; the
// environment overrides apply either way.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	return loadFromPath(filepath.Join(exeDir, "config.toml"))
}

func loadFromPath(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvAndClamp(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvAndClamp(config)

	return config, info, nil
}

// applyEnvAndClamp layers the environment overrides (for local runs and
// E2E) on top of whatever the file provided, then bounds the remote
// timeout. Runs on every load path, with or without a config file.
func applyEnvAndClamp(config *AppConfig) {
	if v := os.Getenv("ZUMURUDA_OVERRIDE_URL"); v != "" {
		config.Override.BaseURL = v
	}
	if v := os.Getenv("ZUMURUDA_OVERRIDE_TOKEN"); v != "" {
		config.Override.AuthToken = v
	}
	if v := os.Getenv("ZUMURUDA_QUOTE_TEMPLATE_XLSX"); v != "" {
		config.Template.QuotePath = v
	}

	// Remote reads must stay short, see the lookup timeout contract.
	if config.Override.TimeoutSeconds < 1 {
		config.Override.TimeoutSeconds = 1
	}
	if config.Override.TimeoutSeconds > 5 {
		config.Override.TimeoutSeconds = 5
	}
}

// LoadConfig loads config.toml from the executable directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir makes sure the data directory and its subdirectories exist.
// A relative data_dir sits next to the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"sources", "templates"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
