// Package config loads walletbox.yaml and the environment overrides that
// sit on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file name inside the home directory.
	FileName = "walletbox.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "WALLETBOX_"
	// HomeEnv names the variable that moves the home directory.
	HomeEnv = EnvPrefix + "HOME"
)

// Config represents the top-level walletbox.yaml configuration.
type Config struct {
	AppName  string         `yaml:"app_name"`
	Store    StoreConfig    `yaml:"store"`
	IDs      IDsConfig      `yaml:"ids"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig selects where the wallet document lives.
type StoreConfig struct {
	Backend string `yaml:"backend"`       // file, sqlite or memory
	Path    string `yaml:"path"`          // directory for file, database file for sqlite
	Key     string `yaml:"key,omitempty"` // empty means the wallet default
}

// IDsConfig selects the identifier scheme.
type IDsConfig struct {
	Scheme string `yaml:"scheme"` // uuid or legacy
}

// DefaultsConfig holds values used when a command leaves them out.
type DefaultsConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Home returns the walletbox home directory: $WALLETBOX_HOME, or
// ~/.walletbox.
func Home() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(userHome, ".walletbox"), nil
}

// Default returns a Config with defaults for a wallet kept under home.
func Default(home string) *Config {
	return &Config{
		AppName: "Wallet Sandbox",
		Store: StoreConfig{
			Backend: "file",
			Path:    filepath.Join(home, "data"),
		},
		IDs:      IDsConfig{Scheme: "uuid"},
		Defaults: DefaultsConfig{Currency: "₽"},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads a walletbox.yaml file from disk. Fields the file leaves out
// keep their defaults for home.
func Load(path, home string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default(home)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file, creating its directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve builds the effective configuration. Variables from envFile are
// loaded first without overriding the real environment. Then path is read
// (default: walletbox.yaml in the home directory; a missing default file
// means defaults), WALLETBOX_* variables are applied and the result is
// validated.
func Resolve(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	home, err := Home()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, FileName)
	}
	cfg, err := Load(path, home)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		cfg = Default(home)
	default:
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		name string
		dst  *string
	}{
		{"APP_NAME", &c.AppName},
		{"STORE_BACKEND", &c.Store.Backend},
		{"STORE_PATH", &c.Store.Path},
		{"STORE_KEY", &c.Store.Key},
		{"IDS_SCHEME", &c.IDs.Scheme},
		{"CURRENCY", &c.Defaults.Currency},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(EnvPrefix + o.name); ok && v != "" {
			*o.dst = v
		}
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	var problems []string
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return
			}
		}
		problems = append(problems, fmt.Sprintf("%s %q (want %s)", field, value, strings.Join(allowed, "|")))
	}
	check("store.backend", c.Store.Backend, "file", "sqlite", "memory")
	check("ids.scheme", c.IDs.Scheme, "uuid", "legacy")
	check("log.level", c.Log.Level, "debug", "info", "warn", "error")
	check("log.format", c.Log.Format, "text", "json")

	if c.Store.Path == "" && !strings.EqualFold(c.Store.Backend, "memory") {
		problems = append(problems, "store.path is empty")
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, ", "))
	}
	return nil
}
