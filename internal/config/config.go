// config loads runtime configuration for the MediAI client toolkit.
//
// Sources, in order of precedence:
//  1. explicit path passed by the caller;
//  2. CONFIG_PATH;
//  3. ./mediai.yaml;
//  4. environment only (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"MEDIAI_ENV" env-default:"local"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Portal  PortalConfig  `yaml:"portal"`
}

// APIConfig points at the MediAI REST backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"MEDIAI_API_BASE_URL" env-default:"http://127.0.0.1:8000"`
	Timeout time.Duration `yaml:"timeout" env:"MEDIAI_API_TIMEOUT" env-default:"10s"`
}

// SessionConfig controls token persistence and the silent-refresh loop.
type SessionConfig struct {
	// DataDir holds the token file. Defaults to ~/.mediai.
	DataDir         string        `yaml:"data_dir" env:"MEDIAI_DATA_DIR"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"MEDIAI_REFRESH_INTERVAL" env-default:"1m"`
}

// PortalConfig is the locally served doctor portal.
type PortalConfig struct {
	Host string `yaml:"host" env:"MEDIAI_PORTAL_HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"MEDIAI_PORTAL_PORT" env-default:"3000"`
}

func (p PortalConfig) Addr() string { return net.JoinHostPort(p.Host, p.Port) }

// TokenFile is the path of the persisted token slots.
func (s SessionConfig) TokenFile() string {
	return filepath.Join(s.DataDir, "tokens.json")
}

// MustLoad panics when the configuration cannot be loaded.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		applyDefaults(&cfg)
		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return tryRead(env)
	}
	if _, err := os.Stat("mediai.yaml"); err == nil {
		return tryRead("mediai.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Session.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Session.DataDir = filepath.Join(home, ".mediai")
	}
}
