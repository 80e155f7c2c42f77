// Package config loads the service configuration from a TOML file with one
// table per environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"weighttrend/internal/domain"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	StorageCSV      = "csv"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// storage
	Storage      string `toml:"storage"`
	DataFile     string `toml:"data_file"`
	SettingsFile string `toml:"settings_file"`
	DatabaseURL  string `toml:"database_url"`
	// presentation
	Unit   string `toml:"unit"`
	WebDir string `toml:"web_dir"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Default is used for every key the file leaves out.
func Default() Config {
	return Config{
		Host:         "",
		Port:         8080,
		LogLevel:     "info",
		Storage:      StorageCSV,
		DataFile:     "weights.csv",
		SettingsFile: "settings.json",
		Unit:         string(domain.UnitKg),
	}
}

// Load reads the table for env from path. A missing file yields the
// defaults. Environment variables override file values.
func Load(env, path string) (*Config, error) {
	cfg := Default()

	var t Toml
	_, err := toml.DecodeFile(path, &t)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	default:
		section, err := t.Get(env)
		if err != nil {
			return nil, err
		}
		if section != nil {
			merge(&cfg, section)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func merge(dst *Config, src *Config) {
	if src.Host != "" {
		dst.Host = src.Host
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogsPath != "" {
		dst.LogsPath = src.LogsPath
	}
	dst.LogToStdout = src.LogToStdout
	dst.LogFormatJSON = src.LogFormatJSON
	if src.Storage != "" {
		dst.Storage = src.Storage
	}
	if src.DataFile != "" {
		dst.DataFile = src.DataFile
	}
	if src.SettingsFile != "" {
		dst.SettingsFile = src.SettingsFile
	}
	if src.DatabaseURL != "" {
		dst.DatabaseURL = src.DatabaseURL
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.WebDir != "" {
		dst.WebDir = src.WebDir
	}
}

func applyEnv(cfg *Config) error {
	if addr := os.Getenv("ADDR"); addr != "" {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return fmt.Errorf("ADDR %q: %w", addr, err)
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("ADDR %q: bad port", addr)
		}
		cfg.Host, cfg.Port = host, p
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
		cfg.Storage = StoragePostgres
	}
	if v := os.Getenv("DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("SETTINGS_FILE"); v != "" {
		cfg.SettingsFile = v
	}
	if v := os.Getenv("WEB_DIR"); v != "" {
		cfg.WebDir = v
	}
	return nil
}

// Validate reports configuration the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageCSV:
		if c.DataFile == "" {
			return errors.New("data_file is required for csv storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database_url is required for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if _, err := domain.ParseUnit(c.Unit); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
