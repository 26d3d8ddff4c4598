// Package config loads settings for the guuid command from a YAML file and
// GUUID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/guuid/v2"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Comparator names the byte order sequential UUIDs are generated for.
	Comparator string      `yaml:"comparator"`
	Style      string      `yaml:"style"`
	Log        LogConfig   `yaml:"log"`
	MySQL      MySQLConfig `yaml:"mysql"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MySQLConfig configures the key store used by verify-order.
type MySQLConfig struct {
	DSN             string        `yaml:"dsn"`
	Table           string        `yaml:"table"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Comparator: guuid.ComparatorDefault.String(),
		Style:      string(guuid.StyleDashed),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		MySQL: MySQLConfig{
			Table:           "guuid_keys",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
	}
}

// Load reads a YAML file over the defaults. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	var errs []error
	if _, err := guuid.ParseComparator(c.Comparator); err != nil {
		errs = append(errs, err)
	}
	if _, err := guuid.ParseStyle(c.Style); err != nil {
		errs = append(errs, err)
	}
	if !tableName.MatchString(c.MySQL.Table) {
		errs = append(errs, fmt.Errorf("mysql.table %q is not a plain identifier", c.MySQL.Table))
	}
	if c.MySQL.MaxOpenConns < 0 || c.MySQL.MaxIdleConns < 0 {
		errs = append(errs, errors.New("mysql connection limits must not be negative"))
	}
	return errors.Join(errs...)
}

// ComparatorValue returns the configured comparator.
func (c Config) ComparatorValue() (guuid.Comparator, error) {
	return guuid.ParseComparator(c.Comparator)
}

// StyleValue returns the configured output style.
func (c Config) StyleValue() (guuid.Style, error) {
	return guuid.ParseStyle(c.Style)
}
