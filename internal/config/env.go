package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv overlays GUUID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("GUUID_COMPARATOR"); v != "" {
		cfg.Comparator = v
	}
	if v := os.Getenv("GUUID_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("GUUID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GUUID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("GUUID_MYSQL_DSN"); v != "" {
		cfg.MySQL.DSN = v
	}
	if v := os.Getenv("GUUID_MYSQL_TABLE"); v != "" {
		cfg.MySQL.Table = v
	}
	if v := os.Getenv("GUUID_MYSQL_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MySQL.MaxOpenConns = n
		}
	}
	if v := os.Getenv("GUUID_MYSQL_MAX_IDLE_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MySQL.MaxIdleConns = n
		}
	}
	if v := os.Getenv("GUUID_MYSQL_CONN_MAX_LIFETIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.MySQL.ConnMaxLifetime = d
		}
	}
}
