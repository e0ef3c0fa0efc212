// Package config loads settings for the nba-salary tools
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Config holds the tool's settings
type Config struct {
	BaseURL   string        `json:"base_url"`
	ModelPath string        `json:"model"`
	Timeout   time.Duration `json:"-"`
	TimeoutS  int           `json:"timeout_seconds"`
	RedisAddr string        `json:"redis_addr"`
	CacheTTL  time.Duration `json:"-"`
	CacheTTLS int           `json:"cache_ttl_seconds"`
	Port      int           `json:"port"`
}

// Defaults returns the built-in settings
func Defaults() Config {
	return Config{
		BaseURL:   "https://www.basketball-reference.com",
		TimeoutS:  30,
		CacheTTLS: 6 * 60 * 60,
		Port:      8090,
	}
}

func splitExt(f string) (string, string) {
	ext := filepath.Ext(f)
	return f[:len(f)-len(ext)], ext
}

// Load builds the configuration. Later sources win:
//  1. built-in defaults
//  2. <path>
//  3. <name>.local.<ext> next to path
//  4. NBA_* environment variables
//
// An empty path skips both files; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		prefix, ext := splitExt(path)
		for _, name := range []string{path, prefix + ".local" + ext} {
			data, err := os.ReadFile(name)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return cfg, fmt.Errorf("error reading config %s: %w", name, err)
			}

			var override Config
			if err := json5.Unmarshal(data, &override); err != nil {
				return cfg, fmt.Errorf("error parsing config %s: %w", name, err)
			}
			if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
				return cfg, fmt.Errorf("error merging config %s: %w", name, err)
			}
			log.Printf("Loaded config from %s", name)
		}
	}

	cfg.BaseURL = getEnv("NBA_BASE_URL", cfg.BaseURL)
	cfg.ModelPath = getEnv("NBA_MODEL_PATH", cfg.ModelPath)
	cfg.TimeoutS = getEnvInt("NBA_HTTP_TIMEOUT", cfg.TimeoutS)
	cfg.RedisAddr = getEnv("NBA_REDIS_ADDR", cfg.RedisAddr)
	cfg.CacheTTLS = getEnvInt("NBA_CACHE_TTL", cfg.CacheTTLS)
	cfg.Port = getEnvInt("NBA_SERVER_PORT", cfg.Port)

	cfg.Timeout = time.Duration(cfg.TimeoutS) * time.Second
	cfg.CacheTTL = time.Duration(cfg.CacheTTLS) * time.Second
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
