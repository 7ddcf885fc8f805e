package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 8080
	Transport string // http or stdio

	Marketplace string // default marketplace host to search

	Browser struct {
		Headless  bool
		Timeout   time.Duration
		ChromeBin string
	}

	Cache struct {
		Dir string
		TTL time.Duration
	}
}

// Load populates config from a .env file (if present) and environment variables
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:    "info",
		Host:        "0.0.0.0",
		Port:        "8080",
		Transport:   TransportHTTP,
		Marketplace: "xmrbazaar.com",
	}
	cfg.Browser.Headless = true
	cfg.Browser.Timeout = 30 * time.Second
	cfg.Cache.TTL = time.Hour

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Host = getEnv("MCP_HOST", cfg.Host)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Transport = getEnv("MCP_TRANSPORT", cfg.Transport)
	cfg.Marketplace = getEnv("MARKETPLACE", cfg.Marketplace)
	cfg.Browser.ChromeBin = os.Getenv("CHROME_BIN")
	cfg.Browser.Headless = getEnvBool("BROWSER_HEADLESS", cfg.Browser.Headless)

	if ms := getEnvInt("BROWSER_TIMEOUT_MS", int(cfg.Browser.Timeout/time.Millisecond)); ms > 0 {
		cfg.Browser.Timeout = time.Duration(ms) * time.Millisecond
	} else {
		return cfg, fmt.Errorf("BROWSER_TIMEOUT_MS must be positive")
	}

	if sec := getEnvInt("CACHE_TTL_SECONDS", int(cfg.Cache.TTL/time.Second)); sec > 0 {
		cfg.Cache.TTL = time.Duration(sec) * time.Second
	} else {
		return cfg, fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}

	if dir := os.Getenv("CACHE_DIR"); dir != "" {
		cfg.Cache.Dir = dir
	} else {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		cfg.Cache.Dir = filepath.Join(base, "nexusai")
	}

	if cfg.Transport != TransportHTTP && cfg.Transport != TransportStdio {
		return cfg, fmt.Errorf("MCP_TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportStdio, cfg.Transport)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
