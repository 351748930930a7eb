package config

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           string
	DevLogging     bool
	MetricsEnabled bool
	MetricsToken   string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           getenv("PORT", "3000"),
		DevLogging:     os.Getenv("DEV_LOGGING") == "1",
		MetricsEnabled: getenv("METRICS_ENABLED", "1") == "1",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
