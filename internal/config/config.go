// Package config reads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultAddr      = ":8080"
	DefaultRateLimit = 100
	DefaultQueueSize = 64
	DefaultUser      = "player"
)

// Config holds all settings for the game and its API server.
type Config struct {
	DBPath    string
	LogLevel  string
	LogFile   string
	Username  string
	Grade     hanja.Grade
	Addr      string
	RateLimit int
	QueueSize int
}

// Load reads configuration from environment variables, after loading .env
// when one exists.
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   os.Getenv("HANJA_DB"),
		LogLevel: envOr("HANJA_LOG_LEVEL", DefaultLogLevel),
		LogFile:  os.Getenv("HANJA_LOG_FILE"),
		Username: os.Getenv("HANJA_USER"),
		Addr:     envOr("HANJA_ADDR", DefaultAddr),
	}

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.DBPath = p
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), "hanja.log")
	}
	if cfg.Username == "" {
		cfg.Username = systemUser()
	}

	if g := os.Getenv("HANJA_GRADE"); g != "" {
		grade, ok := hanja.ParseGrade(g)
		if !ok {
			return nil, fmt.Errorf("%w: HANJA_GRADE %q is not a grade", ErrInvalid, g)
		}
		cfg.Grade = grade
	}

	var err error
	if cfg.RateLimit, err = envInt("HANJA_RATE_LIMIT", DefaultRateLimit); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = envInt("HANJA_QUEUE_SIZE", DefaultQueueSize); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that Load cannot default.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalid)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queue size must be positive", ErrInvalid)
	}
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("%w: empty username", ErrInvalid)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func systemUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return DefaultUser
}
