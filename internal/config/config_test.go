package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"HANJA_DB", "HANJA_LOG_LEVEL", "HANJA_LOG_FILE", "HANJA_USER", "HANJA_GRADE", "HANJA_ADDR", "HANJA_RATE_LIMIT", "HANJA_QUEUE_SIZE"} {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hanja.db")
	setEnv(t, map[string]string{"HANJA_DB": db, "HANJA_USER": "서연"})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != db {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, db)
	}
	if cfg.LogFile != filepath.Join(filepath.Dir(db), "hanja.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.Addr != DefaultAddr {
		t.Errorf("LogLevel, Addr = %q, %q", cfg.LogLevel, cfg.Addr)
	}
	if cfg.RateLimit != DefaultRateLimit || cfg.QueueSize != DefaultQueueSize {
		t.Errorf("RateLimit, QueueSize = %d, %d", cfg.RateLimit, cfg.QueueSize)
	}
	if cfg.Username != "서연" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if cfg.Grade != "" {
		t.Errorf("Grade = %q, want empty", cfg.Grade)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"HANJA_DB":         filepath.Join(t.TempDir(), "x.db"),
		"HANJA_LOG_LEVEL":  "debug",
		"HANJA_ADDR":       ":9000",
		"HANJA_RATE_LIMIT": "20",
		"HANJA_QUEUE_SIZE": "8",
		"HANJA_GRADE":      "6급",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Addr != ":9000" || cfg.RateLimit != 20 || cfg.QueueSize != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Grade != hanja.Grade6 {
		t.Errorf("Grade = %q, want 6급", cfg.Grade)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad level", map[string]string{"HANJA_LOG_LEVEL": "loud"}},
		{"bad rate", map[string]string{"HANJA_RATE_LIMIT": "many"}},
		{"zero queue", map[string]string{"HANJA_QUEUE_SIZE": "0"}},
		{"bad grade", map[string]string{"HANJA_GRADE": "10급"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"HANJA_DB": filepath.Join(t.TempDir(), "x.db")}
			for k, v := range tt.env {
				env[k] = v
			}
			setEnv(t, env)

			_, err := Load()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}
