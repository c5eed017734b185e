package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/config"
	"github.com/abhisek/hanjaolympics/internal/logger"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// env is what every data command runs against.
type env struct {
	cfg     *config.Config
	store   *store.Store
	profile store.Profile
}

// loadConfig reads the environment and applies the --db flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		cfg.DBPath = p
	}
	return cfg, nil
}

// openEnv loads config, starts logging, opens the store and makes sure
// the local profile exists. Logs go to the log file unless toStderr.
func openEnv(cmd *cobra.Command, toStderr bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath := cfg.LogFile
	if toStderr {
		logPath = ""
	}
	if err := logger.Init(cfg.LogLevel, logPath); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	profile, err := st.EnsureProfile(cmd.Context(), cfg.Username)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &env{cfg: cfg, store: st, profile: profile}, nil
}

func (e *env) Close() {
	e.store.Close()
	logger.Sync()
}
