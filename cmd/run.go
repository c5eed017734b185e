package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hanjaolympics/internal/app"
	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/logger"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/tracker"
)

// playOptions are the per-run overrides from flags.
type playOptions struct {
	start game.ID
	seed  int64
	// grade overrides the profile grade for this run only.
	grade hanja.Grade
}

// runApp opens the store, builds the screen services, and launches the TUI.
func runApp(cmd *cobra.Command, opts playOptions) error {
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	rec := tracker.New(e.store, e.profile.ID, e.cfg.QueueSize)
	defer rec.Close()

	player := screen.NewPlayer(e.profile)
	switch {
	case opts.grade != "":
		player.Level = opts.grade
	case e.cfg.Grade != "":
		player.Level = e.cfg.Grade
	}

	logger.Named("cmd").Info("starting game",
		zap.String("user", player.Username),
		zap.String("grade", player.Grade().String()),
		zap.String("start", string(opts.start)),
		zap.Int64("seed", opts.seed),
	)

	svc := &screen.Services{
		Data:     e.store,
		Recorder: rec,
		Player:   player,
		Seed:     opts.seed,
	}
	return app.Run(svc, opts.start)
}
