package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve leaderboards over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		addr := e.cfg.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, e.store, server.Options{
			Addr:      addr,
			RateLimit: e.cfg.RateLimit,
		})
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides HANJA_ADDR)")
}
