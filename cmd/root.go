package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hanja",
	Short: "Hanja Olympics, a terminal game for learning Chinese characters",
	Long:  "Hanja Olympics: eight mini-games and a daily challenge for studying 한자 by 어문회 grade.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, playOptions{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HANJA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
