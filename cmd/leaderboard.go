package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [game|total]",
	Short: "Print a leaderboard for one game or the composite ranking",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board := game.TotalBoard
		title := "🏅 종합"
		if len(args) == 1 && args[0] != game.TotalBoard {
			info, err := game.Lookup(args[0])
			if err != nil {
				return err
			}
			if info.ID == game.Daily {
				return errors.New("the daily challenge has no leaderboard")
			}
			board, title = string(info.ID), info.Title()
		}

		grade, err := gradeFlag(cmd)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()
		if grade == "" {
			grade = hanja.LabelOrDefault(e.profile.Grade)
		}

		rows, err := e.store.Leaderboard(cmd.Context(), board, grade)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n\n", title, grade)
		if len(rows) == 0 {
			fmt.Fprintln(out, "아직 기록이 없습니다.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range rows {
			extra := r.Medal.Icon()
			if board == game.TotalBoard {
				extra = breakdown(r.Breakdown)
			}
			fmt.Fprintf(tw, "%d\t%s %s\t%d\t%s\n", r.Rank, r.Icon, r.Username, r.Score, extra)
		}
		return tw.Flush()
	},
}

func init() {
	leaderboardCmd.Flags().String("grade", "", "Rank players at this grade (default: profile grade)")
}

func breakdown(points map[string]int) string {
	ids := make([]string, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var parts []string
	for _, id := range ids {
		if points[id] > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", id, points[id]))
		}
	}
	return strings.Join(parts, " ")
}
