package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best scores and per-character statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.store.HanjaStats(cmd.Context(), e.profile.ID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s  (%s)\n\n", e.profile.Icon, e.profile.Username, hanja.LabelOrDefault(e.profile.Grade))

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "종목\t최고\t메달\t횟수\t평균")
		for _, b := range st.Games {
			name := b.GameID
			if info, err := game.Lookup(b.GameID); err == nil {
				name = info.Title()
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.1f\n", name, b.Best, b.Medal.Icon(), b.Plays, b.Average)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if len(st.Grades) > 0 {
			fmt.Fprintln(out, "\n급수별 정답률")
			for _, g := range st.Grades {
				fmt.Fprintf(out, "  %-4s %5.1f%%  (%d/%d)\n", g.Grade, g.Rate()*100, g.Correct, g.Correct+g.Wrong)
			}
		}
		printStatList(cmd, "자주 틀린 한자", st.TopMissed)
		printStatList(cmd, "잘 아는 한자", st.TopCorrect)
		return nil
	},
}

func printStatList(cmd *cobra.Command, title string, stats []store.HanjaStat) {
	if len(stats) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", title)
	for _, s := range stats {
		label := ""
		if e, ok := hanja.Lookup(s.Symbol); ok {
			label = e.Label
		}
		fmt.Fprintf(out, "  %s %-8s  ✓%d ✗%d  %3.0f%%\n", s.Symbol, label, s.Correct, s.Wrong, s.Rate()*100)
	}
}
