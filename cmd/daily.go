package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/shuffle"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// dailyQuestions is the length of the daily challenge.
const dailyQuestions = 10

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's challenge, its status and the streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		today := time.Now()
		grade := hanja.LabelOrDefault(e.profile.Grade)
		seed := shuffle.DateSeed(today)

		fmt.Fprintf(out, "📅 %s  (%s, seed %d)\n\n", today.Format(store.DateLayout), grade, seed)
		for i, q := range game.SharedQuestions(hanja.ForGrade(grade), seed, dailyQuestions) {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, q.Symbol)
		}
		fmt.Fprintln(out)

		rec, err := e.store.DailyChallenge(ctx, e.profile.ID, today)
		switch {
		case err == nil:
			fmt.Fprintf(out, "오늘 완료: %d/%d %s\n", rec.Score, dailyQuestions, rec.Medal.Icon())
		case errors.Is(err, store.ErrNotFound):
			fmt.Fprintln(out, "오늘의 도전이 기다리고 있습니다. `hanja play daily`")
		default:
			return fmt.Errorf("load daily challenge: %w", err)
		}

		streak, err := e.store.DailyStreak(ctx, e.profile.ID, today)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}
		fmt.Fprintf(out, "연속 기록: ★ %d일\n", streak)
		return nil
	},
}
