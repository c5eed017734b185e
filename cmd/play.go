package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start the game, optionally jumping straight into one event",
	Long: "Start the game. With a game id (" + strings.Join(gameIDs(), ", ") + ") that event opens at once.\n" +
		"--seed fixes the question order so players on different machines get the same round.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts playOptions
		if len(args) == 1 {
			info, err := game.Lookup(args[0])
			if err != nil {
				return err
			}
			opts.start = info.ID
		}

		opts.seed, _ = cmd.Flags().GetInt64("seed")

		grade, err := gradeFlag(cmd)
		if err != nil {
			return err
		}
		opts.grade = grade

		return runApp(cmd, opts)
	},
}

func init() {
	playCmd.Flags().Int64("seed", 0, "Shared question seed (0 = random)")
	playCmd.Flags().String("grade", "", "Play at this grade without changing the profile (e.g. 6급)")
}

func gameIDs() []string {
	var ids []string
	for _, g := range game.Catalog() {
		ids = append(ids, string(g.ID))
	}
	return ids
}

// gradeFlag parses --grade; empty means unset.
func gradeFlag(cmd *cobra.Command) (hanja.Grade, error) {
	g, _ := cmd.Flags().GetString("grade")
	if g == "" {
		return "", nil
	}
	grade, ok := hanja.ParseGrade(g)
	if !ok {
		return "", fmt.Errorf("unknown grade %q (one of %s)", g, gradeList())
	}
	return grade, nil
}

func gradeList() string {
	var labels []string
	for _, g := range hanja.GradeHierarchy() {
		labels = append(labels, g.String())
	}
	return strings.Join(labels, ", ")
}
