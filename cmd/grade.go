package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Show the profile grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		grade := hanja.LabelOrDefault(e.profile.Grade)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d자)\n", e.profile.Username, grade, len(hanja.ForGrade(grade)))
		return nil
	},
}

var gradeSetCmd = &cobra.Command{
	Use:   "set <grade>",
	Short: "Change the profile grade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, ok := hanja.ParseGrade(args[0])
		if !ok {
			return fmt.Errorf("unknown grade %q (one of %s)", args[0], gradeList())
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.SetGrade(cmd.Context(), e.profile.ID, grade); err != nil {
			return fmt.Errorf("set grade: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "급수를 %s(으)로 바꿨습니다. 문제 %d자\n", grade, len(hanja.ForGrade(grade)))
		return nil
	},
}

func init() {
	gradeCmd.AddCommand(gradeSetCmd)
}
