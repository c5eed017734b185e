package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "List the characters available at a grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, err := gradeFlag(cmd)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")

		entries := hanja.All()
		if grade != "" {
			entries = hanja.ForGrade(grade)
		}
		if category != "" {
			entries = hanja.ByCategory(entries)[category]
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "no characters (categories: %v)\n", hanja.Categories(hanja.All()))
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Symbol, e.Label, e.Category, e.Grade)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d자\n", len(entries))
		return nil
	},
}

func init() {
	poolCmd.Flags().String("grade", "", "Include characters up to this grade (default: all)")
	poolCmd.Flags().String("category", "", "Only this category (e.g. 자연)")
}
