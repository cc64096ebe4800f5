package cmd

import (
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taxtutor",
	Short: "AI tutor for the IRS Special Enrollment Examination",
	Long:  "TaxTutor — terminal study companion for Enrolled Agent candidates: LLM-generated tax scenarios, rubric-graded answers, and mock exams across all three SEE parts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TAXTUTOR_DB env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TAXTUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
