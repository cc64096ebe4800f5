package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long: `Delete all lesson progress and session history, returning the study
plan to day one. LLM request events are kept unless --all is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Print("This erases all lesson progress. Type 'reset' to confirm: ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.Reset(context.Background(), all); err != nil {
			return err
		}
		if all {
			fmt.Println("Progress, session history, and LLM events erased.")
		} else {
			fmt.Println("Progress and session history erased.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also erase LLM request events")
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
