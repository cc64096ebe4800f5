package cmd

import (
	"fmt"
	"strings"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/spf13/cobra"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Browse the 60-day study plan",
}

var curriculumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons (optionally filtered by phase or week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, _ := cmd.Flags().GetString("phase")
		week, _ := cmd.Flags().GetInt("week")

		var lessons []curriculum.Lesson

		switch {
		case phase != "" && week != 0:
			return fmt.Errorf("use --phase or --week, not both")
		case phase != "":
			lessons = curriculum.ByPhase(curriculum.Phase(phase))
			if len(lessons) == 0 {
				return fmt.Errorf("no lessons found for phase %q", phase)
			}
		case week != 0:
			lessons = curriculum.ByWeek(week)
			if len(lessons) == 0 {
				return fmt.Errorf("no lessons found for week %d", week)
			}
		default:
			lessons = curriculum.Lessons()
		}

		// Header.
		fmt.Printf("%4s  %4s  %-44s  %-6s  %s\n",
			"Day", "Week", "Topic", "Part", "Phase")
		fmt.Println(strings.Repeat("─", 100))

		for _, l := range lessons {
			topic := l.Topic
			if len(topic) > 44 {
				topic = topic[:41] + "..."
			}
			fmt.Printf("%4d  %4d  %-44s  %-6s  %s\n",
				l.Day, l.Week, topic, l.ExamPart,
				curriculum.PhaseDisplayName(l.Phase))
		}

		fmt.Printf("\n%d lessons\n", len(lessons))
		return nil
	},
}

var curriculumViewCmd = &cobra.Command{
	Use:   "view <day>",
	Short: "Show one lesson in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}
		l, err := curriculum.ByDay(day)
		if err != nil {
			return err
		}

		fmt.Printf("Day %d (Week %d) — %s\n", l.Day, l.Week, l.Topic)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Phase:     %s\n", curriculum.PhaseDisplayName(l.Phase))
		fmt.Printf("Exam part: %s\n", curriculum.PartDisplayName(l.ExamPart))
		fmt.Printf("Citation:  %s\n", l.Citation)
		fmt.Println()
		fmt.Println(l.Description)
		return nil
	},
}

func init() {
	curriculumListCmd.Flags().String("phase", "", "Filter by phase (individuals, businesses, representation)")
	curriculumListCmd.Flags().Int("week", 0, "Filter by week number (1-12)")

	curriculumCmd.AddCommand(curriculumListCmd)
	curriculumCmd.AddCommand(curriculumViewCmd)
}
