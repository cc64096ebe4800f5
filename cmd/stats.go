package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/stats"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and mock-exam history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		tracker := progress.NewTracker(curriculum.Lessons())
		rows, err := s.ProgressRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		tracker.Load(rows)

		now := time.Now()
		records := tracker.Records()
		cs := stats.Curriculum(records, now)

		fmt.Println("Study Plan")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Lessons passed:   %d / %d\n", cs.Passed, cs.Total)
		if cs.Passed > 0 {
			fmt.Printf("Average score:    %.1f\n", cs.AverageScore)
		}
		if cs.NextDay > 0 {
			fmt.Printf("Up next:          Day %d — %s\n", cs.NextDay, cs.NextTopic)
		} else if cs.Passed == cs.Total && cs.Total > 0 {
			fmt.Println("Up next:          study plan complete")
		}
		for _, p := range cs.Phases {
			fmt.Printf("  %-40s %3d / %d\n", curriculum.PhaseDisplayName(p.Phase), p.Passed, p.Total)
		}

		if due := review.Due(records, now); len(due) > 0 {
			fmt.Println()
			fmt.Printf("Refreshers due (%d)\n", len(due))
			fmt.Println(strings.Repeat("─", 60))
			for _, d := range due {
				fmt.Printf("  Day %2d  %-40s  passed %d days ago\n", d.Day, d.Topic, d.StaleDays)
			}
		}

		events, err := s.EventRepo().QuerySessionEvents(ctx, store.QueryOpts{Limit: 200})
		if err != nil {
			return fmt.Errorf("query session events: %w", err)
		}
		es := stats.Exams(events)

		fmt.Println()
		fmt.Println("Mock Exams")
		fmt.Println(strings.Repeat("─", 60))
		if es.Attempts == 0 {
			fmt.Println("No mock exams taken yet.")
			return nil
		}
		fmt.Printf("Attempts:  %d    Best: %.1f%%    Last: %.1f%%\n",
			es.Attempts, es.BestPercent, es.LastPercent)
		for _, h := range es.History {
			fmt.Printf("  %s  %2d/%2d  %5.1f%%\n",
				h.When.Local().Format("2006-01-02 15:04"), h.Correct, h.Total, h.Percent)
		}
		return nil
	},
}
