package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/llm"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated scenarios for a lesson (no database)",
	Long: `Generate and interactively answer scenarios for a specific lesson day.

This is a stateless developer tool — no database, no progress tracking, no events.
Useful for evaluating scenario quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("day", 0, "Lesson day number, 1-60 (required)")
	previewCmd.Flags().Int("count", 2, "Number of scenarios to generate")
	previewCmd.Flags().Bool("grade", true, "Grade each answer against the rubric")
	_ = previewCmd.MarkFlagRequired("day")
}

func runPreview(cmd *cobra.Command, args []string) error {
	day, _ := cmd.Flags().GetInt("day")
	count, _ := cmd.Flags().GetInt("count")
	grade, _ := cmd.Flags().GetBool("grade")

	lesson, err := curriculum.ByDay(day)
	if err != nil {
		return err
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := scenario.New(provider, scenario.DefaultConfig())
	eval := evaluate.New(provider, evaluate.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	fmt.Printf("Lesson: Day %d — %s (Week %d, %s)\n",
		lesson.Day, lesson.Topic, lesson.Week, curriculum.PartDisplayName(lesson.ExamPart))
	fmt.Printf("Generating %d scenarios...\n\n", count)

	var prev *scenario.Scenario
	for i := 1; i <= count; i++ {
		input := scenario.Input{Lesson: lesson}
		if prev != nil {
			input.Previous = prev
			input.Twist = true
		}

		sc, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("Scenario %d: generation failed: %v\n\n", i, err)
			continue
		}
		prev = sc

		fmt.Printf("── Scenario %d/%d ──\n", i, count)
		fmt.Println(sc.Situation)
		fmt.Println()
		fmt.Println(sc.Question)

		fmt.Print("\nYour answer (blank to skip): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" || !grade {
			fmt.Println()
			continue
		}

		result, err := eval.Evaluate(ctx, evaluate.Input{Scenario: sc, Answer: answer})
		if err != nil {
			fmt.Printf("Evaluation failed: %v\n\n", err)
			continue
		}
		printResult(result)
	}
	return nil
}

func printResult(r *evaluate.Result) {
	verdict := "\033[31mbelow the pass mark\033[0m"
	if r.Passed() {
		verdict = "\033[32mpass\033[0m"
	}
	fmt.Printf("\nScore: %d/100 (%s)\n", r.TotalScore, verdict)
	fmt.Printf("  Technical accuracy %2d/30   Completeness %2d/30   Authority %2d/15\n",
		r.Scores.TechnicalAccuracy, r.Scores.Completeness, r.Scores.UseOfAuthority)
	fmt.Printf("  Clarity %2d/10   Terminology %2d/10   Presentation %2d/5\n",
		r.Scores.Clarity, r.Scores.Terminology, r.Scores.Presentation)

	printList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Println(label + ":")
		for _, it := range items {
			fmt.Println("  • " + it)
		}
	}
	printList("Strengths", r.Feedback.Positive)
	printList("Corrections", r.Feedback.Corrective)
	printList("Takeaways", r.Feedback.Takeaways)
	printList("Study points", r.KnowledgePoints)
	if r.DetailedExplanation != "" {
		fmt.Println("Model answer:")
		fmt.Println("  " + r.DetailedExplanation)
	}
	fmt.Println()
}

// parseDayArg accepts "12" or "day-12" for commands that take a day.
func parseDayArg(s string) (int, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "day-")
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return d, nil
}
