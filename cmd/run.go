package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mbhatt/taxtutor/internal/app"
	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/llm"
	"github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, restores progress, builds the collaborators,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	progressRepo := st.ProgressRepo()
	eventRepo := st.EventRepo()

	tracker := progress.NewTracker(curriculum.Lessons())
	rows, err := progressRepo.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not restore progress:", err)
		fmt.Fprintln(os.Stderr, "Starting with a fresh study plan.")
	} else {
		tracker.Load(rows)
	}

	eng := session.New(tracker)
	eng.Persist = func(data []store.LessonProgressData) {
		if err := progressRepo.Save(context.Background(), data); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to persist progress:", err)
		}
	}
	eng.Record = func(data store.SessionEventData) {
		if err := eventRepo.AppendSessionEvent(context.Background(), data); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to record session event:", err)
		}
	}

	opts := app.Options{
		Engine:    eng,
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring and mock exams will be unavailable.")
	} else {
		opts.Generator = scenario.New(provider, scenario.DefaultConfig())
		opts.Evaluator = evaluate.New(provider, evaluate.DefaultConfig())
		opts.ExamGen = mockexam.New(provider, mockexam.DefaultConfig())
		opts.Refs = buildRefLookup(ctx)
	}

	return app.Run(opts)
}

// buildRefLookup wires search-grounded reference lookup when a Gemini key
// is available, and the static citation fallback otherwise. Reference
// lookup is best-effort by contract, so a failed grounded setup degrades
// instead of erroring.
func buildRefLookup(ctx context.Context) refs.Lookup {
	key := os.Getenv("TAXTUTOR_GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key != "" {
		if g, err := refs.NewGoogleLookup(ctx, key, os.Getenv("TAXTUTOR_GEMINI_MODEL")); err == nil {
			return g
		}
	}
	return refs.NewStaticLookup()
}
