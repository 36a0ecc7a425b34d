package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/service"

	"github.com/spf13/cobra"
)

type scoreFlags struct {
	form domain.ScoreForm
	now  string
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Calculate a score from flags and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd.Context(), os.Stdout, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.form.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	flags.StringVar(&f.form.HomelessYears, "homeless-years", "", "Years without a home")
	flags.StringVar(&f.form.Dependents, "dependents", "", "Number of dependents")
	flags.StringVar(&f.form.SubscriptionDate, "subscription-date", "", "Subscription account opening date (YYYY-MM-DD)")
	flags.StringVar(&f.now, "now", "", "Evaluate as of this date (YYYY-MM-DD, default: today)")

	return cmd
}

func runScore(ctx context.Context, out io.Writer, f *scoreFlags) error {
	clock := time.Now
	if f.now != "" {
		at, err := time.Parse(service.DateLayout, f.now)
		if err != nil {
			return exitError(2, "invalid --now %q: want YYYY-MM-DD", f.now)
		}
		clock = func() time.Time { return at }
	}

	svc := service.NewScoreService(clock, logger.NewNoOpLogger())
	result, err := svc.Calculate(ctx, f.form)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			return exitError(2, "%s", ve.Message)
		}
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
