package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lectio/internal/fsrs"
	"github.com/abhisek/lectio/internal/session"
	"github.com/abhisek/lectio/internal/store"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced-repetition reviews",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List facts due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		state, err := session.LoadState(ctx, s.SnapshotRepo())
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		now := time.Now().UTC()
		due := session.DueFacts(state.Scheduler, now)
		if len(due) == 0 {
			fmt.Println("No reviews due. ¡Bien hecho!")
			return nil
		}

		fmt.Printf("%-18s  %10s  %s\n", "Fact", "Overdue", "Due since")
		fmt.Println(strings.Repeat("─", 52))
		for _, id := range due {
			f := state.Scheduler.Get(id)
			fmt.Printf("%-18s  %9.1fd  %s\n",
				id, f.OverdueDays(now), f.Due.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var reviewRateCmd = &cobra.Command{
	Use:   "rate <fact> <again|hard|good|easy>",
	Short: "Record a review outcome for a fact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		factID := args[0]
		rating := fsrs.RatingFromString(args[1])
		if rating.String() != args[1] {
			return fmt.Errorf("unknown rating %q (use again, hard, good, or easy)", args[1])
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		state, err := session.LoadState(ctx, s.SnapshotRepo())
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		now := time.Now().UTC()
		res := state.Scheduler.Apply(factID, now, rating)

		err = s.EventRepo().AppendReview(ctx, store.ReviewEventData{
			FactID:         factID,
			Rating:         int(res.Rating),
			Stability:      res.Card.Stability,
			Difficulty:     res.Card.Difficulty,
			Retrievability: res.Retrievability,
			IntervalDays:   res.IntervalDays,
			Due:            res.Due,
		})
		if err != nil {
			return fmt.Errorf("append review: %w", err)
		}

		seq, err := s.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		if err := state.Save(ctx, s.SnapshotRepo(), seq, now); err != nil {
			return fmt.Errorf("save state: %w", err)
		}

		fmt.Printf("%s rated %s: next review in %d day(s) (%s)\n",
			factID, rating, res.IntervalDays, res.Due.Local().Format("2006-01-02"))
		return nil
	},
}

func init() {
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewRateCmd)
}
