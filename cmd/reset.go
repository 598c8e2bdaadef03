package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/session"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [skill]",
	Short: "Reset learner progress, fully or for one skill",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		var state *session.State
		if len(args) == 0 {
			state = session.NewState()
			fmt.Println("All learner progress reset.")
		} else {
			skillID := args[0]
			if _, err := curriculum.GetSkill(skillID); err != nil {
				return fmt.Errorf("unknown skill %q", skillID)
			}
			state, err = session.LoadState(ctx, s.SnapshotRepo())
			if err != nil {
				return fmt.Errorf("load state: %w", err)
			}
			state.Tracker.ResetSkill(skillID)
			fmt.Printf("Progress for %s reset.\n", skillID)
		}

		seq, err := s.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		if err := state.Save(ctx, s.SnapshotRepo(), seq, time.Now().UTC()); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		return nil
	},
}
