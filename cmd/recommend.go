package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/session"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		interests, _ := cmd.Flags().GetStringSlice("interests")
		current, _ := cmd.Flags().GetString("current")
		limit, _ := cmd.Flags().GetInt("limit")

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

		recent, err := s.EventRepo().RecentSkillIDs(ctx, 5)
		if err != nil {
			return fmt.Errorf("query recent skills: %w", err)
		}

		suggestions := session.NextSuggestions(state.Tracker, session.Query{
			Age:           age,
			Interests:     interests,
			CurrentSkill:  current,
			RecentHistory: recent,
			Limit:         limit,
		})
		if len(suggestions) == 0 {
			fmt.Println("Nothing to suggest yet.")
			return nil
		}

		fmt.Printf("%-18s  %-32s  %-12s  %s\n", "Skill", "Name", "Category", "Reason")
		fmt.Println(strings.Repeat("─", 96))
		for _, sug := range suggestions {
			name := sug.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-18s  %-32s  %-12s  %s\n", sug.SkillID, name, sug.Category, sug.Reason)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("age", 0, "Learner age in years")
	recommendCmd.Flags().StringSlice("interests", nil, "Learner interests (e.g. animales,magia)")
	recommendCmd.Flags().String("current", "", "Skill just practiced")
	recommendCmd.Flags().IntP("limit", "n", 0, "Maximum suggestions to show")
}
