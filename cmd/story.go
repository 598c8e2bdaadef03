package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/story"
	"github.com/spf13/cobra"
)

var storyCmd = &cobra.Command{
	Use:   "story <topic>",
	Short: "Generate a story preview for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nivel, _ := cmd.Flags().GetInt("nivel")
		age, _ := cmd.Flags().GetInt("age")
		interests, _ := cmd.Flags().GetStringSlice("interests")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := story.NewService(provider, story.DefaultConfig())
		result, err := svc.Generate(ctx, story.Input{
			Topic:     strings.Join(args, " "),
			Nivel:     curriculum.Nivel(nivel),
			Age:       age,
			Interests: interests,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", result.Title)
		fmt.Println(strings.Repeat("─", 48))
		for i, page := range result.Pages {
			fmt.Printf("\n[%d] %s\n", i+1, page.Text)
		}
		fmt.Printf("\n%d pages, %d words (nivel %d)\n",
			len(result.Pages), result.TotalWords(), int(result.Nivel))
		return nil
	},
}

func init() {
	storyCmd.Flags().Int("nivel", 1, "Reading level (1 to 4)")
	storyCmd.Flags().Int("age", 5, "Learner age in years")
	storyCmd.Flags().StringSlice("interests", nil, "Learner interests woven into the story")
}
