package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/session"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		printMastery(state)
		printDueReviews(state)
		printTrend(state)
		return nil
	},
}

func printMastery(state *session.State) {
	masteries := state.Tracker.AllSkillMasteries()
	if len(masteries) == 0 {
		fmt.Println("No practice recorded yet.")
		return
	}

	ids := make([]string, 0, len(masteries))
	for id := range masteries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Mastery")
	fmt.Println(strings.Repeat("─", 64))
	fmt.Printf("%-18s  %-32s  %8s  %s\n", "Skill", "Name", "Window", "Mastered")
	for _, id := range ids {
		r := masteries[id]
		name := id
		if skill, err := curriculum.GetSkill(id); err == nil {
			name = skill.Name
		}
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		mark := ""
		if r.Mastered {
			mark = "✓"
		}
		fmt.Printf("%-18s  %-32s  %7.0f%%  %s\n", id, name, r.Ratio*100, mark)
	}
	fmt.Printf("\nOverall progress: %.0f%%\n", state.Tracker.OverallProgress()*100)
}

func printDueReviews(state *session.State) {
	due := session.DueFacts(state.Scheduler, time.Now().UTC())
	fmt.Printf("\nDue reviews: %d\n", len(due))
	for i, id := range due {
		if i >= 10 {
			fmt.Printf("  ... and %d more\n", len(due)-10)
			break
		}
		fmt.Printf("  %s\n", id)
	}
}

func printTrend(state *session.State) {
	points := state.Trend()
	if len(points) == 0 {
		return
	}

	fmt.Println("\nReading pace")
	fmt.Println(strings.Repeat("─", 48))
	fmt.Printf("%-12s  %7s  %9s  %s\n", "Date", "WPM", "Smoothed", "Confidence")
	start := 0
	if len(points) > 10 {
		start = len(points) - 10
	}
	for _, p := range points[start:] {
		fmt.Printf("%-12s  %7.1f  %9.1f  %s\n",
			p.At.Local().Format("2006-01-02"), p.RawWPM, p.SmoothedWPM, p.Confidence)
	}
}
