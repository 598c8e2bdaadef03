package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the curriculum",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by domain or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		level, _ := cmd.Flags().GetInt("level")

		var skills []curriculum.Skill

		switch {
		case domain != "" && level != 0:
			return fmt.Errorf("use --domain or --level, not both")
		case domain != "":
			skills = curriculum.ByDomain(curriculum.Domain(domain))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for domain %q", domain)
			}
		case level != 0:
			skills = curriculum.ByLevel(level)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for level %d", level)
			}
		default:
			skills = curriculum.AllSkills()
		}

		// Header.
		fmt.Printf("%-18s  %-32s  %5s  %-14s  %s\n",
			"ID", "Name", "Level", "Domain", "Prerequisites")
		fmt.Println(strings.Repeat("─", 100))

		for _, s := range skills {
			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-18s  %-32s  %5d  %-14s  %s\n",
				s.ID, name, s.Level,
				curriculum.DomainDisplayName(s.Domain),
				strings.Join(s.Prerequisites, ", "))
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("domain", "", "Filter by domain (e.g. vocales, silabas)")
	skillListCmd.Flags().Int("level", 0, "Filter by level (1 to 4)")

	skillCmd.AddCommand(skillListCmd)
}
