package cli

import (
	"github.com/spf13/cobra"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List the people on the roster",
	Long:  `Display every person on the roster with their shift rule and anchor date.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry()
		if err != nil {
			return err
		}

		people := reg.People()

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, people)
		}

		if len(people) == 0 {
			PrintEmptyState(out, "Roster is empty")
			return nil
		}

		rows := make([][]string, 0, len(people))
		for _, p := range people {
			rule := string(p.Rule)
			if !p.Rule.IsValid() {
				rule += " (unknown)"
			}
			rows = append(rows, []string{p.Name, rule, p.Anchor.String()})
		}
		PrintInfo(out, PrintCount(len(people), "person", "people")+" on the roster:")
		PrintTable(out, []string{"NAME", "RULE", "ANCHOR"}, rows)
		return nil
	},
}
