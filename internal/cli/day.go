package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/rota/internal/roster"
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show everyone's shift on one day",
	Long:  `Show the shift of every person on the roster for a day (YYYY-MM-DD, default today).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dateArg(args, 0)
		if err != nil {
			return err
		}

		reg, err := newRegistry()
		if err != nil {
			return err
		}

		results := reg.ShiftForDate(d)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, results)
		}

		printDay(out, reg, d, results)
		return nil
	},
}

// dayRows renders one row per person in name order.
func dayRows(reg *roster.Registry, results map[string]roster.Result) [][]string {
	rows := make([][]string, 0, reg.Len())
	for _, p := range reg.People() {
		rows = append(rows, []string{p.Name, describeResult(lang, results[p.Name])})
	}
	return rows
}

// printDay prints everyone's shift on d as a table.
func printDay(out io.Writer, reg *roster.Registry, d roster.Date, results map[string]roster.Result) {
	PrintSection(out, "Roster for "+d.String())
	if reg.Len() == 0 {
		PrintEmptyState(out, "Roster is empty")
		return
	}
	PrintTable(out, []string{"NAME", "SHIFT"}, dayRows(reg, results))
}
