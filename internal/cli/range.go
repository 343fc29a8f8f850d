package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/rota/internal/roster"
)

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "Show everyone's shifts over a date range",
	Long: `Show every person's shift for each day from start to end inclusive.
Dates are YYYY-MM-DD. An end date before the start yields empty schedules.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := roster.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("range start: %w", err)
		}
		end, err := roster.ParseDate(args[1])
		if err != nil {
			return fmt.Errorf("range end: %w", err)
		}

		reg, err := newRegistry()
		if err != nil {
			return err
		}

		sched := reg.ShiftRangeDates(start, end)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, sched)
		}

		PrintSection(out, rangeTitle(start, end))
		printRange(out, reg, sched)
		return nil
	},
}

// printRange prints each person's schedule, people in name order.
func printRange(out io.Writer, reg *roster.Registry, sched map[string][]roster.Entry) {
	if reg.Len() == 0 {
		PrintEmptyState(out, "Roster is empty")
		return
	}

	for _, p := range reg.People() {
		PrintSubsection(out, p.Name+":")
		entries := sched[p.Name]
		if len(entries) == 0 {
			PrintEmptyState(out, "  (no days in range)")
			continue
		}
		for _, e := range entries {
			text := describe(lang, p.Name, p.Rule, e.Shift, e.Status)
			_, _ = shiftColor(e.Shift, e.Status).Fprintf(out, "    %s: %s\n", e.Date, text)
		}
	}
}

// rangeTitle is the heading for a schedule spanning start..end.
func rangeTitle(start, end roster.Date) string {
	return fmt.Sprintf("Shifts from %s to %s", start, end)
}
