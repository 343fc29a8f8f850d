package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/rota/internal/roster"
)

// demoRecords is the built-in four-person roster.
var demoRecords = map[string]roster.Record{
	"Zhang": {Rule: roster.RuleFixedDay, Start: "2024-12-10"},
	"Li":    {Rule: roster.RuleFourDayRotation, Start: "2024-12-10"},
	"Wang":  {Rule: roster.RuleFixedDay, Start: "2024-12-10"},
	"Zhong": {Rule: roster.RuleFourDayRotation, Start: "2024-12-10"},
}

const (
	demoPerson     = "Li"
	demoQueryDate  = "2024-12-12"
	demoRangeStart = "2024-12-10"
	demoRangeEnd   = "2024-12-13"
	demoDay        = "2024-12-19"
)

// demoReport is the --json form of the demo output.
type demoReport struct {
	Shift roster.Result             `json:"shift"`
	Range map[string][]roster.Entry `json:"range"`
	Day   map[string]roster.Result  `json:"day"`
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the queries against a built-in sample roster",
	Long: `Build a sample roster of four people anchored on 2024-12-10, then:
  - query Li's shift on 2024-12-12
  - print everyone's shifts from 2024-12-10 to 2024-12-13
  - print everyone's shift on 2024-12-19

No roster file is read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := roster.New(demoRecords)
		if err != nil {
			return err
		}

		single, err := reg.ShiftOn(demoPerson, demoQueryDate)
		if err != nil {
			return err
		}
		sched, err := reg.ShiftRange(demoRangeStart, demoRangeEnd)
		if err != nil {
			return err
		}
		day, err := reg.ShiftForDay(demoDay)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, demoReport{Shift: single, Range: sched, Day: day})
		}

		PrintSection(out, "Single query")
		PrintLabelValueWithColor(out, single.Person+" "+single.Date.String(), describeResult(lang, single), shiftColor(single.Shift, single.Status))

		PrintSection(out, rangeTitle(roster.MustParseDate(demoRangeStart), roster.MustParseDate(demoRangeEnd)))
		printRange(out, reg, sched)

		printDay(out, reg, roster.MustParseDate(demoDay), day)
		return nil
	},
}
