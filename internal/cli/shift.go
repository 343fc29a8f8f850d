package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift <name> [date]",
	Short: "Show one person's shift on a day",
	Long: `Show the shift a person works on the given day (YYYY-MM-DD).
The date defaults to today.

A name that is not on the roster is reported, not treated as an error.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dateArg(args, 1)
		if err != nil {
			return err
		}

		reg, err := newRegistry()
		if err != nil {
			return err
		}

		res := reg.ShiftOnDate(args[0], d)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, res)
		}

		text := describeResult(lang, res)
		if !res.OK() {
			PrintWarning(out, text)
			return nil
		}
		PrintLabelValueWithColor(out, fmt.Sprintf("%s %s", res.Person, res.Date), text, shiftColor(res.Shift, res.Status))
		return nil
	},
}
