package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the roster file",
	Long: `Load the roster file and check every record.

Malformed anchor dates and unknown shift rules are reported. The command
exits non-zero if any record is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}

		reg, err := r.Registry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := outputJSON(out, map[string]interface{}{
				"path":          r.Path,
				"people":        reg.Len(),
				"unknown_rules": r.UnknownRules,
				"valid":         len(r.UnknownRules) == 0,
			}); err != nil {
				return err
			}
		} else {
			for _, name := range r.UnknownRules {
				p, _ := reg.Lookup(name)
				PrintError(out, fmt.Sprintf("%s: unknown shift rule %q", name, p.Rule))
			}
		}

		if len(r.UnknownRules) > 0 {
			return fmt.Errorf("%s has %s with unknown rules", r.Path, PrintCount(len(r.UnknownRules), "person", "people"))
		}

		if !jsonOutput {
			PrintSuccess(out, fmt.Sprintf("%s: %s, all valid", r.Path, PrintCount(reg.Len(), "person", "people")))
		}
		return nil
	},
}
