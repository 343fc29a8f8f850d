package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/rota/internal/clock"
)

const testRoster = `people:
  Zhang:
    rule: fixed-day
    start: 2024-12-10
  Li:
    rule: four-day-rotation
    start: 2024-12-10
  Wang:
    rule: 日勤
    start: 2024-12-10
  Zhong:
    rule: 白夜休休
    start: 2024-12-10
`

// writeRoster writes content to a roster file in a temp dir and returns its path.
func writeRoster(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags clears flag state left behind by earlier Execute calls.
func resetFlags(c *cobra.Command) {
	for _, name := range []string{"help", "version"} {
		if f := c.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes rootCmd with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true
	jsonOutput, rosterPath, lang, verbose = false, "", "en", false
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// useFakeClock pins "today" for the duration of the test.
func useFakeClock(t *testing.T, day time.Time) {
	t.Helper()
	old := clk
	clk = clock.NewFakeClock(day)
	t.Cleanup(func() { clk = old })
}

func writeRosterAt(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
