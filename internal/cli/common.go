package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/rota/internal/clock"
	"github.com/danieljhkim/rota/internal/config"
	"github.com/danieljhkim/rota/internal/roster"
)

// clk supplies "today" for commands whose date argument is optional.
var clk clock.Clock = &clock.RealClock{}

// loadRoster resolves and decodes the roster file named by the flags.
func loadRoster() (*config.Roster, error) {
	path, err := config.ResolveRoster(rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roster path: %w", err)
	}

	r, err := config.LoadRoster(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("roster loaded", "path", r.Path, "format", r.Format, "people", len(r.Records))
	return r, nil
}

// newRegistry loads the roster file and builds its registry.
func newRegistry() (*roster.Registry, error) {
	r, err := loadRoster()
	if err != nil {
		return nil, err
	}
	return r.Registry()
}

// dateArg parses the optional date argument at index i, defaulting to today.
func dateArg(args []string, i int) (roster.Date, error) {
	if len(args) <= i {
		return clock.Today(clk), nil
	}
	return roster.ParseDate(args[i])
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
