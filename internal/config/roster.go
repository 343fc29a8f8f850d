package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/danieljhkim/rota/internal/roster"
)

// ErrRosterNotFound indicates the roster file does not exist.
var ErrRosterNotFound = errors.New("roster file not found")

// RosterFile is the on-disk roster format.
//
//	people:
//	  Li:
//	    rule: four-day-rotation
//	    start: 2024-12-10
type RosterFile struct {
	People map[string]PersonEntry `json:"people" yaml:"people"`
}

// PersonEntry is one person in a roster file.
type PersonEntry struct {
	Rule  string `json:"rule" yaml:"rule"`
	Start string `json:"start" yaml:"start"`
}

// Roster is a decoded roster file ready to build a registry from.
type Roster struct {
	Path    string
	Format  string // "json" or "yaml"
	Records map[string]roster.Record

	// UnknownRules lists people whose rule name was not recognized, sorted.
	UnknownRules []string
}

// LoadRoster reads and decodes the roster file at path.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, path)
		}
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return ParseRoster(path, data)
}

// ParseRoster decodes roster data. The format is chosen from the extension
// of path: .yaml and .yml are YAML, anything else is JSON. Unknown fields
// are rejected in both formats.
func ParseRoster(path string, data []byte) (*Roster, error) {
	format := formatOf(path)

	var file RosterFile
	if err := decodeRoster(format, data, &file); err != nil {
		return nil, fmt.Errorf("decode roster %s (%s): %w", path, format, err)
	}

	r := &Roster{
		Path:    path,
		Format:  format,
		Records: make(map[string]roster.Record, len(file.People)),
	}
	for name, entry := range file.People {
		rule := roster.NormalizeRule(entry.Rule)
		if !rule.IsValid() {
			r.UnknownRules = append(r.UnknownRules, name)
			// Reported to the user by callers via UnknownRules.
			slog.Debug("unknown shift rule in roster", "path", path, "person", name, "rule", entry.Rule)
		}
		r.Records[name] = roster.Record{Rule: rule, Start: entry.Start}
	}
	sort.Strings(r.UnknownRules)

	slog.Debug("roster parsed", "path", path, "format", format, "people", len(r.Records))
	return r, nil
}

// Registry builds the schedule registry for the roster.
func (r *Roster) Registry() (*roster.Registry, error) {
	reg, err := roster.New(r.Records)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", r.Path, err)
	}
	return reg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// decodeRoster strictly decodes data into file. YAML scalars land in string
// fields as written, so unquoted dates keep their YYYY-MM-DD text.
func decodeRoster(format string, data []byte, file *RosterFile) error {
	if format == "yaml" {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(file)
}
