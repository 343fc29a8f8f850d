package cli

import (
	"fmt"
	"sort"

	"github.com/danieljhkim/rota/internal/roster"
)

// catalog holds the display text for one language.
type catalog struct {
	fixedDay    string
	day         string
	night       string
	rest        string
	notFound    string // format, takes the person's name
	unknownRule string
}

var catalogs = map[string]catalog{
	"en": {
		fixedDay:    "Day shift",
		day:         "Day shift",
		night:       "Night shift",
		rest:        "Rest",
		notFound:    "%s is not on the roster",
		unknownRule: "Unknown shift rule",
	},
	"zh": {
		fixedDay:    "日勤",
		day:         "白班",
		night:       "夜班",
		rest:        "休息",
		notFound:    "%s 不在排班表中。",
		unknownRule: "未知班次类型",
	},
}

func languages() []string {
	out := make([]string, 0, len(catalogs))
	for k := range catalogs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// describe renders one query outcome in the selected language.
func describe(lang, person string, rule roster.Rule, shift roster.Shift, status roster.Status) string {
	c, ok := catalogs[lang]
	if !ok {
		c = catalogs["en"]
	}

	switch status {
	case roster.StatusPersonNotFound:
		return fmt.Sprintf(c.notFound, person)
	case roster.StatusUnknownRule:
		return c.unknownRule
	}

	switch shift {
	case roster.ShiftDay:
		if rule == roster.RuleFixedDay {
			return c.fixedDay
		}
		return c.day
	case roster.ShiftNight:
		return c.night
	case roster.ShiftRest:
		return c.rest
	default:
		return string(shift)
	}
}

func describeResult(lang string, r roster.Result) string {
	return describe(lang, r.Person, r.Rule, r.Shift, r.Status)
}
