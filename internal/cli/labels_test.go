package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danieljhkim/rota/internal/roster"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		rule   roster.Rule
		shift  roster.Shift
		status roster.Status
		want   string
	}{
		{"fixed day en", "en", roster.RuleFixedDay, roster.ShiftDay, roster.StatusOK, "Day shift"},
		{"rotation night en", "en", roster.RuleFourDayRotation, roster.ShiftNight, roster.StatusOK, "Night shift"},
		{"rest en", "en", roster.RuleFourDayRotation, roster.ShiftRest, roster.StatusOK, "Rest"},
		{"fixed day zh", "zh", roster.RuleFixedDay, roster.ShiftDay, roster.StatusOK, "日勤"},
		{"rotation day zh", "zh", roster.RuleFourDayRotation, roster.ShiftDay, roster.StatusOK, "白班"},
		{"rotation night zh", "zh", roster.RuleFourDayRotation, roster.ShiftNight, roster.StatusOK, "夜班"},
		{"rest zh", "zh", roster.RuleFourDayRotation, roster.ShiftRest, roster.StatusOK, "休息"},
		{"not found en", "en", "", "", roster.StatusPersonNotFound, "Zhao is not on the roster"},
		{"not found zh", "zh", "", "", roster.StatusPersonNotFound, "Zhao 不在排班表中。"},
		{"unknown rule en", "en", "weekly", "", roster.StatusUnknownRule, "Unknown shift rule"},
		{"unknown rule zh", "zh", "weekly", "", roster.StatusUnknownRule, "未知班次类型"},
		{"unsupported language falls back", "fr", roster.RuleFourDayRotation, roster.ShiftRest, roster.StatusOK, "Rest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.lang, "Zhao", tt.rule, tt.shift, tt.status))
		})
	}
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "zh"}, languages())
}
