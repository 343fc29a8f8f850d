package roster

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2024-12-10", NewDate(2024, time.December, 10), false},
		{"leap day", "2024-02-29", NewDate(2024, time.February, 29), false},
		{"first day", "0001-01-01", Date{t: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)}, false},
		{"month out of range", "2024-13-01", Date{}, true},
		{"feb 30", "2024-02-30", Date{}, true},
		{"feb 29 in common year", "2023-02-29", Date{}, true},
		{"not a date", "not-a-date", Date{}, true},
		{"single digit month", "2024-1-05", Date{}, true},
		{"trailing text", "2024-12-10T00:00:00Z", Date{}, true},
		{"slashes", "2024/12/10", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestMustParseDate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseDate("2024-02-30") })
	assert.NotPanics(t, func() { MustParseDate("2024-02-29") })
}

func TestDate_Arithmetic(t *testing.T) {
	anchor := MustParseDate("2024-12-10")

	t.Run("add days crosses month and year", func(t *testing.T) {
		assert.Equal(t, "2025-01-01", anchor.AddDays(22).String())
		assert.Equal(t, "2024-11-30", anchor.AddDays(-10).String())
	})

	t.Run("days since is signed", func(t *testing.T) {
		assert.Equal(t, int64(9), MustParseDate("2024-12-19").DaysSince(anchor))
		assert.Equal(t, int64(-1), MustParseDate("2024-12-09").DaysSince(anchor))
		assert.Equal(t, int64(0), anchor.DaysSince(anchor))
	})

	t.Run("days since spans centuries", func(t *testing.T) {
		far := MustParseDate("2524-12-10")
		assert.Equal(t, far.DaysSince(anchor), -anchor.DaysSince(far))
		assert.Greater(t, far.DaysSince(anchor), int64(500*365))
	})

	t.Run("ordering", func(t *testing.T) {
		assert.True(t, anchor.Before(anchor.AddDays(1)))
		assert.False(t, anchor.Before(anchor))
	})
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	ts := time.Date(2024, time.December, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-12-10", DateOf(ts).String())
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Date `json:"d"`
	}{MustParseDate("2024-12-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-12-10"}`, string(data))

	var out struct {
		D Date `json:"d"`
	}
	err = json.Unmarshal([]byte(`{"d":"2024-13-01"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
