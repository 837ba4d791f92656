package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		epoch int64
		want  string
	}{
		{"epoch", 0, "01-01-1970"},
		{"last second of first day", 86399, "01-01-1970"},
		{"second day", 86400, "01-02-1970"},
		{"sample record", 1700000000, "11-14-2023"},
		{"next day", 1700086400, "11-15-2023"},
		// 2024-12-30 falls in ISO week-year 2025; the calendar year must be used.
		{"week-year boundary", 1735560000, "12-30-2024"},
		{"leap day", 1709208000, "02-29-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DayOf(tt.epoch).String())
		})
	}
}

func TestDayOrderIsCalendarOrder(t *testing.T) {
	t.Parallel()

	dec31, err := ParseDay("12-31-2023")
	require.NoError(t, err)
	jan1, err := ParseDay("01-01-2024")
	require.NoError(t, err)

	// As strings "01-01-2024" < "12-31-2023"; as days it is the other way round.
	assert.True(t, dec31 < jan1)
	assert.Equal(t, Day(1), jan1-dec31)
}

func TestParseDayRoundTrip(t *testing.T) {
	t.Parallel()

	d := DayOf(1700000000)
	got, err := ParseDay(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = ParseDay("2023-11-14")
	assert.Error(t, err)
}

func TestRecordDay(t *testing.T) {
	t.Parallel()

	r := Record{Epoch: 1700000000, URL: "a.com", Source: "file:x", Line: 3}
	assert.Equal(t, "11-14-2023", r.Day().String())
	assert.Equal(t, "[11-14-2023][file:x:3]: a.com", r.Format())
}
