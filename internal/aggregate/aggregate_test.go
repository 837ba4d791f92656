package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/urlrank/internal/entry"
)

const (
	day1 = 1700000000 // 11-14-2023
	day2 = 1700086400 // 11-15-2023
	day3 = 1700172800 // 11-16-2023
)

func records(pairs ...any) []entry.Record {
	var out []entry.Record
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entry.Record{Epoch: int64(pairs[i].(int)), URL: pairs[i+1].(string)})
	}
	return out
}

func fold(a Aggregator, rs []entry.Record) *Bucket {
	for _, r := range rs {
		a.Add(r)
	}
	return a.Result()
}

func TestDaily(t *testing.T) {
	t.Parallel()

	b := fold(NewDaily(), records(
		day1, "a.com",
		day1, "b.com",
		day2, "a.com",
		day1, "a.com",
	))

	d1, d2 := entry.DayOf(day1), entry.DayOf(day2)
	assert.Equal(t, []entry.Day{d1, d2}, b.Days())
	assert.Equal(t, map[string]int{"a.com": 2, "b.com": 1}, b.Counts(d1))
	assert.Equal(t, map[string]int{"a.com": 1}, b.Counts(d2))
	assert.Equal(t, 4, b.Total())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 3, b.URLs())
	assert.Nil(t, b.Counts(entry.DayOf(day3)))
}

func TestDailySumMatchesRecordCount(t *testing.T) {
	t.Parallel()

	var rs []entry.Record
	for i := 0; i < 500; i++ {
		rs = append(rs, entry.Record{
			Epoch: int64(day1 + i*4021),
			URL:   []string{"a", "b", "c", "d"}[i%4],
		})
	}
	b := fold(NewDaily(), rs)

	perDay := make(map[entry.Day]int)
	for _, r := range rs {
		perDay[r.Day()]++
	}

	sum := 0
	for _, d := range b.Days() {
		daySum := 0
		for _, n := range b.Counts(d) {
			require.GreaterOrEqual(t, n, 1)
			daySum += n
		}
		assert.Equal(t, perDay[d], daySum, d.String())
		sum += daySum
	}
	assert.Equal(t, len(rs), sum)
	assert.Equal(t, len(rs), b.Total())
}

func TestDaysInCalendarOrder(t *testing.T) {
	t.Parallel()

	// 01-01-2024 sorts before 12-31-2023 as a string but not on the calendar.
	b := fold(NewDaily(), records(
		1704067200, "jan.com", // 01-01-2024
		1703980800, "dec.com", // 12-31-2023
		1700000000, "nov.com", // 11-14-2023
	))

	var labels []string
	for _, d := range b.Days() {
		labels = append(labels, d.String())
	}
	assert.Equal(t, []string{"11-14-2023", "12-31-2023", "01-01-2024"}, labels)
}

func TestFirstSeen(t *testing.T) {
	t.Parallel()

	b := fold(NewFirstSeen(), records(
		day2, "a.com",
		day1, "b.com",
		day3, "a.com",
		day1, "a.com",
		day3, "c.com",
		day3, "b.com",
	))

	d1, d3 := entry.DayOf(day1), entry.DayOf(day3)
	assert.Equal(t, []entry.Day{d1, d3}, b.Days())
	assert.Equal(t, map[string]int{"a.com": 3, "b.com": 2}, b.Counts(d1))
	assert.Equal(t, map[string]int{"c.com": 1}, b.Counts(d3))
	assert.Equal(t, 6, b.Total())
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("day")
	require.NoError(t, err)
	assert.Equal(t, ByDay, m)

	m, err = ParseMode("first-seen")
	require.NoError(t, err)
	assert.Equal(t, ByFirstSeen, m)
	assert.Equal(t, "first-seen", m.String())

	_, err = ParseMode("week")
	assert.Error(t, err)

	assert.IsType(t, &FirstSeen{}, New(ByFirstSeen))
	assert.IsType(t, &Daily{}, New(ByDay))
}
