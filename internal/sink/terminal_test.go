package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/urlrank/internal/entry"
	"github.com/Geun-Oh/urlrank/internal/rank"
)

func TestTerminalSinkPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewTerminalSink(&buf, false)

	require.NoError(t, s.WriteDay(entry.DayOf(1700000000), []rank.Entry{{"a.com", 2}, {"b.com", 1}}))
	require.NoError(t, s.WriteDay(entry.DayOf(1700086400), []rank.Entry{{"a.com", 1}}))
	assert.Empty(t, buf.String(), "nothing is written before Flush")

	require.NoError(t, s.Flush())
	assert.Equal(t, "11-14-2023\na.com 2\nb.com 1\n11-15-2023\na.com 1\n", buf.String())
	assert.Equal(t, "terminal", s.Name())
}

func TestTerminalSinkColorKeepsEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewTerminalSink(&buf, true)
	require.NoError(t, s.WriteDay(entry.DayOf(0), []rank.Entry{{"x", 1}}))
	require.NoError(t, s.Close())

	assert.Contains(t, buf.String(), "01-01-1970")
	assert.Contains(t, buf.String(), "\nx 1\n")
}
