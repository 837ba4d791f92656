package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/urlrank/internal/entry"
	"github.com/Geun-Oh/urlrank/internal/monitor"
	"github.com/Geun-Oh/urlrank/internal/rank"
	"github.com/Geun-Oh/urlrank/internal/report"
)

func sampleReport() report.Report {
	return report.Report{
		{Day: entry.DayOf(1700000000), Entries: []rank.Entry{{"a.com", 2}, {"b.com", 1}}},
		{Day: entry.DayOf(1700086400), Entries: []rank.Entry{{"c.com", 4}, {"shop.example.com", 1}}},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleReport(), nil, "file:test.log")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Day())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Day(), "stays on the last day")

	m = send(t, m, runes("j"), runes("j"))
	assert.Equal(t, 1, m.Offset(), "cannot scroll past the last entry")

	m = send(t, m, runes("h"))
	assert.Equal(t, 0, m.Day())
	assert.Equal(t, 0, m.Offset(), "changing day resets the scroll")

	m = send(t, m, runes("G"))
	assert.Equal(t, 1, m.Offset())
	m = send(t, m, runes("g"))
	assert.Equal(t, 0, m.Offset())
}

func TestSearchJumpsToMatch(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleReport(), nil, "file:test.log")
	m = send(t, m, runes("/"), runes("s"), runes("h"), runes("o"), runes("x"),
		tea.KeyMsg{Type: tea.KeyBackspace}, runes("p"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, m.Day())
	assert.Equal(t, 1, m.Offset())
	assert.False(t, m.searching)
	assert.Equal(t, "shop", m.searchQuery)
}

func TestSearchEscapeClears(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleReport(), nil, "file:test.log")
	m = send(t, m, runes("/"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searching)
	assert.Empty(t, m.searchQuery)
	assert.Equal(t, 0, m.Day())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(sampleReport(), nil, "file:test.log")
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	t.Parallel()

	stats := monitor.NewStats()
	stats.Records = 9
	m := NewModel(sampleReport(), stats, "file:test.log")
	assert.Equal(t, "Loading...", m.View())

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})
	view := m.View()
	assert.Contains(t, view, "11-14-2023")
	assert.Contains(t, view, "(1/2)")
	assert.Contains(t, view, "a.com")
	assert.Contains(t, view, "b.com")
	assert.Contains(t, view, "Records: 9")
	assert.NotContains(t, view, "c.com")
}

func TestViewEmptyReport(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil, "stdin")
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 8}, runes("l"), runes("j"))
	assert.Contains(t, m.View(), "no records")
}
