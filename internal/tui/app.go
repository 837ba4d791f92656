// Package tui provides an interactive terminal browser for a finished report.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Geun-Oh/urlrank/internal/monitor"
	"github.com/Geun-Oh/urlrank/internal/rank"
	"github.com/Geun-Oh/urlrank/internal/report"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#353533"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AAFF")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Model is the bubbletea model for the report browser.
type Model struct {
	report report.Report
	stats  *monitor.Stats
	source string

	width  int
	height int

	day    int // index into report
	offset int // first visible entry of the current day

	searching   bool
	searchQuery string
}

// NewModel creates a browser over rep. stats may be nil.
func NewModel(rep report.Report, stats *monitor.Stats, sourceName string) Model {
	return Model{
		report: rep,
		stats:  stats,
		source: sourceName,
	}
}

// Init asks for the terminal size.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchQuery = ""
		case "enter":
			m.searching = false
			m.jumpToMatch()
		case "backspace":
			if len(m.searchQuery) > 0 {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.searchQuery += msg.String()
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchQuery = ""
	case "right", "l", "n":
		if m.day < len(m.report)-1 {
			m.day++
			m.offset = 0
		}
	case "left", "h", "p":
		if m.day > 0 {
			m.day--
			m.offset = 0
		}
	case "down", "j":
		if m.offset < len(m.entries())-1 {
			m.offset++
		}
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "g":
		m.offset = 0
	case "G":
		if n := len(m.entries()); n > 0 {
			m.offset = n - 1
		}
	}
	return m, nil
}

// Day returns the index of the day on screen.
func (m Model) Day() int { return m.day }

// Offset returns the first visible entry of the day on screen.
func (m Model) Offset() int { return m.offset }

func (m Model) entries() []rank.Entry {
	if len(m.report) == 0 {
		return nil
	}
	return m.report[m.day].Entries
}

// jumpToMatch moves to the first entry containing the search query, looking
// from the current day onwards and wrapping around.
func (m *Model) jumpToMatch() {
	if m.searchQuery == "" || len(m.report) == 0 {
		return
	}
	for i := 0; i < len(m.report); i++ {
		d := (m.day + i) % len(m.report)
		for j, e := range m.report[d].Entries {
			if strings.Contains(e.URL, m.searchQuery) {
				m.day, m.offset = d, j
				return
			}
		}
	}
}

// View renders the browser.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sb strings.Builder

	title := titleStyle.Render(fmt.Sprintf(" urlrank — %s ", m.source))
	status := statusBarStyle.Render(fmt.Sprintf(" %d days ", len(m.report)))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 0 {
		gap = 0
	}
	sb.WriteString(title + statusBarStyle.Render(strings.Repeat(" ", gap)) + status)
	sb.WriteString("\n")

	if m.searching {
		sb.WriteString(fmt.Sprintf(" Search: %s█\n", m.searchQuery))
	}

	headerLines := 2 // title bar + day label
	if m.searching {
		headerLines++
	}
	footerLines := 2 // stats bar + help bar
	viewportHeight := m.height - headerLines - footerLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if len(m.report) == 0 {
		sb.WriteString(dimStyle.Render(" no records") + "\n")
	} else {
		dr := m.report[m.day]
		sb.WriteString(dayStyle.Render(fmt.Sprintf(" %s  (%d/%d)", dr.Day, m.day+1, len(m.report))))
		sb.WriteString("\n")
	}

	visible := m.visibleLines(viewportHeight)
	for _, line := range visible {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for i := len(visible); i < viewportHeight; i++ {
		sb.WriteString("\n")
	}

	statsLine := fmt.Sprintf(" URLs: %d", len(m.entries()))
	if m.stats != nil {
		statsLine += fmt.Sprintf(" │ Records: %d │ Lines: %d", m.stats.Records, m.stats.Lines)
	}
	if m.offset > 0 {
		statsLine += fmt.Sprintf(" │ ↓ %d", m.offset)
	}
	sb.WriteString(statusBarStyle.Render(padRight(statsLine, m.width)))
	sb.WriteString("\n")

	sb.WriteString(helpStyle.Render(" [←→]Day  [↑↓]Scroll  [g/G]Top/Bottom  [/]Search  [q]Quit"))

	return sb.String()
}

func (m Model) visibleLines(height int) []string {
	entries := m.entries()
	if m.offset >= len(entries) {
		return nil
	}
	end := m.offset + height
	if end > len(entries) {
		end = len(entries)
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		e := entries[i]
		url := truncate(e.URL, m.width-12)
		if m.searchQuery != "" && strings.Contains(url, m.searchQuery) {
			url = strings.ReplaceAll(url, m.searchQuery, highlightStyle.Render(m.searchQuery))
		}
		lines = append(lines, fmt.Sprintf(" %s %s", countStyle.Render(fmt.Sprintf("%8d", e.Count)), url))
	}
	return lines
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
