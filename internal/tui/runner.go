package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Geun-Oh/urlrank/internal/monitor"
	"github.com/Geun-Oh/urlrank/internal/report"
)

// Run opens the browser on rep and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, rep report.Report, stats *monitor.Stats, sourceName string) error {
	model := NewModel(rep, stats, sourceName)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
