// Package ui provides the Bubble Tea TUI for Courtside.
package ui

import (
	"context"

	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// RecordsLoaded is sent when a dataset fetch finishes.
type RecordsLoaded struct {
	Source  string
	Records []model.Record
	Err     error
}

// RefreshTick triggers a scheduled refresh.
type RefreshTick struct{}

// TaskDue carries a controller timer task into Update.
type TaskDue struct {
	Task func()
}

// LoadRecords returns a command that reads src off the event loop.
func LoadRecords(ctx context.Context, src fetch.Source) tea.Cmd {
	return func() tea.Msg {
		records, err := src.Records(ctx)
		return RecordsLoaded{
			Source:  src.Name(),
			Records: records,
			Err:     fetch.Wrap(src.Name(), err),
		}
	}
}
