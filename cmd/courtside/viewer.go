package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/courtside/internal/config"
	"github.com/abelbrown/courtside/internal/fetch"
	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/scheduler"
	"github.com/abelbrown/courtside/internal/session"
	"github.com/abelbrown/courtside/internal/ui"
)

// runViewer runs the interactive feed until the user quits.
func runViewer(ctx context.Context, cfg *config.Config, fragment string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The viewer owns the terminal, so logs go to a file.
	if err := logging.Init(cfg.LogDir, cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Close()

	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()
	throttled := fetch.NewThrottled(src, cfg.MinRefreshGap)

	relay := &ui.Relay{}
	opts := sessionOptions(cfg)
	opts.Dispatch = relay.Dispatch
	ctrl := session.New(fragment, opts)
	defer ctrl.Close()

	load := func() tea.Cmd {
		fetchCtx, done := context.WithTimeout(ctx, cfg.FetchTimeout)
		cmd := ui.LoadRecords(fetchCtx, throttled)
		return func() tea.Msg {
			defer done()
			return cmd()
		}
	}

	app := ui.NewApp(ctrl, load, nil)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	relay.Attach(program)

	sched := scheduler.New()
	if err := sched.Schedule(cfg.RefreshSchedule, func() { program.Send(ui.RefreshTick{}) }); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()
	logging.Info("Refresh scheduled", "spec", cfg.RefreshSchedule, "next", sched.NextRun())

	if _, err := program.Run(); err != nil {
		logging.Error("Error running program", "error", err)
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
