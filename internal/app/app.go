package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/text-style-control/internal/backend"
	"github.com/atomicstack/text-style-control/internal/canvas"
	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/fonts"
	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/atomicstack/text-style-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	RootMenu   string
	ExportPath string
	// Style is the initial state of the text element.
	Style style.Snapshot
	// Families overrides system font discovery when non-empty.
	Families  []string
	FontPoll  time.Duration
	WatchDirs []string
}

// Enumerator picks the font source: the configured families when present,
// otherwise the host's installed fonts.
func (c Config) Enumerator() fonts.Enumerator {
	if len(c.Families) > 0 {
		return fonts.Static(c.Families)
	}
	return fonts.NewSystem()
}

// Build wires the style model, canvas, controller and font watcher into a UI
// model. The caller owns the returned watcher and must stop it.
func Build(cfg Config) (*ui.Model, *backend.Watcher, error) {
	model, err := style.FromSnapshot(cfg.Style)
	if err != nil {
		return nil, nil, fmt.Errorf("initial style: %w", err)
	}
	cv := canvas.New(model)
	ctrl := control.New(cv)
	watcher := backend.NewWatcher(cfg.Enumerator(), cfg.FontPoll, cfg.WatchDirs)
	mdl := ui.NewModel(ctrl, cv, watcher, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		RootMenu:   cfg.RootMenu,
		ExportPath: cfg.ExportPath,
	})
	return mdl, watcher, nil
}

// Run bootstraps and executes the Bubble Tea program until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	model, watcher, err := Build(cfg)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
