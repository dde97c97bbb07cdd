package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/text-style-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Exporter writes the styled element to an image file.
type Exporter interface {
	SavePNG(path string) error
}

// ExportAction asks for the destination seeded with the configured path.
func ExportAction(ctx Context, _ Item) tea.Cmd {
	initial := ctx.ExportPath
	return func() tea.Msg {
		return ExportPrompt{Initial: initial}
	}
}

// ExportCommand writes the element to path and reports the outcome.
func ExportCommand(exp Exporter, path string) tea.Cmd {
	return func() tea.Msg {
		target := strings.TrimSpace(path)
		if exp == nil {
			return ActionResult{Err: fmt.Errorf("nothing to export")}
		}
		err := exp.SavePNG(target)
		events.App.Export(target, err)
		if err != nil {
			return ActionResult{Err: fmt.Errorf("export %s: %w", target, err)}
		}
		return ActionResult{Info: fmt.Sprintf("Exported %s", target)}
	}
}
