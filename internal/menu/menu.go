package menu

import (
	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	"github.com/atomicstack/text-style-control/internal/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry. Keywords are extra names the
// filter matches on; font group entries list their member families there.
type Item struct {
	ID       string
	Label    string
	Keywords []string
}

// Context carries runtime data needed by loader functions.
type Context struct {
	Style       style.Snapshot
	Indicators  control.Indicators
	FontGroups  []fontgroup.Group
	FontsLoaded bool
	FontErr     error
	ExportPath  string
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// ControlIntent asks the UI to apply a style command. Actions run outside the
// update loop, so they describe the change instead of making it.
type ControlIntent struct {
	Command control.Command
	Payload control.Payload
	Label   string
}

// PromptRequest asks the UI to open the dialog for a prompted command.
type PromptRequest struct {
	Command control.Command
	Label   string
}

// ExportPrompt asks the UI for the destination of a PNG export.
type ExportPrompt struct {
	Initial string
}

// Root item identifiers.
const (
	IDText       = "text"
	IDSize       = "size"
	IDColor      = "color"
	IDLineHeight = "line-height"
	IDBold       = "bold"
	IDItalic     = "italic"
	IDFont       = "font"
	IDJustify    = "justify"
	IDReset      = "reset"
	IDExport     = "export"
)

// RootItems returns the top-level menu entries with indicator marks taken
// from ctx.
func RootItems(ctx Context) []Item {
	ind := ctx.Indicators
	return []Item{
		{ID: IDText, Label: "Change Text…"},
		{ID: IDSize, Label: "Text Size…"},
		{ID: IDColor, Label: "Text Color…"},
		{ID: IDLineHeight, Label: "Line Height…"},
		{ID: IDBold, Label: checkbox(ind.Checked(control.ToggleBold, 0)) + " Bold"},
		{ID: IDItalic, Label: checkbox(ind.Checked(control.ToggleItalic, 0)) + " Italic"},
		{ID: IDFont, Label: "Font"},
		{ID: IDJustify, Label: "Justify"},
		{ID: IDReset, Label: "Reset Defaults"},
		{ID: IDExport, Label: "Export PNG…"},
	}
}

// CategoryLoaders lists submenu loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		IDFont:    loadFontMenu,
		IDJustify: loadJustifyMenu,
	}
}

// ActionHandlers maps menu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		IDText:       PromptAction(control.ChangeText),
		IDSize:       PromptAction(control.SetSize),
		IDColor:      PromptAction(control.SetColor),
		IDLineHeight: PromptAction(control.SetLineHeight),
		IDBold:       ToggleAction(control.ToggleBold),
		IDItalic:     ToggleAction(control.ToggleItalic),
		IDFont:       FontAction,
		IDJustify:    JustifyAction,
		IDReset:      ResetAction,
		IDExport:     ExportAction,
	}
}
