package menu

import (
	"strings"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptAnswer carries a submitted prompt back to the update loop.
type PromptAnswer struct {
	Command control.Command
	Answer  control.Answer
}

// Prompts hands the submitted answer to the controller's dialog
// collaborators. The form has already collected the input, so each
// collaborator just reports it.
func (a PromptAnswer) Prompts() control.Prompts {
	r := answered(a.Answer)
	return control.Prompts{Text: r, String: r, Color: r}
}

type answered control.Answer

func (a answered) PromptForText(string) (string, bool) { return a.Text, a.OK }

func (a answered) PromptForString(_, _ string) (string, bool) { return a.Text, a.OK }

func (a answered) PromptForColor(style.RGB) (style.RGB, bool) { return a.Color, a.OK }

type promptFormMode int

const (
	promptFormModeControl promptFormMode = iota
	promptFormModeExport
)

// PromptForm is the inline dialog used for text, numeric, color and export
// prompts.
type PromptForm struct {
	input    textinput.Model
	prompt   control.Prompt
	exporter Exporter
	mode     promptFormMode
	err      string
	title    string
	help     string
}

// NewPromptForm builds the dialog for a controller prompt.
func NewPromptForm(p control.Prompt) *PromptForm {
	ti := textinput.New()
	ti.CharLimit = 256
	switch p.Kind {
	case control.PromptNumber:
		ti.CharLimit = 16
	case control.PromptColor:
		ti.Placeholder = "#rrggbb"
		ti.CharLimit = 32
	}
	ti.Focus()
	if p.Seed != "" {
		ti.SetValue(p.Seed)
	}
	form := &PromptForm{
		input:  ti,
		prompt: p,
		mode:   promptFormModeControl,
		title:  p.Title,
		help:   p.Message + ". Press Enter to apply. Esc to cancel.",
	}
	form.err = form.validate()
	return form
}

// NewExportForm builds the dialog asking where to write the PNG.
func NewExportForm(exp Exporter, initial string) *PromptForm {
	ti := textinput.New()
	ti.Placeholder = "text-style.png"
	ti.CharLimit = 4096
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}
	return &PromptForm{
		input:    ti,
		exporter: exp,
		mode:     promptFormModeExport,
		title:    "Export PNG",
		help:     "Press Enter to export. Esc to cancel.",
	}
}

func (f *PromptForm) Value() string            { return f.input.Value() }
func (f *PromptForm) InputView() string        { return f.input.View() }
func (f *PromptForm) Error() string            { return f.err }
func (f *PromptForm) Title() string            { return f.title }
func (f *PromptForm) Help() string             { return f.help }
func (f *PromptForm) Command() control.Command { return f.prompt.Command }
func (f *PromptForm) IsExport() bool           { return f.mode == promptFormModeExport }
func (f *PromptForm) Prompt() control.Prompt   { return f.prompt }
func (f *PromptForm) Kind() control.PromptKind { return f.prompt.Kind }
func (f *PromptForm) Seed() string             { return f.prompt.Seed }

// ActionID identifies the form in traces and pending labels.
func (f *PromptForm) ActionID() string {
	if f.IsExport() {
		return IDExport
	}
	return string(f.prompt.Command)
}

// Swatch returns the color being typed when it parses.
func (f *PromptForm) Swatch() (style.RGB, bool) {
	if f.prompt.Kind != control.PromptColor {
		return style.RGB{}, false
	}
	c, err := style.ParseColor(f.input.Value())
	return c, err == nil
}

// Update feeds msg to the input. It returns the command to run on submit,
// whether the form completed and whether it was cancelled.
func (f *PromptForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = f.validate()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if err := f.validate(); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			return f.submit(), true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.validate()
	return cmd, false, false
}

func (f *PromptForm) submit() tea.Cmd {
	if f.IsExport() {
		return ExportCommand(f.exporter, f.Value())
	}
	answer := control.Answer{Text: f.Value(), OK: true}
	if f.prompt.Kind == control.PromptColor {
		answer.Text = ""
		answer.Color, _ = f.Swatch()
	}
	submitted := PromptAnswer{Command: f.prompt.Command, Answer: answer}
	return func() tea.Msg { return submitted }
}

// validate covers what the form can reject before submit. Numeric input is
// left to the controller so parse failures produce its message.
func (f *PromptForm) validate() string {
	value := strings.TrimSpace(f.input.Value())
	switch {
	case f.IsExport():
		if value == "" {
			return "Export path required"
		}
	case f.prompt.Kind == control.PromptColor:
		if value == "" {
			return "Color required"
		}
		if _, ok := f.Swatch(); !ok {
			return "Unknown color"
		}
	}
	return ""
}
