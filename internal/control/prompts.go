package control

import (
	"strconv"

	"github.com/atomicstack/text-style-control/internal/style"
)

// TextPrompter asks for free text seeded with the current value. ok is false
// when the user cancels.
type TextPrompter interface {
	PromptForText(seed string) (value string, ok bool)
}

// StringPrompter asks for a raw string; parsing is the caller's job.
type StringPrompter interface {
	PromptForString(message, seed string) (value string, ok bool)
}

// ColorPicker asks for a color seeded with the current one.
type ColorPicker interface {
	PromptForColor(seed style.RGB) (color style.RGB, ok bool)
}

// Prompts bundles the dialog collaborators used by Controller.Run.
type Prompts struct {
	Text   TextPrompter
	String StringPrompter
	Color  ColorPicker
}

// PromptKind selects which dialog a command needs.
type PromptKind int

const (
	PromptText PromptKind = iota
	PromptNumber
	PromptColor
)

// Prompt describes the dialog to show before a command can be applied.
type Prompt struct {
	Command Command
	Kind    PromptKind
	Title   string
	Message string
	Seed    string
}

// Answer is the outcome of a Prompt. OK is false on cancel.
type Answer struct {
	Text  string
	Color style.RGB
	OK    bool
}

// Prompted reports whether cmd needs a dialog before it can run.
func Prompted(cmd Command) bool {
	switch cmd {
	case ChangeText, SetSize, SetColor, SetLineHeight:
		return true
	}
	return false
}

func promptFor(cmd Command, m *style.Model) (Prompt, bool) {
	switch cmd {
	case ChangeText:
		return Prompt{Command: cmd, Kind: PromptText, Title: "Change Text", Message: "Enter new text", Seed: m.Text()}, true
	case SetSize:
		return Prompt{Command: cmd, Kind: PromptNumber, Title: "Text Size", Message: "Enter new text size", Seed: strconv.Itoa(m.FontSize())}, true
	case SetLineHeight:
		return Prompt{Command: cmd, Kind: PromptNumber, Title: "Line Height", Message: "Enter new line height multiplier", Seed: strconv.FormatFloat(m.LineHeight(), 'g', -1, 64)}, true
	case SetColor:
		return Prompt{Command: cmd, Kind: PromptColor, Title: "Text Color", Message: "Enter a color (#rrggbb or name)", Seed: m.Color().Hex()}, true
	}
	return Prompt{}, false
}
