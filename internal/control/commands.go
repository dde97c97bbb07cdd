package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/text-style-control/internal/style"
)

// Command identifies one user-facing style operation.
type Command string

const (
	ChangeText    Command = "change-text"
	SetSize       Command = "set-size"
	SetColor      Command = "set-color"
	SetLineHeight Command = "set-line-height"
	ToggleBold    Command = "toggle-bold"
	ToggleItalic  Command = "toggle-italic"
	SetFont       Command = "set-font"
	SetJustify    Command = "set-justify"
	ResetDefaults Command = "reset-defaults"
)

// Commands lists every command in menu order.
func Commands() []Command {
	return []Command{
		ChangeText, SetSize, SetColor, SetLineHeight,
		ToggleBold, ToggleItalic, SetFont, SetJustify, ResetDefaults,
	}
}

// Payload carries the input for a handler. Only the fields relevant to the
// command are read.
type Payload struct {
	Text          string
	Color         style.RGB
	On            bool
	Family        string
	Justification style.Justification
}

// Result describes the outcome of one command. A cancelled result carries
// ErrCancelled and no Message; a zero Result is a silent no-op.
type Result struct {
	Command   Command
	Committed bool
	Cancelled bool
	Err       error
	// Message is the user-visible explanation for Err.
	Message string
	// Value is the committed value, for tracing and status lines.
	Value interface{}
}

// Handler applies one command to the model. Handlers are pure over the model:
// they read the payload, call validated setters and describe the outcome.
type Handler func(*style.Model, Payload) Result

// Handlers is the command dispatch table.
var Handlers = map[Command]Handler{
	ChangeText:    changeText,
	SetSize:       setSize,
	SetColor:      setColor,
	SetLineHeight: setLineHeight,
	ToggleBold:    toggleBold,
	ToggleItalic:  toggleItalic,
	SetFont:       setFont,
	SetJustify:    setJustify,
	ResetDefaults: resetDefaults,
}

func committed(value interface{}) Result {
	return Result{Committed: true, Value: value}
}

func changeText(m *style.Model, p Payload) Result {
	if strings.TrimSpace(p.Text) == "" {
		return Result{}
	}
	if err := m.SetText(p.Text); err != nil {
		return Result{Err: err, Message: "Text must not be empty."}
	}
	return committed(p.Text)
}

func setSize(m *style.Model, p Payload) Result {
	raw := strings.TrimSpace(p.Text)
	if raw == "" {
		return Result{}
	}
	message := fmt.Sprintf("%q is not a legal text size. Please enter a positive integer.", raw)
	size, err := strconv.Atoi(raw)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %q is not an integer", ErrParseFailure, raw), Message: message}
	}
	if err := m.SetFontSize(size); err != nil {
		return Result{Err: err, Message: message}
	}
	return committed(size)
}

func setLineHeight(m *style.Model, p Payload) Result {
	raw := strings.TrimSpace(p.Text)
	if raw == "" {
		return Result{}
	}
	message := fmt.Sprintf("%q is not a legal line height. Please enter a positive numeric multiplier.", raw)
	multiplier, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %q is not a number", ErrParseFailure, raw), Message: message}
	}
	if err := m.SetLineHeight(multiplier); err != nil {
		return Result{Err: err, Message: message}
	}
	return committed(multiplier)
}

func setColor(m *style.Model, p Payload) Result {
	m.SetColor(p.Color)
	return committed(p.Color.Hex())
}

func toggleBold(m *style.Model, p Payload) Result {
	m.SetBold(p.On)
	return committed(p.On)
}

func toggleItalic(m *style.Model, p Payload) Result {
	m.SetItalic(p.On)
	return committed(p.On)
}

func setFont(m *style.Model, p Payload) Result {
	m.SetFontFamily(p.Family)
	return committed(p.Family)
}

func setJustify(m *style.Model, p Payload) Result {
	if !p.Justification.Valid() {
		return Result{}
	}
	m.SetJustification(p.Justification)
	return committed(p.Justification.String())
}

func resetDefaults(m *style.Model, _ Payload) Result {
	m.ResetDefaults()
	return committed(nil)
}
