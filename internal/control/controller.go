// Package control binds user intents to a text element's style model.
//
// Every command goes through a dispatch table of pure handlers. The
// Controller applies the handler, requests exactly one redraw when the model
// changed, and refreshes the indicator state shown by checkable and radio
// controls.
package control

import (
	"errors"
	"fmt"

	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/style"
)

var (
	// ErrParseFailure reports typed input that is not the required number.
	ErrParseFailure = errors.New("parse failure")
	// ErrCancelled marks a dismissed prompt. It is never shown to the user.
	ErrCancelled = errors.New("cancelled")
	// ErrUnknownCommand is returned for commands missing from the table.
	ErrUnknownCommand = errors.New("unknown command")
)

// Canvas is the drawing collaborator that owns the styled element.
type Canvas interface {
	StyledElement() *style.Model
	RequestRedraw()
}

// Indicators mirror model state into toggle and radio controls.
type Indicators struct {
	Bold          bool
	Italic        bool
	Justification style.Justification
	FontFamily    string
}

// Checked reports whether the control for cmd is currently indicated. For
// SetJustify the candidate alignment selects the radio member.
func (i Indicators) Checked(cmd Command, j style.Justification) bool {
	switch cmd {
	case ToggleBold:
		return i.Bold
	case ToggleItalic:
		return i.Italic
	case SetJustify:
		return i.Justification == j
	}
	return false
}

// Controller serialises style commands for one canvas element. It is not
// safe for concurrent use; callers drive it from a single event loop.
type Controller struct {
	canvas     Canvas
	indicators Indicators
}

// New returns a controller bound to canvas.
func New(canvas Canvas) *Controller {
	c := &Controller{canvas: canvas}
	c.refresh()
	return c
}

// Model returns the element's style model.
func (c *Controller) Model() *style.Model { return c.canvas.StyledElement() }

// Indicators returns the indicator state as of the last applied command.
func (c *Controller) Indicators() Indicators { return c.indicators }

// PromptFor describes the dialog cmd needs, seeded from the model.
func (c *Controller) PromptFor(cmd Command) (Prompt, bool) {
	p, ok := promptFor(cmd, c.Model())
	if ok {
		events.Style.Prompt(string(cmd))
	}
	return p, ok
}

// Complete applies the answer to a prompt returned by PromptFor.
func (c *Controller) Complete(cmd Command, answer Answer) Result {
	if !answer.OK {
		return c.cancel(cmd)
	}
	return c.Apply(cmd, Payload{Text: answer.Text, Color: answer.Color})
}

// Run prompts through the given collaborators and applies the answer. It
// only handles commands that need a dialog; others go through Apply. A nil
// collaborator counts as a cancelled dialog.
func (c *Controller) Run(cmd Command, prompts Prompts) Result {
	p, ok := promptFor(cmd, c.Model())
	if !ok {
		return c.finish(cmd, Result{Err: fmt.Errorf("%w: %s takes no prompt", ErrUnknownCommand, cmd)}, "")
	}
	var answer Answer
	switch p.Kind {
	case PromptText:
		if prompts.Text == nil {
			return c.cancel(cmd)
		}
		answer.Text, answer.OK = prompts.Text.PromptForText(p.Seed)
	case PromptNumber:
		if prompts.String == nil {
			return c.cancel(cmd)
		}
		answer.Text, answer.OK = prompts.String.PromptForString(p.Message, p.Seed)
	case PromptColor:
		if prompts.Color == nil {
			return c.cancel(cmd)
		}
		answer.Color, answer.OK = prompts.Color.PromptForColor(c.Model().Color())
	}
	return c.Complete(cmd, answer)
}

// Apply dispatches cmd with payload. A committed result triggers exactly one
// redraw request; failures and no-ops trigger none.
func (c *Controller) Apply(cmd Command, payload Payload) Result {
	h, ok := Handlers[cmd]
	if !ok {
		return c.finish(cmd, Result{Err: fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)}, payload.Text)
	}
	return c.finish(cmd, h(c.Model(), payload), payload.Text)
}

// Toggle flips bold or italic based on the current indicator.
func (c *Controller) Toggle(cmd Command) Result {
	switch cmd {
	case ToggleBold:
		return c.Apply(cmd, Payload{On: !c.indicators.Bold})
	case ToggleItalic:
		return c.Apply(cmd, Payload{On: !c.indicators.Italic})
	}
	return c.finish(cmd, Result{Err: fmt.Errorf("%w: %s is not a toggle", ErrUnknownCommand, cmd)}, "")
}

// Reset restores the default weight, slant and alignment.
func (c *Controller) Reset() Result {
	return c.Apply(ResetDefaults, Payload{})
}

func (c *Controller) cancel(cmd Command) Result {
	return c.finish(cmd, Result{Cancelled: true, Err: ErrCancelled}, "")
}

func (c *Controller) finish(cmd Command, res Result, input string) Result {
	res.Command = cmd
	switch {
	case res.Committed:
		c.canvas.RequestRedraw()
		c.refresh()
		events.Style.Commit(string(cmd), res.Value)
	case res.Cancelled:
		events.Style.Cancel(string(cmd))
	case res.Err != nil:
		if res.Message == "" {
			res.Message = res.Err.Error()
		}
		events.Style.Reject(string(cmd), input, res.Err)
	}
	return res
}

func (c *Controller) refresh() {
	m := c.Model()
	c.indicators = Indicators{
		Bold:          m.Bold(),
		Italic:        m.Italic(),
		Justification: m.Justification(),
		FontFamily:    m.FontFamily(),
	}
}
