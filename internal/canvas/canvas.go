// Package canvas hosts the text element being styled. It owns the style
// model, counts redraw requests and renders the element either into a
// terminal panel or into a PNG image.
package canvas

import (
	"sync/atomic"

	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/google/uuid"
)

// Canvas owns a single text element.
type Canvas struct {
	id       uuid.UUID
	model    *style.Model
	revision atomic.Uint64
}

// New creates a canvas for model. A nil model gets the defaults.
func New(model *style.Model) *Canvas {
	if model == nil {
		model = style.New()
	}
	return &Canvas{id: uuid.New(), model: model}
}

// ID identifies the element in traces.
func (c *Canvas) ID() string { return c.id.String() }

// StyledElement returns the live style model.
func (c *Canvas) StyledElement() *style.Model { return c.model }

// RequestRedraw marks the element dirty. Renderers compare Revision to
// decide whether cached output is stale.
func (c *Canvas) RequestRedraw() {
	rev := c.revision.Add(1)
	events.Canvas.Redraw(c.ID(), rev)
}

// Revision counts redraw requests since creation.
func (c *Canvas) Revision() uint64 { return c.revision.Load() }
