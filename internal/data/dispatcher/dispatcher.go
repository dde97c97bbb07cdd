package dispatcher

import (
	"github.com/atomicstack/text-style-control/internal/backend"
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/state"
)

type Result struct {
	FontsUpdated bool
	Err          error
}

type Dispatcher struct {
	fonts state.FontStore
}

func New(f state.FontStore) *Dispatcher {
	return &Dispatcher{fonts: f}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		d.fonts.SetErr(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindFonts:
		if families, ok := evt.Data.([]string); ok {
			d.fonts.SetFamilies(families)
			groups := d.fonts.Groups()
			events.Font.Groups(len(groups), fontgroup.Count(groups))
			res.FontsUpdated = true
		}
	}
	return res
}
