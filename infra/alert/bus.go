package alert

import (
	"context"

	"github.com/neurofleetx/fleetops/core/model"
	"github.com/neurofleetx/fleetops/internal/eventbus"
)

// BusSink publishes alerts on an in-process event bus for live consumers
// such as the dashboard feed.
type BusSink struct {
	bus *eventbus.Bus[model.Alert]
}

// NewBusSink wraps the given bus.
func NewBusSink(bus *eventbus.Bus[model.Alert]) *BusSink {
	return &BusSink{bus: bus}
}

func (s *BusSink) Record(_ context.Context, a model.Alert) {
	s.bus.Publish(a)
}
