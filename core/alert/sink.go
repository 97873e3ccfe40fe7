package alert

import (
	"context"

	"github.com/neurofleetx/fleetops/core/model"
)

// Sink receives alerts raised by the telemetry simulator. Implementations
// must not block the caller for long and must swallow their own delivery
// failures; alerts are fire-and-forget from the producer's perspective.
type Sink interface {
	Record(ctx context.Context, a model.Alert)
}

// NopSink discards all alerts.
type NopSink struct{}

func (NopSink) Record(context.Context, model.Alert) {}

// MultiSink fans an alert out to several sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) Record(ctx context.Context, a model.Alert) {
	for _, s := range m.Sinks {
		s.Record(ctx, a)
	}
}
