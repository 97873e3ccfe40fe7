package metrics

import (
	"time"

	coremetrics "github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/model"
)

// MultiSink fans telemetry out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.TelemetrySink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.TelemetrySink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordVehicleState forwards the snapshot to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordVehicleState(v model.Vehicle) error {
	for _, s := range m.Sinks {
		if err := s.RecordVehicleState(v); err != nil {
			return err
		}
	}
	return nil
}

// RecordAlert forwards the alert to all sinks.
func (m *MultiSink) RecordAlert(a model.Alert) error {
	for _, s := range m.Sinks {
		if err := s.RecordAlert(a); err != nil {
			return err
		}
	}
	return nil
}

// RecordTickDuration forwards the observation to all sinks.
func (m *MultiSink) RecordTickDuration(d time.Duration, vehicles int) error {
	for _, s := range m.Sinks {
		if err := s.RecordTickDuration(d, vehicles); err != nil {
			return err
		}
	}
	return nil
}
