package metrics

import (
	"time"

	"github.com/neurofleetx/fleetops/core/model"
)

// TelemetrySink receives fleet telemetry observations. Implementations are
// expected to be cheap; the simulator calls them synchronously inside its
// tick.
type TelemetrySink interface {
	// RecordVehicleState publishes the latest snapshot of a vehicle.
	RecordVehicleState(v model.Vehicle) error
	// RecordAlert counts an emitted alert.
	RecordAlert(a model.Alert) error
	// RecordTickDuration reports how long a full simulation pass took and
	// how many vehicles it covered.
	RecordTickDuration(d time.Duration, vehicles int) error
}

// NopSink ignores all observations.
type NopSink struct{}

func (NopSink) RecordVehicleState(model.Vehicle) error      { return nil }
func (NopSink) RecordAlert(model.Alert) error               { return nil }
func (NopSink) RecordTickDuration(time.Duration, int) error { return nil }
