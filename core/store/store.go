package store

import (
	"context"

	"github.com/neurofleetx/fleetops/core/model"
)

// VehicleStore is the persistence boundary for vehicle telemetry. The
// simulator performs a load-mutate-save cycle against it on every tick;
// request handlers receive already-loaded vehicle lists instead of querying
// the store themselves.
//
// Writes are last-write-wins: concurrent request-path mutations may be
// overwritten by the next simulator tick.
type VehicleStore interface {
	// LoadAll returns every vehicle in a stable order.
	LoadAll(ctx context.Context) ([]model.Vehicle, error)
	// Save persists a single vehicle record.
	Save(ctx context.Context, v model.Vehicle) error
}
