package model

import (
	"fmt"
	"math"
	"time"
)

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus int

const (
	StatusIdle VehicleStatus = iota
	StatusInUse
	StatusMaintenance
	StatusNeedsService
)

// String returns the wire representation used by the fleet API and stores.
func (s VehicleStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusInUse:
		return "In Use"
	case StatusMaintenance:
		return "Maintenance"
	case StatusNeedsService:
		return "Needs Service"
	default:
		return "unknown"
	}
}

// ParseVehicleStatus converts a wire string back to a VehicleStatus.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch s {
	case "Idle":
		return StatusIdle, nil
	case "In Use":
		return StatusInUse, nil
	case "Maintenance":
		return StatusMaintenance, nil
	case "Needs Service":
		return StatusNeedsService, nil
	default:
		return StatusIdle, fmt.Errorf("unknown vehicle status %q", s)
	}
}

// Vehicle is the telemetry view of a fleet vehicle. Position, battery,
// speed and distances are rewritten by the simulator every tick; the
// remaining fields are owned by the fleet inventory.
type Vehicle struct {
	ID                     string
	Name                   string
	Type                   string
	FuelType               string
	Status                 VehicleStatus
	BatteryPct             float64 // percent, clamped to [0,100]
	SpeedKmh               float64 // always 0 unless status is In Use
	Position               GeoPoint
	DistanceSinceServiceKm float64
	TotalDistanceKm        float64
	LastUpdate             time.Time
}

// ClampBattery bounds the battery to [0,100] and rounds to two decimals.
func (v *Vehicle) ClampBattery() {
	if v.BatteryPct < 0 {
		v.BatteryPct = 0
	}
	if v.BatteryPct > 100 {
		v.BatteryPct = 100
	}
	v.BatteryPct = math.Round(v.BatteryPct*100) / 100
}
