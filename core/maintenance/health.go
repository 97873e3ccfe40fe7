package maintenance

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/neurofleetx/fleetops/core/model"
)

// Health score buckets.
const (
	criticalBelow = 40
	dueBelow      = 70
)

// Weighting of the fixed health heuristic. This is a deterministic score,
// not a learned model.
const (
	batteryWeight  = 0.4
	distanceWeight = 0.6
)

// PredictedFault is a mocked fault forecast for a critical vehicle.
type PredictedFault struct {
	VehicleID     string
	VehicleName   string
	Component     string
	PredictedDate string
	Probability   int
}

// Stats summarises fleet health.
type Stats struct {
	FleetHealthScore float64
	VehiclesCritical int
	VehiclesDueSoon  int
	VehiclesHealthy  int
	PredictedFaults  []PredictedFault
}

// Scorer computes fleet health stats from vehicle telemetry.
type Scorer struct {
	rng *rand.Rand
	now func() time.Time
}

// NewScorer creates a Scorer. Nil arguments default to a time-seeded
// generator and the wall clock.
func NewScorer(rng *rand.Rand, now func() time.Time) *Scorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Scorer{rng: rng, now: now}
}

// HealthScore returns the heuristic health of one vehicle: battery level
// weighted against distance accumulated since the last service.
func HealthScore(v model.Vehicle) float64 {
	return v.BatteryPct*batteryWeight + (100-v.DistanceSinceServiceKm/100)*distanceWeight
}

// Stats buckets every vehicle by health score and forecasts a fault for each
// critical one. The fleet score is the mean of the per-vehicle scores.
func (s *Scorer) Stats(vehicles []model.Vehicle) Stats {
	out := Stats{}
	scores := make([]float64, 0, len(vehicles))
	for _, v := range vehicles {
		h := HealthScore(v)
		scores = append(scores, h)
		switch {
		case h < criticalBelow:
			out.VehiclesCritical++
			out.PredictedFaults = append(out.PredictedFaults, s.forecast(v))
		case h < dueBelow:
			out.VehiclesDueSoon++
		default:
			out.VehiclesHealthy++
		}
	}
	if len(scores) > 0 {
		out.FleetHealthScore = stat.Mean(scores, nil)
	}
	return out
}

func (s *Scorer) forecast(v model.Vehicle) PredictedFault {
	component := "Brake Pads"
	if s.rng.Intn(2) == 0 {
		component = "Battery Cells"
	}
	return PredictedFault{
		VehicleID:     v.ID,
		VehicleName:   v.Name,
		Component:     component,
		PredictedDate: s.now().AddDate(0, 0, s.rng.Intn(7)).Format("2006-01-02"),
		Probability:   85 + s.rng.Intn(14),
	}
}
