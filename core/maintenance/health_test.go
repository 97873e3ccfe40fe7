package maintenance

import (
	"math/rand"
	"testing"
	"time"

	"github.com/neurofleetx/fleetops/core/model"
)

func fixedScorer() *Scorer {
	return NewScorer(rand.New(rand.NewSource(3)), func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	})
}

func TestHealthScore(t *testing.T) {
	v := model.Vehicle{BatteryPct: 100, DistanceSinceServiceKm: 0}
	if got := HealthScore(v); got != 100 {
		t.Fatalf("fresh vehicle score = %v, want 100", got)
	}
	worn := model.Vehicle{BatteryPct: 10, DistanceSinceServiceKm: 9000}
	if got := HealthScore(worn); got >= criticalBelow {
		t.Fatalf("worn vehicle score = %v, want critical", got)
	}
}

func TestStatsBuckets(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: "a", Name: "A", BatteryPct: 100, DistanceSinceServiceKm: 0},    // healthy
		{ID: "b", Name: "B", BatteryPct: 50, DistanceSinceServiceKm: 6000},  // due: 20 + 24 = 44
		{ID: "c", Name: "C", BatteryPct: 10, DistanceSinceServiceKm: 12000}, // critical: 4 - 12
	}
	stats := fixedScorer().Stats(vehicles)
	if stats.VehiclesHealthy != 1 || stats.VehiclesDueSoon != 1 || stats.VehiclesCritical != 1 {
		t.Fatalf("buckets = %d/%d/%d", stats.VehiclesHealthy, stats.VehiclesDueSoon, stats.VehiclesCritical)
	}
	if len(stats.PredictedFaults) != 1 {
		t.Fatalf("faults = %d, want 1", len(stats.PredictedFaults))
	}
	f := stats.PredictedFaults[0]
	if f.VehicleID != "c" {
		t.Errorf("fault vehicle = %s", f.VehicleID)
	}
	if f.Probability < 85 || f.Probability > 98 {
		t.Errorf("probability = %d out of range", f.Probability)
	}
	if f.Component != "Battery Cells" && f.Component != "Brake Pads" {
		t.Errorf("component = %q", f.Component)
	}
}

func TestStatsFleetScoreIsMean(t *testing.T) {
	vehicles := []model.Vehicle{
		{BatteryPct: 100, DistanceSinceServiceKm: 0}, // 100
		{BatteryPct: 50, DistanceSinceServiceKm: 0},  // 80
	}
	stats := fixedScorer().Stats(vehicles)
	if stats.FleetHealthScore != 90 {
		t.Fatalf("fleet score = %v, want 90", stats.FleetHealthScore)
	}
}

func TestStatsEmptyFleet(t *testing.T) {
	stats := fixedScorer().Stats(nil)
	if stats.FleetHealthScore != 0 {
		t.Fatalf("empty fleet score = %v, want 0", stats.FleetHealthScore)
	}
}
