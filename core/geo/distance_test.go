package geo

import (
	"math"
	"testing"

	"github.com/neurofleetx/fleetops/core/model"
)

func TestHaversineSymmetric(t *testing.T) {
	a := model.GeoPoint{Lat: 28.6304, Lng: 77.2177}
	b := model.GeoPoint{Lat: 28.5492, Lng: 77.2526}
	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-12 {
		t.Fatalf("haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineZero(t *testing.T) {
	p := model.GeoPoint{Lat: 28.6, Lng: 77.2}
	if d := Haversine(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Connaught Place to Nehru Place, roughly 9.7 km great-circle.
	a := model.GeoPoint{Lat: 28.6304, Lng: 77.2177}
	b := model.GeoPoint{Lat: 28.5492, Lng: 77.2526}
	d := Haversine(a, b)
	if d < 9 || d > 10.5 {
		t.Fatalf("unexpected distance %v km", d)
	}
}
