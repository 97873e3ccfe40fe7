package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/neurofleetx/fleetops/core/model"
)

func TestCurvedPathStructure(t *testing.T) {
	s := NewPathSynthesizer(rand.New(rand.NewSource(1)))
	start := model.GeoPoint{Lat: 28.60, Lng: 77.20}
	end := model.GeoPoint{Lat: 28.70, Lng: 77.30}
	path := s.CurvedPath(start, end)
	if len(path) != 7 {
		t.Fatalf("expected 7 points, got %d", len(path))
	}
	if path[0] != start || path[6] != end {
		t.Fatalf("endpoints not literal: %+v .. %+v", path[0], path[6])
	}
	for i := 1; i <= 5; i++ {
		frac := float64(i) / 6.0
		wantLat := start.Lat + (end.Lat-start.Lat)*frac
		wantLng := start.Lng + (end.Lng-start.Lng)*frac
		if math.Abs(path[i].Lat-wantLat) > jitterDeg {
			t.Errorf("point %d lat jitter out of bounds: %v", i, path[i].Lat-wantLat)
		}
		if math.Abs(path[i].Lng-wantLng) > jitterDeg {
			t.Errorf("point %d lng jitter out of bounds: %v", i, path[i].Lng-wantLng)
		}
	}
}

func TestCurvedPathProgressesTowardEnd(t *testing.T) {
	s := NewPathSynthesizer(rand.New(rand.NewSource(7)))
	start := model.GeoPoint{Lat: 28.0, Lng: 77.0}
	end := model.GeoPoint{Lat: 29.0, Lng: 78.0}
	path := s.CurvedPath(start, end)
	prev := Haversine(path[0], end)
	for i := 1; i < len(path); i++ {
		d := Haversine(path[i], end)
		// Jitter is tiny compared to the interpolation step here, so the
		// remaining distance must shrink monotonically.
		if d >= prev {
			t.Fatalf("point %d does not progress toward end: %v >= %v", i, d, prev)
		}
		prev = d
	}
}

func TestCurvedPathNilSource(t *testing.T) {
	s := NewPathSynthesizer(nil)
	path := s.CurvedPath(model.GeoPoint{}, model.GeoPoint{Lat: 1, Lng: 1})
	if len(path) != 7 {
		t.Fatalf("expected 7 points, got %d", len(path))
	}
}
