package geo

import (
	"math/rand"
	"time"

	"github.com/neurofleetx/fleetops/core/model"
)

// jitterDeg bounds the random offset applied to each synthesized waypoint.
const jitterDeg = 0.0025

// PathSynthesizer fabricates a plausible curved path between two points when
// no graph route applies. Each synthesizer owns its random source so
// concurrent callers never share a seed.
type PathSynthesizer struct {
	rng *rand.Rand
}

// NewPathSynthesizer creates a synthesizer. A nil rng gets a time-seeded one.
func NewPathSynthesizer(rng *rand.Rand) *PathSynthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PathSynthesizer{rng: rng}
}

// CurvedPath returns exactly seven points: start, five jittered
// interpolations at fractions 1/6..5/6, and end.
func (s *PathSynthesizer) CurvedPath(start, end model.GeoPoint) []model.GeoPoint {
	path := make([]model.GeoPoint, 0, 7)
	path = append(path, start)
	for i := 1; i <= 5; i++ {
		frac := float64(i) / 6.0
		p := model.GeoPoint{
			Lat: start.Lat + (end.Lat-start.Lat)*frac,
			Lng: start.Lng + (end.Lng-start.Lng)*frac,
		}
		p.Lat += (s.rng.Float64() - 0.5) * 2 * jitterDeg
		p.Lng += (s.rng.Float64() - 0.5) * 2 * jitterDeg
		path = append(path, p)
	}
	path = append(path, end)
	return path
}
