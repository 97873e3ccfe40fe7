package geo

import (
	"math"

	"github.com/neurofleetx/fleetops/core/model"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometres between two
// points on a sphere of radius earthRadiusKm.
func Haversine(a, b model.GeoPoint) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
