package routing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/neurofleetx/fleetops/core/geo"
	"github.com/neurofleetx/fleetops/core/model"
)

// RouteRequest mirrors the payload accepted by the route planning API.
// Preference and VehicleType are accepted for forward compatibility but do
// not influence the current variants.
type RouteRequest struct {
	StartLat    float64 `json:"startLat"`
	StartLng    float64 `json:"startLng"`
	EndLat      float64 `json:"endLat"`
	EndLng      float64 `json:"endLng"`
	Preference  string  `json:"preference"`
	VehicleType string  `json:"vehicleType"`
}

// Display colors for the three variants.
const (
	colorFastest  = "#3b82f6"
	colorShortest = "#10b981"
	colorEco      = "#22c55e"
)

// Planner derives three what-if route variants from a single geometric
// baseline, the great-circle distance between start and end. It is stateless
// and safe for concurrent use: every call builds its own path synthesizer so
// no random source is shared between requests.
type Planner struct {
	graph  *geo.Graph
	newRNG func() *rand.Rand
}

// NewPlanner creates a Planner routing over g. A nil factory defaults to
// time-seeded generators.
func NewPlanner(g *geo.Graph, newRNG func() *rand.Rand) *Planner {
	if newRNG == nil {
		newRNG = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Planner{graph: g, newRNG: newRNG}
}

// PlanRoute returns exactly three variants, in order Fastest, Shortest, Eco.
// Every variant's path starts at the literal start point and ends at the
// literal end point.
func (p *Planner) PlanRoute(start, end model.GeoPoint) []model.RouteVariant {
	distance := geo.Haversine(start, end)
	synth := geo.NewPathSynthesizer(p.newRNG())

	// Fastest rides the landmark graph; a short result means the graph has
	// no useful route here and we fall back to a synthesized path.
	fastPath := p.graph.ShortestPath(start, end)
	if len(fastPath) < 3 {
		fastPath = synth.CurvedPath(start, end)
	}

	routes := make([]model.RouteVariant, 0, 3)
	routes = append(routes, model.RouteVariant{
		ID:           "rt_1",
		Kind:         model.RouteFastest,
		ETAText:      fmt.Sprintf("%d mins", int(distance*1.5)),
		DistanceText: fmt.Sprintf("%.1f km", distance*1.2),
		Traffic:      model.TrafficLow,
		EnergyUsage:  distance * 0.1,
		Path:         fastPath,
		Color:        colorFastest,
	})
	routes = append(routes, profileVariant(synth, "rt_2", model.RouteShortest, distance*1.05, model.TrafficHeavy, start, end, colorShortest))
	routes = append(routes, profileVariant(synth, "rt_3", model.RouteEco, distance*1.15, model.TrafficModerate, start, end, colorEco))
	return routes
}

// Plan resolves a RouteRequest into variants.
func (p *Planner) Plan(req RouteRequest) []model.RouteVariant {
	return p.PlanRoute(
		model.GeoPoint{Lat: req.StartLat, Lng: req.StartLng},
		model.GeoPoint{Lat: req.EndLat, Lng: req.EndLng},
	)
}

// profileVariant projects the baseline into a traffic/speed profile with a
// synthesized path.
func profileVariant(synth *geo.PathSynthesizer, id string, kind model.RouteKind, distKm float64, traffic model.TrafficLevel, start, end model.GeoPoint, color string) model.RouteVariant {
	speed := speedFor(traffic)
	minutes := int(distKm / speed * 60)
	if minutes < 5 {
		minutes = 5
	}
	return model.RouteVariant{
		ID:           id,
		Kind:         kind,
		ETAText:      fmt.Sprintf("%d mins", minutes),
		DistanceText: fmt.Sprintf("%.1f km", distKm),
		Traffic:      traffic,
		EnergyUsage:  distKm * 0.1,
		Path:         synth.CurvedPath(start, end),
		Color:        color,
	}
}

// speedFor maps assumed congestion to an average speed in km/h.
func speedFor(t model.TrafficLevel) float64 {
	switch t {
	case model.TrafficLow:
		return 60
	case model.TrafficModerate:
		return 40
	default:
		return 25
	}
}
