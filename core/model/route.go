package model

// RouteKind identifies one of the three planning profiles.
type RouteKind int

const (
	RouteFastest RouteKind = iota
	RouteShortest
	RouteEco
)

func (k RouteKind) String() string {
	switch k {
	case RouteFastest:
		return "Fastest (AI-Graph)"
	case RouteShortest:
		return "Shortest Path"
	case RouteEco:
		return "Eco-Friendly"
	default:
		return "unknown"
	}
}

// TrafficLevel is the assumed congestion for a route variant.
type TrafficLevel int

const (
	TrafficLow TrafficLevel = iota
	TrafficModerate
	TrafficHeavy
)

func (t TrafficLevel) String() string {
	switch t {
	case TrafficLow:
		return "Low"
	case TrafficModerate:
		return "Moderate"
	case TrafficHeavy:
		return "Heavy"
	default:
		return "unknown"
	}
}

// RouteVariant is one candidate route returned by the planner. Variants are
// built per request and never persisted.
type RouteVariant struct {
	ID           string
	Kind         RouteKind
	ETAText      string
	DistanceText string
	Traffic      TrafficLevel
	EnergyUsage  float64
	Path         []GeoPoint
	Color        string
}
