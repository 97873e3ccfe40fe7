package geo

import (
	"testing"

	"github.com/neurofleetx/fleetops/core/model"
)

func TestNearestNode(t *testing.T) {
	g := NewCityGraph()
	n := g.NearestNode(model.GeoPoint{Lat: 28.6300, Lng: 77.2180})
	if n == nil || n.ID != "CP" {
		t.Fatalf("nearest to Connaught Place = %+v", n)
	}
	n = g.NearestNode(model.GeoPoint{Lat: 28.57, Lng: 77.32})
	if n == nil || n.ID != "N18" {
		t.Fatalf("nearest to Noida Sec 18 = %+v", n)
	}
}

func TestShortestPathEndpointsPreserved(t *testing.T) {
	g := NewCityGraph()
	start := model.GeoPoint{Lat: 28.6310, Lng: 77.2170}
	end := model.GeoPoint{Lat: 28.5665, Lng: 77.3310}
	path := g.ShortestPath(start, end)
	if path == nil {
		t.Fatalf("expected a graph route between CP and GP")
	}
	if path[0] != start {
		t.Fatalf("path does not begin with literal start: %+v", path[0])
	}
	if path[len(path)-1] != end {
		t.Fatalf("path does not end with literal end: %+v", path[len(path)-1])
	}
	if len(path) < 3 {
		t.Fatalf("expected intermediate landmarks, got %d points", len(path))
	}
}

func TestShortestPathPrefersCheaperChain(t *testing.T) {
	g := NewGraph()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 0, 1)
	g.AddNode("C", 1, 0.5)
	g.Connect("A", "B", 10)
	g.Connect("A", "C", 2)
	g.Connect("C", "B", 2)
	path := g.ShortestPath(model.GeoPoint{Lat: 0, Lng: 0}, model.GeoPoint{Lat: 0, Lng: 1})
	// A -> C -> B plus the two literal endpoints.
	if len(path) != 5 {
		t.Fatalf("expected 5 points, got %d: %+v", len(path), path)
	}
	if path[2] != (model.GeoPoint{Lat: 1, Lng: 0.5}) {
		t.Fatalf("expected detour through C, got %+v", path[2])
	}
}

func TestShortestPathFarOutsideGraph(t *testing.T) {
	g := NewCityGraph()
	start := model.GeoPoint{Lat: 51.5, Lng: -0.12} // London
	end := model.GeoPoint{Lat: 48.85, Lng: 2.35}   // Paris
	path := g.ShortestPath(start, end)
	if path == nil {
		return // short result is a valid fallback signal
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Fatalf("endpoints truncated: %+v .. %+v", path[0], path[len(path)-1])
	}
}

func TestShortestPathSameNearestNode(t *testing.T) {
	g := NewCityGraph()
	// Both points snap to CP, so no intermediate routing happens.
	p1 := model.GeoPoint{Lat: 28.6304, Lng: 77.2177}
	p2 := model.GeoPoint{Lat: 28.6305, Lng: 77.2178}
	path := g.ShortestPath(p1, p2)
	// Chain is [CP] plus the two literals: exactly 3 points, still valid.
	if path != nil && (path[0] != p1 || path[len(path)-1] != p2) {
		t.Fatalf("endpoints not preserved")
	}
}
