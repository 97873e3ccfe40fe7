package geo

import (
	"container/heap"
	"math"

	"github.com/neurofleetx/fleetops/core/model"
)

// Edge connects a node to a neighbour with a road distance in km. Edges are
// always inserted in symmetric pairs.
type Edge struct {
	Target   string
	WeightKm float64
}

// Node is a landmark in the city graph.
type Node struct {
	ID        string
	Point     model.GeoPoint
	Neighbors []Edge
}

// Graph is a static weighted graph of city landmarks. It is built once at
// startup and never mutated afterwards, so concurrent reads need no locking.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// NewGraph returns an empty graph under construction. Call Freeze semantics
// are implicit: callers stop adding once routing starts.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode registers a landmark.
func (g *Graph) AddNode(id string, lat, lng float64) {
	g.nodes[id] = &Node{ID: id, Point: model.GeoPoint{Lat: lat, Lng: lng}}
	g.order = append(g.order, id)
}

// Connect inserts a bidirectional edge between two known nodes.
func (g *Graph) Connect(a, b string, distKm float64) {
	na, nb := g.nodes[a], g.nodes[b]
	if na == nil || nb == nil {
		return
	}
	na.Neighbors = append(na.Neighbors, Edge{Target: b, WeightKm: distKm})
	nb.Neighbors = append(nb.Neighbors, Edge{Target: a, WeightKm: distKm})
}

// NearestNode returns the landmark minimising planar (lat,lng) distance to p.
// No unit correction is applied; over the small covered area the
// approximation is adequate.
func (g *Graph) NearestNode(p model.GeoPoint) *Node {
	var nearest *Node
	min := math.MaxFloat64
	for _, id := range g.order {
		n := g.nodes[id]
		d := math.Hypot(n.Point.Lat-p.Lat, n.Point.Lng-p.Lng)
		if d < min {
			min = d
			nearest = n
		}
	}
	return nearest
}

// ShortestPath runs Dijkstra between the landmarks nearest to start and end
// and returns the node chain prefixed with the literal start point and
// suffixed with the literal end point. A nil result means no usable graph
// route exists (fewer than three points after reconstruction); callers fall
// back to a synthesized path. This is expected control flow, not an error.
func (g *Graph) ShortestPath(start, end model.GeoPoint) []model.GeoPoint {
	startNode := g.NearestNode(start)
	endNode := g.NearestNode(end)
	if startNode == nil || endNode == nil {
		return nil
	}

	dist := make(map[string]float64, len(g.nodes))
	prev := make(map[string]string, len(g.nodes))
	for id := range g.nodes {
		dist[id] = math.MaxFloat64
	}
	dist[startNode.ID] = 0

	pq := &nodeQueue{{id: startNode.ID, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queueItem)
		if cur.id == endNode.ID {
			break
		}
		if cur.dist > dist[cur.id] {
			continue // stale queue entry
		}
		for _, e := range g.nodes[cur.id].Neighbors {
			nd := dist[cur.id] + e.WeightKm
			if nd < dist[e.Target] {
				dist[e.Target] = nd
				prev[e.Target] = cur.id
				heap.Push(pq, queueItem{id: e.Target, dist: nd})
			}
		}
	}

	var chain []string
	for at := endNode.ID; at != ""; at = prev[at] {
		chain = append(chain, at)
		if at == startNode.ID {
			break
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	path := make([]model.GeoPoint, 0, len(chain)+2)
	path = append(path, start)
	for _, id := range chain {
		path = append(path, g.nodes[id].Point)
	}
	path = append(path, end)
	if len(path) < 3 {
		return nil
	}
	return path
}

type queueItem struct {
	id   string
	dist float64
}

type nodeQueue []queueItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
