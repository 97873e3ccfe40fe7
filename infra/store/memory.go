package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/neurofleetx/fleetops/core/model"
)

// MemoryStore keeps vehicles in a mutex-guarded map. It is the default
// backend for demos and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]model.Vehicle
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]model.Vehicle)}
}

// NewDemoStore creates a store seeded with the demo fleet around Delhi-NCR.
func NewDemoStore() *MemoryStore {
	s := NewMemoryStore()
	now := time.Now()
	seed := []model.Vehicle{
		{ID: "veh-001", Name: "Tata Ace 01", Type: "Mini Truck", FuelType: "Electric", Status: model.StatusInUse, BatteryPct: 92, Position: model.GeoPoint{Lat: 28.6304, Lng: 77.2177}},
		{ID: "veh-002", Name: "Tata Ace 02", Type: "Mini Truck", FuelType: "Electric", Status: model.StatusIdle, BatteryPct: 78, Position: model.GeoPoint{Lat: 28.6129, Lng: 77.2295}},
		{ID: "veh-003", Name: "Mahindra Treo 01", Type: "Cargo Van", FuelType: "Electric", Status: model.StatusInUse, BatteryPct: 65, Position: model.GeoPoint{Lat: 28.5880, Lng: 77.2580}},
		{ID: "veh-004", Name: "Mahindra Treo 02", Type: "Cargo Van", FuelType: "Electric", Status: model.StatusMaintenance, BatteryPct: 15, Position: model.GeoPoint{Lat: 28.5492, Lng: 77.2526}},
		{ID: "veh-005", Name: "Ashok Leyland Dost", Type: "Pickup", FuelType: "Diesel", Status: model.StatusIdle, BatteryPct: 100, Position: model.GeoPoint{Lat: 28.5700, Lng: 77.3200}},
	}
	for _, v := range seed {
		v.LastUpdate = now
		s.data[v.ID] = v
	}
	return s
}

// LoadAll returns every vehicle ordered by ID.
func (s *MemoryStore) LoadAll(_ context.Context) ([]model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vehicle, 0, len(s.data))
	for _, v := range s.data {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Save inserts or replaces the vehicle record. Last write wins.
func (s *MemoryStore) Save(_ context.Context, v model.Vehicle) error {
	s.mu.Lock()
	s.data[v.ID] = v
	s.mu.Unlock()
	return nil
}
