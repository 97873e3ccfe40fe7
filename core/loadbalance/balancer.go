package loadbalance

import "github.com/neurofleetx/fleetops/core/model"

// Weight thresholds classifying a vehicle's total load.
const (
	overloadedAboveKg  = 500
	underloadedBelowKg = 100
)

// LoadRequest mirrors the payload accepted by the load optimization API.
type LoadRequest struct {
	Tasks []TaskPayload `json:"tasks"`
}

// TaskPayload is one delivery task as submitted by the caller.
type TaskPayload struct {
	ID       string  `json:"id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	WeightKg float64 `json:"weight"`
	Priority string  `json:"priority"`
}

// Task converts the payload into the domain task.
func (t TaskPayload) Task() model.DeliveryTask {
	prio := model.PriorityNormal
	if t.Priority == "High" {
		prio = model.PriorityHigh
	}
	return model.DeliveryTask{
		ID:       t.ID,
		Point:    model.GeoPoint{Lat: t.Lat, Lng: t.Lng},
		WeightKg: t.WeightKg,
		Priority: prio,
	}
}

// Balancer distributes delivery tasks across a vehicle list. It is stateless
// and safe for concurrent use.
//
// The policy is strict round-robin in input order. Task priority and vehicle
// capacity are accepted but deliberately ignored; changing that requires a
// policy revision, not a quiet fix.
type Balancer struct{}

// OptimizeLoad returns one assignment per vehicle, in the given vehicle
// order. An empty vehicle list yields an empty result regardless of tasks.
func (Balancer) OptimizeLoad(vehicles []model.Vehicle, tasks []model.DeliveryTask) []model.LoadAssignment {
	assignments := make([]model.LoadAssignment, 0, len(vehicles))
	if len(vehicles) == 0 {
		return assignments
	}
	for _, v := range vehicles {
		assignments = append(assignments, model.LoadAssignment{
			VehicleID:       v.ID,
			VehicleName:     v.Name,
			AssignedTaskIDs: []string{},
			Status:          model.LoadBalanced,
		})
	}

	idx := 0
	for _, task := range tasks {
		if idx >= len(assignments) {
			idx = 0
		}
		a := &assignments[idx]
		a.AssignedTaskIDs = append(a.AssignedTaskIDs, task.ID)
		a.TotalLoadKg += task.WeightKg
		a.Status = classify(a.TotalLoadKg)
		idx++
	}
	return assignments
}

func classify(totalKg float64) model.LoadStatus {
	switch {
	case totalKg > overloadedAboveKg:
		return model.LoadOverloaded
	case totalKg < underloadedBelowKg:
		return model.LoadUnderloaded
	default:
		return model.LoadBalanced
	}
}
