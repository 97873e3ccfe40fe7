package model

// TaskPriority marks a delivery task as high priority or not. The current
// balancing policy accepts but does not use it.
type TaskPriority int

const (
	PriorityNormal TaskPriority = iota
	PriorityHigh
)

func (p TaskPriority) String() string {
	if p == PriorityHigh {
		return "High"
	}
	return "Normal"
}

// DeliveryTask is a single drop-off to be assigned to a vehicle.
type DeliveryTask struct {
	ID       string
	Point    GeoPoint
	WeightKg float64
	Priority TaskPriority
}

// LoadStatus classifies the total weight carried by one vehicle.
type LoadStatus int

const (
	LoadBalanced LoadStatus = iota
	LoadUnderloaded
	LoadOverloaded
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOverloaded:
		return "Overloaded"
	case LoadUnderloaded:
		return "Underloaded"
	default:
		return "Balanced"
	}
}

// LoadAssignment is the set of tasks attributed to one vehicle by the load
// balancer. TotalLoadKg always equals the sum of the assigned task weights.
type LoadAssignment struct {
	VehicleID       string
	VehicleName     string
	AssignedTaskIDs []string
	TotalLoadKg     float64
	Status          LoadStatus
}
