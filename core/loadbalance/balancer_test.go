package loadbalance

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/neurofleetx/fleetops/core/model"
)

func fleet(n int) []model.Vehicle {
	vs := make([]model.Vehicle, n)
	for i := range vs {
		vs[i] = model.Vehicle{ID: fmt.Sprintf("veh-%d", i), Name: fmt.Sprintf("Truck %d", i)}
	}
	return vs
}

func taskList(weights ...float64) []model.DeliveryTask {
	ts := make([]model.DeliveryTask, len(weights))
	for i, w := range weights {
		ts[i] = model.DeliveryTask{ID: fmt.Sprintf("task-%d", i), WeightKg: w}
	}
	return ts
}

func TestRoundRobinAssignment(t *testing.T) {
	var b Balancer
	tasks := taskList(10, 20, 30, 40, 50, 60, 70)
	got := b.OptimizeLoad(fleet(3), tasks)
	if len(got) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(got))
	}
	want := [][]string{
		{"task-0", "task-3", "task-6"},
		{"task-1", "task-4"},
		{"task-2", "task-5"},
	}
	for i, a := range got {
		if !reflect.DeepEqual(a.AssignedTaskIDs, want[i]) {
			t.Errorf("vehicle %d tasks = %v, want %v", i, a.AssignedTaskIDs, want[i])
		}
	}

	seen := map[string]int{}
	totalAssigned, totalWeight := 0.0, 0.0
	for _, a := range got {
		totalAssigned += a.TotalLoadKg
		for _, id := range a.AssignedTaskIDs {
			seen[id]++
		}
	}
	for _, task := range tasks {
		if seen[task.ID] != 1 {
			t.Errorf("task %s assigned %d times", task.ID, seen[task.ID])
		}
		totalWeight += task.WeightKg
	}
	if totalAssigned != totalWeight {
		t.Errorf("load sum %v != task weight sum %v", totalAssigned, totalWeight)
	}
}

func TestLoadStatusBoundaries(t *testing.T) {
	var b Balancer
	cases := []struct {
		weight float64
		want   model.LoadStatus
	}{
		{501, model.LoadOverloaded},
		{500, model.LoadBalanced},
		{100, model.LoadBalanced},
		{99.99, model.LoadUnderloaded},
	}
	for _, c := range cases {
		got := b.OptimizeLoad(fleet(1), taskList(c.weight))
		if got[0].Status != c.want {
			t.Errorf("weight %v -> %v, want %v", c.weight, got[0].Status, c.want)
		}
	}
}

func TestStatusRecomputedPerPlacement(t *testing.T) {
	var b Balancer
	// One vehicle accumulating past both thresholds.
	got := b.OptimizeLoad(fleet(1), taskList(50, 100, 400))
	if got[0].Status != model.LoadOverloaded {
		t.Fatalf("final status = %v, want Overloaded", got[0].Status)
	}
	if got[0].TotalLoadKg != 550 {
		t.Fatalf("total = %v, want 550", got[0].TotalLoadKg)
	}
}

func TestEmptyVehicles(t *testing.T) {
	var b Balancer
	got := b.OptimizeLoad(nil, taskList(10, 20, 30))
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no assignments, got %d", len(got))
	}
}

func TestNoTasksLeavesVehiclesBalanced(t *testing.T) {
	var b Balancer
	got := b.OptimizeLoad(fleet(2), nil)
	for _, a := range got {
		if a.Status != model.LoadBalanced || a.TotalLoadKg != 0 || len(a.AssignedTaskIDs) != 0 {
			t.Errorf("unexpected assignment %+v", a)
		}
	}
}

func TestTaskPayloadConversion(t *testing.T) {
	p := TaskPayload{ID: "t1", Lat: 28.6, Lng: 77.2, WeightKg: 12.5, Priority: "High"}
	task := p.Task()
	if task.Priority != model.PriorityHigh {
		t.Errorf("priority = %v", task.Priority)
	}
	if task.Point != (model.GeoPoint{Lat: 28.6, Lng: 77.2}) {
		t.Errorf("point = %+v", task.Point)
	}
}
