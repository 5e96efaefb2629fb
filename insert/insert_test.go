package insert

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/plan"
)

func twoVehicleMeta() *model.Metadata {
	factories := []model.Factory{{FactoryID: "f0", DockNum: 2}, {FactoryID: "f1", DockNum: 2}, {FactoryID: "f2", DockNum: 2}}
	dist := [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}
	tmat := [][]float64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}}
	return model.NewMetadata(factories, dist, tmat)
}

func TestInsert_PicksCheaperOfTwoVehicles(t *testing.T) {
	meta := twoVehicleMeta()
	near := 0
	far := 2
	vehicles := []model.Vehicle{
		{VehicleID: "near", Index: 0, Capacity: 10, CurrentFactory: &near, LeaveTimeAtCurrentFactory: 0},
		{VehicleID: "far", Index: 1, Capacity: 10, CurrentFactory: &far, LeaveTimeAtCurrentFactory: 0},
	}
	p := plan.New(vehicles, meta)

	// Vehicle "near" travels 0 (f0->f0) + 1 (f0->f1); vehicle "far" travels
	// 2 (f2->f0) + 1 (f0->f1).
	items := []model.OrderItem{{ItemID: "i1", OrderID: "o1", Demand: 1, PickupFactory: 0, DeliveryFactory: 1}}
	cfg := Config{Eval: evaluator.Config{DockApproachingTime: 0, Lambda: 0}}

	if err := Insert(p, items, cfg); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if p.Routes[0].Empty() {
		t.Fatalf("expected the nearer vehicle (index 0) to receive the order")
	}
	if !p.Routes[1].Empty() {
		t.Fatalf("expected the farther vehicle (index 1) to remain empty")
	}
}

func TestInsert_InfeasibleWhenCapacityTooSmall(t *testing.T) {
	meta := twoVehicleMeta()
	at := 0
	vehicles := []model.Vehicle{{VehicleID: "v1", Index: 0, Capacity: 1, CurrentFactory: &at}}
	p := plan.New(vehicles, meta)

	items := []model.OrderItem{{ItemID: "i1", OrderID: "o1", Demand: 5, PickupFactory: 1, DeliveryFactory: 2}}
	cfg := Config{Eval: evaluator.Config{DockApproachingTime: 0, Lambda: 0}}

	err := Insert(p, items, cfg)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("err = %v, want ErrInfeasible", err)
	}
}

func TestPartitionByCapacity_SplitsOversizedOrder(t *testing.T) {
	items := []model.OrderItem{
		{ItemID: "i1", Demand: 4}, {ItemID: "i2", Demand: 4}, {ItemID: "i3", Demand: 4},
	}
	got := PartitionByCapacity(items, 5)

	if len(got) != 3 {
		t.Fatalf("got %d packages, want 3: %v", len(got), got)
	}
	for _, pkg := range got {
		if len(pkg) != 1 {
			t.Fatalf("package %v should hold exactly one item at capacity 5", pkg)
		}
	}
}

func TestGroupByOrder_PreservesFirstEncounterOrder(t *testing.T) {
	items := []model.OrderItem{
		{ItemID: "a1", OrderID: "o2"},
		{ItemID: "b1", OrderID: "o1"},
		{ItemID: "a2", OrderID: "o2"},
	}
	groups := GroupByOrder(items)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0][0].OrderID != "o2" || groups[1][0].OrderID != "o1" {
		t.Fatalf("groups out of order: %+v", groups)
	}
	if len(groups[0]) != 2 {
		t.Fatalf("expected order o2 to keep both its items together")
	}
}
