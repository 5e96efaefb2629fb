package localsearch

import (
	"testing"
	"time"

	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

func lineMeta(n int) *model.Metadata {
	factories := make([]model.Factory, n)
	dist := make([][]float64, n)
	tmat := make([][]float64, n)
	for i := range factories {
		factories[i] = model.Factory{FactoryID: string(rune('a' + i)), DockNum: n}
		dist[i] = make([]float64, n)
		tmat[i] = make([]float64, n)
		for j := range factories {
			d := float64(i - j)
			if d < 0 {
				d = -d
			}
			dist[i][j] = d
			tmat[i][j] = d
		}
	}
	return model.NewMetadata(factories, dist, tmat)
}

// TestImprove_RelocationMovesOrderToCheaperVehicle builds a plan where
// order o1 (factory 0 -> factory 1) starts, unpinned, on the route of the
// far vehicle (at factory 4) while a closer vehicle sits idle at factory 0;
// local search should relocate it there and shrink the objective.
// Block-relocation runs first in the descent order and makes the move.
func TestImprove_RelocationMovesOrderToCheaperVehicle(t *testing.T) {
	meta := lineMeta(5)
	far, near := 4, 0
	vehicles := []model.Vehicle{
		{VehicleID: "far", Index: 0, Capacity: 10, CurrentFactory: &far},
		{VehicleID: "near", Index: 1, Capacity: 10, CurrentFactory: &near},
	}
	p := plan.New(vehicles, meta)

	item := model.OrderItem{ItemID: "i1", OrderID: "o1", Demand: 1, PickupFactory: 0, DeliveryFactory: 1}
	route := p.Routes[0]
	pickup := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item})
	delivery := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item})
	p.Arena.SetPartner(pickup, delivery)
	if err := route.InsertAfter(pickup, route.Begin); err != nil {
		t.Fatal(err)
	}
	if err := route.InsertAfter(delivery, pickup); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Eval: evaluator.Config{DockApproachingTime: 0, Lambda: 0}, Epsilon: 1e-6, TimeBudget: time.Second}
	before := evaluator.Evaluate(p, cfg.Eval)

	after := Improve(p, cfg)

	if after > before+cfg.Epsilon {
		t.Fatalf("Improve made the plan worse: before=%v after=%v", before, after)
	}
	if p.Routes[1].Empty() {
		t.Fatalf("expected relocation to move the order onto the nearer vehicle")
	}
}

func TestImprove_NoMoveOnAlreadyOptimalPlan(t *testing.T) {
	meta := lineMeta(2)
	at := 0
	vehicles := []model.Vehicle{{VehicleID: "v1", Index: 0, Capacity: 10, CurrentFactory: &at}}
	p := plan.New(vehicles, meta)

	cfg := Config{Eval: evaluator.Config{}, Epsilon: 1e-6, TimeBudget: time.Second}
	score := Improve(p, cfg)
	if score != 0 {
		t.Fatalf("score = %v, want 0 for an empty fleet-wide plan", score)
	}
}

func TestSwapCoupleContents_IsSelfInverse(t *testing.T) {
	arena := routelist.NewArena()
	p1 := arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{{ItemID: "a"}})
	d1 := arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{{ItemID: "a"}})
	p2 := arena.NewStep(routelist.KindPickup, 2, []model.OrderItem{{ItemID: "b"}})
	d2 := arena.NewStep(routelist.KindDelivery, 3, []model.OrderItem{{ItemID: "b"}})

	swapCoupleContents(arena, p1, d1, p2, d2)
	swapCoupleContents(arena, p1, d1, p2, d2)

	if arena.Step(p1).Items[0].ItemID != "a" || arena.Step(p2).Items[0].ItemID != "b" {
		t.Fatalf("swapCoupleContents is not self-inverse")
	}
}
