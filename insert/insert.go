// Package insert implements the constructive phase of a dispatch round:
// partitioning each unallocated order into capacity-bounded packages and
// exhaustively searching every (vehicle, pickup anchor, delivery anchor)
// triple for the cheapest feasible insertion, committing the best one
// found before moving to the next package.
package insert

import (
	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// Config bundles the evaluator parameters FindBestInsert needs to score
// each trial insertion.
type Config struct {
	Eval evaluator.Config
}

// GroupByOrder groups items sharing OrderID into contiguous slices,
// preserving the order each OrderID first appears in items.
func GroupByOrder(items []model.OrderItem) [][]model.OrderItem {
	var order []string
	groups := make(map[string][]model.OrderItem)
	for _, item := range items {
		if _, ok := groups[item.OrderID]; !ok {
			order = append(order, item.OrderID)
		}
		groups[item.OrderID] = append(groups[item.OrderID], item)
	}
	out := make([][]model.OrderItem, len(order))
	for i, id := range order {
		out[i] = groups[id]
	}
	return out
}

// PartitionByCapacity splits one order's items into the fewest contiguous
// packages such that no package's total demand exceeds capacity. Items
// are never reordered.
func PartitionByCapacity(items []model.OrderItem, capacity float64) [][]model.OrderItem {
	var out [][]model.OrderItem
	var cur []model.OrderItem
	var curDemand float64
	for _, item := range items {
		if len(cur) > 0 && curDemand+item.Demand > capacity {
			out = append(out, cur)
			cur = nil
			curDemand = 0
		}
		cur = append(cur, item)
		curDemand += item.Demand
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func maxCapacity(vehicles []model.Vehicle) float64 {
	var max float64
	for _, v := range vehicles {
		if v.Capacity > max {
			max = v.Capacity
		}
	}
	return max
}

// Run partitions every order present in unallocated by the fleet's
// largest vehicle capacity and inserts each resulting package in turn.
// Orders are processed in first-encounter order; within one order,
// packages are inserted in the order PartitionByCapacity produced them.
func Run(p *plan.Plan, unallocated []model.OrderItem, cfg Config) error {
	for _, orderItems := range GroupByOrder(unallocated) {
		for _, pkg := range PartitionByCapacity(orderItems, maxCapacity(p.Vehicles)) {
			if err := Insert(p, pkg, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Insert allocates one PICKUP/DELIVERY Step pair for items (all sharing
// one OrderID, PickupFactory and DeliveryFactory), finds its cheapest
// feasible placement with BestInsertion, and commits it.
//
// Returns model.ErrMalformedInput if items is empty or its items disagree
// on OrderID, PickupFactory or DeliveryFactory, and ErrInfeasible if no
// triple keeps every vehicle's ConstraintChecker satisfied.
func Insert(p *plan.Plan, items []model.OrderItem, cfg Config) error {
	if len(items) == 0 {
		return model.ErrMalformedInput
	}
	pickupFactory := items[0].PickupFactory
	deliveryFactory := items[0].DeliveryFactory
	for _, item := range items[1:] {
		if item.OrderID != items[0].OrderID || item.PickupFactory != pickupFactory || item.DeliveryFactory != deliveryFactory {
			return model.ErrMalformedInput
		}
	}
	deliveryItems := model.ReverseItems(items)

	pickupH := p.Arena.NewStep(routelist.KindPickup, pickupFactory, items)
	deliveryH := p.Arena.NewStep(routelist.KindDelivery, deliveryFactory, deliveryItems)
	p.Arena.SetPartner(pickupH, deliveryH)

	placement, err := BestInsertion(p, pickupH, deliveryH, cfg.Eval)
	if err != nil {
		return err
	}
	if !placement.Found {
		return ErrInfeasible
	}

	route := p.Routes[placement.Vehicle]
	if err := route.InsertAfter(pickupH, placement.AnchorPickup); err != nil {
		return err
	}
	return route.InsertAfter(deliveryH, placement.AnchorDelivery)
}

// Placement is the cheapest feasible (vehicle, pickup anchor, delivery
// anchor) triple BestInsertion found for a detached PICKUP/DELIVERY pair.
type Placement struct {
	Vehicle                      int
	AnchorPickup, AnchorDelivery routelist.StepHandle
	Score                        float64
	Found                        bool
}

// BestInsertion exhaustively tries every (vehicle, pickup anchor,
// delivery anchor) triple for placing the already-allocated, currently
// detached pickupH/deliveryH pair, returning the cheapest feasible
// placement without committing it (both Steps are left detached).
// Delivery anchors range over the pickup Step itself and every Step
// after it, so the pair may end up adjacent or arbitrarily far apart
// within the winning vehicle's route. Ties are broken by first
// encounter: vehicles are tried in index order, pickup anchors in route
// order, delivery anchors in route order.
//
// It is the shared search used both by Insert (placing a brand-new
// couple) and by local-search relocation moves (replacing an existing
// couple after removing it from its old position).
func BestInsertion(p *plan.Plan, pickupH, deliveryH routelist.StepHandle, cfg evaluator.Config) (Placement, error) {
	var best Placement

	for v := range p.Vehicles {
		route := p.Routes[v]
		for _, anchorP := range route.NodesExceptEnd() {
			if err := route.InsertAfter(pickupH, anchorP); err != nil {
				continue
			}

			deliveryAnchors := append([]routelist.StepHandle{pickupH}, route.Following(pickupH)...)
			for _, anchorD := range deliveryAnchors {
				if err := route.InsertAfter(deliveryH, anchorD); err != nil {
					continue
				}

				if p.CheckAll(v) {
					score := evaluator.Evaluate(p, cfg)
					if !best.Found || score < best.Score {
						best = Placement{Vehicle: v, AnchorPickup: anchorP, AnchorDelivery: anchorD, Score: score, Found: true}
					}
				}

				if err := route.Remove(deliveryH); err != nil {
					return Placement{}, err
				}
			}

			if err := route.Remove(pickupH); err != nil {
				return Placement{}, err
			}
		}
	}

	return best, nil
}
