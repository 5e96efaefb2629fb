// Package bootstrap reconstructs a Plan's already-committed prefix from
// each vehicle's prior-round PlannedRoute before a new round's
// constructive insertion and local search run. Every Step it produces is
// pinned: the vehicle has already committed to that part of its route,
// and no later phase may move or remove it.
package bootstrap

import (
	"log"

	"github.com/katalvlaran/dpdp-core/insert"
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// Run reconciles each vehicle's Destination against its PlannedRoute,
// replays the surviving Visits into pinned Steps, and returns the
// resulting Plan together with the subset of allItems not already
// covered by a pinned Step — the input to insert.Run for this round.
func Run(vehicles []model.Vehicle, meta *model.Metadata, allItems []model.OrderItem) (*plan.Plan, []model.OrderItem, error) {
	reconciled := make([]model.Vehicle, len(vehicles))
	copy(reconciled, vehicles)
	for i := range reconciled {
		reconcileDestination(&reconciled[i])
	}

	p := plan.New(reconciled, meta)
	allocated := make(map[string]bool)

	for v := range reconciled {
		if err := replayVehicle(p, v, reconciled[v].PlannedRoute, allocated); err != nil {
			return nil, nil, err
		}
	}

	var unallocated []model.OrderItem
	for _, item := range allItems {
		if !allocated[item.ItemID] {
			unallocated = append(unallocated, item)
		}
	}

	return p, unallocated, nil
}

// reconcileDestination trims v's PlannedRoute to start at the first
// Visit matching v's committed Destination factory, discarding the
// anomaly (and logging it) if no Visit matches. A vehicle with no
// Destination, or an empty PlannedRoute, is left untouched.
func reconcileDestination(v *model.Vehicle) {
	if v.Destination == nil || len(v.PlannedRoute) == 0 {
		return
	}
	for i, visit := range v.PlannedRoute {
		if visit.FactoryIndex == v.Destination.FactoryIndex {
			v.PlannedRoute = v.PlannedRoute[i:]
			return
		}
	}
	log.Printf("bootstrap: vehicle %s: destination factory %d not found in planned route, discarding route", v.VehicleID, v.Destination.FactoryIndex)
	v.PlannedRoute = nil
}

// replayVehicle appends one Step per order-id group of each Visit's
// DeliveryItems then PickupItems, in that order, pairs each DELIVERY with
// the top of that order's still-open PICKUP stack (if that pickup was
// itself replayed earlier in this route — a DELIVERY with no match is
// cargo the vehicle already loaded in a prior round), pins every Step
// produced, and records every item consumed in allocated. Open PICKUPs are
// kept as a per-order stack, not a single handle, because a capacity-split
// order can have more than one independent pickup package in flight at
// once.
func replayVehicle(p *plan.Plan, v int, visits []model.Visit, allocated map[string]bool) error {
	route := p.Routes[v]
	openPickups := make(map[string][]routelist.StepHandle)
	tail := route.Begin

	for _, visit := range visits {
		for _, group := range insert.GroupByOrder(visit.DeliveryItems) {
			h := p.Arena.NewStep(routelist.KindDelivery, visit.FactoryIndex, group)
			if err := route.InsertAfter(h, tail); err != nil {
				return err
			}
			tail = h
			markAllocated(allocated, group)

			orderID := group[0].OrderID
			if stack := openPickups[orderID]; len(stack) > 0 {
				pickupH := stack[len(stack)-1]
				p.Arena.SetPartner(pickupH, h)
				openPickups[orderID] = stack[:len(stack)-1]
			}
		}
		for _, group := range insert.GroupByOrder(visit.PickupItems) {
			h := p.Arena.NewStep(routelist.KindPickup, visit.FactoryIndex, group)
			if err := route.InsertAfter(h, tail); err != nil {
				return err
			}
			tail = h
			markAllocated(allocated, group)
			orderID := group[0].OrderID
			openPickups[orderID] = append(openPickups[orderID], h)
		}
	}

	for _, stack := range openPickups {
		if len(stack) > 0 {
			return ErrUnpaired
		}
	}

	for _, h := range route.Interior() {
		p.Arena.Step(h).Pinned = true
	}
	return nil
}

func markAllocated(allocated map[string]bool, items []model.OrderItem) {
	for _, item := range items {
		allocated[item.ItemID] = true
	}
}
