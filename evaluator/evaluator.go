// Package evaluator computes the scalar objective for a plan.Plan by
// replaying every vehicle's route as a discrete-event simulation: ARRIVAL
// and DEPARTURE events ordered on a min-heap, per-factory dock queues that
// gate how long a vehicle waits for a free dock, and running totals of
// distance traveled and order tardiness.
package evaluator

import (
	"container/heap"

	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// Config holds the two external parameters the simulation needs beyond
// the Plan itself: how long a vehicle idles at a dock before starting
// load/unload work, and the weight applied to accumulated tardiness in
// the objective.
type Config struct {
	// DockApproachingTime is the fixed seconds a vehicle spends
	// maneuvering into a dock before loading/unloading can begin.
	DockApproachingTime int64
	// Lambda weights tardiness (seconds) against distance in the
	// objective: score = total_distance/V + (Lambda/3600)*total_tardiness.
	Lambda float64
}

// Evaluate runs the discrete-event simulation over every vehicle's route
// in p and returns the objective score. It never mutates p and never
// fails: a Plan that violates ConstraintChecker invariants produces an
// undefined but non-panicking score, since Evaluate is only ever called
// on plans the caller has already constructed to satisfy them.
func Evaluate(p *plan.Plan, cfg Config) float64 {
	meta := p.Meta
	dockQueues := make([][]dockEntry, len(meta.Factories))

	q := &eventQueue{}
	heap.Init(q)
	seq := 0

	for v := range p.Vehicles {
		vehicle := &p.Vehicles[v]
		route := p.Routes[v]

		switch {
		case vehicle.CurrentFactory != nil:
			factoryIdx := *vehicle.CurrentFactory
			depTime := vehicle.LeaveTimeAtCurrentFactory
			if depTime > vehicle.GPSUpdateTime {
				dockQueues[factoryIdx] = insertDock(dockQueues[factoryIdx], dockEntry{departure: depTime, vehicle: v})
			}
			heap.Push(q, event{time: depTime, seq: seq, kind: eventDeparture, vehicle: v, factory: factoryIdx, step: route.Begin})
			seq++
		case vehicle.Destination != nil:
			firstH, ok := route.First()
			if !ok {
				continue
			}
			arr := *vehicle.Destination.ArriveTime
			heap.Push(q, event{time: arr, seq: seq, kind: eventArrival, vehicle: v, factory: vehicle.Destination.FactoryIndex, step: firstH})
			seq++
		default:
			// Neither at a factory nor en route to one: nothing to simulate.
		}
	}

	var totalDistance float64
	orderTardiness := make(map[string]int64)

	for q.Len() > 0 {
		ev := heap.Pop(q).(event)
		route := p.Routes[ev.vehicle]
		vehicle := &p.Vehicles[ev.vehicle]

		switch ev.kind {
		case eventDeparture:
			dockQueues[ev.factory] = removeDockEntry(dockQueues[ev.factory], ev.vehicle)
			succH := p.Arena.Succ(ev.step)
			if succH == route.End {
				continue
			}
			var fromFactory int
			if ev.step == route.Begin {
				fromFactory = *vehicle.CurrentFactory
			} else {
				fromFactory = p.Arena.Step(ev.step).Factory
			}
			toFactory := p.Arena.Step(succH).Factory
			arr := ev.time + meta.TravelTime(fromFactory, toFactory)
			heap.Push(q, event{time: arr, seq: seq, kind: eventArrival, vehicle: ev.vehicle, factory: toFactory, step: succH})
			seq++

		case eventArrival:
			node := ev.step
			firstH, _ := route.First()
			switch {
			case node == firstH && vehicle.CurrentFactory != nil:
				totalDistance += meta.Distance(*vehicle.CurrentFactory, p.Arena.Step(node).Factory)
			case node != firstH:
				predH := p.Arena.Pred(node)
				totalDistance += meta.Distance(p.Arena.Step(predH).Factory, p.Arena.Step(node).Factory)
			}

			accumulateTardiness(p, route, node, ev.time, orderTardiness)

			factoryIdx := p.Arena.Step(node).Factory
			dockNum := meta.Factories[factoryIdx].DockNum
			dq := dockQueues[factoryIdx]
			var waiting int64
			if len(dq) >= dockNum {
				waiting = dq[len(dq)-dockNum].departure - ev.time
				if waiting < 0 {
					waiting = 0
				}
			}

			lastOfRun, loadUnload := runServiceTime(p, route, node)
			depTime := ev.time + waiting + cfg.DockApproachingTime + loadUnload
			dockQueues[factoryIdx] = insertDock(dockQueues[factoryIdx], dockEntry{departure: depTime, vehicle: ev.vehicle})
			heap.Push(q, event{time: depTime, seq: seq, kind: eventDeparture, vehicle: ev.vehicle, factory: factoryIdx, step: lastOfRun})
			seq++
		}
	}

	var totalTardiness int64
	for _, t := range orderTardiness {
		totalTardiness += t
	}

	vehicleNum := float64(len(p.Vehicles))
	return totalDistance/vehicleNum + (cfg.Lambda/3600.0)*float64(totalTardiness)
}

// accumulateTardiness walks the contiguous run of Steps at the same
// factory as node, starting at node, and records the worst (maximum)
// tardiness seen per order so far. An order with items split across two
// visits to the same vehicle only keeps the larger delay.
func accumulateTardiness(p *plan.Plan, route *routelist.RouteList, node routelist.StepHandle, arrival int64, out map[string]int64) {
	cur := node
	for {
		step := p.Arena.Step(cur)
		if step.Kind == routelist.KindDelivery {
			for _, item := range step.Items {
				t := arrival - item.CommittedCompletionTime
				if t < 0 {
					t = 0
				}
				if prev, ok := out[item.OrderID]; !ok || t > prev {
					out[item.OrderID] = t
				}
			}
		}
		succH := p.Arena.Succ(cur)
		if succH == route.End || p.Arena.Step(succH).Factory != step.Factory {
			return
		}
		cur = succH
	}
}

// runServiceTime walks the contiguous run of Steps at the same factory as
// node, starting at node, summing each Step's load or unload time. It
// returns the last Step of that run (where the vehicle's subsequent
// DEPARTURE event is anchored) and the accumulated service seconds.
func runServiceTime(p *plan.Plan, route *routelist.RouteList, node routelist.StepHandle) (routelist.StepHandle, int64) {
	var total int64
	cur := node
	for {
		step := p.Arena.Step(cur)
		total += serviceSeconds(step)
		succH := p.Arena.Succ(cur)
		if succH == route.End || p.Arena.Step(succH).Factory != step.Factory {
			return cur, total
		}
		cur = succH
	}
}

func serviceSeconds(step *routelist.Step) int64 {
	var total int64
	switch step.Kind {
	case routelist.KindPickup:
		for _, item := range step.Items {
			total += item.LoadTime
		}
	case routelist.KindDelivery:
		for _, item := range step.Items {
			total += item.UnloadTime
		}
	}
	return total
}
