package plan

import (
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// CheckDestination reports whether vehicle v's committed destination (if
// any) is still the first Step of its route. A vehicle already en route
// to a factory cannot be redirected mid-leg; its route's first Step must
// stay that factory.
func (p *Plan) CheckDestination(v int) bool {
	vehicle := &p.Vehicles[v]
	if vehicle.Destination == nil {
		return true
	}
	route := p.Routes[v]
	firstH, ok := route.First()
	if !ok {
		return false
	}
	return p.Arena.Step(firstH).Factory == vehicle.Destination.FactoryIndex
}

// CheckCapacity reports whether vehicle v's running load, starting from
// its CarryingItems and accumulating PICKUP/DELIVERY deltas along its
// route in order, never exceeds its Capacity.
func (p *Plan) CheckCapacity(v int) bool {
	vehicle := &p.Vehicles[v]
	route := p.Routes[v]

	load := model.TotalDemand(vehicle.CarryingItems)
	if load > vehicle.Capacity {
		return false
	}
	for _, h := range route.Interior() {
		step := p.Arena.Step(h)
		switch step.Kind {
		case routelist.KindPickup:
			load += model.TotalDemand(step.Items)
		case routelist.KindDelivery:
			load -= model.TotalDemand(step.Items)
		}
		if load > vehicle.Capacity {
			return false
		}
	}
	return true
}

// CheckLIFO reports whether every DELIVERY Step along vehicle v's route
// pops items off the top of the load stack in the exact reverse order
// they were (or will be) loaded: the load stack begins as v's
// CarryingItems (bottom-first) and is pushed/popped by each PICKUP/
// DELIVERY Step encountered along the route.
func (p *Plan) CheckLIFO(v int) bool {
	vehicle := &p.Vehicles[v]
	route := p.Routes[v]

	stack := append([]model.OrderItem(nil), vehicle.CarryingItems...)
	for _, h := range route.Interior() {
		step := p.Arena.Step(h)
		switch step.Kind {
		case routelist.KindPickup:
			stack = append(stack, step.Items...)
		case routelist.KindDelivery:
			if len(stack) < len(step.Items) {
				return false
			}
			for i := 0; i < len(step.Items); i++ {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.ItemID != step.Items[i].ItemID {
					return false
				}
			}
		}
	}
	return len(stack) == 0
}

// CheckAll reports whether vehicle v's route satisfies Destination,
// Capacity and LIFO simultaneously.
func (p *Plan) CheckAll(v int) bool {
	return p.CheckDestination(v) && p.CheckCapacity(v) && p.CheckLIFO(v)
}

// CheckAllVehicles reports whether every vehicle's route satisfies
// CheckAll.
func (p *Plan) CheckAllVehicles() bool {
	for v := range p.Vehicles {
		if !p.CheckAll(v) {
			return false
		}
	}
	return true
}
