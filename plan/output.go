package plan

import (
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// Serialize converts vehicle v's route into the boundary output form: one
// Visit per Step, merging any two adjacent Visits that land on the same
// factory by concatenating their pickup/delivery item lists, then splitting
// the first merged Visit off as the committed destination. destination is
// nil if the route is empty. Its ArriveTime is copied from the round's
// input Destination when the vehicle had one committed, and left nil
// otherwise, matching the inverse of Bootstrap's reconciliation.
func (p *Plan) Serialize(v int) (destination *model.Visit, plannedRoute []model.Visit) {
	route := p.Routes[v]
	var visits []model.Visit
	for _, h := range route.Interior() {
		step := p.Arena.Step(h)
		if n := len(visits); n > 0 && visits[n-1].FactoryIndex == step.Factory {
			mergeStepInto(&visits[n-1], step)
			continue
		}
		visit := model.Visit{FactoryIndex: step.Factory}
		mergeStepInto(&visit, step)
		visits = append(visits, visit)
	}

	if len(visits) == 0 {
		return nil, nil
	}

	destination = &visits[0]
	if incoming := p.Vehicles[v].Destination; incoming != nil {
		destination.ArriveTime = incoming.ArriveTime
	}
	return destination, visits[1:]
}

// SerializeAll runs Serialize for every vehicle, keyed by VehicleID. A
// vehicle whose route is empty is simply absent from destinations and
// maps to a nil plannedRoutes entry.
func (p *Plan) SerializeAll() (destinations map[string]*model.Visit, plannedRoutes map[string][]model.Visit) {
	destinations = make(map[string]*model.Visit, len(p.Vehicles))
	plannedRoutes = make(map[string][]model.Visit, len(p.Vehicles))
	for v := range p.Vehicles {
		dest, route := p.Serialize(v)
		id := p.Vehicles[v].VehicleID
		if dest != nil {
			destinations[id] = dest
		}
		plannedRoutes[id] = route
	}
	return destinations, plannedRoutes
}

func mergeStepInto(visit *model.Visit, step *routelist.Step) {
	switch step.Kind {
	case routelist.KindPickup:
		visit.PickupItems = append(visit.PickupItems, step.Items...)
	case routelist.KindDelivery:
		visit.DeliveryItems = append(visit.DeliveryItems, step.Items...)
	}
}
