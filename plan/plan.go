// Package plan holds the per-round solution under construction: one
// RouteList per vehicle sharing a single routelist.Arena, plus the
// ConstraintChecker predicates every mutation must leave satisfied.
package plan

import (
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// Plan is the indexed collection of V RouteLists being built or improved
// for one dispatch round, together with the vehicle/metadata it was built
// from.
type Plan struct {
	Arena    *routelist.Arena
	Routes   []*routelist.RouteList // Routes[v] is vehicle v's route
	Vehicles []model.Vehicle        // indexed the same way as Routes
	Meta     *model.Metadata
}

// New allocates a fresh Plan with one empty RouteList per vehicle, sharing
// a single Arena so Steps can move between vehicles during local search.
func New(vehicles []model.Vehicle, meta *model.Metadata) *Plan {
	arena := routelist.NewArena()
	routes := make([]*routelist.RouteList, len(vehicles))
	for i := range routes {
		routes[i] = routelist.NewRouteList(arena)
	}
	return &Plan{Arena: arena, Routes: routes, Vehicles: vehicles, Meta: meta}
}
