package dispatch

import (
	"time"

	"github.com/katalvlaran/dpdp-core/bootstrap"
	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/insert"
	"github.com/katalvlaran/dpdp-core/localsearch"
	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/plan"
)

// Result is one round's full output: the working Plan, plus the
// serialized vehicle_id-keyed destination/planned_route boundary form
// callers persist for the next round.
type Result struct {
	Plan          *plan.Plan
	Destinations  map[string]*model.Visit
	PlannedRoutes map[string][]model.Visit
}

// Round runs one full dispatch cycle: Bootstrap reconstructs each
// vehicle's already-committed route prefix, the constructive inserter
// places every remaining order, and local search improves the result
// within cfg.TimeBudget. The returned Plan is always CheckAllVehicles-
// feasible; Round never mutates vehicles or allItems.
func Round(vehicles []model.Vehicle, meta *model.Metadata, allItems []model.OrderItem, cfg Config) (*Result, error) {
	p, unallocated, err := bootstrap.Run(vehicles, meta, allItems)
	if err != nil {
		return nil, err
	}

	if err := insert.Run(p, unallocated, insert.Config{Eval: evalConfig(cfg)}); err != nil {
		return nil, err
	}

	localsearch.Improve(p, localsearch.Config{
		Eval:       evalConfig(cfg),
		Epsilon:    cfg.Epsilon,
		TimeBudget: cfg.TimeBudget,
	})

	destinations, plannedRoutes := p.SerializeAll()
	return &Result{Plan: p, Destinations: destinations, PlannedRoutes: plannedRoutes}, nil
}

func evalConfig(cfg Config) evaluator.Config {
	return evaluator.Config{
		DockApproachingTime: int64(cfg.DockApproachingTime / time.Second),
		Lambda:              cfg.Lambda,
	}
}
