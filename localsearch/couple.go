package localsearch

import (
	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/insert"
	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// coupleRef identifies one unpinned PICKUP/DELIVERY pair and the vehicle
// whose route currently holds it.
type coupleRef struct {
	vehicle         int
	pickup, delivery routelist.StepHandle
}

// collectCouples enumerates every unpinned couple across the whole plan,
// in (vehicle index, route position) order, giving a deterministic
// enumeration for tie-breaking.
func collectCouples(p *plan.Plan) []coupleRef {
	var out []coupleRef
	for v, route := range p.Routes {
		for _, h := range route.Interior() {
			step := p.Arena.Step(h)
			if step.Kind == routelist.KindPickup && !step.Pinned {
				out = append(out, coupleRef{vehicle: v, pickup: h, delivery: step.Partner})
			}
		}
	}
	return out
}

// tryCoupleRelocation finds the single cheapest repositioning of one
// existing couple (removed from its current slot, then reinserted
// anywhere via insert.BestInsertion, possibly in a different vehicle's
// route) and applies it if it improves the score by more than
// cfg.Epsilon.
func tryCoupleRelocation(p *plan.Plan, cfg Config, current float64) (bool, float64) {
	type candidate struct {
		ref       coupleRef
		predP     routelist.StepHandle
		predD     routelist.StepHandle
		placement insert.Placement
	}
	var best *candidate

	for _, c := range collectCouples(p) {
		route := p.Routes[c.vehicle]
		predP := p.Arena.Pred(c.pickup)
		predD := p.Arena.Pred(c.delivery)

		if err := route.Remove(c.pickup); err != nil {
			continue
		}
		if err := route.Remove(c.delivery); err != nil {
			_ = route.InsertAfter(c.pickup, predP)
			continue
		}

		placement, err := insert.BestInsertion(p, c.pickup, c.delivery, cfg.Eval)

		_ = route.InsertAfter(c.pickup, predP)
		_ = route.InsertAfter(c.delivery, predD)

		if err != nil || !placement.Found {
			continue
		}
		if best == nil || placement.Score < best.placement.Score {
			best = &candidate{ref: c, predP: predP, predD: predD, placement: placement}
		}
	}

	if best == nil || !accept(cfg, current, best.placement.Score) {
		return false, current
	}

	origRoute := p.Routes[best.ref.vehicle]
	_ = origRoute.Remove(best.ref.pickup)
	_ = origRoute.Remove(best.ref.delivery)

	destRoute := p.Routes[best.placement.Vehicle]
	_ = destRoute.InsertAfter(best.ref.pickup, best.placement.AnchorPickup)
	_ = destRoute.InsertAfter(best.ref.delivery, best.placement.AnchorDelivery)

	return true, best.placement.Score
}

// swapCoupleContents exchanges the Items and Factory of two PICKUP Steps,
// and of their two DELIVERY partners, leaving every Step's position and
// Partner link untouched — the two orders simply trade which pair of
// slots they occupy. Calling it twice with the same arguments is the
// identity (a true undo).
func swapCoupleContents(a *routelist.Arena, p1, d1, p2, d2 routelist.StepHandle) {
	s1, s2 := a.Step(p1), a.Step(p2)
	s1.Items, s2.Items = s2.Items, s1.Items
	s1.Factory, s2.Factory = s2.Factory, s1.Factory

	t1, t2 := a.Step(d1), a.Step(d2)
	t1.Items, t2.Items = t2.Items, t1.Items
	t1.Factory, t2.Factory = t2.Factory, t1.Factory
}

// tryCoupleExchange finds the single cheapest exchange of cargo between
// two existing couples' slots (see swapCoupleContents) and applies it if
// it improves the score by more than cfg.Epsilon. Pairs are tried in
// (i, j) order with i < j over collectCouples' deterministic enumeration,
// so a couple is never paired with itself and each unordered pair is
// tried exactly once.
func tryCoupleExchange(p *plan.Plan, cfg Config, current float64) (bool, float64) {
	couples := collectCouples(p)

	bestI, bestJ, bestScore := -1, -1, current
	found := false

	for i := 0; i < len(couples); i++ {
		for j := i + 1; j < len(couples); j++ {
			c1, c2 := couples[i], couples[j]
			swapCoupleContents(p.Arena, c1.pickup, c1.delivery, c2.pickup, c2.delivery)

			if p.CheckAll(c1.vehicle) && p.CheckAll(c2.vehicle) {
				score := evaluator.Evaluate(p, cfg.Eval)
				if !found || score < bestScore {
					bestI, bestJ, bestScore, found = i, j, score, true
				}
			}

			swapCoupleContents(p.Arena, c1.pickup, c1.delivery, c2.pickup, c2.delivery)
		}
	}

	if !found || !accept(cfg, current, bestScore) {
		return false, current
	}

	c1, c2 := couples[bestI], couples[bestJ]
	swapCoupleContents(p.Arena, c1.pickup, c1.delivery, c2.pickup, c2.delivery)
	return true, bestScore
}
