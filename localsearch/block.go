package localsearch

import (
	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/plan"
	"github.com/katalvlaran/dpdp-core/routelist"
)

// tryBlockRelocation finds the single cheapest repositioning of one
// existing couple's whole span (the couple's PICKUP Step, its DELIVERY
// Step, and everything spliced between them — any couples nested inside
// move along with it) to a new anchor, possibly in a different vehicle's
// route, and applies it if it improves the score by more than
// cfg.Epsilon. Unlike couple-relocation, the span is moved as a single
// opaque unit: its interior order never changes.
func tryBlockRelocation(p *plan.Plan, cfg Config, current float64) (bool, float64) {
	type candidate struct {
		ref                coupleRef
		origPred           routelist.StepHandle
		destVehicle        int
		anchor             routelist.StepHandle
		score              float64
	}
	var best *candidate

	for _, c := range collectCouples(p) {
		origRoute := p.Routes[c.vehicle]
		pred := p.Arena.Pred(c.pickup)

		if err := origRoute.RemoveSegment(c.pickup, c.delivery); err != nil {
			continue
		}

		for v, destRoute := range p.Routes {
			for _, anchor := range destRoute.NodesExceptEnd() {
				if err := destRoute.InsertSegmentAfter(c.pickup, c.delivery, anchor); err != nil {
					continue
				}
				if p.CheckAll(c.vehicle) && p.CheckAll(v) {
					score := evaluator.Evaluate(p, cfg.Eval)
					if best == nil || score < best.score {
						best = &candidate{ref: c, origPred: pred, destVehicle: v, anchor: anchor, score: score}
					}
				}
				_ = destRoute.RemoveSegment(c.pickup, c.delivery)
			}
		}

		_ = origRoute.InsertSegmentAfter(c.pickup, c.delivery, pred)
	}

	if best == nil || !accept(cfg, current, best.score) {
		return false, current
	}

	origRoute := p.Routes[best.ref.vehicle]
	_ = origRoute.RemoveSegment(best.ref.pickup, best.ref.delivery)
	destRoute := p.Routes[best.destVehicle]
	_ = destRoute.InsertSegmentAfter(best.ref.pickup, best.ref.delivery, best.anchor)

	return true, best.score
}

// collectAtomicCouples returns every unpinned couple whose DELIVERY Step
// immediately follows its PICKUP Step, i.e. couples with nothing nested
// between them. Block-exchange is restricted to these: a block with
// nested couples cannot be swapped with another block without first
// proving the two spans never overlap, which atomic blocks guarantee for
// free.
func collectAtomicCouples(p *plan.Plan) []coupleRef {
	var out []coupleRef
	for _, c := range collectCouples(p) {
		if p.Arena.Succ(c.pickup) == c.delivery {
			out = append(out, c)
		}
	}
	return out
}

// tryBlockExchange finds the single cheapest exchange of position
// between two distinct, non-adjacent atomic blocks (see
// collectAtomicCouples) and applies it if it improves the score by more
// than cfg.Epsilon.
func tryBlockExchange(p *plan.Plan, cfg Config, current float64) (bool, float64) {
	blocks := collectAtomicCouples(p)

	bestI, bestJ := -1, -1
	var bestPred1, bestPred2 routelist.StepHandle
	bestScore := current
	found := false

	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			b1, b2 := blocks[i], blocks[j]
			pred1 := p.Arena.Pred(b1.pickup)
			pred2 := p.Arena.Pred(b2.pickup)

			// Skip immediately adjacent blocks: removing one would
			// invalidate the other's captured anchor.
			if pred1 == b2.delivery || pred2 == b1.delivery {
				continue
			}

			route1 := p.Routes[b1.vehicle]
			route2 := p.Routes[b2.vehicle]

			if err := route1.RemoveSegment(b1.pickup, b1.delivery); err != nil {
				continue
			}
			if err := route2.RemoveSegment(b2.pickup, b2.delivery); err != nil {
				_ = route1.InsertSegmentAfter(b1.pickup, b1.delivery, pred1)
				continue
			}

			err1 := route2.InsertSegmentAfter(b1.pickup, b1.delivery, pred2)
			err2 := route1.InsertSegmentAfter(b2.pickup, b2.delivery, pred1)

			if err1 == nil && err2 == nil && p.CheckAll(b1.vehicle) && p.CheckAll(b2.vehicle) {
				score := evaluator.Evaluate(p, cfg.Eval)
				if !found || score < bestScore {
					bestI, bestJ, bestPred1, bestPred2, bestScore, found = i, j, pred1, pred2, score, true
				}
			}

			if err2 == nil {
				_ = route1.RemoveSegment(b2.pickup, b2.delivery)
			}
			if err1 == nil {
				_ = route2.RemoveSegment(b1.pickup, b1.delivery)
			}
			_ = route1.InsertSegmentAfter(b1.pickup, b1.delivery, pred1)
			_ = route2.InsertSegmentAfter(b2.pickup, b2.delivery, pred2)
		}
	}

	if !found || !accept(cfg, current, bestScore) {
		return false, current
	}

	b1, b2 := blocks[bestI], blocks[bestJ]
	route1 := p.Routes[b1.vehicle]
	route2 := p.Routes[b2.vehicle]
	_ = route1.RemoveSegment(b1.pickup, b1.delivery)
	_ = route2.RemoveSegment(b2.pickup, b2.delivery)
	_ = route2.InsertSegmentAfter(b1.pickup, b1.delivery, bestPred2)
	_ = route1.InsertSegmentAfter(b2.pickup, b2.delivery, bestPred1)

	return true, bestScore
}
