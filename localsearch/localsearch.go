// Package localsearch improves a feasible plan.Plan via four
// neighborhoods (block-relocation, couple-relocation, block-exchange,
// couple-exchange), descending in a fixed preference order until none of
// them can find an improving move or the wall-clock budget runs out.
// Pinned Steps (produced by Bootstrap from a vehicle's committed
// destination) are never moved by any neighborhood.
package localsearch

import (
	"time"

	"github.com/katalvlaran/dpdp-core/evaluator"
	"github.com/katalvlaran/dpdp-core/plan"
)

// Config bundles the evaluator parameters and descent-loop tuning
// Improve needs.
type Config struct {
	Eval      evaluator.Config
	Epsilon   float64       // a move must improve the score by more than this to be accepted
	TimeBudget time.Duration // 0 means unlimited
}

type neighborhood func(p *plan.Plan, cfg Config, current float64) (bool, float64)

// Improve repeatedly applies the best move found by each neighborhood, in
// the fixed order block-relocation, couple-relocation, block-exchange,
// couple-exchange, restarting from the top of that order after every
// accepted move. It returns once a full pass finds no improving move, or
// once cfg.TimeBudget has elapsed — running out of budget is normal
// termination, not an error.
func Improve(p *plan.Plan, cfg Config) float64 {
	var deadline time.Time
	if cfg.TimeBudget > 0 {
		deadline = time.Now().Add(cfg.TimeBudget)
	}

	score := evaluator.Evaluate(p, cfg.Eval)
	neighborhoods := []neighborhood{tryBlockRelocation, tryCoupleRelocation, tryBlockExchange, tryCoupleExchange}

	for {
		improvedThisPass := false
		for _, nb := range neighborhoods {
			if !deadline.IsZero() && time.Now().After(deadline) {
				return score
			}
			improved, newScore := nb(p, cfg, score)
			if improved {
				score = newScore
				improvedThisPass = true
				break
			}
		}
		if !improvedThisPass {
			return score
		}
	}
}

// accept reports whether candidate is a genuine improvement over
// current, gated by cfg.Epsilon exactly as the teacher's own local-search
// acceptance test is gated: candidate must be strictly less than
// current - epsilon, not merely less.
func accept(cfg Config, current, candidate float64) bool {
	return candidate+cfg.Epsilon < current
}
