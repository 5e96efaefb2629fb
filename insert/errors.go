package insert

import "errors"

// ErrInfeasible is returned when no (vehicle, pickup anchor, delivery
// anchor) triple exists that keeps every vehicle's ConstraintChecker
// predicates satisfied. Callers match it with errors.Is.
var ErrInfeasible = errors.New("insert: no feasible insertion point")
