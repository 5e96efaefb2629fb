package bootstrap

import "errors"

// ErrUnpaired is returned when a vehicle's reconciled planned route
// contains a PICKUP whose matching DELIVERY never appears later in that
// same route — a structurally inconsistent prior-round plan.
var ErrUnpaired = errors.New("bootstrap: pickup with no matching delivery in planned route")
