// Package routelist implements the per-round route representation: a
// handle-based arena of Steps shared by every vehicle's RouteList, so a
// Step can move between vehicles by relinking four handles instead of
// copying data between owning containers.
package routelist

import "github.com/katalvlaran/dpdp-core/model"

// StepHandle addresses one Step inside an Arena. It is stable for the
// lifetime of the Arena: Steps are never physically moved or reused once
// allocated within one dispatch round.
type StepHandle int32

// NilHandle is the sentinel value for "no handle" (no partner, a just-removed
// step's former pred/succ).
const NilHandle StepHandle = -1

// StepKind classifies a Step. KindSentinel marks the begin/end anchors of
// a RouteList; those are never exposed to callers as PICKUP or DELIVERY.
type StepKind uint8

const (
	KindSentinel StepKind = iota
	KindPickup
	KindDelivery
)

// Step is one stop in a vehicle's route: a PICKUP or DELIVERY of one or
// more OrderItems at one factory, or (for KindSentinel) an anchor with no
// factory and no items.
type Step struct {
	Kind    StepKind
	Factory int // model.Factory.Index; -1 for sentinels
	Items   []model.OrderItem
	Partner StepHandle // the matching PICKUP/DELIVERY Step, NilHandle for sentinels
	Pinned  bool       // true once Bootstrap has committed this Step to its position

	pred, succ StepHandle
	attached   bool
}

// Arena owns every Step allocated during one dispatch round, across all
// vehicles. RouteLists are thin (begin, end) handle pairs into one shared
// Arena; moving a Step from one vehicle's route to another's is a matter
// of RemoveSegment on the source and InsertSegmentAfter on the destination,
// never a copy.
type Arena struct {
	steps []Step
}

// NewArena returns an empty, ready-to-use Arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(kind StepKind, factory int, items []model.OrderItem) StepHandle {
	a.steps = append(a.steps, Step{
		Kind:    kind,
		Factory: factory,
		Items:   items,
		Partner: NilHandle,
		pred:    NilHandle,
		succ:    NilHandle,
	})
	return StepHandle(len(a.steps) - 1)
}

// NewStep allocates a detached PICKUP or DELIVERY Step. It is not attached
// to any RouteList until InsertAfter/InsertSegmentAfter is called with its
// handle.
func (a *Arena) NewStep(kind StepKind, factory int, items []model.OrderItem) StepHandle {
	return a.alloc(kind, factory, items)
}

// Step returns a pointer into the arena for the given handle, allowing
// direct reads and direct mutation of Kind/Factory/Items/Partner/Pinned.
// The pred/succ/attached fields are not exposed; use Pred, Succ and
// IsAttached.
func (a *Arena) Step(h StepHandle) *Step {
	return &a.steps[h]
}

// SetPartner cross-links two Steps as each other's PICKUP/DELIVERY partner.
func (a *Arena) SetPartner(p, d StepHandle) {
	a.steps[p].Partner = d
	a.steps[d].Partner = p
}

// Pred returns h's predecessor in whatever RouteList it is currently
// spliced into. Undefined (NilHandle) if h is detached.
func (a *Arena) Pred(h StepHandle) StepHandle { return a.steps[h].pred }

// Succ returns h's successor in whatever RouteList it is currently
// spliced into. Undefined (NilHandle) if h is detached.
func (a *Arena) Succ(h StepHandle) StepHandle { return a.steps[h].succ }

// IsAttached reports whether h is currently spliced into some RouteList.
// Sentinels are always attached.
func (a *Arena) IsAttached(h StepHandle) bool { return a.steps[h].attached }

// InsertAfter splices the single detached Step h immediately after anchor.
// Fails with ErrAttached if h is already spliced in, or ErrNoSuccessor if
// anchor is an end sentinel.
func (a *Arena) InsertAfter(h, anchor StepHandle) error {
	return a.InsertSegmentAfter(h, h, anchor)
}

// InsertSegmentAfter splices the contiguous, already-linked chain
// first..last immediately after anchor. first and last must currently be
// detached (attached == false); the chain between them is assumed intact
// and is not re-validated. Fails with ErrAttached if first or last is
// already spliced in, or ErrNoSuccessor if anchor is an end sentinel.
func (a *Arena) InsertSegmentAfter(first, last, anchor StepHandle) error {
	anchorStep := &a.steps[anchor]
	if anchorStep.succ == NilHandle {
		return ErrNoSuccessor
	}
	firstStep := &a.steps[first]
	lastStep := &a.steps[last]
	if firstStep.attached || lastStep.attached {
		return ErrAttached
	}

	succH := anchorStep.succ
	lastStep.succ = succH
	a.steps[succH].pred = last
	firstStep.pred = anchor
	anchorStep.succ = first
	firstStep.attached = true
	lastStep.attached = true
	return nil
}

// Remove detaches the single Step h from whatever RouteList it is spliced
// into. Fails with ErrSentinel if h is a begin/end sentinel, or
// ErrDetached if h is not currently attached.
func (a *Arena) Remove(h StepHandle) error {
	return a.RemoveSegment(h, h)
}

// RemoveSegment detaches the contiguous chain first..last as one unit; the
// internal links between first and last are left intact, only the
// boundary links to the rest of the RouteList are rewritten. Fails with
// ErrSentinel if first or last is a sentinel, or ErrDetached if either is
// not currently attached.
func (a *Arena) RemoveSegment(first, last StepHandle) error {
	firstStep := &a.steps[first]
	lastStep := &a.steps[last]
	if firstStep.Kind == KindSentinel || lastStep.Kind == KindSentinel {
		return ErrSentinel
	}
	if !firstStep.attached || !lastStep.attached {
		return ErrDetached
	}

	predH := firstStep.pred
	succH := lastStep.succ
	a.steps[predH].succ = succH
	a.steps[succH].pred = predH
	firstStep.pred = NilHandle
	lastStep.succ = NilHandle
	firstStep.attached = false
	lastStep.attached = false
	return nil
}
