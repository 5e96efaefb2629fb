package routelist

// RouteList is one vehicle's view into a shared Arena: a pair of sentinel
// handles (Begin, End) anchoring a doubly-linked chain of Steps. Begin and
// End are allocated once, are always attached, and are never passed to
// Remove/RemoveSegment (they fail with ErrSentinel if they are).
type RouteList struct {
	Arena *Arena
	Begin StepHandle
	End   StepHandle
}

// NewRouteList allocates a fresh begin/end sentinel pair in arena and
// returns the empty RouteList anchored on them.
func NewRouteList(arena *Arena) *RouteList {
	b := arena.alloc(KindSentinel, -1, nil)
	e := arena.alloc(KindSentinel, -1, nil)
	arena.steps[b].succ = e
	arena.steps[e].pred = b
	arena.steps[b].attached = true
	arena.steps[e].attached = true
	return &RouteList{Arena: arena, Begin: b, End: e}
}

// Empty reports whether the RouteList has no interior Steps.
func (rl *RouteList) Empty() bool {
	return rl.Arena.Succ(rl.Begin) == rl.End
}

// First returns the RouteList's first interior Step, or ok==false if empty.
func (rl *RouteList) First() (StepHandle, bool) {
	h := rl.Arena.Succ(rl.Begin)
	return h, h != rl.End
}

// Last returns the RouteList's last interior Step, or ok==false if empty.
func (rl *RouteList) Last() (StepHandle, bool) {
	h := rl.Arena.Pred(rl.End)
	return h, h != rl.Begin
}

// Interior returns every interior Step handle in route order. Sentinels
// are excluded.
func (rl *RouteList) Interior() []StepHandle {
	var out []StepHandle
	for h := rl.Arena.Succ(rl.Begin); h != rl.End; h = rl.Arena.Succ(h) {
		out = append(out, h)
	}
	return out
}

// NodesExceptEnd returns Begin followed by every interior Step, excluding
// End: every anchor after which a Step can be spliced. Used to enumerate
// insertion anchors in best-insert and block-relocation searches.
func (rl *RouteList) NodesExceptEnd() []StepHandle {
	out := append([]StepHandle{rl.Begin}, rl.Interior()...)
	return out
}

// AllHandles returns Begin, every interior Step, and End, in route order.
func (rl *RouteList) AllHandles() []StepHandle {
	out := rl.NodesExceptEnd()
	return append(out, rl.End)
}

// Following returns every interior Step strictly after h (h itself, and
// End, excluded).
func (rl *RouteList) Following(h StepHandle) []StepHandle {
	var out []StepHandle
	for cur := rl.Arena.Succ(h); cur != rl.End; cur = rl.Arena.Succ(cur) {
		out = append(out, cur)
	}
	return out
}

// InsertAfter splices the single detached Step h immediately after anchor,
// which must belong to this RouteList's chain.
func (rl *RouteList) InsertAfter(h, anchor StepHandle) error {
	return rl.Arena.InsertAfter(h, anchor)
}

// InsertSegmentAfter splices the chain first..last immediately after
// anchor, which must belong to this RouteList's chain.
func (rl *RouteList) InsertSegmentAfter(first, last, anchor StepHandle) error {
	return rl.Arena.InsertSegmentAfter(first, last, anchor)
}

// Remove detaches the single Step h from this RouteList.
func (rl *RouteList) Remove(h StepHandle) error {
	return rl.Arena.Remove(h)
}

// RemoveSegment detaches the contiguous chain first..last from this
// RouteList as one unit.
func (rl *RouteList) RemoveSegment(first, last StepHandle) error {
	return rl.Arena.RemoveSegment(first, last)
}
