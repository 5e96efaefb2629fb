package evaluator

import "github.com/katalvlaran/dpdp-core/routelist"

// eventKind distinguishes the two discrete-event types the simulation
// processes: a vehicle arriving at a factory, or a vehicle departing one.
type eventKind uint8

const (
	eventArrival eventKind = iota
	eventDeparture
)

// event is one entry in the simulation's min-heap, ordered by time and,
// on ties, by insertion order (seq) to keep the simulation deterministic.
type event struct {
	time    int64
	seq     int
	kind    eventKind
	vehicle int
	factory int
	step    routelist.StepHandle
}

// eventQueue implements container/heap.Interface as a small private
// slice-backed type, ordered by a composite key, with no allocation beyond
// the backing slice's own growth.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(event))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
