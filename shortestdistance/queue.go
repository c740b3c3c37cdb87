package shortestdistance

import "github.com/katalvlaran/wfst/fst"

// Discipline selects the state-relaxation order.
type Discipline int

const (
	// Auto picks FIFO, TopOrder, or ShortestFirst based on the
	// semiring's declared properties and whether a topological order
	// was supplied.
	Auto Discipline = iota
	FIFO
	LIFO
	TopOrder
	ShortestFirst
)

// queue is the internal state-scheduling interface every discipline
// implements.
type queue interface {
	push(s fst.StateId)
	pop() fst.StateId
	empty() bool
}

// fifoQueue relaxes states in first-enqueued-first-relaxed order;
// correct whenever the filtered graph is acyclic or the semiring is
// k-closed.
type fifoQueue struct {
	items []fst.StateId
	head  int
}

func (q *fifoQueue) push(s fst.StateId) { q.items = append(q.items, s) }
func (q *fifoQueue) empty() bool        { return q.head >= len(q.items) }
func (q *fifoQueue) pop() fst.StateId {
	s := q.items[q.head]
	q.head++
	return s
}

// lifoQueue relaxes most-recently-enqueued-first; useful for
// depth-first-biased acyclic traversals.
type lifoQueue struct {
	items []fst.StateId
}

func (q *lifoQueue) push(s fst.StateId) { q.items = append(q.items, s) }
func (q *lifoQueue) empty() bool        { return len(q.items) == 0 }
func (q *lifoQueue) pop() fst.StateId {
	n := len(q.items) - 1
	s := q.items[n]
	q.items = q.items[:n]
	return s
}

// rankQueue relaxes states in increasing order of an externally
// supplied key (topological rank for TopOrder, current tentative
// distance for ShortestFirst), implemented as a simple binary min-heap
// over state ids.
type rankQueue struct {
	heap []fst.StateId
	less func(a, b fst.StateId) bool
}

func newRankQueue(less func(a, b fst.StateId) bool) *rankQueue {
	return &rankQueue{less: less}
}

func (q *rankQueue) empty() bool { return len(q.heap) == 0 }

func (q *rankQueue) push(s fst.StateId) {
	q.heap = append(q.heap, s)
	i := len(q.heap) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.heap[i], q.heap[parent]) {
			break
		}
		q.heap[i], q.heap[parent] = q.heap[parent], q.heap[i]
		i = parent
	}
}

func (q *rankQueue) pop() fst.StateId {
	top := q.heap[0]
	n := len(q.heap) - 1
	q.heap[0] = q.heap[n]
	q.heap = q.heap[:n]
	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.less(q.heap[left], q.heap[smallest]) {
			smallest = left
		}
		if right < n && q.less(q.heap[right], q.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
	return top
}
