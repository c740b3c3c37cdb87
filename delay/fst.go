package delay

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Fst is a lazily materialised transducer view. It satisfies fst.Fst;
// every method that touches a state's final weight or arcs expands that
// state on first access and caches the result.
//
// The zero value is not usable; construct with New.
type Fst struct {
	src     Expander
	sh      *shared
	start   fst.StateId
	started bool
}

// Option configures a new delay.Fst.
type Option func(*Fst)

// WithGCLimit bounds the cache to approximately limit bytes, enabling
// LRU eviction of ready, unlocked states once the budget is exceeded. A
// limit of 0 (the default) disables eviction.
func WithGCLimit(limit int64) Option {
	return func(f *Fst) { f.sh.gcLimit = limit }
}

// New returns a delayed view over src.
func New(src Expander, opts ...Option) *Fst {
	f := &Fst{src: src, sh: newShared(0), start: fst.NoStateId}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Start returns the start state, computed once and cached thereafter.
func (f *Fst) Start() fst.StateId {
	if !f.started {
		f.start = f.src.Start()
		f.started = true
	}
	return f.start
}

// Err reports whether a CacheExpansionRecursion (or any other sticky
// error) has been observed by this view or any view sharing its cache.
func (f *Fst) Err() bool {
	f.sh.mu.Lock()
	defer f.sh.mu.Unlock()
	return f.sh.errSet
}

func (f *Fst) Properties() fst.Properties {
	p := f.src.Properties()
	if f.Err() {
		p = p.WithError()
	}
	return p
}

// ensure expands s if necessary and returns its cache entry. Re-entry
// into a state already mid-expansion sets the sticky error bit and
// returns a zero-valued entry rather than recursing or deadlocking.
func (f *Fst) ensure(s fst.StateId) *entry {
	f.sh.mu.Lock()
	if f.sh.errSet {
		f.sh.mu.Unlock()
		return &entry{status: statusReady, final: f.src.Zero()}
	}
	e, ok := f.sh.cache[s]
	if !ok {
		e = &entry{status: statusUnknown}
		f.sh.cache[s] = e
	}
	switch e.status {
	case statusReady:
		f.sh.clock++
		e.lastUse = f.sh.clock
		f.sh.mu.Unlock()
		return e
	case statusExpanding:
		f.sh.errSet = true
		f.sh.mu.Unlock()
		return &entry{status: statusReady, final: f.src.Zero()}
	}
	e.status = statusExpanding
	f.sh.mu.Unlock()

	final, arcs := f.src.Expand(s)

	f.sh.mu.Lock()
	e.final = final
	e.arcs = arcs
	e.status = statusReady
	f.sh.clock++
	e.lastUse = f.sh.clock
	f.sh.usedBytes += e.approxBytes()
	f.sh.evictIfNeeded()
	f.sh.mu.Unlock()
	return e
}

func (f *Fst) Final(s fst.StateId) semiring.Weight {
	return f.ensure(s).final
}

func (f *Fst) NumArcs(s fst.StateId) int { return len(f.ensure(s).arcs) }

func (f *Fst) NumInputEpsilons(s fst.StateId) int {
	n := 0
	for _, a := range f.ensure(s).arcs {
		if a.ILabel == fst.Epsilon {
			n++
		}
	}
	return n
}

func (f *Fst) NumOutputEpsilons(s fst.StateId) int {
	n := 0
	for _, a := range f.ensure(s).arcs {
		if a.OLabel == fst.Epsilon {
			n++
		}
	}
	return n
}

// Arcs returns an iterator over s's outgoing arcs, expanding s if
// needed and pinning it in the cache (preventing eviction) until the
// iterator is closed.
func (f *Fst) Arcs(s fst.StateId) fst.ArcIterator {
	e := f.ensure(s)
	f.sh.mu.Lock()
	e.locks++
	f.sh.mu.Unlock()
	return &pinnedIterator{sh: f.sh, e: e, arcs: e.arcs, index: -1}
}

type pinnedIterator struct {
	sh    *shared
	e     *entry
	arcs  []fst.Arc
	index int
}

func (it *pinnedIterator) Next() bool {
	it.index++
	return it.index < len(it.arcs)
}

func (it *pinnedIterator) Arc() fst.Arc { return it.arcs[it.index] }

func (it *pinnedIterator) Close() {
	it.sh.mu.Lock()
	it.e.locks--
	it.sh.mu.Unlock()
}

// Copy returns a new view over the same source. unsafe=true (the
// cheaper default trade-off) shares this view's cache, but concurrent
// use of the two views from different goroutines is not safe.
// unsafe=false snapshots the cache so the copy evolves independently
// and is safe for concurrent readers of distinct copies.
func (f *Fst) Copy(unsafe bool) *Fst {
	if unsafe {
		return &Fst{src: f.src, sh: f.sh, start: f.start, started: f.started}
	}
	return &Fst{src: f.src, sh: f.sh.clone(), start: f.start, started: f.started}
}

var _ fst.Fst = (*Fst)(nil)
