package delay

import (
	"sync"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// status is a cached state's position in the unknown→expanding→ready
// machine.
type status int

const (
	statusUnknown status = iota
	statusExpanding
	statusReady
)

// entry is one state's cached expansion result.
type entry struct {
	status status
	final  semiring.Weight
	arcs   []fst.Arc
	locks  int   // outstanding ArcIterator pins; eviction refuses locks>0
	lastUse int64 // shared.clock value at last access, for LRU eviction
}

// approxBytes estimates an entry's cache footprint. Go has no portable
// sizeof; this counts one machine word per arc field plus a fixed
// per-entry overhead, which is enough to make gc_limit a meaningful
// (if approximate) budget rather than an exact one.
func (e *entry) approxBytes() int64 {
	const perArc = 40 // ILabel, OLabel, Weight interface (2 words), NextState
	const overhead = 32
	return overhead + int64(len(e.arcs))*perArc
}

// shared is the cache state potentially aliased by multiple Fst views
// (an "unsafe" Copy shares one shared; a "safe" Copy gets its own,
// pre-populated by cloning the entries).
type shared struct {
	mu        sync.Mutex
	cache     map[fst.StateId]*entry
	usedBytes int64
	gcLimit   int64 // 0 = unlimited
	clock     int64
	errSet    bool
}

func newShared(gcLimit int64) *shared {
	return &shared{cache: make(map[fst.StateId]*entry), gcLimit: gcLimit}
}

func (s *shared) clone() *shared {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := newShared(s.gcLimit)
	c.errSet = s.errSet
	for id, e := range s.cache {
		c.cache[id] = &entry{status: e.status, final: e.final, arcs: append([]fst.Arc(nil), e.arcs...)}
		c.usedBytes += c.cache[id].approxBytes()
	}
	return c
}

// evictIfNeeded drops least-recently-used unlocked ready entries until
// usedBytes is within budget, or nothing more can be evicted. Must be
// called with s.mu held.
func (s *shared) evictIfNeeded() {
	if s.gcLimit <= 0 {
		return
	}
	for s.usedBytes > s.gcLimit {
		var victim fst.StateId
		found := false
		var oldest int64
		for id, e := range s.cache {
			if e.status != statusReady || e.locks > 0 {
				continue
			}
			if !found || e.lastUse < oldest {
				victim, oldest, found = id, e.lastUse, true
			}
		}
		if !found {
			return
		}
		s.usedBytes -= s.cache[victim].approxBytes()
		delete(s.cache, victim)
	}
}
