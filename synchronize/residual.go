package synchronize

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wfst/fst"
)

// concat appends lbl to seq, unless lbl is Epsilon — an epsilon arc
// label contributes no token to a residual.
func concat(seq []fst.Label, lbl fst.Label) []fst.Label {
	if lbl == fst.Epsilon {
		return seq
	}
	out := make([]fst.Label, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = lbl
	return out
}

// headTail splits seq into its first label (Epsilon if seq is empty)
// and the remaining tail.
func headTail(seq []fst.Label) (fst.Label, []fst.Label) {
	if len(seq) == 0 {
		return fst.Epsilon, nil
	}
	return seq[0], seq[1:]
}

// encode produces a comparable string key for a residual, used by the
// triple interning table. Labels are signed 64-bit ids with no
// embedded separators, so a comma-joined decimal encoding is
// collision-free.
func encode(seq []fst.Label) string {
	if len(seq) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(l), 10))
	}
	return b.String()
}

// triple is one interned state of the synchronized transducer:
// (source state, pending input residual, pending output residual). s
// is fst.NoStateId for the "draining" states reached after a source
// final state's residual has not yet fully emptied.
type triple struct {
	s    fst.StateId
	u, v []fst.Label
}

// interner assigns dense state ids to triples, returning the same id
// for triples that compare equal by (s, encode(u), encode(v)).
type interner struct {
	ids  map[string]fst.StateId
	vals []triple
}

func newInterner() *interner {
	return &interner{ids: map[string]fst.StateId{}}
}

func tripleKey(s fst.StateId, u, v []fst.Label) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(s), 10))
	b.WriteByte('|')
	b.WriteString(encode(u))
	b.WriteByte('|')
	b.WriteString(encode(v))
	return b.String()
}

func (n *interner) intern(s fst.StateId, u, v []fst.Label) fst.StateId {
	key := tripleKey(s, u, v)
	if id, ok := n.ids[key]; ok {
		return id
	}
	id := fst.StateId(len(n.vals))
	n.vals = append(n.vals, triple{s: s, u: u, v: v})
	n.ids[key] = id
	return id
}

func (n *interner) lookup(id fst.StateId) triple {
	return n.vals[id]
}
