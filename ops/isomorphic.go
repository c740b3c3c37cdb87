package ops

import (
	"errors"
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// ErrNonDeterministicInput is returned when Isomorphic's precondition —
// that both operands are deterministic unweighted automata — is
// violated. Callers should treat this as "indeterminate", not "not
// isomorphic".
var ErrNonDeterministicInput = errors.New("ops: isomorphic precondition violated (non-deterministic input)")

// ErrHashCollision is returned when two weights quantize to different
// values but hash identically, which would make the arc total order
// used by Isomorphic unreliable.
var ErrHashCollision = errors.New("ops: weight hash collision across distinct quantised weights")

type sortableArc struct {
	ilabel, olabel fst.Label
	bucket         uint64
	qweight        semiring.Weight
	next           fst.StateId
}

func sortedArcs(f fst.Fst, s fst.StateId, delta float64) ([]sortableArc, error) {
	arcs := fst.Arcs(f, s)
	out := make([]sortableArc, len(arcs))
	for i, a := range arcs {
		qw := a.Weight.Quantize(delta)
		out[i] = sortableArc{ilabel: a.ILabel, olabel: a.OLabel, bucket: qw.Hash(), qweight: qw, next: a.NextState}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ilabel != out[j].ilabel {
			return out[i].ilabel < out[j].ilabel
		}
		if out[i].olabel != out[j].olabel {
			return out[i].olabel < out[j].olabel
		}
		return out[i].bucket < out[j].bucket
	})
	for i := 1; i < len(out); i++ {
		a, b := out[i-1], out[i]
		if a.ilabel != b.ilabel || a.olabel != b.olabel || a.bucket != b.bucket {
			continue
		}
		if a.qweight.ApproxEqual(b.qweight, 0) {
			return nil, ErrNonDeterministicInput
		}
		return nil, ErrHashCollision
	}
	return out, nil
}

// Isomorphic tests whether a and b are equal up to reordering of states
// and arcs, assuming both are deterministic unweighted-automaton-shaped
// transducers. delta controls the weight-quantization bucket used for
// the arc total order.
func Isomorphic(a, b fst.Fst, delta float64) (bool, error) {
	sa, sb := a.Start(), b.Start()
	if sa == fst.NoStateId || sb == fst.NoStateId {
		return sa == sb, nil
	}

	pairOf := map[fst.StateId]fst.StateId{}
	pairedBy := map[fst.StateId]fst.StateId{}
	queue := []struct{ x, y fst.StateId }{{sa, sb}}
	pairOf[sa] = sb
	pairedBy[sb] = sa

	for len(queue) > 0 {
		x, y := queue[0].x, queue[0].y
		queue = queue[1:]

		if !a.Final(x).ApproxEqual(b.Final(y), delta) {
			return false, nil
		}
		if a.NumArcs(x) != b.NumArcs(y) {
			return false, nil
		}

		ax, err := sortedArcs(a, x, delta)
		if err != nil {
			return false, err
		}
		by, err := sortedArcs(b, y, delta)
		if err != nil {
			return false, err
		}

		for i := range ax {
			if ax[i].ilabel != by[i].ilabel || ax[i].olabel != by[i].olabel {
				return false, nil
			}
			if ax[i].bucket != by[i].bucket {
				return false, nil
			}

			nx, ny := ax[i].next, by[i].next
			if paired, ok := pairOf[nx]; ok {
				if paired != ny {
					return false, nil
				}
				continue
			}
			if _, taken := pairedBy[ny]; taken {
				return false, nil
			}
			pairOf[nx] = ny
			pairedBy[ny] = nx
			queue = append(queue, struct{ x, y fst.StateId }{nx, ny})
		}
	}
	return true, nil
}
