package rmepsilon

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/semiring"
)

// Options configures an eager Rm pass.
type Options struct {
	// Connect drops states left unreachable or non-co-accessible by
	// removal, via ops.Connect, once the pass completes.
	Connect bool
	// WeightThreshold, if non-nil, prunes via ops.Prune after removal
	// (requires a Path semiring, same as ops.Prune itself).
	WeightThreshold semiring.Weight
	// StateThreshold, if > 0, bounds the surviving state count via
	// ops.Prune after removal.
	StateThreshold int64
	// Delta bounds the shortest-distance convergence test used by the
	// per-state ε-closure. Zero means exact comparison.
	Delta float64
}

// Rm computes an ε/ε-arc-free transducer equivalent to f. f must be an
// ExpandedFst since the eager algorithm needs to
// visit every state, including ones unreachable from the start — those
// are only dropped afterwards, and only if Connect or a threshold is
// requested: removal itself is liveness-agnostic; liveness filtering is
// a separate, optional step.
//
// Steps:
//  1. noneps_in[s] := s is the start state, or some non-ε arc targets
//     s. A state with noneps_in[s] == false can only be reached via
//     other ε arcs, so once those are rerouted around it has nothing
//     left pointing to it.
//  2. Determine a processing order over every state (processingOrder);
//     correctness does not depend on it, since each state's closure
//     reads only from the unmodified source f.
//  3. For each state in that order, compute its closure (expand) and
//     write the result into a fresh VectorFst with the same state ids.
//  4. If Connect or a threshold was requested, drop arcs and final
//     weight on every state with noneps_in[s] == false, then Connect
//     and/or Prune.
func Rm(f fst.ExpandedFst, zero, one semiring.Weight, opts Options) (*fst.VectorFst, error) {
	if f.Properties().HasError() {
		out := fst.New(zero)
		out.SetProperties(fst.Error, fst.Error)
		return out, nil
	}

	n := f.NumStates()
	out := fst.New(zero)
	for i := int64(0); i < n; i++ {
		out.AddState()
	}
	start := f.Start()
	if start == fst.NoStateId {
		return out, nil
	}
	out.SetStart(start)

	nonepsIn := make([]bool, n)
	nonepsIn[start] = true
	for s := fst.StateId(0); s < fst.StateId(n); s++ {
		for _, a := range fst.Arcs(f, s) {
			if !a.IsEpsilon() {
				nonepsIn[a.NextState] = true
			}
		}
	}

	order := processingOrder(f, n)
	m := newMerger()
	for _, s := range order {
		final, arcs, err := expand(f, s, zero, one, opts.Delta, m)
		if err != nil {
			return nil, err
		}
		out.SetFinal(s, final)
		for _, a := range arcs {
			out.AddArc(s, a)
		}
	}

	out.SetProperties(fst.EpsilonFree|fst.NoIEpsilons|fst.NoOEpsilons, fst.EpsilonFree|fst.NotEpsilonFree|fst.NoIEpsilons|fst.IEpsilons|fst.NoOEpsilons|fst.OEpsilons)

	couple := opts.Connect || opts.WeightThreshold != nil || opts.StateThreshold > 0
	if couple {
		for s := fst.StateId(0); s < fst.StateId(n); s++ {
			if !nonepsIn[s] {
				out.DeleteArcs(s)
				out.SetFinal(s, zero)
			}
		}
	}

	result := out
	if opts.WeightThreshold != nil || opts.StateThreshold > 0 {
		pruned, err := ops.Prune(result, zero, one, ops.PruneOptions{WeightThreshold: opts.WeightThreshold, StateThreshold: opts.StateThreshold})
		if err != nil {
			return nil, err
		}
		result = pruned
	}
	if opts.Connect {
		result = ops.Connect(result, zero)
	}
	return result, nil
}
