package cli

import (
	"github.com/katalvlaran/wfst/delay"
	"github.com/katalvlaran/wfst/rmepsilon"
	"github.com/katalvlaran/wfst/script"
	"github.com/spf13/cobra"
)

func newRmEpsilonCmd() *cobra.Command {
	var arcType string
	var connect bool
	var stateThreshold int64
	var delta float64
	var lazy bool

	cmd := &cobra.Command{
		Use:   "rmepsilon <in.fst> <out.fst>",
		Short: "Remove epsilon/epsilon arcs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			if delta == 0 {
				delta = cfg.Delta
			}

			e, err := script.Lookup(arcType)
			if err != nil {
				return err
			}
			src, err := readFst(args[0], arcType)
			if err != nil {
				return err
			}

			opts := rmepsilon.Options{Connect: connect, StateThreshold: stateThreshold, Delta: delta}

			var numStates int64
			if lazy {
				view := rmepsilon.RmLazy(src, e.Zero, e.One, delta, delay.WithGCLimit(cfg.WeightGC))
				result := delay.Materialize(view, e.Zero)
				numStates = result.NumStates()
				if err := writeFst(args[1], arcType, result); err != nil {
					return err
				}
			} else {
				result, err := rmepsilon.Rm(src, e.Zero, e.One, opts)
				if err != nil {
					return err
				}
				numStates = result.NumStates()
				if err := writeFst(args[1], arcType, result); err != nil {
					return err
				}
			}

			logger.Infof("rmepsilon: %s -> %s (%d states)", args[0], args[1], numStates)
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	cmd.Flags().BoolVar(&connect, "connect", false, "drop unreachable/non-coaccessible states afterwards")
	cmd.Flags().Int64Var(&stateThreshold, "state-threshold", 0, "cap surviving states (implies --connect's pruning coupling)")
	cmd.Flags().Float64Var(&delta, "delta", 0, "shortest-distance convergence delta (0 uses the config default)")
	cmd.Flags().BoolVar(&lazy, "lazy", false, "expand via the lazy RmLazy view instead of the eager pass")

	return cmd
}
