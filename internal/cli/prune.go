package cli

import (
	"fmt"

	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/script"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/spf13/cobra"
)

func newPruneCmd() *cobra.Command {
	var arcType string
	var weightThreshold float64
	var stateThreshold int64

	cmd := &cobra.Command{
		Use:   "prune <in.fst> <out.fst>",
		Short: "Drop states outside a forward-distance weight/state bound",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			e, err := script.Lookup(arcType)
			if err != nil {
				return err
			}
			src, err := readFst(args[0], arcType)
			if err != nil {
				return err
			}

			var threshold semiring.Weight
			if weightThreshold != 0 {
				threshold, err = e.Codec.Decode(weightThreshold)
				if err != nil {
					return fmt.Errorf("cli: --weight-threshold is not valid for arc type %s: %w", arcType, err)
				}
			}

			result, err := ops.Prune(src, e.Zero, e.One, ops.PruneOptions{WeightThreshold: threshold, StateThreshold: stateThreshold})
			if err != nil {
				return err
			}

			if err := writeFst(args[1], arcType, result); err != nil {
				return err
			}
			logger.Infof("prune: %s -> %s (%d states)", args[0], args[1], result.NumStates())
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	cmd.Flags().Float64Var(&weightThreshold, "weight-threshold", 0, "keep only states within this of the best forward distance (0 disables)")
	cmd.Flags().Int64Var(&stateThreshold, "state-threshold", 0, "cap surviving states by forward distance (0 disables)")
	return cmd
}
