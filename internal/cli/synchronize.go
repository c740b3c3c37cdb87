package cli

import (
	"github.com/katalvlaran/wfst/delay"
	"github.com/katalvlaran/wfst/script"
	"github.com/katalvlaran/wfst/synchronize"
	"github.com/spf13/cobra"
)

func newSynchronizeCmd() *cobra.Command {
	var arcType string
	var checkBounded bool

	cmd := &cobra.Command{
		Use:   "synchronize <in.fst> <out.fst>",
		Short: "Rebalance arcs so every step carries matched or purely-epsilon labels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())

			e, err := script.Lookup(arcType)
			if err != nil {
				return err
			}
			src, err := readFst(args[0], arcType)
			if err != nil {
				return err
			}

			if checkBounded {
				if !synchronize.BoundedDelay(src) {
					logger.Warnf("%s has an unbounded-delay cycle; synchronize will not terminate", args[0])
				}
			}

			view := synchronize.New(src, e.Zero, e.One, delay.WithGCLimit(cfg.WeightGC))
			result := delay.Materialize(view, e.Zero)

			if err := writeFst(args[1], arcType, result); err != nil {
				return err
			}
			logger.Infof("synchronize: %s -> %s (%d states)", args[0], args[1], result.NumStates())
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	cmd.Flags().BoolVar(&checkBounded, "check-bounded", false, "run BoundedDelay before synchronizing and warn if it fails")

	return cmd
}
