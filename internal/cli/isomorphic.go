package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wfst/ops"
	"github.com/spf13/cobra"
)

func newIsomorphicCmd() *cobra.Command {
	var arcType string
	var delta float64

	cmd := &cobra.Command{
		Use:   "isomorphic <a.fst> <b.fst>",
		Short: "Check whether two deterministic unweighted automata are isomorphic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())
			if delta == 0 {
				delta = cfg.Delta
			}

			a, err := readFst(args[0], arcType)
			if err != nil {
				return err
			}
			b, err := readFst(args[1], arcType)
			if err != nil {
				return err
			}

			ok, err := ops.Isomorphic(a, b, delta)
			if err != nil {
				if errors.Is(err, ops.ErrNonDeterministicInput) {
					logger.Warnf("precondition violated, result is indeterminate: %v", err)
					fmt.Println("indeterminate")
					return nil
				}
				return err
			}
			if ok {
				fmt.Println("isomorphic")
			} else {
				fmt.Println("not isomorphic")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	cmd.Flags().Float64Var(&delta, "delta", 0, "weight-equality tolerance (0 uses the config default)")
	return cmd
}
