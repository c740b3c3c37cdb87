package cli

import (
	"github.com/katalvlaran/wfst/ops"
	"github.com/spf13/cobra"
)

func newConcatCmd() *cobra.Command {
	var arcType string

	cmd := &cobra.Command{
		Use:   "concat <a.fst> <b.fst> <out.fst>",
		Short: "Concatenate b onto the end of a",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := readFst(args[0], arcType)
			if err != nil {
				return err
			}
			b, err := readFst(args[1], arcType)
			if err != nil {
				return err
			}

			ops.Concat(a, b)

			if err := writeFst(args[2], arcType, a); err != nil {
				return err
			}
			logger.Infof("concat: %s + %s -> %s (%d states)", args[0], args[1], args[2], a.NumStates())
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	return cmd
}
