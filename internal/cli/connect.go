package cli

import (
	"github.com/katalvlaran/wfst/ops"
	"github.com/katalvlaran/wfst/script"
	"github.com/spf13/cobra"
)

func newConnectCmd() *cobra.Command {
	var arcType string

	cmd := &cobra.Command{
		Use:   "connect <in.fst> <out.fst>",
		Short: "Drop states unreachable from the start or not co-accessible to a final state",
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

			result := ops.Connect(src, e.Zero)

			if err := writeFst(args[1], arcType, result); err != nil {
				return err
			}
			logger.Infof("connect: %s -> %s (%d states)", args[0], args[1], result.NumStates())
			return nil
		},
	}

	cmd.Flags().StringVar(&arcType, "arc-type", "standard", "semiring: standard|log|boolean|probability")
	return cmd
}
