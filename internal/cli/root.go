package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version/commit shown by --version. Called from
// main with values injected via -ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the wfst CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "wfst",
		Short:        "wfst operates on weighted finite-state transducer files",
		Long:         "wfst runs one WFST algorithm per invocation — rmepsilon, synchronize, concat, isomorphic, connect, or prune — against fstfile-encoded transducers.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("wfst %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file of defaults")

	root.AddCommand(newRmEpsilonCmd())
	root.AddCommand(newSynchronizeCmd())
	root.AddCommand(newConcatCmd())
	root.AddCommand(newIsomorphicCmd())
	root.AddCommand(newConnectCmd())
	root.AddCommand(newPruneCmd())

	return root.ExecuteContext(context.Background())
}

type configCtxKey int

const configKey configCtxKey = 0

func withConfig(ctx context.Context, cfg config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) config {
	if c, ok := ctx.Value(configKey).(config); ok {
		return c
	}
	return defaultConfig()
}
