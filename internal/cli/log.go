// Package cli implements the wfst command-line interface: subcommands
// that run one transducer operation each over fstfile-encoded files.
//
// # Commands
//
// rmepsilon, synchronize, concat, connect, and prune each take one or
// two input files and write a result file; isomorphic takes two input
// files and prints its verdict. All use --arc-type to pick the semiring
// (default "standard").
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log, attached to the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
