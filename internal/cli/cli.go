// Package cli wires the worddiff command line: flag parsing, configuration
// resolution, file loading, and the diff/render pipeline.
package cli

import (
	"context"
	"io"
	"os"

	qcli "github.com/lukind/worddiff/internal/q/cli"
)

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is
// useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args) and returns a recommended
// exit code:
//   - 0 -> success
//   - 1 -> runtime failure (unreadable input file, output write failure)
//   - 2 -> args parse error or misuse of flags
//
// Error messages have already been written to opts.Err || Stderr.
func Run(args []string, opts *RunOptions) int {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	return qcli.Run(context.Background(), newRootCommand(), qcli.Options{
		Args: argv,
		In:   in,
		Out:  out,
		Err:  errW,
	})
}

// Main is the os.Exit-ready entry point.
func Main() int {
	return Run(os.Args, nil)
}
