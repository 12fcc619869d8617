package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/affine"
	"github.com/gogpu/affine/internal/chain"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// chainFlags holds the flags that describe the transform chain.
type chainFlags struct {
	file string
	ops  []string
}

// matrix composes the chain: steps from the file first, then --op steps.
func (f *chainFlags) matrix(ctx context.Context) (affine.Matrix, error) {
	logger := loggerFromContext(ctx)

	var c chain.Chain
	if f.file != "" {
		loaded, err := chain.Load(f.file)
		if err != nil {
			return affine.Matrix{}, err
		}
		logger.Debug("loaded chain file", "path", f.file, "steps", len(loaded.Steps))
		c.Append(loaded.Steps...)
	}

	ops, err := chain.Parse(f.ops)
	if err != nil {
		return affine.Matrix{}, err
	}
	c.Append(ops.Steps...)

	m, err := c.Matrix()
	if err != nil {
		return affine.Matrix{}, err
	}
	logger.Debug("composed chain", "steps", len(c.Steps), "matrix", m)
	return m, nil
}

// NewRootCommand builds the affine command tree.
func NewRootCommand() *cobra.Command {
	var (
		verbose bool
		flags   chainFlags
	)

	root := &cobra.Command{
		Use:   "affine",
		Short: "Compose, apply and invert 2D affine transforms",
		Long: `affine composes a chain of 2D affine transforms and applies it.

Steps come from a TOML file (--chain) followed by --op flags, and run in
the order given: the first step is applied to a point first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("affine %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.file, "chain", "c", "", "TOML file with [[step]] tables")
	root.PersistentFlags().StringArrayVarP(&flags.ops, "op", "o", nil,
		"transform step, e.g. translate:5,0 rotate:1.57 scale:2 shear:0.5,0 matrix:a,b,c,d,e,f (repeatable)")

	root.AddCommand(newShowCmd(&flags))
	root.AddCommand(newMapCmd(&flags))
	root.AddCommand(newInvertCmd(&flags))

	return root
}

// Execute runs the affine CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
