package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/affine"
)

func newInvertCmd(flags *chainFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "invert",
		Short: "Print the inverse of the composed matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.matrix(cmd.Context())
			if err != nil {
				return err
			}
			inv, ok := m.Invert()
			if !ok {
				return fmt.Errorf("%v: %w", m, affine.ErrNotInvertible)
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}
