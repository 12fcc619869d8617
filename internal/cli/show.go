package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(flags *chainFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the composed matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.matrix(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "matrix:      %v\n", m)
			fmt.Fprintf(out, "determinant: %g\n", m.Determinant())
			fmt.Fprintf(out, "invertible:  %t\n", m.IsInvertible())
			return nil
		},
	}
}
