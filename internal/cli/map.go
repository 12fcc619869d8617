package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/affine"
	"github.com/gogpu/affine/internal/chain"
)

func newMapCmd(flags *chainFlags) *cobra.Command {
	var inverse bool

	cmd := &cobra.Command{
		Use:   "map [X,Y ...]",
		Short: "Map points through the chain",
		Long: `Map points through the chain and print one X,Y per line.

Points are taken from the arguments, or read one per line from stdin when
no arguments are given. Blank lines and lines starting with # are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.matrix(cmd.Context())
			if err != nil {
				return err
			}
			if inverse {
				inv, ok := m.Invert()
				if !ok {
					return fmt.Errorf("%v: %w", m, affine.ErrNotInvertible)
				}
				m = inv
			}

			var pts []affine.Point
			if len(args) > 0 {
				pts, err = parsePoints(args)
			} else {
				pts, err = readPoints(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			m.MapPoints(pts, pts)
			loggerFromContext(cmd.Context()).Debug("mapped points", "count", len(pts))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, p := range pts {
				fmt.Fprintln(w, chain.FormatPoint(p))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&inverse, "inverse", "i", false, "map through the inverse of the chain")
	return cmd
}

func parsePoints(args []string) ([]affine.Point, error) {
	pts := make([]affine.Point, 0, len(args))
	for _, a := range args {
		p, err := chain.ParsePoint(a)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func readPoints(r io.Reader) ([]affine.Point, error) {
	var pts []affine.Point
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := chain.ParsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	return pts, sc.Err()
}
