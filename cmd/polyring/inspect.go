package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyring/ring"
)

func newInspectCommand(a *app) *cobra.Command {
	var printCoeffs bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the statistics of polynomials stored by sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			r, X, polys, err := readContainer(args[0])
			if err != nil {
				return err
			}

			a.log.Debug("read %d polynomials from %s", len(polys), args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ring: N=%d Q=%v\n", r.N(), r.Q())
			fmt.Fprintf(out, "distribution: %s\n", X.Type())
			fmt.Fprintf(out, "polynomials: %d\n", len(polys))

			if len(polys) == 0 {
				return nil
			}

			var canonical, maxDegree int
			for i, p := range polys {
				if r.IsCanonical(p) {
					canonical++
				}
				if d := p.Degree(); d > maxDegree {
					maxDegree = d
				}
				if printCoeffs {
					fmt.Fprintf(out, "poly %d: %v\n", i, p)
				}
			}
			fmt.Fprintf(out, "max degree: %d\n", maxDegree)
			fmt.Fprintf(out, "canonical: %d/%d\n", canonical, len(polys))

			st, err := ring.PolyStats(maxDegree+1, polys...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, st)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&printCoeffs, "print", "p", false, "print the coefficients")

	return cmd
}
