package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyring/ring"
)

type mulModOptions struct {
	dist    string
	noModQ  bool
	verbose bool
}

func newMulModCommand(a *app) *cobra.Command {
	var flags mulModOptions

	cmd := &cobra.Command{
		Use:   "mulmod",
		Short: "Multiply a uniform polynomial by a sampled one in the ring",
		Long: `mulmod samples a uniform polynomial a and a polynomial s of the chosen
distribution, then computes a*s reduced modulo x^N + 1 and, unless
--no-mod-q is set, modulo Q.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			r, err := a.cfg.Ring.NewRing()
			if err != nil {
				return err
			}

			X, err := a.distribution(flags.dist)
			if err != nil {
				return err
			}

			// both samplers share the source so that a and s are independent
			src, err := a.cfg.Sampling.NewSource()
			if err != nil {
				return err
			}

			uniform, err := ring.NewSampler(src, ring.Uniform{Modulus: r.Q()})
			if err != nil {
				return err
			}

			sampler, err := ring.NewSampler(src, X)
			if err != nil {
				return err
			}

			ua := uniform.ReadNew(r.N())
			s := sampler.ReadNew(r.N())

			// integer coefficients in [0, Q)
			pa, err := r.Reduce(ua)
			if err != nil {
				return err
			}

			var prod *ring.Poly
			if flags.noModQ {
				prod, err = r.MulNoModQ(pa, s)
			} else {
				prod, err = r.Mul(pa, s)
			}
			if err != nil {
				return err
			}

			a.log.Info("multiplied by a %s polynomial of degree %d", X.Type(), s.Degree())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ring: N=%d Q=%v\n", r.N(), r.Q())
			fmt.Fprintf(out, "degree: %d\n", prod.Degree())
			fmt.Fprintf(out, "canonical: %t\n", r.IsCanonical(prod))

			if flags.verbose {
				fmt.Fprintf(out, "a: %v\ns: %v\na*s: %v\n", pa, s, prod)
			}

			st, err := ring.PolyStats(r.N(), prod)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, st)

			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.dist, "dist", "d", "binary", "distribution of s (binary, gaussian, uniform)")
	cmd.Flags().BoolVar(&flags.noModQ, "no-mod-q", false, "skip the reduction of the coefficients modulo Q")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print the polynomials")

	return cmd
}
