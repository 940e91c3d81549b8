package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyring/ring"
)

type sampleOptions struct {
	dist  string
	count int
	size  int
	batch bool
	out   string
}

// samplePolys draws count polynomials of X, with size coefficients each
// or N when size is zero.
func (a *app) samplePolys(cmd *cobra.Command, r *ring.Ring, X ring.DistributionParameters, count, size int, batch bool) (polys []*ring.Poly, err error) {

	if count < 1 {
		return nil, fmt.Errorf("invalid count %d: must be positive", count)
	}

	if size == 0 {
		size = r.N()
	}

	if batch {
		a.log.Info("sampling %d %s polynomials concurrently", count, X.Type())
		return ring.SampleBatch(cmd.Context(), a.cfg.Sampling.Key(), count, size, X)
	}

	sampler, err := a.sampler(X)
	if err != nil {
		return nil, err
	}

	a.log.Info("sampling %d %s polynomials from %s", count, X.Type(), a.cfg.Sampling.Source)

	polys = make([]*ring.Poly, count)
	for i := range polys {
		polys[i] = sampler.ReadNew(size)
	}
	return
}

func newSampleCommand(a *app) *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample random polynomials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			r, err := a.cfg.Ring.NewRing()
			if err != nil {
				return err
			}

			X, err := a.distribution(opts.dist)
			if err != nil {
				return err
			}

			polys, err := a.samplePolys(cmd, r, X, opts.count, opts.size, opts.batch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range polys {
				fmt.Fprintf(out, "poly %d: degree=%d\n", i, p.Degree())
			}

			st, err := ring.PolyStats(sizeOrN(opts.size, r), polys...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, st)

			if opts.out != "" {
				if err := writeContainer(opts.out, r.Literal(), X, polys); err != nil {
					return err
				}
				a.log.Notice("wrote %d polynomials to %s", len(polys), opts.out)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.dist, "dist", "d", "gaussian", "distribution (binary, gaussian, uniform)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of polynomials")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "number of sampled coefficients, N if zero")
	cmd.Flags().BoolVar(&opts.batch, "batch", false, "sample concurrently, one keyed stream per polynomial")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "CBOR output file")

	return cmd
}

func sizeOrN(size int, r *ring.Ring) int {
	if size == 0 {
		return r.N()
	}
	return size
}
