package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/tuneinsight/polyring/ring"
	"github.com/tuneinsight/polyring/utils"
)

const maxBins = 200

// histogramBins returns the number of bins of the histogram of values.
// Integer data spanning at most maxBins values gets one bin per integer,
// reported by integral, other data gets the Freedman-Diaconis number of bins.
func histogramBins(values []float64) (nbins int, integral bool) {

	n := len(values)
	if n < 2 {
		return 1, false
	}

	minv, _ := stats.Min(values)
	maxv, _ := stats.Max(values)

	integral = true
	for _, v := range values {
		if v != math.Trunc(v) {
			integral = false
			break
		}
	}

	if integral && maxv-minv < maxBins {
		return int(maxv-minv) + 1, true
	}

	iqr, err := stats.InterQuartileRange(values)
	if err != nil || iqr <= 0 {
		return utils.Min(n, maxBins), false
	}

	width := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	return utils.Clamp(int(math.Ceil((maxv-minv)/width)), 1, maxBins), false
}

// computeHistogram returns the nbins+1 edges and nbins counts of the histogram of values.
// Integral histograms have unit bins centered on the integers.
func computeHistogram(values []float64, nbins int, integral bool) (edges []float64, counts []int) {

	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}

	nbins = utils.Max(nbins, 1)

	minv, _ := stats.Min(values)
	maxv, _ := stats.Max(values)

	width := (maxv - minv) / float64(nbins)

	if integral {
		minv -= 0.5
		width = 1
	}

	if width <= 0 {
		width = 1
	}

	edges = make([]float64, nbins+1)
	for i := range edges {
		edges[i] = minv + float64(i)*width
	}

	counts = make([]int, nbins)
	for _, v := range values {
		idx := utils.Clamp(int(math.Floor((v-minv)/width)), 0, nbins-1)
		counts[idx]++
	}

	return
}

func newHistogramChart(title string, values []float64, st ring.CoeffStats) *charts.Bar {

	nbins, integral := histogramBins(values)
	edges, counts := computeHistogram(values, nbins, integral)

	xLabels := make([]string, len(counts))
	items := make([]opts.BarData, len(counts))
	for i := range counts {
		xLabels[i] = fmt.Sprintf("%.2f", 0.5*(edges[i]+edges[i+1]))
		items[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: st.String()}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}

// renderPage writes the HTML rendering of page to path.
func renderPage(path string, page *components.Page) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot render %s: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot render %s: %w", path, err)
	}

	return nil
}

func newHistogramCommand(a *app) *cobra.Command {
	var flags sampleOptions

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Render an HTML histogram of sampled coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			r, err := a.cfg.Ring.NewRing()
			if err != nil {
				return err
			}

			page := components.NewPage()

			dists := []string{flags.dist}
			if flags.dist == "all" {
				dists = []string{"binary", "gaussian", "uniform"}
			}

			for _, name := range dists {

				X, err := a.distribution(name)
				if err != nil {
					return err
				}

				polys, err := a.samplePolys(cmd, r, X, flags.count, flags.size, flags.batch)
				if err != nil {
					return err
				}

				size := sizeOrN(flags.size, r)
				values := make([]float64, 0, size*len(polys))
				for _, p := range polys {
					for i := 0; i < size; i++ {
						values = append(values, p.Coeff(i))
					}
				}

				st, err := ring.NewCoeffStats(values)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", X.Type(), st)
				page.AddCharts(newHistogramChart(fmt.Sprintf("%s N=%d Q=%v", X.Type(), r.N(), r.Q()), values, st))
			}

			if err := renderPage(flags.out, page); err != nil {
				return err
			}

			a.log.Notice("wrote histogram to %s", flags.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.dist, "dist", "d", "all", "distribution (binary, gaussian, uniform, all)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 16, "number of polynomials per distribution")
	cmd.Flags().IntVarP(&flags.size, "size", "s", 0, "number of sampled coefficients, N if zero")
	cmd.Flags().BoolVar(&flags.batch, "batch", false, "sample concurrently, one keyed stream per polynomial")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "histogram.html", "HTML output file")

	return cmd
}
