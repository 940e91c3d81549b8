// Command polyring samples, inspects and multiplies polynomials of the
// negacyclic ring R_q = Z_q[x]/(x^N + 1).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"github.com/tuneinsight/polyring/config"
	"github.com/tuneinsight/polyring/log"
	"github.com/tuneinsight/polyring/ring"
)

// app holds the state shared by the subcommands.
type app struct {
	configFile string
	logLevel   string

	cfg     *config.Config
	backend *log.Backend
	log     *logging.Logger
}

func (a *app) setup(cmd *cobra.Command) (err error) {

	if a.configFile == "" {
		a.cfg = config.Default()
	} else if a.cfg, err = config.LoadFile(a.configFile); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.logLevel != "" {
		a.cfg.Logging.Level = strings.ToUpper(a.logLevel)
	}

	// Logs go to stderr so that stdout only carries results.
	if a.backend, err = log.NewFromConfig(a.cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.log = a.backend.GetLogger("polyring")
	a.log.Debug("ring N=%d Q=%v, source %s", a.cfg.Ring.N, a.cfg.Ring.Q, a.cfg.Sampling.Source)
	return nil
}

func (a *app) teardown() error {
	if a.backend == nil {
		return nil
	}
	return a.backend.Close()
}

// distribution returns the distribution named by name, parameterized by the configuration.
func (a *app) distribution(name string) (ring.DistributionParameters, error) {
	switch strings.ToLower(name) {
	case "binary":
		return ring.Binary{}, nil
	case "gaussian":
		return a.cfg.Sampling.Gaussian(), nil
	case "uniform":
		return ring.Uniform{Modulus: a.cfg.Ring.Q}, nil
	default:
		return nil, fmt.Errorf("unknown distribution %q: want binary, gaussian or uniform", name)
	}
}

// sampler returns a sampler of X drawing from the configured source.
func (a *app) sampler(X ring.DistributionParameters) (ring.Sampler, error) {
	src, err := a.cfg.Sampling.NewSource()
	if err != nil {
		return nil, err
	}
	return ring.NewSampler(src, X)
}

func newRootCommand() *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:   "polyring",
		Short: "Polynomial ring arithmetic and sampling tool",
		Long: `polyring works in the ring R_q = Z_q[x]/(x^N + 1) configured by a TOML file.

It samples polynomials from the binary, gaussian and uniform distributions,
stores them in CBOR files, prints their statistics, renders histograms
of their coefficients and multiplies them in the ring.`,
		Example: `  # Sample 8 gaussian polynomials and store them
  polyring -c polyring.toml sample -d gaussian -n 8 -o e.cbor

  # Print the statistics of stored polynomials
  polyring inspect e.cbor

  # Render the histogram of 64 uniform polynomials
  polyring histogram -d uniform -n 64 -o uniform.html`,
		Version:       versioninfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "configuration file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR), overrides the configuration")

	cmd.AddCommand(
		newSampleCommand(a),
		newInspectCommand(a),
		newHistogramCommand(a),
		newMulModCommand(a),
	)

	return cmd
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
