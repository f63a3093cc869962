// Command overlap computes the overlap integrals of a molecular input
// file and writes the reports its commands ask for next to it.
//
//	overlap thc.inp   # writes thc.out, and thc.ints, thc.sparse, thc.orthog on request
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sparsegraph/internal/logging"
	"sparsegraph/internal/textio"
	"sparsegraph/molinput"
	"sparsegraph/overlap"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "overlap INPUT",
	Short: "Compute Gaussian overlap integrals and sparsity",
	Args:  cobra.ExactArgs(1),
	Run:   run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level")
}

func run(_ *cobra.Command, args []string) {
	logger, err := logging.New(flagLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	path := args[0]
	var in *molinput.Input
	err = textio.ReadFile(path, func(f *os.File) error {
		in, err = molinput.Parse(f)
		return err
	})
	if err != nil {
		logger.Fatal().Err(err).Str("input", path).Msg("cannot read input")
	}

	prefix := overlap.Prefix(path)
	if err := overlap.Run(in, prefix, logger); err != nil {
		logger.Fatal().Err(err).Str("input", path).Msg("overlap failed")
	}
	logger.Info().Str("out", prefix+".out").Msg("done")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
