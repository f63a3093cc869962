// Command mkgeom writes a molecular input file with randomly placed atoms.
package main

import (
	"bufio"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sparsegraph/geomgen"
	"sparsegraph/internal/logging"
	"sparsegraph/internal/textio"
)

var (
	flagOut      string
	flagLogLevel string
	cfg          = geomgen.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "mkgeom",
	Short: "Generate a random geometry input file",
	Args:  cobra.NoArgs,
	Run:   run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagOut, "out", "o", "huge.inp", "output input file")
	f.IntVar(&cfg.Points, "points", cfg.Points, "number of random coordinates; every three make an atom")
	f.StringVar(&cfg.Label, "label", cfg.Label, "atom label")
	f.Float64Var(&cfg.Exponent, "exponent", cfg.Exponent, "Gaussian exponent for the label")
	f.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "integral threshold written to the file")
	f.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 uses the current time)")
	f.StringVar(&flagLogLevel, "log-level", "info", "log level")
}

func run(*cobra.Command, []string) {
	logger, err := logging.New(flagLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	var atoms int
	err = textio.WriteFile(flagOut, func(w *bufio.Writer) error {
		atoms, err = geomgen.Generate(w, cfg)
		return err
	})
	if err != nil {
		logger.Fatal().Err(err).Str("out", flagOut).Msg("cannot write geometry")
	}
	logger.Info().Str("out", flagOut).Int("atoms", atoms).Uint64("seed", cfg.Seed).Msg("geometry written")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
