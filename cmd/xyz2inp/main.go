// Command xyz2inp turns an XYZ coordinate file into the geometry section
// of a molecular input file.
package main

import (
	"bufio"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sparsegraph/internal/logging"
	"sparsegraph/internal/textio"
	"sparsegraph/xyzconv"
)

var (
	flagIn       string
	flagOut      string
	flagHeader   bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "xyz2inp",
	Short: "Convert XYZ coordinates to a geom section",
	Args:  cobra.NoArgs,
	Run:   run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagIn, "in", "i", "thc.xyz", "XYZ input file")
	f.StringVarP(&flagOut, "out", "o", "thc.inp", "input file to write")
	f.BoolVar(&flagHeader, "xyz-header", false, "input starts with the atom count and comment lines")
	f.StringVar(&flagLogLevel, "log-level", "info", "log level")
}

func run(*cobra.Command, []string) {
	logger, err := logging.New(flagLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	var atoms int
	err = textio.ReadFile(flagIn, func(in *os.File) error {
		return textio.WriteFile(flagOut, func(w *bufio.Writer) error {
			atoms, err = xyzconv.Convert(in, w, xyzconv.Options{SkipHeader: flagHeader})
			return err
		})
	})
	if err != nil {
		logger.Fatal().Err(err).Str("in", flagIn).Msg("cannot convert")
	}
	logger.Info().Str("out", flagOut).Int("atoms", atoms).Msg("geometry written")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
