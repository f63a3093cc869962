// Command sparsegraph shows sparse coordinate files as heat maps.
//
//	sparsegraph thc-4.sparse:27 taxol-4.sparse:23 pin1ppiase-4.sparse:21 kinase-4.sparse:21
//	sparsegraph --offset 1 --out thc.png thc-8_dif.sparse:27
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sparsegraph/app"
	"sparsegraph/internal/buildinfo"
	"sparsegraph/internal/logging"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "sparsegraph [FILE[:SIZE]...]",
	Short: "Show up to four sparse matrices as heat maps",
	Long: `Reads sparse coordinate files ("<row> <col> <value>" per line) and
draws each as a white-to-black heat map. One file fills the window; two to
four share a 2x2 grid. With --out the figure is written as a PNG instead.`,
	Args:          cobra.MaximumNArgs(4),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "sparsegraph", buildinfo.String())
	},
}

func init() {
	f := rootCmd.Flags()
	f.AddFlagSet(app.Flags())

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json) with panels and defaults")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	app.SetDefaults(v)
	_ = v.BindPFlags(f)
	_ = v.BindPFlags(pf)

	log.Logger, _ = logging.New("")

	rootCmd.AddCommand(versionCmd)
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	v.SetEnvPrefix("SPARSEGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Str("config", path).Msg("cannot read config file")
		}
	}
}

func run(_ *cobra.Command, args []string) error {
	logger, err := logging.New(v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.Logger = logger

	cfg, err := app.LoadConfig(v, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx, cfg, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Fatal().Err(err).Msg("sparsegraph failed")
	}
}
