package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aparfeno/smartdirs/internal/config"
)

var (
	cfgFile string
	verbose bool

	// appFS is the filesystem every command works against; tests swap in an
	// in-memory one.
	appFS afero.Fs = afero.NewOsFs()

	appViper *viper.Viper
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smartdirs",
	Short: "Create consistently named, auto-numbered directories",
	Long: `smartdirs creates directories whose names carry an auto-incremented
sequence number and, optionally, the current date and time formatted in a
configured timezone:

  1-data
  2-data-2025-05-17-8:08PM

Every successful creation is appended to a CSV log when a log directory is
configured in ~/.smartdirs.ini.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.NewViper(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		appViper = v
		logger = newLogger(verbose)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.smartdirs.ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("run_id", uuid.NewString()).
		Logger()
}
