package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string

	backend    string
	size       int
	multiplier int
	capacity   int
	name       string
	every      int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "slidingwindow",
		Short:         "slidingwindow pushes number streams through a fixed-size sliding window",
		Long:          "slidingwindow pushes number streams through a fixed-size sliding window and prints the retained values, rewind statistics and metrics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML window config file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format (text, json)")
	pf.StringVarP(&flags.backend, "backend", "b", "", "Storage backend (vector, array, generic)")
	pf.IntVarP(&flags.size, "size", "s", 0, "Window size")
	pf.IntVarP(&flags.multiplier, "multiplier", "m", 0, "Capacity multiplier for the vector backend")
	pf.IntVar(&flags.capacity, "capacity", 0, "Buffer capacity for the array and generic backends")
	pf.StringVar(&flags.name, "name", "", "Window name used in metrics and logs")
	pf.IntVarP(&flags.every, "every", "e", 0, "Print a row every N pushes once filled")

	rootCmd.AddCommand(newStreamCmd(flags))
	rootCmd.AddCommand(newSimulateCmd(flags))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slidingwindow %s\n", version)
		},
	})

	return rootCmd
}

// resolveConfig loads the config file and applies any flags set explicitly.
func (f *rootFlags) resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("backend") {
		cfg.Backend = f.backend
	}
	if changed("size") {
		cfg.Size = f.size
	}
	if changed("multiplier") {
		cfg.Multiplier = f.multiplier
	}
	if changed("capacity") {
		cfg.Capacity = f.capacity
	}
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("every") {
		cfg.Every = f.every
	}
	return cfg, cfg.Validate()
}

func (f *rootFlags) newLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	switch f.logFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", f.logFormat)
	}
	return logger, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Oops. An error while executing slidingwindow '%s'\n", err)
		os.Exit(1)
	}
}
