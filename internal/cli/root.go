package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vmsched/internal/config"
)

// rootOptions is shared by every subcommand of one command tree.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

// newRootCommand builds a fresh command tree; nothing is kept between trees.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "vmsched",
		Short:         "vmsched simulates batch task placement on a pool of virtual machines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.cfg, err = config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				opts.cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				opts.cfg.LogFormat = opts.logFormat
			}
			return setupLogging(opts.cfg)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "config.yml", "path to the YAML config file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(
		newRunCommand(opts),
		newAlgorithmsCommand(),
		newServeCommand(opts),
	)
	return rootCmd
}

func setupLogging(c config.Config) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
