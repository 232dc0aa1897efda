package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csvtrim/csvtrim/internal/config"
	"github.com/csvtrim/csvtrim/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logFile    string
	verbose    bool
	debug      bool
	quiet      bool
}

func main() {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "csvtrim",
		Short: "Clean tabular CSV data with reusable trimming profiles",
		Long: `csvtrim applies named, persisted trimming profiles to CSV and XLSX files:
blank-row removal, prefix-based row filtering, column deletion, datetime
normalization, and header promotion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.quiet, "quiet", false, "Suppress all non-error output")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newTrimCmd(flags))
	rootCmd.AddCommand(newProfilesCmd(flags))

	// Custom help command
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(os.Stdout, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(os.Stdout, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(os.Stdout, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupEnv loads the config file (creating a default one on first run) and
// builds the logger, with command-line flags winning over config values.
func setupEnv(flags *globalFlags) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(flags.configPath, true)
	if err != nil {
		return nil, nil, err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	switch {
	case flags.quiet:
		level = logging.LogLevelSilent
	case flags.debug:
		level = logging.LogLevelDebug
	case flags.verbose:
		level = logging.LogLevelVerbose
	}

	logFile := cfg.LogFile
	if flags.logFile != "" {
		logFile = flags.logFile
	}

	log, err := logging.NewLogger(level, logFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
