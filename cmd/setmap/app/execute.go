package app

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/setmap/pkg/constants"
)

// Execute runs the setmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	var gensSpec string

	rootCmd := &cobra.Command{
		Use:     "setmap <output-dir>",
		Short:   "Import Smogon sets and Showdown usage into calculator data files",
		Version: a.version,
		Long: `Setmap converts curated Smogon analysis sets and Showdown usage
statistics into the per-generation SETDEX_* JavaScript data files consumed
by the damage calculator.

Every imported set is validated against the format it was published for;
usage statistics only fill formats the curated data left uncovered.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupCommand(cmd, gensSpec)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd.Context(), args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.setmap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.Flags().StringVar(&gensSpec, "gens", "", "generations to import, e.g. \"9\", \"8,9\", \"1-3,7\" (default all)")
	rootCmd.Flags().StringVar(&a.config.SetsURL, "sets-url", "", "base URL for curated set collections")
	rootCmd.Flags().StringVar(&a.config.StatsURL, "stats-url", "", "base URL for usage statistics")
	rootCmd.Flags().DurationVar(&a.config.Timeout, "timeout", constants.DefaultHTTPTimeout, "per-request HTTP timeout")

	rootCmd.SetVersionTemplate("setmap {{.Version}}\n")

	return rootCmd
}

// setupCommand is called before the command runs: it folds parsed flags
// back into the config and reinitializes the logger.
func (a *App) setupCommand(cmd *cobra.Command, gensSpec string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel)

	if gensSpec != "" {
		gens, err := ParseGenerations(gensSpec)
		if err != nil {
			return err
		}
		a.config.Generations = gens
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// runImport drives one batch import into outputDir.
func (a *App) runImport(ctx context.Context, outputDir string) error {
	sm, err := a.Setmap()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancel()

	start := time.Now()
	result, err := sm.Import(ctx, outputDir)
	if err != nil {
		return err
	}

	a.logger.Info().
		Int("generations", len(result.Generations)).
		Int("sets", result.Sets()).
		Str("dir", outputDir).
		Dur("elapsed", time.Since(start)).
		Msg("Done")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
