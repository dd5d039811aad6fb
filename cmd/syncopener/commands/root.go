// Package commands implements the CLI commands for syncopener.
package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/syncopener/cmd"
	"github.com/thoreinstein/syncopener/internal/config"
	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/opener"
	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/paths"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// workspaceFlag holds the value of the -w/--workspace flag.
var workspaceFlag string

// matchFlag holds the value of the --match flag.
var matchFlag string

// settings holds the loaded tool settings.
var settings *config.Settings

// configLoadErr holds any error that occurred during settings loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "",
		"workspace root (default: nearest directory with a pairs file or .git)")
	rootCmd.PersistentFlags().StringVar(&matchFlag, "match", "",
		"how files are matched to directories: segment, substring (default from settings)")
	_ = viper.BindPFlag(config.KeyMatch, rootCmd.PersistentFlags().Lookup("match"))

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("syncopener version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	settings, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "syncopener",
	Short: "Open a file's companion in the paired directory",
	Long: `syncopener keeps companion files side by side. When you open a file in one
directory of a configured pair, it finds the file with the same name in the
other directory, converted to that directory's naming convention and
extension, and opens it next to the first.

Pairs are read from .syncopener (JSON) at the workspace root, or from
.syncopener.yaml / .syncopener.toml.`,
	Example: `  # Create a starter pairs file
  syncopener init

  # Print the counterpart of a file
  syncopener resolve src/components/UserCard.tsx

  # Open the counterpart in your editor
  syncopener open src/components/UserCard.tsx

  # Serve an editor extension over stdio
  syncopener serve

  See Also: syncopener doctor, syncopener name`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("SYNCOPENER_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	primaryHandler := logging.NewFormatHandler(logging.Format(logFormat), cmd.ErrOrStderr(), opts)

	handler := primaryHandler
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handler = logging.NewFanout(primaryHandler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports settings that failed to load.
func checkConfig(cmd *cobra.Command) error {
	// help, version and doctor must work with broken settings
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// workspaceRoot returns the --workspace flag or the nearest directory at or
// above start that holds a pairs file or a .git directory.
func workspaceRoot(start string) (string, error) {
	if workspaceFlag != "" {
		root, err := filepath.Abs(workspaceFlag)
		if err != nil {
			return "", errors.NewUserError(err, "check the --workspace path")
		}
		return root, nil
	}

	if start == "" {
		start = "."
	}
	markers := append(pairs.FileNames(), ".git")
	root, err := paths.FindUp(start, markers...)
	if err != nil {
		return "", errors.NewUserError(err, "Run: syncopener init, or pass --workspace")
	}
	return root, nil
}

// loadPairs reads the pairs file of root with CLI-friendly errors.
func loadPairs(root string) (*pairs.Config, error) {
	cfg, err := pairs.Load(root)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, errors.ErrNotFound):
		return nil, errors.NewUserError(err, "Run: syncopener init")
	default:
		return nil, errors.NewConfigError(err)
	}
}

// newResolver builds the resolver described by the settings.
func newResolver() (*resolve.Resolver, error) {
	s := settings
	if s == nil {
		s = &config.Settings{}
	}
	r, err := s.Resolver()
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return r, nil
}

// settleDelay returns the configured settle delay.
func settleDelay() time.Duration {
	if settings == nil {
		return opener.DefaultSettleDelay
	}
	return settings.SettleDelay
}

// Execute runs the root command. SIGINT and SIGTERM cancel its context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return errors.Wrap(rootCmd.ExecuteContext(ctx), "executing root command")
}
