package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/window-getter/internal/config"
	"github.com/mj1618/window-getter/internal/logging"
	"github.com/mj1618/window-getter/internal/output"
	"github.com/mj1618/window-getter/internal/proctable"
	"github.com/mj1618/window-getter/internal/version"
	"github.com/mj1618/window-getter/window"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "window-getter",
	Short: "List on-screen windows and their properties",
	Long: `List the windows of the current desktop session with their id, title,
bounds and owning process, on macOS (CoreGraphics window list) and Windows
(top-level HWNDs).

Defaults can be set in the environment with the WINDOW_GETTER_ prefix, e.g.
WINDOW_GETTER_FORMAT=json. Flags take precedence.`,
	SilenceUsage: true,
}

// Set by the root command before any subcommand runs.
var (
	cfg    = config.Default()
	logger = logging.Nop()
)

// Replaced in tests.
var (
	newSource    = window.Default
	ownerRunning = proctable.Checker
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default $WINDOW_GETTER_FORMAT or yaml)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default $WINDOW_GETTER_LOG_LEVEL or warn)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty || cfg.Pretty

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		lc := logging.DefaultConfig()
		lc.Level, lc.Development = level, cfg.LogDev
		l, err := logging.New(lc)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger = l
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}
}

// openSource returns the window source for the current platform with DPI
// awareness enabled, logging the failure kind when there is none.
func openSource() (*window.Source, error) {
	src, err := newSource()
	if err != nil {
		logger.Error("no window backend", logging.ErrorFields(err)...)
		return nil, err
	}
	if err := src.EnableDPIAwareness(); err != nil {
		logger.Debug("per-monitor DPI awareness unavailable", zap.Error(err))
	}
	return src, nil
}

// logRecordErrors reports per-window accessor failures at debug level.
func logRecordErrors(id uint32, errs map[string]string) {
	for field, msg := range errs {
		logger.Debug("window accessor failed", logging.WindowError(id, field, msg)...)
	}
}

// warnIfNoAccess notes that titles and owner names may be empty.
func warnIfNoAccess(src *window.Source) bool {
	granted := src.HasScreenCaptureAccess()
	if !granted {
		logger.Warn("screen capture access not granted; titles may be empty",
			zap.String("hint", "run `window-getter permission --request`"))
	}
	return granted
}
