package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/bighelp/internal/adapters/command"
	"github.com/felixgeelhaar/bighelp/internal/adapters/logging"
	"github.com/felixgeelhaar/bighelp/internal/config"
	"github.com/felixgeelhaar/bighelp/internal/domain/actions"
	"github.com/felixgeelhaar/bighelp/internal/domain/probe"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/ports"
	"github.com/felixgeelhaar/bighelp/internal/tui"
)

var (
	// Global flags
	cfgFile      string
	verbose      bool
	logFile      string
	probeTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "bighelp",
	Short: "A friendly terminal assistant for learning Linux commands",
	Long: `BigHelp teaches Linux terminal commands through menus.

Run it without arguments to open the interactive tutorial. Browse the
basic, network and system commands, try examples in a safe demo
terminal, and run a few real checks on your computer:
  Tutorials → Command → Details → Try it`,
	Args:          cobra.NoArgs,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
	RunE:          runTUI,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/bighelp/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().DurationVar(&probeTimeout, "timeout", 0, "timeout for each system check (default from config, 5s)")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctx := cmd.Context()
	s.logger.Info(ctx, "starting bighelp",
		ports.F("version", version),
		ports.F("theme", s.cfg.Theme),
		ports.F("probe_timeout", s.cfg.ProbeTimeout.String()),
	)

	handlers := actions.NewHandlers(s.probe(), actionSettings(s.cfg), s.logger)
	err = tui.Run(ctx, tui.Deps{
		Store:   tutorial.Default(),
		Actions: handlers,
		Logger:  s.logger,
		Theme:   s.cfg.Theme,
		Version: version,
	})
	if err != nil && !errors.Is(err, tui.ErrInterrupted) {
		s.logger.Error(ctx, "bighelp stopped", ports.F("error", err.Error()))
	}
	return err
}

// session is what a command needs after flags are parsed.
type session struct {
	cfg     config.Config
	logger  ports.Logger
	closeFn func() error
}

func (r *session) close() {
	if r.closeFn != nil {
		_ = r.closeFn()
	}
}

// probe returns a system probe backed by real processes.
func (r *session) probe() *probe.Probe {
	runner := command.NewRealRunner()
	return probe.New(runner, runner,
		probe.WithTimeout(r.cfg.ProbeTimeout),
		probe.WithLogger(r.logger),
	)
}

func loadSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, closeFn, err := newLogger(cfg, logFile, verbose)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, closeFn: closeFn}, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	return applyFlagOverrides(cfg, probeTimeout)
}

func applyFlagOverrides(cfg config.Config, timeout time.Duration) (config.Config, error) {
	switch {
	case timeout < 0:
		return config.Config{}, &config.UserError{
			Code:       config.ErrCodeInvalidFlag,
			Message:    "timeout must not be negative",
			Context:    "--timeout",
			Suggestion: "Use a duration such as 5s",
		}
	case timeout > 0:
		cfg.ProbeTimeout = timeout
	}
	return cfg, nil
}

// newLogger returns a file logger when path is set. The TUI owns the
// terminal, so without a log file everything is discarded.
func newLogger(cfg config.Config, path string, debug bool) (ports.Logger, func() error, error) {
	if path == "" {
		return logging.NewNopLogger(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, &config.UserError{
			Code:       config.ErrCodeInvalidFlag,
			Message:    "cannot open log file",
			Context:    path,
			Suggestion: "Check that the directory exists and is writable",
			Underlying: err,
		}
	}

	level := cfg.Level()
	if debug {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(f),
		logging.WithLevel(level),
		logging.WithJSONFormat(cfg.LogFormat == "json"),
	)
	return logger, f.Close, nil
}

// actionSettings maps configuration onto the network actions.
func actionSettings(cfg config.Config) actions.Settings {
	return actions.Settings{
		ConnectivityHost: cfg.ConnectivityHost,
		WebsiteHosts:     append([]string(nil), cfg.WebsiteHosts...),
		Timeout:          cfg.ProbeTimeout,
	}
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var validationErrs *config.ValidationErrors
	if errors.As(err, &validationErrs) {
		parts := make([]string, 0, len(validationErrs.Errors()))
		for _, e := range validationErrs.Errors() {
			parts = append(parts, formatError(e))
		}
		return strings.Join(parts, "\n\n")
	}

	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	// Complete --config with YAML and TOML files
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("timeout", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"2s", "5s", "10s"}, cobra.ShellCompDirectiveNoFileComp
	})
}
