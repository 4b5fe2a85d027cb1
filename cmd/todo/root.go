package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

var flagConfigDir string

// exitCode is what the process exits with once the command returns cleanly.
var exitCode = exitSuccess

// cfg is resolved in PersistentPreRunE so every subcommand sees it.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "An in-memory todo list for the terminal",
	Long: `todo keeps a todo list for the length of one session.
Run without a subcommand for the interactive view, or use "todo shell"
to drive the same list with line commands.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(flagConfigDir, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		if !ui.SetTheme(cfg.Theme) {
			ui.Fail(os.Stderr, "unknown theme "+cfg.Theme+", using classic")
		}
		ui.SetColorMode(cfg.Color)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// stderr would draw over the alternate screen
		logger, closeLog, err := newLogger(cfg, io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		ctrl := newController(logger)
		logger.Info("tui started", "filter", ctrl.Filter())
		tui.SetPlain(ui.ColorDisabled())
		return tui.Run(ctrl, logger)
	},
}

// Execute runs the root command and exits with its code.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(exitError)
	}
	os.Exit(exitCode)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: "+config.DefaultDir()+")")
	pf.String("theme", "classic", "color theme: classic, neon or mono")
	pf.String("filter", "all", "initial view: all, active or completed")
	pf.String("color", "auto", "colored output: auto, always or never")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("log-file", "", "write logs to this file")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
}

// newController builds the session's one store and its controller.
func newController(logger *slog.Logger) *view.Controller {
	return view.New(store.New(),
		view.WithLogger(logger),
		view.WithFilter(cfg.Filter),
		view.WithOnChange(func() { logger.Debug("state changed") }),
	)
}

// newLogger writes to the configured log file, or to fallback when none is set.
func newLogger(c config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	w, closeFn := fallback, func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
