package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/cli"
)

var (
	shellFile      string
	shellKeepGoing bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive the list with one command per line",
	Long: `Reads commands from stdin, or from --file, until EOF or "quit".
Type "help" inside the shell for the command list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		var in io.Reader = cmd.InOrStdin()
		prompt := ""
		if shellFile != "" {
			f, err := os.Open(shellFile)
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		} else if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			prompt = "todo> "
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		sh := cli.NewShell(newController(logger), cmd.OutOrStdout(), cmd.ErrOrStderr(), cli.Options{
			Group:     cfg.Group,
			KeepGoing: shellKeepGoing,
			Prompt:    prompt,
			Logger:    logger,
		})
		exitCode = sh.Run(ctx, in)
		return nil
	},
}

func init() {
	shellCmd.Flags().StringVarP(&shellFile, "file", "f", "", "read commands from this file instead of stdin")
	shellCmd.Flags().BoolVar(&shellKeepGoing, "keep-going", false, "continue after a failing command")
	shellCmd.Flags().Bool("group", false, "ls groups items by pending/done")
}
