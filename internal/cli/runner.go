package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/idilsaglam/todolist/internal/export"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// Exit codes.
const (
	CodeOK    = 0
	CodeError = 1
	CodeUsage = 2
)

// Options tune shell behavior.
type Options struct {
	Group     bool // ls groups by pending/done
	KeepGoing bool // continue after a failing command
	Prompt    string
	Logger    *slog.Logger
}

// Shell runs line commands against a controller.
type Shell struct {
	ctrl   *view.Controller
	out    io.Writer
	errOut io.Writer
	opt    Options
	quit   bool
}

func NewShell(ctrl *view.Controller, out, errOut io.Writer, opt Options) *Shell {
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{ctrl: ctrl, out: out, errOut: errOut, opt: opt}
}

// Run reads commands from in until EOF, quit, or ctx is done. It returns the
// last failing exit code, or 0.
func (s *Shell) Run(ctx context.Context, in io.Reader) int {
	// stops the reader goroutine when Run returns early
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-readCtx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()

	code := CodeOK
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			s.opt.Logger.Debug("shell stopped", "err", err)
			return code
		}
		if s.opt.Prompt != "" {
			fmt.Fprint(s.out, s.opt.Prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			s.opt.Logger.Debug("shell stopped", "err", ctx.Err())
			return code
		case ln, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					ui.Fail(s.errOut, "read: "+err.Error())
					return CodeError
				}
				return code
			}
			line = ln
		}

		lineNo++
		c := s.Exec(line)
		if c != CodeOK {
			code = c
			s.opt.Logger.Debug("command failed", "line", lineNo, "code", c)
			if !s.opt.KeepGoing {
				return code
			}
		}
		if s.quit {
			return code
		}
	}
}

// Exec dispatches one command line and returns an exit code (0 ok, 1 error, 2 usage).
func (s *Shell) Exec(line string) int {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return CodeOK
	}
	cmd, a := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "-h", "--help", "?":
		PrintHelp(s.out)
		return CodeOK

	case "quit", "exit":
		s.quit = true
		return CodeOK

	case "ls", "list":
		return s.doList()

	case "add":
		if len(a) == 0 {
			ui.Fail(s.errOut, "usage: add <title...>")
			return CodeUsage
		}
		return s.doAdd(strings.Join(a, " "))

	case "filter":
		if len(a) != 1 {
			ui.Fail(s.errOut, "usage: filter <all|active|completed>")
			return CodeUsage
		}
		return s.doFilter(a[0])

	case "done", "toggle":
		idx, code := s.parseIndex(cmd, a)
		if code != CodeOK {
			return code
		}
		return s.doToggle(idx)

	case "rm":
		idx, code := s.parseIndex(cmd, a)
		if code != CodeOK {
			return code
		}
		return s.doRemove(idx)

	case "edit":
		if len(a) == 0 {
			ui.Fail(s.errOut, "usage: edit <index> [title...]")
			return CodeUsage
		}
		idx, code := s.parseIndex(cmd, a[:1])
		if code != CodeOK {
			return code
		}
		return s.doEdit(idx, strings.Join(a[1:], " "))

	case "clear":
		n := s.ctrl.RemoveAllCompleted()
		ui.OK(s.out, fmt.Sprintf("cleared %d", n))
		return CodeOK

	case "all":
		if len(a) != 1 || (a[0] != "done" && a[0] != "undone") {
			ui.Fail(s.errOut, "usage: all <done|undone>")
			return CodeUsage
		}
		s.ctrl.SetAllTo(a[0] == "done")
		ui.OK(s.out, "all "+a[0])
		return CodeOK

	case "toggle-all":
		done := !s.ctrl.AllCompleted()
		s.ctrl.SetAllTo(done)
		if done {
			ui.OK(s.out, "all done")
		} else {
			ui.OK(s.out, "all undone")
		}
		return CodeOK

	case "export":
		if len(a) > 1 {
			ui.Fail(s.errOut, "usage: export [json|yaml]")
			return CodeUsage
		}
		format := ""
		if len(a) == 1 {
			format = a[0]
		}
		return s.doExport(format)
	}

	ui.Fail(s.errOut, "unknown command: "+cmd)
	if sug := suggest(cmd); sug != "" {
		ui.Hint(s.errOut, fmt.Sprintf("did you mean %q?", sug))
	} else {
		ui.Hint(s.errOut, "type `help` for the list of commands")
	}
	return CodeUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo shell - one command per line

Commands:
  add <title...>              Add a new item (title can be multiple words)
  ls                          List items in the current view
  filter <all|active|completed>
                              Switch the current view
  done <index>                Toggle done for item at 1-based index
  rm <index>                  Remove item at 1-based index
  edit <index> [title...]     Rename item; an empty title removes it
  clear                       Remove all completed items
  all <done|undone>           Mark every item done or open
  toggle-all                  Mark all done, or all open if already done
  export [json|yaml]          Print the full list
  help                        Show this help
  quit                        Leave the shell

Indexes refer to the list as shown by the last ls under the current filter.

Examples:
  add Buy milk
  filter active
  done 2
  edit 1 Buy oat milk
`)
}

// -------------- command impls ----------------

// parseIndex turns a 1-based view index argument into a 0-based one.
func (s *Shell) parseIndex(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail(s.errOut, fmt.Sprintf("usage: %s <index>", cmd))
		return 0, CodeUsage
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(s.errOut, cmd+": not a number: "+a[0])
		return 0, CodeUsage
	}
	visible := len(s.ctrl.CurrentList())
	if n < 1 || n > visible {
		ui.Fail(s.errOut, fmt.Sprintf("index out of range: have %d, got %d", visible, n))
		ui.Hint(s.errOut, "run `ls` to see valid indexes")
		return 0, CodeUsage
	}
	return n - 1, CodeOK
}

func (s *Shell) doAdd(title string) int {
	s.ctrl.SetInput(title)
	if !s.ctrl.AddTodo() {
		ui.Fail(s.errOut, "add: empty title")
		return CodeUsage
	}
	ui.OK(s.out, "added")
	return CodeOK
}

func (s *Shell) doFilter(name string) int {
	f, err := view.ParseFilter(name)
	if err != nil {
		ui.Fail(s.errOut, "filter: "+err.Error())
		return CodeUsage
	}
	s.ctrl.SetFilter(f)
	ui.OK(s.out, "showing "+f.String())
	return CodeOK
}

func (s *Shell) doToggle(idx int) int {
	td := s.ctrl.CurrentList()[idx]
	s.ctrl.Toggle(td.ID)
	ui.OK(s.out, "toggled")
	return CodeOK
}

func (s *Shell) doRemove(idx int) int {
	if !s.ctrl.RemoveAt(idx) {
		ui.Fail(s.errOut, "rm: nothing removed")
		return CodeError
	}
	ui.OK(s.out, "removed")
	return CodeOK
}

func (s *Shell) doEdit(idx int, title string) int {
	td := s.ctrl.CurrentList()[idx]
	s.ctrl.BeginEdit(td.ID)
	removing := strings.TrimSpace(title) == ""
	if !s.ctrl.CommitEdit(td.ID, title) {
		s.ctrl.CancelEdit(td.ID)
		ui.Fail(s.errOut, "edit: not applied")
		return CodeError
	}
	if removing {
		ui.OK(s.out, "removed")
	} else {
		ui.OK(s.out, "renamed")
	}
	return CodeOK
}

func (s *Shell) doExport(format string) int {
	f, err := export.ParseFormat(format)
	if err != nil {
		ui.Fail(s.errOut, "export: "+err.Error())
		return CodeUsage
	}
	if err := export.Write(s.out, f, s.ctrl.AllList()); err != nil {
		ui.Fail(s.errOut, "export: "+err.Error())
		return CodeError
	}
	return CodeOK
}
