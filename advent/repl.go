package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run solutions interactively",
		Long: `Reads commands from a prompt:

  DAY [PART]   run a day's solutions (both parts unless PART is given)
  list         list the days that have solutions
  quit         exit`,
		Args: cobra.NoArgs,
		RunE: a.repl,
	}
}

func (a *app) repl(*cobra.Command, []string) error {
	config := &readline.Config{Prompt: "advent> "}
	if dir, err := a.conf.ResolveCacheDir(a.cacheDir); err == nil {
		config.HistoryFile = filepath.Join(dir, "history.txt")
	}
	l, err := readline.NewEx(config)
	if err != nil {
		return err
	}
	defer l.Close()
	a.stdout = l.Stdout()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := a.replLine(line)
		if err != nil && !errors.Is(err, errFailed) {
			fmt.Fprintln(a.stdout, err)
		}
		if quit {
			return nil
		}
	}
}

// replLine handles one line typed at the prompt. It reports whether the
// session should end.
func (a *app) replLine(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "list":
		a.listDays()
		return false, nil
	case "help":
		fmt.Fprintln(a.stdout, "commands: DAY [PART], list, quit")
		return false, nil
	}
	if len(fields) > 2 {
		return false, fmt.Errorf("usage: DAY [PART]")
	}
	day, err := parseDay(fields[0])
	if err != nil {
		return false, err
	}
	parts := []int{1, 2}
	if len(fields) == 2 {
		part, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("bad part %q", fields[1])
		}
		parts = []int{part}
	}
	input, err := a.loadInput(day)
	if err != nil {
		return false, err
	}
	a.logger.Debug("Running from prompt", zap.Int("day", day), zap.Ints("parts", parts))
	return false, a.runParts(day, parts, input)
}
