package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/advent2023/inputcache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	log.SetFlags(0)
	a := &app{stdin: os.Stdin, stdout: os.Stdout}
	if err := newRootCmd(a).Execute(); err != nil {
		log.Fatal(err)
	}
}

// A Solution computes one part's answer from the puzzle input.
type Solution func(input string) (string, error)

type solutionSet struct {
	part1, part2 Solution
}

var solutions = make(map[int]solutionSet)

// register adds the solutions for a day. part2 may be nil while only the
// first part is solved.
func register(day int, part1, part2 Solution) {
	if _, ok := solutions[day]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", day))
	}
	if part1 == nil {
		panic(fmt.Sprintf("day %d registered without a part 1 solution", day))
	}
	solutions[day] = solutionSet{part1, part2}
}

// intSolution adapts a solver that returns a number.
func intSolution(fn func(string) (int, error)) Solution {
	return func(input string) (string, error) {
		n, err := fn(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

func registeredDays() []int {
	var days []int
	for day := range solutions {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimPrefix(s, "day"))
	if err != nil {
		return 0, fmt.Errorf("bad day %q", s)
	}
	if _, ok := solutions[day]; !ok {
		return 0, fmt.Errorf("no solution registered for day %d", day)
	}
	return day, nil
}

func (ss solutionSet) part(n int) (Solution, error) {
	switch n {
	case 1:
		return ss.part1, nil
	case 2:
		if ss.part2 == nil {
			return nil, errors.New("solution for part 2 not yet implemented")
		}
		return ss.part2, nil
	}
	return nil, fmt.Errorf("part must be 1 or 2 (got %d)", n)
}

var errFailed = errors.New("some parts failed")

type app struct {
	verbose    bool
	configPath string
	cacheDir   string
	inputPath  string
	parts      []int
	iterations int
	fgprofPath string

	conf   inputcache.Config
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "advent2023 DAY",
		Short: "Run Advent of Code 2023 solutions",
		Long: `Runs the solution for one day of Advent of Code 2023 against that day's
puzzle input. The input is read from --input or from the local input
cache (see the import command).`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runDay,
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output")
	pf.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/advent2023/config.ini)")
	pf.StringVar(&a.cacheDir, "cache-dir", "", "Input cache directory (overrides $"+inputcache.CacheDirEnv+" and the config file)")
	pf.StringVarP(&a.inputPath, "input", "i", "", "Read the puzzle input from this file (- for stdin) instead of the cache")
	pf.IntSliceVarP(&a.parts, "part", "p", []int{1, 2}, "Which parts to run (1, 2, or both)")

	root.AddCommand(
		newListCmd(a),
		newImportCmd(a),
		newBenchCmd(a),
		newREPLCmd(a),
	)
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	a.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	path := a.configPath
	if path == "" {
		path, err = inputcache.DefaultConfigPath()
		if err != nil {
			a.logger.Debug("No default config path", zap.Error(err))
			a.conf = inputcache.Config{Year: inputcache.DefaultYear}
			return nil
		}
	}
	a.conf, err = inputcache.LoadConfig(path)
	if err != nil {
		return err
	}
	a.logger.Debug("Loaded config", zap.String("path", path), zap.Int("year", a.conf.Year))
	return nil
}

func (a *app) openCache() (*inputcache.Cache, error) {
	dir, err := a.conf.ResolveCacheDir(a.cacheDir)
	if err != nil {
		return nil, err
	}
	return inputcache.Open(dir, a.logger)
}

// loadInput returns the puzzle input for day.
func (a *app) loadInput(day int) (string, error) {
	switch a.inputPath {
	case "":
	case "-":
		b, err := io.ReadAll(a.stdin)
		return string(b), err
	default:
		b, err := os.ReadFile(a.inputPath)
		return string(b), err
	}
	c, err := a.openCache()
	if err != nil {
		return "", err
	}
	input, err := c.Get(a.conf.Year, day)
	if errors.Is(err, inputcache.ErrNotCached) {
		return "", fmt.Errorf("%w (add it with: advent2023 import %d FILE)", err, day)
	}
	return input, err
}

func (a *app) runDay(_ *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	input, err := a.loadInput(day)
	if err != nil {
		return err
	}
	return a.runParts(day, a.parts, input)
}

// runParts runs the given parts of a day and prints their answers. Each
// part gets the input as a string and builds its own state from it.
func (a *app) runParts(day int, parts []int, input string) error {
	ss := solutions[day]
	var failed bool
	for _, part := range parts {
		solution, err := ss.part(part)
		if err != nil {
			return err
		}
		start := time.Now()
		answer, err := solution(input)
		elapsed := time.Since(start)
		a.logger.Debug("Ran solution",
			zap.Int("day", day),
			zap.Int("part", part),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		if err != nil {
			fmt.Fprintf(a.stdout, "Solution for part %d failed: %s\n", part, err)
			failed = true
			continue
		}
		fmt.Fprintf(a.stdout, "Solution for part %d completed in %s:\n%s\n", part, elapsed.Round(time.Microsecond), answer)
	}
	if failed {
		return errFailed
	}
	return nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have solutions",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			a.listDays()
		},
	}
}

func (a *app) listDays() {
	for _, day := range registeredDays() {
		parts := "1, 2"
		if solutions[day].part2 == nil {
			parts = "1"
		}
		fmt.Fprintf(a.stdout, "day %d (parts %s)\n", day, parts)
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import DAY FILE",
		Short: "Copy a puzzle input file into the input cache",
		Long: `Copies FILE into the input cache as the puzzle input for DAY.
If FILE is -, the input is read from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil || day < 1 || day > 25 {
				return fmt.Errorf("bad day %q", args[0])
			}
			c, err := a.openCache()
			if err != nil {
				return err
			}
			if args[1] == "-" {
				b, rerr := io.ReadAll(a.stdin)
				if rerr != nil {
					return rerr
				}
				err = c.Put(a.conf.Year, day, string(b))
			} else {
				err = c.Import(a.conf.Year, day, args[1])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, c.Path(a.conf.Year, day))
			return nil
		},
	}
}
