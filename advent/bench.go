package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench DAY",
		Short: "Time repeated runs of a day's solutions",
		Args:  cobra.ExactArgs(1),
		RunE:  a.bench,
	}
	cmd.Flags().IntVarP(&a.iterations, "count", "n", 100, "Number of runs per part")
	cmd.Flags().StringVar(&a.fgprofPath, "fgprof", "", "Write a wall-clock profile (pprof format) to this file")
	return cmd
}

func (a *app) bench(_ *cobra.Command, args []string) (err error) {
	if a.iterations < 1 {
		return fmt.Errorf("-n must be positive (got %d)", a.iterations)
	}
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	input, err := a.loadInput(day)
	if err != nil {
		return err
	}

	if a.fgprofPath != "" {
		f, ferr := os.Create(a.fgprofPath)
		if ferr != nil {
			return ferr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err == nil {
				err = err1
			}
			if err1 := f.Close(); err == nil {
				err = err1
			}
			if err == nil {
				a.logger.Info("Wrote profile", zap.String("path", a.fgprofPath))
			}
		}()
	}

	start := time.Now()
	fmt.Fprintf(a.stdout, "day %d, input %s\n", day, humanize.Bytes(uint64(len(input))))
	for _, part := range a.parts {
		result, err := benchPart(solutions[day], part, input, a.iterations)
		if err != nil {
			return fmt.Errorf("part %d: %w", part, err)
		}
		fmt.Fprintf(a.stdout, "part %d: %s\n", part, result)
	}
	stats := &processStats{elapsed: time.Since(start)}
	if err := stats.readUsage(); err != nil {
		a.logger.Debug("No resource usage", zap.Error(err))
		fmt.Fprintf(a.stdout, "elapsed: %s\n", stats.elapsed.Round(time.Millisecond))
		return nil
	}
	fmt.Fprintln(a.stdout, stats)
	return nil
}

type benchResult struct {
	n       int
	elapsed time.Duration
}

func (r benchResult) perOp() time.Duration {
	return r.elapsed / time.Duration(r.n)
}

func (r benchResult) String() string {
	return fmt.Sprintf("%s runs, %s/op", humanize.Comma(int64(r.n)), r.perOp())
}

func benchPart(ss solutionSet, part int, input string, n int) (benchResult, error) {
	solution, err := ss.part(part)
	if err != nil {
		return benchResult{}, err
	}
	start := time.Now()
	for range n {
		if _, err := solution(input); err != nil {
			return benchResult{}, err
		}
	}
	return benchResult{n: n, elapsed: time.Since(start)}, nil
}

type processStats struct {
	elapsed     time.Duration
	cpuUsage    time.Duration // utime+stime
	maxRSSBytes int64
}

func (ps *processStats) String() string {
	return fmt.Sprintf(
		"elapsed: %s, cpu: %s, max RSS: %s",
		ps.elapsed.Round(time.Millisecond),
		ps.cpuUsage.Round(time.Millisecond),
		humanize.Bytes(uint64(ps.maxRSSBytes)),
	)
}
