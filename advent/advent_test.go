package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....
`

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := &app{
		cacheDir: t.TempDir(),
		parts:    []int{1, 2},
		logger:   zap.NewNop(),
		stdin:    strings.NewReader(""),
		stdout:   &out,
	}
	a.conf.Year = 2023
	return a, &out
}

func TestRegisterDuplicate(t *testing.T) {
	require.Panics(t, func() {
		register(10, intSolution(func(string) (int, error) { return 0, nil }), nil)
	})
}

func TestRegisteredDays(t *testing.T) {
	require.Contains(t, registeredDays(), 10)
	days := registeredDays()
	for i := 1; i < len(days); i++ {
		require.Less(t, days[i-1], days[i])
	}
}

func TestParseDay(t *testing.T) {
	for _, s := range []string{"10", "day10"} {
		day, err := parseDay(s)
		require.NoError(t, err, s)
		require.Equal(t, 10, day)
	}
	for _, s := range []string{"", "ten", "99"} {
		_, err := parseDay(s)
		require.Error(t, err, s)
	}
}

func TestSolutionSetPart(t *testing.T) {
	ss := solutionSet{part1: intSolution(func(string) (int, error) { return 1, nil })}
	_, err := ss.part(1)
	require.NoError(t, err)
	_, err = ss.part(2)
	require.ErrorContains(t, err, "not yet implemented")
	_, err = ss.part(3)
	require.Error(t, err)
}

func TestRunParts(t *testing.T) {
	a, out := testApp(t)
	require.NoError(t, a.runParts(10, []int{1, 2}, squareLoop))
	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "Solution for part 1 completed in "), lines[0])
	require.Equal(t, "4", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "Solution for part 2 completed in "), lines[2])
	require.Equal(t, "1", lines[3])
}

func TestRunPartsFailure(t *testing.T) {
	a, out := testApp(t)
	err := a.runParts(10, []int{1}, "S.\n..")
	require.ErrorIs(t, err, errFailed)
	require.Contains(t, out.String(), "Solution for part 1 failed: pipemaze: fewer than two pipes")
}

func TestLoadInputNotCached(t *testing.T) {
	a, _ := testApp(t)
	_, err := a.loadInput(10)
	require.ErrorContains(t, err, "advent2023 import 10 FILE")
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte(squareLoop), 0o644))
	config := filepath.Join(dir, "config.ini")
	cacheDir := filepath.Join(dir, "cache")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		a := &app{stdin: strings.NewReader(squareLoop), stdout: &out}
		cmd := newRootCmd(a)
		cmd.SetArgs(append([]string{"--config", config, "--cache-dir", cacheDir}, args...))
		require.NoError(t, cmd.Execute(), "%v", args)
		return out.String()
	}

	out := run("--input", input, "--part", "1", "10")
	require.Contains(t, out, "Solution for part 1 completed")
	require.NotContains(t, out, "part 2")

	out = run("--input", "-", "10")
	require.Contains(t, out, "Solution for part 2 completed")

	out = run("import", "10", input)
	require.Equal(t, filepath.Join(cacheDir, "y2023d10.txt")+"\n", out)

	out = run("--part", "2", "10")
	require.True(t, strings.HasSuffix(out, ":\n1\n"), out)

	// Every run gets squareLoop on stdin.
	require.NoError(t, os.Remove(filepath.Join(cacheDir, "y2023d10.txt")))
	out = run("import", "10", "-")
	require.Equal(t, filepath.Join(cacheDir, "y2023d10.txt")+"\n", out)
	b, err := os.ReadFile(filepath.Join(cacheDir, "y2023d10.txt"))
	require.NoError(t, err)
	require.Equal(t, squareLoop, string(b))
	out = run("--part", "1", "10")
	require.True(t, strings.HasSuffix(out, ":\n4\n"), out)

	out = run("list")
	require.Contains(t, out, "day 10 (parts 1, 2)\n")

	out = run("bench", "--count", "3", "10")
	require.Contains(t, out, "part 1: 3 runs, ")
	require.Contains(t, out, "part 2: 3 runs, ")

	profile := filepath.Join(dir, "fgprof.pprof")
	run("bench", "-n", "1", "--fgprof", profile, "10")
	fi, err := os.Stat(profile)
	require.NoError(t, err)
	require.NotZero(t, fi.Size())
}

func TestREPLLine(t *testing.T) {
	a, out := testApp(t)
	a.inputPath = "-"
	a.stdin = strings.NewReader(squareLoop)

	quit, err := a.replLine("10 2")
	require.NoError(t, err)
	require.False(t, quit)
	require.True(t, strings.HasSuffix(out.String(), ":\n1\n"), out.String())

	out.Reset()
	quit, err = a.replLine("list")
	require.NoError(t, err)
	require.False(t, quit)
	require.Contains(t, out.String(), "day 10")

	quit, err = a.replLine("   ")
	require.NoError(t, err)
	require.False(t, quit)

	_, err = a.replLine("10 1 2")
	require.Error(t, err)
	_, err = a.replLine("10 x")
	require.Error(t, err)
	_, err = a.replLine("31")
	require.Error(t, err)

	quit, err = a.replLine("quit")
	require.NoError(t, err)
	require.True(t, quit)
}

func TestBenchProfileLog(t *testing.T) {
	for _, tt := range []struct {
		input   string
		wantErr bool
		wantLog int
	}{
		{squareLoop, false, 1},
		{"S.\n..", true, 0},
	} {
		a, _ := testApp(t)
		core, logs := observer.New(zap.InfoLevel)
		a.logger = zap.New(core)
		a.inputPath = "-"
		a.stdin = strings.NewReader(tt.input)
		a.iterations = 1
		a.fgprofPath = filepath.Join(t.TempDir(), "fgprof.pprof")

		err := a.bench(nil, []string{"10"})
		if tt.wantErr {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
		}
		require.Equal(t, tt.wantLog, logs.FilterMessage("Wrote profile").Len(), "input %q", tt.input)
	}
}

func TestBenchResult(t *testing.T) {
	r := benchResult{n: 1500, elapsed: 3000}
	require.Equal(t, "1,500 runs, 2ns/op", r.String())
}
