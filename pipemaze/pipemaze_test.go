package pipemaze

import (
	"errors"
	"testing"
)

func TestParts(t *testing.T) {
	for _, tt := range examples {
		got1, err := Part1(tt.input)
		if err != nil {
			t.Errorf("%s: Part1: %s", tt.name, err)
		} else if got1 != tt.farthest {
			t.Errorf("%s: Part1: got %d; want %d", tt.name, got1, tt.farthest)
		}
		got2, err := Part2(tt.input)
		if err != nil {
			t.Errorf("%s: Part2: %s", tt.name, err)
		} else if got2 != tt.enclosed {
			t.Errorf("%s: Part2: got %d; want %d", tt.name, got2, tt.enclosed)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	for _, tt := range examples {
		a0, err := Solve(tt.input)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		a1, err := Solve(tt.input)
		if err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		want := Answer{Farthest: tt.farthest, Enclosed: tt.enclosed}
		if a0 != want || a1 != want {
			t.Errorf("%s: got %+v then %+v; want %+v", tt.name, a0, a1, want)
		}
	}
}

func TestPartErrors(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  error
	}{
		{"", ErrEmptyInput},
		{"S-7\n|#|\nL-J", ErrInvalidSymbol},
		{"F-7\n|.|\nL-J", ErrNoStart},
		{"S..\n...", ErrNoPath},
		{"S-7\n|.|\nL-|", ErrInvalidPath},
	} {
		if _, err := Part1(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Part1(%q): got error %v; want %v", tt.input, err, tt.want)
		}
		if _, err := Part2(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Part2(%q): got error %v; want %v", tt.input, err, tt.want)
		}
		if _, err := Solve(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Solve(%q): got error %v; want %v", tt.input, err, tt.want)
		}
	}
}

func BenchmarkPart1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Part1(junkLoop); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPart2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Part2(junkLoop); err != nil {
			b.Fatal(err)
		}
	}
}
