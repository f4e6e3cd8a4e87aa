package pipemaze

// Part1 returns the number of steps along the loop from the start cell to
// the point farthest from it.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	l, err := Trace(g)
	if err != nil {
		return 0, err
	}
	return l.Farthest(), nil
}

// Part2 returns the number of cells enclosed by the loop.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	l, err := Trace(g)
	if err != nil {
		return 0, err
	}
	r, err := Classify(g, l)
	if err != nil {
		return 0, err
	}
	return r.InnerCount, nil
}

type Answer struct {
	Farthest int
	Enclosed int
}

// Solve runs both parts, each on its own parse of input.
func Solve(input string) (Answer, error) {
	var a Answer
	var err error
	if a.Farthest, err = Part1(input); err != nil {
		return Answer{}, err
	}
	if a.Enclosed, err = Part2(input); err != nil {
		return Answer{}, err
	}
	return a, nil
}
