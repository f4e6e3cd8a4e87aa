package pipemaze

// Fixtures are indented on purpose: Parse must ignore the leading spaces.

const squareLoop = `.....
	.S-7.
	.|.|.
	.L-J.
	.....`

const complexLoop = `..F7.
	.FJ|.
	SJ.L7
	|F--J
	LJ...`

// Pipes next to the loop that aren't part of it.
const clutteredSquareLoop = `-L|F7
	7S-7|
	L|7||
	-L-J|
	L|-JF`

const gapLoop = `...........
	.S-------7.
	.|F-----7|.
	.||.....||.
	.||.....||.
	.|L-7.F-J|.
	.|..|.|..|.
	.L--J.L--J.
	...........`

// The middle pocket is not enclosed: it reaches the outside by squeezing
// between the 7 and F pipes.
const squeezeLoop = `..........
	.S------7.
	.|F----7|.
	.||....||.
	.||....||.
	.|L-7F-J|.
	.|..||..|.
	.L--JL--J.
	..........`

const largerLoop = `.F----7F7F7F7F-7....
	.|F--7||||||||FJ....
	.||.FJ||||||||L7....
	FJL7L7LJLJ||LJ.L-7..
	L--J.L7...LJS7F-7L7.
	....F-J..F7FJ|L7L7L7
	....L7.F7||L7|.L7L7|
	.....|FJLJ|FJ|F7|.LJ
	....FJL-7.||.||||...
	....L---J.LJ.LJLJ...`

const junkLoop = `FF7FSF7F7F7F7F7F---7
	L|LJ||||||||||||F--J
	FL-7LJLJ||||||LJL-77
	F--JF--7||LJLJ7F7FJ-
	L---JF-JLJ.||-FJLJJ7
	|F|F-JF---7F7-L7L|7|
	|FFJF7L7F-JF7|JL---7
	7-L-JL7||F7|L7F-7F7|
	L.L7LFJ|||||FJL7||LJ
	L7JLJL-JLJLJL--JLJ.L`

// Loops that cover the whole grid boundary, traced in either direction.
const borderLoopCCW = `S-7
	|.|
	L-J`

const borderLoopCW = `F-S
	|.|
	L-J`

// A pipe north of the start points back at it but leads off the grid.
const strayStartLoop = `.|...
	.S-7.
	.|.|.
	.L-J.
	.....`

var examples = []struct {
	name     string
	input    string
	farthest int
	enclosed int
}{
	{"square", squareLoop, 4, 1},
	{"complex", complexLoop, 8, 1},
	{"cluttered square", clutteredSquareLoop, 4, 1},
	{"gap", gapLoop, 23, 4},
	{"squeeze", squeezeLoop, 22, 4},
	{"larger", largerLoop, 70, 8},
	{"junk", junkLoop, 80, 10},
	{"border ccw", borderLoopCCW, 4, 1},
	{"border cw", borderLoopCW, 4, 1},
	{"stray start pipe", strayStartLoop, 4, 1},
}
