package main

import "github.com/cespare/advent2023/pipemaze"

func init() {
	register(10, intSolution(pipemaze.Part1), intSolution(pipemaze.Part2))
}
