package mathsheet

import (
	"math/rand/v2"
	"strconv"
)

// Factor range and the resulting problem count.
const (
	MinFactor    = 1
	MaxFactor    = 10
	ProblemCount = (MaxFactor - MinFactor + 1) * (MaxFactor - MinFactor + 1)
)

// AnswerBlank is the fixed-width space left for the handwritten answer.
const AnswerBlank = "______"

// Problem is one multiplication exercise.
type Problem struct {
	A int // multiplicand
	B int // multiplier
}

// String renders the problem as a worksheet cell, e.g. "3 × 7 = ______".
func (p Problem) String() string {
	return strconv.Itoa(p.A) + " × " + strconv.Itoa(p.B) + " = " + AnswerBlank
}

// Answer returns A×B.
func (p Problem) Answer() int {
	return p.A * p.B
}

// GenerateProblems returns every pair in [MinFactor, MaxFactor]² exactly once,
// shuffled by a PCG generator seeded with seed. The same seed always yields
// the same order.
func GenerateProblems(seed int64) []Problem {
	problems := make([]Problem, 0, ProblemCount)
	for a := MinFactor; a <= MaxFactor; a++ {
		for b := MinFactor; b <= MaxFactor; b++ {
			problems = append(problems, Problem{A: a, B: b})
		}
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0)) // #nosec G404 -- worksheet order, not security
	rng.Shuffle(len(problems), func(i, j int) {
		problems[i], problems[j] = problems[j], problems[i]
	})
	return problems
}
