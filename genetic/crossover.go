package genetic

import (
	"math/rand"
)

// Crossover recombines two parent genomes into two children.
type Crossover interface {
	Cross(rng *rand.Rand, a, b Genome) (Genome, Genome)
}

// SinglePointCrossover splits both parents at one random index and swaps
// the tails:
//
//	childA = a[0:p] + b[p:]
//	childB = b[0:p] + a[p:]
//
// with p drawn uniformly from [1, N-1]. Both children own fresh backing
// arrays, so mutating a child can never corrupt a parent or an elite that
// survived from the previous generation.
type SinglePointCrossover struct{}

// Cross implements Crossover. Parents must have equal length. For genomes
// shorter than two queens no valid split point exists and the parents are
// returned unchanged (as independent copies).
func (SinglePointCrossover) Cross(rng *rand.Rand, a, b Genome) (Genome, Genome) {
	length := len(a)
	if length < 2 {
		return a.Clone(), b.Clone()
	}

	p := 1 + rng.Intn(length-1)

	childA := make(Genome, length)
	copy(childA, a[:p])
	copy(childA[p:], b[p:])

	childB := make(Genome, length)
	copy(childB, b[:p])
	copy(childB[p:], a[p:])

	return childA, childB
}
