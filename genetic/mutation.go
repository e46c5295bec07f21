package genetic

import (
	"math/rand"
)

// Mutator stochastically perturbs a genome. Implementations mutate the
// argument in place and return it; callers must not assume the input is
// left untouched.
type Mutator interface {
	Mutate(rng *rand.Rand, genome Genome) Genome
}

// DefaultMutationProbability is the chance that a genome is altered at all
// when no probability is configured.
const DefaultMutationProbability = 0.5

// PointMutator rewrites a single random gene with probability Probability:
// one index is chosen uniformly and overwritten with a uniformly random row
// in [0, N-1]. The new row may coincidentally equal the old one; that is a
// legitimate no-op outcome, not a bug.
type PointMutator struct {
	Probability float64
}

// Mutate implements Mutator.
func (m PointMutator) Mutate(rng *rand.Rand, genome Genome) Genome {
	if len(genome) == 0 {
		return genome
	}
	if rng.Float64() < m.Probability {
		index := rng.Intn(len(genome))
		genome[index] = rng.Intn(len(genome))
	}
	return genome
}
