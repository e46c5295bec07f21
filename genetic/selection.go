package genetic

import (
	"fmt"
	"math/rand"
)

// Selector picks a pair of parent genomes from a population, biased by
// fitness. The two parents may be the same genome (sampling is done with
// replacement).
type Selector interface {
	SelectPair(rng *rand.Rand, population Population, evaluator Evaluator) (Genome, Genome, error)
}

// RouletteSelector implements fitness-proportionate selection: each
// genome's chance of being drawn is its fitness divided by the population's
// total fitness.
//
// A fitness of zero or below contributes no weight. If no genome has a
// strictly positive fitness the selection fails with an error instead of
// silently picking an arbitrary genome, since a silent fallback would bias
// the search undetectably.
type RouletteSelector struct{}

// SelectPair implements Selector.
func (s RouletteSelector) SelectPair(rng *rand.Rand, population Population, evaluator Evaluator) (Genome, Genome, error) {
	if len(population) == 0 {
		return nil, nil, fmt.Errorf("cannot select parents from an empty population")
	}

	weights := make([]int, len(population))
	total := 0
	for i, genome := range population {
		w := evaluator.Fitness(genome)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return nil, nil, fmt.Errorf("selection requires at least one genome with positive fitness (population of %d has none)", len(population))
	}

	parentA := population[spinWheel(rng, weights, total)]
	parentB := population[spinWheel(rng, weights, total)]
	return parentA, parentB, nil
}

// spinWheel draws one index with probability proportional to its weight.
func spinWheel(rng *rand.Rand, weights []int, total int) int {
	pick := rng.Intn(total)
	acc := 0
	for i, w := range weights {
		acc += w
		if pick < acc {
			return i
		}
	}
	// Unreachable as long as total == sum(weights).
	return len(weights) - 1
}
