package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEvaluator scores a genome by its first value, for deterministic
// selection tests.
type stubEvaluator map[int]int

func (s stubEvaluator) Fitness(genome Genome) int {
	return s[genome[0]]
}

func TestRouletteSelectorFailsOnEmptyPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, _, err := RouletteSelector{}.SelectPair(rng, Population{}, ConflictEvaluator{})
	require.Error(t, err)
}

func TestRouletteSelectorFailsWhenNoPositiveWeight(t *testing.T) {
	// On a 2x2 board every placement has exactly one conflict, so every
	// genome scores zero and the selection precondition is violated.
	rng := rand.New(rand.NewSource(1))
	population := Population{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	_, _, err := RouletteSelector{}.SelectPair(rng, population, ConflictEvaluator{})
	require.Error(t, err)
}

func TestRouletteSelectorIgnoresNonPositiveWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	population := Population{{0}, {1}, {2}}
	evaluator := stubEvaluator{0: 5, 1: 0, 2: -4}

	for i := 0; i < 100; i++ {
		a, b, err := RouletteSelector{}.SelectPair(rng, population, evaluator)
		require.NoError(t, err)
		require.Equal(t, Genome{0}, a)
		require.Equal(t, Genome{0}, b)
	}
}

func TestRouletteSelectorIsFitnessProportionate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	population := Population{{0}, {1}}
	evaluator := stubEvaluator{0: 9, 1: 1}

	picks := 0
	const draws = 1000
	for i := 0; i < draws; i++ {
		a, _, err := RouletteSelector{}.SelectPair(rng, population, evaluator)
		require.NoError(t, err)
		if a[0] == 0 {
			picks++
		}
	}
	// Expected ~900 of 1000; allow a generous band for sampling noise.
	assert.Greater(t, picks, 800)
	assert.Less(t, picks, 980)
}

func TestRouletteSelectorSamplesWithReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	population := Population{{0}, {1}}
	evaluator := stubEvaluator{0: 1, 1: 0}

	a, b, err := RouletteSelector{}.SelectPair(rng, population, evaluator)
	require.NoError(t, err)
	assert.Equal(t, a, b, "the only weighted genome must be drawn twice")
}
