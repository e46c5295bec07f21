package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointMutatorZeroProbabilityNeverMutates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mutator := PointMutator{Probability: 0}
	for i := 0; i < 100; i++ {
		genome := Genome{3, 0, 2, 1}
		out := mutator.Mutate(rng, genome)
		require.Equal(t, Genome{3, 0, 2, 1}, out)
	}
}

func TestPointMutatorFullProbabilityRewritesOneIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	mutator := PointMutator{Probability: 1}
	for i := 0; i < 200; i++ {
		original := NewRandomGenome(rng, 8)
		genome := original.Clone()
		out := mutator.Mutate(rng, genome)
		require.Len(t, out, 8)

		// Exactly one index is rewritten, though the new value may
		// coincidentally equal the old one.
		diffs := 0
		for idx := range out {
			if out[idx] != original[idx] {
				diffs++
			}
			require.GreaterOrEqual(t, out[idx], 0)
			require.Less(t, out[idx], 8)
		}
		require.LessOrEqual(t, diffs, 1)
	}
}

func TestPointMutatorMutatesInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	genome := Genome{0, 1, 2, 3}
	out := PointMutator{Probability: 1}.Mutate(rng, genome)
	require.Equal(t, genome, out)

	// The returned genome shares storage with the argument.
	out[0] = 9
	assert.Equal(t, 9, genome[0])
}

func TestPointMutatorEmptyGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	out := PointMutator{Probability: 1}.Mutate(rng, Genome{})
	assert.Empty(t, out)
}
