package genetic

import (
	"math/rand"
)

// Genome represents one candidate placement of queens on an N×N board.
// Each index is a column and each value is the row of the queen in that
// column, counted from the top-left corner.
//
// For example, the board
//
//	 * Q * *
//	 * * * Q
//	 * * Q *
//	 Q * * *
//
// is represented by [3, 0, 2, 1].
//
// Values may repeat; a repeated value is a row conflict, which is scored by
// the fitness evaluator rather than forbidden by construction. Column
// conflicts are impossible in this representation.
type Genome []int

// NewRandomGenome creates a genome of the given length with each queen
// placed on a uniformly random row.
func NewRandomGenome(rng *rand.Rand, length int) Genome {
	g := make(Genome, length)
	for i := range g {
		g[i] = rng.Intn(length)
	}
	return g
}

// Clone returns a copy of the genome with its own backing array.
// Genomes in a population must never share storage: mutation operates in
// place, so an aliased copy would corrupt elites and recorded snapshots.
func (g Genome) Clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// Population is the current generation of genomes under evaluation.
// Order is only meaningful immediately after ranking, when index 0 holds
// the highest-fitness genome.
type Population []Genome

// GeneratePopulation creates an initial population of populationSize random
// genomes, each of length queens.
func GeneratePopulation(rng *rand.Rand, populationSize, queens int) Population {
	population := make(Population, populationSize)
	for i := range population {
		population[i] = NewRandomGenome(rng, queens)
	}
	return population
}
