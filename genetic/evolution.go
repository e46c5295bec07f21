package genetic

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// GenerationRecord is an immutable snapshot of one generation, taken right
// after ranking. Best is a clone and never aliases a live population
// member.
type GenerationRecord struct {
	Generation   int
	Solved       bool // Best reached MaxFitness (zero conflicts)
	Best         Genome
	BestFitness  int
	Accuracy     string // BestFitness over MaxFitness, as a percentage
	MeanFitness  float64
	StdevFitness float64
}

// Engine holds the state of the evolutionary search and orchestrates
// generation-by-generation population replacement.
//
// The strategy fields each carry one capability and may be swapped for
// alternative implementations before the run starts; NewEngine installs
// the defaults. All randomness is drawn from the engine's own seeded
// source, so runs with a fixed seed are reproducible.
type Engine struct {
	Config *Config

	Evaluator Evaluator
	Selector  Selector
	Crossover Crossover
	Mutator   Mutator

	Population Population
	Generation int
	History    []GenerationRecord
	BestGenome Genome // Best genome found so far

	rng    *rand.Rand
	scores []int // Fitness per genome, aligned with Population after ranking
}

// NewEngine creates a new Engine instance with the default strategy set
// and an initial random population.
func NewEngine(config *Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng := newRNG(config.Evolution.Seed)
	e := &Engine{
		Config:     config,
		Evaluator:  ConflictEvaluator{},
		Selector:   RouletteSelector{},
		Crossover:  SinglePointCrossover{},
		Mutator:    PointMutator{Probability: config.Evolution.MutationProbability},
		Population: GeneratePopulation(rng, config.Evolution.PopSize, config.Queens.Count),
		rng:        rng,
	}
	return e, nil
}

// newRNG builds the engine's random source. A zero seed falls back to the
// clock so unseeded runs still differ from each other.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Run executes the evolutionary loop until the generation counter reaches
// the configured limit, or until the first solved generation when `single`
// is enabled. A negative limit never matches the counter, so the loop is
// effectively unbounded until a solution terminates it.
//
// It returns the final population, the generation count, and the per
// generation history. Running out of generations without a solution is a
// normal outcome, not an error; callers must inspect the Solved flag of
// the last record rather than assume success.
func (e *Engine) Run() (Population, int, []GenerationRecord, error) {
	limit := e.Config.Evolution.GenerationLimit
	for e.Generation != limit {
		winner, err := e.RunGeneration()
		if err != nil {
			return e.Population, e.Generation, e.History, err
		}
		if winner != nil && e.Config.Evolution.Single {
			break
		}
	}
	return e.Population, e.Generation, e.History, nil
}

// RunGeneration executes a single generation: rank the population, record
// a snapshot, and breed the next generation. It returns the best genome
// when this generation solved the board, otherwise nil.
//
// When the board is solved and `single` is enabled the engine stops cold:
// the population stays ranked and the generation counter is not advanced,
// exactly as if the outer loop broke at the snapshot.
func (e *Engine) RunGeneration() (Genome, error) {
	if len(e.Population) == 0 {
		return nil, fmt.Errorf("population extinct in generation %d", e.Generation)
	}

	e.rankPopulation()

	record := e.snapshot()
	e.History = append(e.History, record)

	if e.BestGenome == nil || record.BestFitness > e.Evaluator.Fitness(e.BestGenome) {
		e.BestGenome = record.Best
	}

	if record.Solved && e.Config.Evolution.Single {
		return record.Best, nil
	}

	next, err := e.nextGeneration()
	if err != nil {
		return nil, fmt.Errorf("reproduction failed in generation %d: %w", e.Generation, err)
	}
	e.Population = next
	e.Generation++

	if record.Solved {
		return record.Best, nil
	}
	return nil, nil
}

// rankPopulation sorts the population descending by fitness. The sort is
// stable on fitness only: genomes with equal fitness keep their prior
// population order, making the ranking deterministic.
func (e *Engine) rankPopulation() {
	type scoredGenome struct {
		genome  Genome
		fitness int
	}
	ranked := make([]scoredGenome, len(e.Population))
	for i, g := range e.Population {
		ranked[i] = scoredGenome{genome: g, fitness: e.Evaluator.Fitness(g)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].fitness > ranked[j].fitness
	})

	e.scores = make([]int, len(ranked))
	for i, s := range ranked {
		e.Population[i] = s.genome
		e.scores[i] = s.fitness
	}
}

// snapshot records the state of the ranked population.
func (e *Engine) snapshot() GenerationRecord {
	bestFitness := e.scores[0]
	maxFit := MaxFitness(e.Config.Queens.Count)

	// Boards with fewer than two queens have no possible conflicts, so
	// MaxFitness is zero and any genome is a solution.
	accuracy := "100.000%"
	if maxFit > 0 {
		accuracy = fmt.Sprintf("%.3f%%", float64(bestFitness)/float64(maxFit)*100)
	}

	fitnesses := intsToFloats(e.scores)
	return GenerationRecord{
		Generation:   e.Generation,
		Solved:       bestFitness == maxFit,
		Best:         e.Population[0].Clone(),
		BestFitness:  bestFitness,
		Accuracy:     accuracy,
		MeanFitness:  Mean(fitnesses),
		StdevFitness: Stdev(fitnesses),
	}
}

// nextGeneration breeds the replacement population from the current ranked
// one.
//
// Fill policy: the top `survivals` genomes are carried over as independent
// clones, then floor(len(population)/2) - 1 breeding iterations each
// append two mutated children. With the standard parameters (population
// 50, survivals 2) this reproduces exactly 50 genomes; other combinations
// may drift from the nominal size on the first generation and then hold
// steady at the drifted size.
func (e *Engine) nextGeneration() (Population, error) {
	survivals := e.Config.Evolution.Survivals
	if survivals > len(e.Population) {
		survivals = len(e.Population)
	}

	next := make(Population, 0, len(e.Population))
	for _, elite := range e.Population[:survivals] {
		next = append(next, elite.Clone())
	}

	breedings := len(e.Population)/2 - 1
	for j := 0; j < breedings; j++ {
		parentA, parentB, err := e.Selector.SelectPair(e.rng, e.Population, e.Evaluator)
		if err != nil {
			return nil, err
		}
		childA, childB := e.Crossover.Cross(e.rng, parentA, parentB)
		childA = e.Mutator.Mutate(e.rng, childA)
		childB = e.Mutator.Mutate(e.rng, childB)
		next = append(next, childA, childB)
	}
	return next, nil
}
