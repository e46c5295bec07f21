package genetic

// Evaluator scores a genome. Higher is better; a fully non-attacking
// placement scores exactly MaxFitness(len(genome)).
type Evaluator interface {
	Fitness(genome Genome) int
}

// MaxFitness returns the highest score a genome of n queens can reach:
// the number of unordered queen pairs, n*(n-1)/2, i.e. zero conflicts.
//
// For 8 queens: (8 * (8 - 1)) / 2 => 28.
func MaxFitness(n int) int {
	return n * (n - 1) / 2
}

// ConflictEvaluator scores a genome by the number of avoided conflicts:
//
//	fitness = MaxFitness(n) - (row conflicts + diagonal conflicts)
//
// It is a pure function of the genome: no randomness, no side effects.
type ConflictEvaluator struct{}

// Fitness implements Evaluator.
func (ConflictEvaluator) Fitness(genome Genome) int {
	size := len(genome)

	// Row conflicts: the genome holds one queen per column, so a value
	// appearing k times contributes k-1 conflicts.
	//
	// [0, 2, 3, 0] => Q * * Q
	counter := make(map[int]int, size)
	for _, row := range genome {
		counter[row]++
	}
	rows := 0
	for _, count := range counter {
		if count > 1 {
			rows += count - 1
		}
	}

	// Diagonal conflicts: treating entries as points P(column, row), two
	// queens share a diagonal iff their horizontal and vertical distances
	// are equal: |i-j| == |genome[i]-genome[j]|.
	diagonals := 0
	for i := 0; i < size-1; i++ {
		for j := i + 1; j < size; j++ {
			if abs(i-j) == abs(genome[i]-genome[j]) {
				diagonals++
			}
		}
	}

	return MaxFitness(size) - (rows + diagonals)
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
