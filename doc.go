// Package genetic provides a Go implementation of a genetic algorithm for
// the N-queens problem.
//
// A population of candidate placements is scored by counting avoided
// conflicts, selectively bred through fitness-proportionate selection and
// single-point crossover, and perturbed by point mutation, generation after
// generation, until a conflict-free placement is found or the generation
// budget runs out.
//
// Basic usage:
//
//	// Load configuration
//	config, err := genetic.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a new engine
//	engine, err := genetic.NewEngine(config)
//	if err != nil {
//		log.Fatalf("Error creating engine: %v", err)
//	}
//
//	// Run the evolution
//	population, generations, history, err := engine.Run()
//	if err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//
//	last := history[len(history)-1]
//	if last.Solved {
//		fmt.Println("Solution found!")
//		fmt.Println(genetic.Board(last.Best))
//	}
package genetic
