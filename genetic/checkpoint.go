package genetic

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// EngineSaveData is a helper struct holding only the parts of Engine
// needed for saving. The Config is not saved; it is reloaded from its
// original file on restore. The random number generator state is not
// persisted either, so a resumed run reseeds and follows a different
// random trajectory from that point on.
type EngineSaveData struct {
	Population Population
	Generation int
	History    []GenerationRecord
	BestGenome Genome
}

// SaveCheckpoint saves the current state of the Engine to a file.
// Uses gzip compression for smaller file size.
func (e *Engine) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	saveData := EngineSaveData{
		Population: e.Population,
		Generation: e.Generation,
		History:    e.History,
		BestGenome: e.BestGenome, // Might be nil before the first generation
	}

	// Register the named slice types so gob can round-trip them.
	gob.Register(Genome{})
	gob.Register(Population{})

	encoder := gob.NewEncoder(gzWriter)
	if err := encoder.Encode(saveData); err != nil {
		return fmt.Errorf("failed to encode engine state: %w", err)
	}

	fmt.Printf("Checkpoint saved to %s\n", filePath)
	return nil
}

// LoadCheckpoint loads an Engine state from a checkpoint file.
// It requires the original configuration file path to reconstruct the
// Config object and the default strategy set.
func LoadCheckpoint(checkpointPath string, configPath string) (*Engine, error) {
	// 1. Load the configuration first.
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
	}

	// 2. Open the checkpoint file.
	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	// 3. Decode the saved data.
	gob.Register(Genome{})
	gob.Register(Population{})

	saveData := EngineSaveData{}
	decoder := gob.NewDecoder(gzReader)
	if err := decoder.Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode engine state from checkpoint: %w", err)
	}

	// 4. Reconstruct the Engine with the default strategy set and a fresh
	// random source seeded from the loaded config.
	e := &Engine{
		Config:     config,
		Evaluator:  ConflictEvaluator{},
		Selector:   RouletteSelector{},
		Crossover:  SinglePointCrossover{},
		Mutator:    PointMutator{Probability: config.Evolution.MutationProbability},
		Population: saveData.Population,
		Generation: saveData.Generation,
		History:    saveData.History,
		BestGenome: saveData.BestGenome,
		rng:        newRNG(config.Evolution.Seed),
	}

	fmt.Printf("Checkpoint loaded from %s (Generation %d)\n", checkpointPath, e.Generation)
	return e, nil
}
