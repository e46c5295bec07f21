package genetic

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a genetic queens run.
type Config struct {
	Queens    QueensConfig
	Evolution EvolutionConfig
}

// QueensConfig holds parameters describing the board.
type QueensConfig struct {
	Count int `ini:"queens"` // Board size and number of queens (N)
}

// EvolutionConfig holds parameters controlling the evolutionary loop.
type EvolutionConfig struct {
	PopSize             int     `ini:"pop_size"`
	GenerationLimit     int     `ini:"generation_limit"`     // Negative: run until a solution is found
	Survivals           int     `ini:"survivals"`            // Elites carried over unchanged each generation
	MutationProbability float64 `ini:"mutation_probability"` // Chance each offspring is mutated at all
	Single              bool    `ini:"single"`               // Stop at the first solved generation
	Seed                int64   `ini:"seed"`                 // 0: seed the RNG from the clock
}

// DefaultConfig returns a configuration with the standard run parameters
// for the given queen count: population 50, generation limit 100, two
// elites, mutation probability 0.5, stop on first solution.
func DefaultConfig(queens int) *Config {
	return &Config{
		Queens: QueensConfig{Count: queens},
		Evolution: EvolutionConfig{
			PopSize:             50,
			GenerationLimit:     100,
			Survivals:           2,
			MutationProbability: DefaultMutationProbability,
			Single:              true,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow # comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in value, treat as value
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("Queens").MapTo(&config.Queens); err != nil {
		return nil, fmt.Errorf("failed to map [Queens] section: %w", err)
	}
	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}

	// --- Manually reload the bool value ---
	// This is a workaround in case MapTo has issues with comments or specific formats
	evoSection := cfg.Section("Evolution")
	if key, err := evoSection.GetKey("single"); err == nil {
		config.Evolution.Single, _ = key.Bool()
	}

	// Set defaults for parameters left at their zero value. The original
	// run parameters double as defaults here.
	if config.Evolution.PopSize == 0 {
		config.Evolution.PopSize = 50
	}
	if config.Evolution.GenerationLimit == 0 {
		config.Evolution.GenerationLimit = 100
	}
	if config.Evolution.Survivals == 0 {
		config.Evolution.Survivals = 2
	}
	if config.Evolution.MutationProbability == 0 {
		config.Evolution.MutationProbability = DefaultMutationProbability
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the structural sanity of the configuration. Note that
// the supported queen range for interactive use ([4, 25]) is the caller's
// responsibility; the engine itself runs with any count >= 1.
func (c *Config) Validate() error {
	if c.Queens.Count < 1 {
		return fmt.Errorf("config error: queens must be positive")
	}
	if c.Evolution.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.Evolution.Survivals < 0 {
		return fmt.Errorf("config error: survivals cannot be negative")
	}
	if c.Evolution.Survivals > c.Evolution.PopSize {
		return fmt.Errorf("config error: survivals cannot exceed pop_size")
	}
	if c.Evolution.MutationProbability < 0 || c.Evolution.MutationProbability > 1 {
		return fmt.Errorf("config error: mutation_probability must be between 0 and 1")
	}
	return nil
}
