package genetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "queens-config")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[Queens]
queens = 5

[Evolution]
pop_size         = 20
generation_limit = 3
single           = false
seed             = 11
`), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	engine, err := NewEngine(config)
	require.NoError(t, err)
	_, _, _, err = engine.Run()
	require.NoError(t, err)

	checkpointPath := filepath.Join(dir, "queens_checkpoint.gz")
	require.NoError(t, engine.SaveCheckpoint(checkpointPath))

	loaded, err := LoadCheckpoint(checkpointPath, configPath)
	require.NoError(t, err)
	assert.Equal(t, engine.Generation, loaded.Generation)
	assert.Equal(t, engine.Population, loaded.Population)
	assert.Equal(t, engine.History, loaded.History)
	assert.Equal(t, engine.BestGenome, loaded.BestGenome)
}

func TestLoadCheckpointResumesRun(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "queens-config")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[Queens]
queens = 6

[Evolution]
pop_size         = 20
generation_limit = 2
single           = false
seed             = 13
`), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	engine, err := NewEngine(config)
	require.NoError(t, err)
	_, generations, _, err := engine.Run()
	require.NoError(t, err)
	require.Equal(t, 2, generations)

	checkpointPath := filepath.Join(dir, "queens_checkpoint.gz")
	require.NoError(t, engine.SaveCheckpoint(checkpointPath))

	loaded, err := LoadCheckpoint(checkpointPath, configPath)
	require.NoError(t, err)

	// Raise the budget and keep evolving from the saved generation.
	loaded.Config.Evolution.GenerationLimit = 4
	_, generations, history, err := loaded.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, generations)
	assert.Len(t, history, 4)
}

func TestLoadCheckpointMissingFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "queens-config")
	require.NoError(t, os.WriteFile(configPath, []byte("[Queens]\nqueens = 5\n"), 0o644))

	_, err := LoadCheckpoint(filepath.Join(dir, "missing.gz"), configPath)
	require.Error(t, err)
}
