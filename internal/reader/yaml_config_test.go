package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMappingYAML = `
kind: ScorecardMapping
version: v1
metadata:
  name: "League Export"
dataset: league-export
fieldMappings:
  - source: "game"
    target: "Notation"
`

func TestYAMLConfigLoader_Load(t *testing.T) {
	reader := strings.NewReader(validMappingYAML)
	loader := NewYAMLConfigLoader(reader)

	cfg, err := loader.Load(false)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "v1", cfg.Version)
	assert.Equal(t, "ScorecardMapping", cfg.Kind)
	assert.Equal(t, "League Export", cfg.Metadata.Name)
	assert.Equal(t, "league-export", cfg.Dataset)
	require.Len(t, cfg.FieldMappings, 1)
	assert.Equal(t, "game", cfg.FieldMappings[0].Source)
	assert.Equal(t, "Notation", cfg.FieldMappings[0].Target)
}

func TestYAMLConfigLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validMappingYAML), 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	cfg, err := NewYAMLConfigLoader(file).Load(true)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "league-export", cfg.Dataset)
}

func TestYAMLConfigLoader_ValidateRejectsIncompleteMapping(t *testing.T) {
	// fieldMappings is misspelled, so none are decoded.
	reader := strings.NewReader(`
kind: ScorecardMapping
version: v1
metadata:
  name: "Broken Mapping"
dataset: league-export
field_mappings:
  - source: "game"
    target: "Notation"
`)

	_, err := NewYAMLConfigLoader(reader).Load(true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field mapping")
}
