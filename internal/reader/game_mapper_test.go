package reader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMapper(t *testing.T) *GameMapper {
	t.Helper()

	yamlContent := `
kind: ScorecardMapping
version: v1
metadata:
  name: "League Export"
dataset: league-export
fieldMappings:
  - source: "player_name"
    sourceType: "string"
    target: "Player"
    targetType: "string"
  - source: "game"
    sourceType: "string"
    target: "Notation"
    targetType: "string"
    required: true
  - source: "league"
    sourceType: "string"
    target: "Metadata.League"
    targetType: "string"
  - source: "played"
    sourceType: "datetime"
    target: "Metadata.PlayedAt"
    targetType: "datetime"
dateFormat: "2006-01-02T15:04:05Z"
`
	cfg, err := NewYAMLConfigLoader(strings.NewReader(yamlContent)).Load(true)
	require.NoError(t, err)

	return NewGameMapper(cfg)
}

func TestGameMapper_Map(t *testing.T) {
	mapper := createMapper(t)

	record := map[string]string{
		"player_name": "amy",
		"game":        "X7/9-X-88/-6XXX81",
		"league":      "tuesday",
		"played":      "2025-03-18T20:00:00Z",
	}

	game, err := mapper.Map(record, nil)
	require.NoError(t, err)

	assert.Equal(t, "amy", game.Player)
	assert.Equal(t, "X7/9-X-88/-6XXX81", game.Notation)
	assert.Equal(t, "tuesday", game.Metadata.League)
	assert.Equal(t, time.Date(2025, 3, 18, 20, 0, 0, 0, time.UTC), game.Metadata.PlayedAt)

	// Scores are derived at save time, never mapped from the file.
	assert.Zero(t, game.Total)
	assert.Empty(t, game.Throws)
}

func TestGameMapper_MissingRequiredColumn(t *testing.T) {
	mapper := createMapper(t)

	_, err := mapper.Map(map[string]string{"player_name": "amy"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "game")
}

func TestGameMapper_OptionalColumnSkipped(t *testing.T) {
	mapper := createMapper(t)

	game, err := mapper.Map(map[string]string{"game": "9-9-9-9-9-9-9-9-9-9-"}, nil)

	require.NoError(t, err)
	assert.Empty(t, game.Player)
	assert.Equal(t, "9-9-9-9-9-9-9-9-9-9-", game.Notation)
}

func TestGameMapper_StrictModeRejectsBadOptionalField(t *testing.T) {
	mapper := createMapper(t)

	record := map[string]string{
		"game":   "XXXXXXXXXXXX",
		"played": "18/03/2025", // wrong format for the mapping
	}

	_, err := mapper.Map(record, nil)
	require.NoError(t, err)

	_, err = mapper.Map(record, &MappingOptions{Strict: true})
	require.Error(t, err)
}
