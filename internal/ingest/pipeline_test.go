package ingest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegelbahn/tenpin/internal/collector"
	"github.com/kegelbahn/tenpin/internal/reader"
	"github.com/kegelbahn/tenpin/internal/storage"
	"github.com/kegelbahn/tenpin/internal/storage/in_mem"
)

const leagueMappingYAML = `
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
`

func newCSVCollector(t *testing.T, csvData string) *collector.GameCollector {
	t.Helper()

	cfg, err := reader.NewYAMLConfigLoader(strings.NewReader(leagueMappingYAML)).Load(true)
	require.NoError(t, err)

	return collector.NewGameCollector(
		reader.NewCSVReader(strings.NewReader(csvData)),
		reader.NewGameMapper(cfg),
	)
}

func TestImportPipeline_Run(t *testing.T) {
	csvData := `player_name,game,league
amy,XXXXXXXXXXXX,tuesday
bob,9-9-9-9-9-9-9-9-9-9-,tuesday
cal,5/5/5/5/5/5/5/5/5/5/5,friday`

	store := in_mem.NewInMemStorer()
	p := NewImportPipeline(newCSVCollector(t, csvData), store, WithName("csv-test"))

	require.NoError(t, p.Run(context.Background()))

	stats := p.Stats()
	assert.Equal(t, int64(3), stats.Saved)
	assert.Equal(t, int64(0), stats.Failed)

	res, err := store.List(context.Background(), storage.ListOptions{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, res.Games, 3)

	totals := map[string]int{}
	for _, g := range res.Games {
		totals[g.Player] = g.Total
	}
	assert.Equal(t, 300, totals["amy"])
	assert.Equal(t, 90, totals["bob"])
	assert.Equal(t, 150, totals["cal"])
}

func TestImportPipeline_RunBulk(t *testing.T) {
	faker := gofakeit.New(7)

	var sb strings.Builder
	sb.WriteString("player_name,game,league\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "%s,9-9-9-9-9-9-9-9-9-9-,%s\n", faker.FirstName(), faker.Word())
	}

	store := in_mem.NewInMemStorer()
	p := NewImportPipeline(newCSVCollector(t, sb.String()), store, WithBulk(10))

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, int64(25), p.Stats().Saved)

	res, err := store.List(context.Background(), storage.ListOptions{Page: 1, Size: 100})
	require.NoError(t, err)
	require.Equal(t, int64(25), res.Total)
	for _, g := range res.Games {
		assert.Equal(t, 90, g.Total)
	}
}

func TestImportPipeline_BadRowsAreCountedNotFatal(t *testing.T) {
	csvData := `player_name,game,league
amy,XXXXXXXXXXXX,tuesday
bob
cal,,friday
dee,5/5/5/5/5/5/5/5/5/5/5,friday`

	store := in_mem.NewInMemStorer()
	p := NewImportPipeline(newCSVCollector(t, csvData), store)

	require.NoError(t, p.Run(context.Background()))

	stats := p.Stats()
	assert.Equal(t, int64(2), stats.Saved)
	assert.Equal(t, int64(2), stats.Failed)

	res, err := store.List(context.Background(), storage.ListOptions{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, res.Games, 2)
}
