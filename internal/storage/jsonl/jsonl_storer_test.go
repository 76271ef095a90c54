package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegelbahn/tenpin/internal/domain"
)

func readLines(t *testing.T, path string) []domain.Game {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var games []domain.Game
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var g domain.Game
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &g))
		games = append(games, g)
	}
	require.NoError(t, scanner.Err())
	return games
}

func TestStorer_SaveAppendsOneLinePerGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.jsonl")
	s := NewStorer(path)

	_, err := s.Save(context.Background(), domain.Game{Player: "amy", Notation: "XXXXXXXXXXXX"})
	require.NoError(t, err)
	_, err = s.Save(context.Background(), domain.Game{Player: "bob", Notation: "9-9-9-9-9-9-9-9-9-9-"})
	require.NoError(t, err)

	games := readLines(t, path)
	require.Len(t, games, 2)
	assert.Equal(t, domain.PerfectScore, games[0].Total)
	assert.Equal(t, 90, games[1].Total)
	assert.NotEqual(t, games[0].ID, games[1].ID)
}

func TestStorer_SaveBulk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.jsonl")
	s := NewStorer(path)

	err := s.SaveBulk(context.Background(), []domain.Game{
		{Player: "amy", Notation: "5/5/5/5/5/5/5/5/5/5/5"},
		{Player: "bob", Notation: "X7/9-X-88/-6XXX81"},
	})
	require.NoError(t, err)

	games := readLines(t, path)
	require.Len(t, games, 2)
	assert.Equal(t, 150, games[0].Total)
	assert.Equal(t, 168, games[1].Total)
}

func TestStorer_SaveBulkEmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.jsonl")
	s := NewStorer(path)

	require.NoError(t, s.SaveBulk(context.Background(), nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
