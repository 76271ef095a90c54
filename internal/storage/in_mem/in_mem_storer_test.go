package in_mem

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/storage"
)

func seedGames(t *testing.T, s *InMemStorer) []uuid.UUID {
	t.Helper()

	base := time.Date(2025, 3, 18, 20, 0, 0, 0, time.UTC)
	games := []domain.Game{
		{Player: "amy", Notation: "XXXXXXXXXXXX", CreatedAt: base.Add(3 * time.Minute), Metadata: domain.GameMetadata{League: "tuesday"}},
		{Player: "bob", Notation: "9-9-9-9-9-9-9-9-9-9-", CreatedAt: base.Add(2 * time.Minute), Metadata: domain.GameMetadata{League: "tuesday"}},
		{Player: "amy", Notation: "5/5/5/5/5/5/5/5/5/5/5", CreatedAt: base.Add(time.Minute), Metadata: domain.GameMetadata{League: "friday"}},
		{Player: "bob", Notation: "X7/9-X-88/-6XXX81", CreatedAt: base},
	}

	ids := make([]uuid.UUID, 0, len(games))
	for _, g := range games {
		id, err := s.Save(context.Background(), g)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestInMemStorer_SaveComputesTotal(t *testing.T) {
	s := NewInMemStorer()

	id, err := s.Save(context.Background(), domain.Game{Player: "amy", Notation: "XXXXXXXXXXXX", Total: 1})
	require.NoError(t, err)

	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.PerfectScore, got.Total)
	assert.Len(t, got.Throws, 12)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestInMemStorer_GetUnknownID(t *testing.T) {
	s := NewInMemStorer()

	_, err := s.Get(context.Background(), uuid.New())

	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestInMemStorer_ListNewestFirst(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	res, err := s.List(context.Background(), storage.ListOptions{Page: 1, Size: 10})
	require.NoError(t, err)

	require.Len(t, res.Games, 4)
	assert.Equal(t, int64(4), res.Total)
	assert.False(t, res.HasMore)
	for i := 1; i < len(res.Games); i++ {
		assert.False(t, res.Games[i].CreatedAt.After(res.Games[i-1].CreatedAt))
	}
}

func TestInMemStorer_ListFilters(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	t.Run("by player", func(t *testing.T) {
		res, err := s.List(context.Background(), storage.ListOptions{Player: "amy", Page: 1, Size: 10})
		require.NoError(t, err)
		require.Len(t, res.Games, 2)
		for _, g := range res.Games {
			assert.Equal(t, "amy", g.Player)
		}
	})

	t.Run("by league", func(t *testing.T) {
		res, err := s.List(context.Background(), storage.ListOptions{League: "tuesday", Page: 1, Size: 10})
		require.NoError(t, err)
		assert.Len(t, res.Games, 2)
	})

	t.Run("by player and league", func(t *testing.T) {
		res, err := s.List(context.Background(), storage.ListOptions{Player: "amy", League: "friday", Page: 1, Size: 10})
		require.NoError(t, err)
		require.Len(t, res.Games, 1)
		assert.Equal(t, 150, res.Games[0].Total)
	})
}

func TestInMemStorer_ListOffsetPaging(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	first, err := s.List(context.Background(), storage.ListOptions{Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Len(t, first.Games, 3)
	assert.True(t, first.HasMore)

	second, err := s.List(context.Background(), storage.ListOptions{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Len(t, second.Games, 1)
	assert.False(t, second.HasMore)

	past, err := s.List(context.Background(), storage.ListOptions{Page: 5, Size: 3})
	require.NoError(t, err)
	assert.Empty(t, past.Games)
	assert.Equal(t, int64(4), past.Total)
}

func TestInMemStorer_ListCursorPaging(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	var seen []uuid.UUID

	first, err := s.List(context.Background(), storage.ListOptions{Size: 2, Cursor: nil, Page: 1})
	require.NoError(t, err)
	require.Len(t, first.Games, 2)
	require.True(t, first.HasMore)
	require.NotNil(t, first.NextCursor)
	for _, g := range first.Games {
		seen = append(seen, g.ID)
	}

	second, err := s.List(context.Background(), storage.ListOptions{Size: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Games, 2)
	assert.False(t, second.HasMore)
	assert.Nil(t, second.NextCursor)
	for _, g := range second.Games {
		assert.NotContains(t, seen, g.ID)
	}
}

func TestInMemStorer_Leaderboard(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	// A game without a player should never enter the board.
	_, err := s.Save(context.Background(), domain.Game{Notation: "XXXXXXXXXXXX"})
	require.NoError(t, err)

	entries, err := s.Leaderboard(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "amy", entries[0].Player)
	assert.Equal(t, domain.PerfectScore, entries[0].BestScore)
	assert.Equal(t, 2, entries[0].Games)
	assert.Equal(t, 225.0, entries[0].AvgScore)

	assert.Equal(t, "bob", entries[1].Player)
	assert.Equal(t, 168, entries[1].BestScore)
	assert.Equal(t, 129.0, entries[1].AvgScore)
}

func TestInMemStorer_LeaderboardLimit(t *testing.T) {
	s := NewInMemStorer()
	seedGames(t, s)

	entries, err := s.Leaderboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "amy", entries[0].Player)
}
