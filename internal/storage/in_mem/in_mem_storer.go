package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/dto"
	"github.com/kegelbahn/tenpin/internal/storage"
)

// InMemStorer keeps games in a mutex-guarded map. It backs local
// development and tests, so it implements both Storer and Reader.
type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Game
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Game),
	}
}

func (s *InMemStorer) Save(ctx context.Context, game domain.Game) (uuid.UUID, error) {
	storage.Normalize(&game, time.Now())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[game.ID] = game

	slog.Debug("Saved game to in-memory storage", "id", game.ID, "total", game.Total)
	return game.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, games []domain.Game) error {
	now := time.Now()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, game := range games {
		storage.Normalize(&game, now)
		s.storage[game.ID] = game
	}

	slog.Info("Saved games to in-memory storage", "count", len(games))
	return nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	game, ok := s.storage[id]
	if !ok {
		return nil, apperr.NewNotFound("game not found")
	}
	return &game, nil
}

func (s *InMemStorer) List(ctx context.Context, opts storage.ListOptions) (*storage.ListResult, error) {
	matches := s.matchingGames(opts)

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID.String() > matches[j].ID.String()
	})

	total := int64(len(matches))

	if opts.Cursor != nil {
		return listByCursor(matches, total, opts)
	}
	return listByOffset(matches, total, opts), nil
}

func (s *InMemStorer) matchingGames(opts storage.ListOptions) []domain.Game {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	matches := make([]domain.Game, 0, len(s.storage))
	for _, game := range s.storage {
		if opts.Player != "" && game.Player != opts.Player {
			continue
		}
		if opts.League != "" && game.Metadata.League != opts.League {
			continue
		}
		matches = append(matches, game)
	}
	return matches
}

func listByCursor(matches []domain.Game, total int64, opts storage.ListOptions) (*storage.ListResult, error) {
	cursor := opts.Cursor

	// Skip everything at or before the cursor position.
	start := 0
	for start < len(matches) {
		g := matches[start]
		if g.CreatedAt.Before(cursor.CreatedAt) ||
			(g.CreatedAt.Equal(cursor.CreatedAt) && g.ID.String() < cursor.ID.String()) {
			break
		}
		start++
	}
	matches = matches[start:]

	hasMore := len(matches) > opts.Size
	if hasMore {
		matches = matches[:opts.Size]
	}

	var next *dto.Cursor
	if hasMore && len(matches) > 0 {
		last := matches[len(matches)-1]
		next = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return &storage.ListResult{
		Games:      matches,
		Total:      total,
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

func listByOffset(matches []domain.Game, total int64, opts storage.ListOptions) *storage.ListResult {
	offset := (opts.Page - 1) * opts.Size
	if offset >= len(matches) {
		return &storage.ListResult{Games: []domain.Game{}, Total: total}
	}

	end := offset + opts.Size
	if end > len(matches) {
		end = len(matches)
	}

	page := matches[offset:end]
	hasMore := end < len(matches)

	// Offset pages still hand out a keyset cursor so clients can switch
	// to cursor paging after any page.
	var next *dto.Cursor
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		next = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return &storage.ListResult{
		Games:      page,
		Total:      total,
		NextCursor: next,
		HasMore:    hasMore,
	}
}

func (s *InMemStorer) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.storageLock.RLock()

	type acc struct {
		games int
		best  int
		sum   int
	}
	byPlayer := make(map[string]*acc)
	for _, game := range s.storage {
		if game.Player == "" {
			continue
		}
		a, ok := byPlayer[game.Player]
		if !ok {
			a = &acc{}
			byPlayer[game.Player] = a
		}
		a.games++
		a.sum += game.Total
		if game.Total > a.best {
			a.best = game.Total
		}
	}
	s.storageLock.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0, len(byPlayer))
	for player, a := range byPlayer {
		entries = append(entries, domain.LeaderboardEntry{
			Player:    player,
			Games:     a.games,
			BestScore: a.best,
			AvgScore:  domain.RoundAvg(float64(a.sum) / float64(a.games)),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].BestScore != entries[j].BestScore {
			return entries[i].BestScore > entries[j].BestScore
		}
		if entries[i].AvgScore != entries[j].AvgScore {
			return entries[i].AvgScore > entries[j].AvgScore
		}
		return entries[i].Player < entries[j].Player
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Compile-time interface assertions
var (
	_ storage.Storer = (*InMemStorer)(nil)
	_ storage.Reader = (*InMemStorer)(nil)
)
