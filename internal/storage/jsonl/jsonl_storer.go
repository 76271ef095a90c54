package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/storage"
)

// Storer appends games to a JSON Lines file, one document per line.
// It is a write-only sink for exports and offline archives; reads go
// through one of the queryable backends.
type Storer struct {
	filePath string
	mu       sync.Mutex
}

func NewStorer(filePath string) *Storer {
	return &Storer{
		filePath: filePath,
	}
}

func (s *Storer) Save(ctx context.Context, game domain.Game) (uuid.UUID, error) {
	storage.Normalize(&game, time.Now())

	if err := s.appendGames([]domain.Game{game}); err != nil {
		return uuid.Nil, err
	}

	slog.Debug("Appended game to JSONL file", "id", game.ID, "path", s.filePath)
	return game.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	now := time.Now()
	normalized := make([]domain.Game, len(games))
	for i, game := range games {
		storage.Normalize(&game, now)
		normalized[i] = game
	}

	if err := s.appendGames(normalized); err != nil {
		return err
	}

	slog.Info("Appended games to JSONL file", "count", len(games), "path", s.filePath)
	return nil
}

func (s *Storer) appendGames(games []domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open JSONL file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, game := range games {
		if err := enc.Encode(game); err != nil {
			return fmt.Errorf("failed to encode game %s: %w", game.ID, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush JSONL file: %w", err)
	}
	return nil
}

var _ storage.Storer = (*Storer)(nil)
