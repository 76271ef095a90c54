package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/storage"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, game domain.Game) (uuid.UUID, error) {
	storage.Normalize(&game, time.Now())

	metadataJSON, err := json.Marshal(game.Metadata)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	cmd := `
        INSERT INTO games (id, player, notation, throws, total, created_at, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		game.ID,
		game.Player,
		game.Notation,
		game.Throws,
		game.Total,
		game.CreatedAt,
		metadataJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert game: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveBulk(ctx context.Context, games []domain.Game) error {
	rows := make([][]interface{}, len(games))
	now := time.Now()

	for i, g := range games {
		storage.Normalize(&g, now)

		metadataJSON, err := json.Marshal(g.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for game %d: %w", i, err)
		}

		rows[i] = []interface{}{
			g.ID,
			g.Player,
			g.Notation,
			g.Throws,
			g.Total,
			g.CreatedAt,
			metadataJSON,
		}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"games"},
		[]string{"id", "player", "notation", "throws", "total", "created_at", "metadata"},
		pgx.CopyFromRows(rows),
	)

	if err != nil {
		return fmt.Errorf("failed to bulk insert games: %w", err)
	}
	return nil
}

var _ storage.Storer = (*Storer)(nil)
