package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/dto"
)

type Storer interface {
	Save(ctx context.Context, game domain.Game) (uuid.UUID, error)
	SaveBulk(ctx context.Context, games []domain.Game) error
}

// ListOptions narrows and pages a game listing. When Cursor is set the
// backend paginates by keyset on (created_at, id) and Page is ignored;
// otherwise plain offset paging applies.
type ListOptions struct {
	Player string
	League string
	Page   int
	Size   int
	Cursor *dto.Cursor
}

// ListResult is a page of games ordered newest first.
// NextCursor is only set on keyset-paginated reads.
type ListResult struct {
	Games      []domain.Game `json:"games"`
	Total      int64         `json:"total"`
	NextCursor *dto.Cursor   `json:"-"`
	HasMore    bool          `json:"has_more"`
}

type Reader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type Type string

const (
	ES    Type = "es"
	PG         = "pg"
	InMem      = "in_mem"
	JSONL      = "jsonl"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// Normalize fills server-assigned fields before a game is persisted.
// The total is always recomputed from the notation; a caller-supplied
// total is never trusted.
func Normalize(g *domain.Game, now time.Time) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.Metadata.ImportedAt.IsZero() {
		g.Metadata.ImportedAt = now
	}
	g.Rescore()
}
