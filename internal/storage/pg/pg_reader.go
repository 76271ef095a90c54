package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/dto"
	"github.com/kegelbahn/tenpin/internal/storage"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

const gameColumns = "id, player, notation, throws, total, created_at, metadata"

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	getSQL := fmt.Sprintf(`SELECT %s FROM games WHERE id = $1`, gameColumns)

	row := r.db.QueryRow(ctx, getSQL, id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFoundWrap("game not found", err)
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (r *Reader) List(ctx context.Context, opts storage.ListOptions) (*storage.ListResult, error) {
	slog.Info("Executing pg game listing",
		"player", opts.Player,
		"league", opts.League,
		"has_cursor", opts.Cursor != nil,
		"size", opts.Size)

	where, args := listFilter(opts)

	var total int64
	countSQL := "SELECT COUNT(*) FROM games" + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	if opts.Cursor != nil {
		return r.listByCursor(ctx, total, where, args, opts)
	}
	return r.listByOffset(ctx, total, where, args, opts)
}

// listFilter builds the shared WHERE clause for count and page queries.
func listFilter(opts storage.ListOptions) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if opts.Player != "" {
		args = append(args, opts.Player)
		conditions = append(conditions, fmt.Sprintf("player = $%d", len(args)))
	}
	if opts.League != "" {
		args = append(args, opts.League)
		conditions = append(conditions, fmt.Sprintf("metadata->>'league' = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *Reader) listByCursor(ctx context.Context, total int64, where string, args []interface{}, opts storage.ListOptions) (*storage.ListResult, error) {
	cursor := opts.Cursor

	keyset := fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)+1, len(args)+2)
	args = append(args, cursor.CreatedAt, cursor.ID)

	if where == "" {
		where = " WHERE " + keyset
	} else {
		where += " AND " + keyset
	}

	listSQL := fmt.Sprintf(`
		SELECT %s
		FROM games%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d
	`, gameColumns, where, len(args)+1)
	args = append(args, opts.Size+1)

	games, err := r.queryGames(ctx, listSQL, args)
	if err != nil {
		return nil, err
	}

	hasMore := len(games) > opts.Size
	if hasMore {
		games = games[:opts.Size]
	}

	var next *dto.Cursor
	if hasMore && len(games) > 0 {
		last := games[len(games)-1]
		next = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return &storage.ListResult{
		Games:      games,
		Total:      total,
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

func (r *Reader) listByOffset(ctx context.Context, total int64, where string, args []interface{}, opts storage.ListOptions) (*storage.ListResult, error) {
	listSQL := fmt.Sprintf(`
		SELECT %s
		FROM games%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, gameColumns, where, len(args)+1, len(args)+2)
	args = append(args, opts.Size, (opts.Page-1)*opts.Size)

	games, err := r.queryGames(ctx, listSQL, args)
	if err != nil {
		return nil, err
	}

	hasMore := int64((opts.Page-1)*opts.Size+len(games)) < total

	// Offset pages still hand out a keyset cursor so clients can switch
	// to cursor paging after any page.
	var next *dto.Cursor
	if hasMore && len(games) > 0 {
		last := games[len(games)-1]
		next = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return &storage.ListResult{
		Games:      games,
		Total:      total,
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

func (r *Reader) queryGames(ctx context.Context, sql string, args []interface{}) ([]domain.Game, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list query: %w", err)
	}
	defer rows.Close()

	games := make([]domain.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return games, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var game domain.Game
	var metadataJSON []byte

	if err := row.Scan(
		&game.ID,
		&game.Player,
		&game.Notation,
		&game.Throws,
		&game.Total,
		&game.CreatedAt,
		&metadataJSON,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metadataJSON, &game.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return &game, nil
}

func (r *Reader) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	slog.Info("Executing pg leaderboard aggregation", "limit", limit)

	boardSQL := `
		SELECT
			player,
			COUNT(*) AS games,
			MAX(total) AS best_score,
			ROUND(AVG(total)::numeric, 2)::float8 AS avg_score
		FROM games
		WHERE player <> ''
		GROUP BY player
		ORDER BY best_score DESC, avg_score DESC, player ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, boardSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute leaderboard query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Player, &e.Games, &e.BestScore, &e.AvgScore); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return entries, nil
}

var _ storage.Reader = (*Reader)(nil)
