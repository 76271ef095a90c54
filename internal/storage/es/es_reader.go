package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/dto"
	"github.com/kegelbahn/tenpin/internal/storage"
)

const (
	playersAggName = "players"
	bestAggName    = "best_score"
	avgAggName     = "avg_score"
)

type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	res, err := r.client.Get(r.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, apperr.NewNotFoundWrap("game not found", err)
		}
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound("game not found")
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	game, err := documentToGame(doc)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *Reader) List(ctx context.Context, opts storage.ListOptions) (*storage.ListResult, error) {
	slog.Info("Executing es game listing",
		"player", opts.Player,
		"league", opts.League,
		"has_cursor", opts.Cursor != nil,
		"size", opts.Size)

	var filters []types.Query
	if opts.Player != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{
				"player.keyword": {Value: opts.Player},
			},
		})
	}
	if opts.League != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{
				"league": {Value: opts.League},
			},
		})
	}

	query := &types.Query{MatchAll: &types.MatchAllQuery{}}
	if len(filters) > 0 {
		query = &types.Query{Bool: &types.BoolQuery{Filter: filters}}
	}

	searchReq := r.client.Search().
		Index(r.indexName).
		Query(query).
		Size(opts.Size + 1)

	// Dates sort as epoch millis, so the cursor position is passed the
	// same way.
	if opts.Cursor != nil {
		searchReq = searchReq.SearchAfter(
			types.FieldValue(opts.Cursor.CreatedAt.UnixMilli()),
			types.FieldValue(opts.Cursor.ID.String()),
		)
	} else if opts.Page > 1 {
		searchReq = searchReq.From((opts.Page - 1) * opts.Size)
	}

	sortOrderDesc := sortorder.Desc
	searchReq = searchReq.Sort(
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortOrderDesc},
			},
		},
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &sortOrderDesc},
			},
		},
	)

	res, err := searchReq.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch list query failed", "error", err, "player", opts.Player, "league", opts.League)
		return nil, fmt.Errorf("failed to execute list query: %w", err)
	}

	games, err := mapToGames(res.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("failed to map list results: %w", err)
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
		Total:      res.Hits.Total.Value,
		NextCursor: next,
		HasMore:    hasMore,
	}, nil
}

func mapToGames(hits []types.Hit) ([]domain.Game, error) {
	games := make([]domain.Game, 0, len(hits))

	for _, hit := range hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		game, err := documentToGame(doc)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

func (r *Reader) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	slog.Info("Executing es leaderboard aggregation", "limit", limit)

	playerField := "player.keyword"
	totalField := "total"

	res, err := r.client.Search().
		Index(r.indexName).
		Size(0).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				MustNot: []types.Query{
					{Term: map[string]types.TermQuery{playerField: {Value: ""}}},
				},
			},
		}).
		Aggregations(map[string]types.Aggregations{
			playersAggName: {
				Terms: &types.TermsAggregation{
					Field: &playerField,
					Size:  &limit,
					Order: []map[string]sortorder.SortOrder{
						{bestAggName: sortorder.Desc},
						{avgAggName: sortorder.Desc},
						{"_key": sortorder.Asc},
					},
				},
				Aggregations: map[string]types.Aggregations{
					bestAggName: {Max: &types.MaxAggregation{Field: &totalField}},
					avgAggName:  {Avg: &types.AverageAggregation{Field: &totalField}},
				},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch leaderboard aggregation failed", "error", err)
		return nil, fmt.Errorf("failed to execute leaderboard aggregation: %w", err)
	}

	agg, ok := res.Aggregations[playersAggName]
	if !ok {
		return []domain.LeaderboardEntry{}, nil
	}
	terms, ok := agg.(*types.StringTermsAggregate)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregate type %T", agg)
	}
	buckets, ok := terms.Buckets.([]types.StringTermsBucket)
	if !ok {
		return nil, fmt.Errorf("unexpected buckets type %T", terms.Buckets)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(buckets))
	for _, b := range buckets {
		player, _ := b.Key.(string)
		entry := domain.LeaderboardEntry{
			Player: player,
			Games:  int(b.DocCount),
		}
		if maxAgg, ok := b.Aggregations[bestAggName].(*types.MaxAggregate); ok && maxAgg.Value != nil {
			entry.BestScore = int(*maxAgg.Value)
		}
		if avgAgg, ok := b.Aggregations[avgAggName].(*types.AvgAggregate); ok && avgAgg.Value != nil {
			entry.AvgScore = domain.RoundAvg(float64(*avgAgg.Value))
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Compile-time interface assertions
var _ storage.Reader = (*Reader)(nil)
