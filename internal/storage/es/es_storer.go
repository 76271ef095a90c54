package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/storage"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the index representation of a game. Metadata is flattened
// so league and the date fields stay directly filterable.
type Document struct {
	ID         string    `json:"id"`
	Player     string    `json:"player"`
	Notation   string    `json:"notation"`
	Throws     []int     `json:"throws"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	League     string    `json:"league"`
	PlayedAt   time.Time `json:"played_at"`
	ImportedAt time.Time `json:"imported_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, game domain.Game) (uuid.UUID, error) {
	storage.Normalize(&game, time.Now())
	doc := gameToDocument(game)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return game.ID, nil
}

func (e *Storer) SaveBulk(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})

	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	now := time.Now()

	var successful, failed atomic.Int64

	for i := range games {
		storage.Normalize(&games[i], now)
		doc := gameToDocument(games[i])

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	// Close the indexer and wait for completion
	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(games),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d games", n, len(games))
	}

	return nil
}

func gameToDocument(game domain.Game) Document {
	return Document{
		ID:         game.ID.String(),
		Player:     game.Player,
		Notation:   game.Notation,
		Throws:     game.Throws,
		Total:      game.Total,
		CreatedAt:  game.CreatedAt,
		League:     game.Metadata.League,
		PlayedAt:   game.Metadata.PlayedAt,
		ImportedAt: game.Metadata.ImportedAt,
		IndexedAt:  time.Now(),
	}
}

func documentToGame(doc Document) (domain.Game, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.Game{}, fmt.Errorf("failed to parse game ID: %w", err)
	}

	return domain.Game{
		ID:        id,
		Player:    doc.Player,
		Notation:  doc.Notation,
		Throws:    doc.Throws,
		Total:     doc.Total,
		CreatedAt: doc.CreatedAt,
		Metadata: domain.GameMetadata{
			League:     doc.League,
			PlayedAt:   doc.PlayedAt,
			ImportedAt: doc.ImportedAt,
		},
	}, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"player":      textPropertyWithKeyword(),
			"notation":    types.NewKeywordProperty(),
			"throws":      types.NewIntegerNumberProperty(),
			"total":       types.NewIntegerNumberProperty(),
			"created_at":  types.NewDateProperty(),
			"league":      types.NewKeywordProperty(),
			"played_at":   types.NewDateProperty(),
			"imported_at": types.NewDateProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

// textPropertyWithKeyword maps a field as analyzed text with a raw
// keyword subfield for exact filtering and aggregations.
func textPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}

// Compile-time interface assertions
var _ storage.Storer = (*Storer)(nil)
