package factory

import (
	"context"
	"fmt"

	"github.com/kegelbahn/tenpin/internal/storage"
	"github.com/kegelbahn/tenpin/internal/storage/es"
	"github.com/kegelbahn/tenpin/internal/storage/in_mem"
	"github.com/kegelbahn/tenpin/internal/storage/jsonl"
	"github.com/kegelbahn/tenpin/internal/storage/pg"
	"github.com/kegelbahn/tenpin/pkg/server"
)

// Backend bundles the write side, read side and health probe of one
// storage target. The sides share the same underlying connection, so
// an in-memory backend reads its own writes and a Postgres backend
// opens a single pool.
type Backend struct {
	Storer storage.Storer
	Reader storage.Reader
	Health server.HealthChecker

	closers []func()
}

// Close releases the backend's connections. Safe to call once after
// the last request has drained.
func (b *Backend) Close() {
	for _, closeFn := range b.closers {
		closeFn()
	}
}

// NewBackend creates the full read-write backend for the API server.
// The JSONL target is write-only and is rejected here; use NewStorer
// for ingest-only workloads.
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		storer, err := pg.NewStorer(pool)
		if err != nil {
			return nil, err
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Storer:  storer,
			Reader:  reader,
			Health:  pg.NewHealthChecker(pool),
			closers: []func(){pool.Close},
		}, nil

	case storage.ES:
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		health, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Storer: storer,
			Reader: reader,
			Health: health,
		}, nil

	case storage.InMem:
		mem := in_mem.NewInMemStorer()
		return &Backend{
			Storer: mem,
			Reader: mem,
			Health: server.NewOkHealthChecker(),
		}, nil

	case storage.JSONL:
		return nil, fmt.Errorf("jsonl storage is write-only and cannot back the API")

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewStorer creates the write side only. Ingest pipelines use it, so
// the write-only JSONL target is allowed.
func NewStorer(ctx context.Context, cfg *StorageConfig) (storage.Storer, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStorer(pool)

	case storage.ES:
		return es.NewStorer(ctx, *cfg.Es)

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	case storage.JSONL:
		return jsonl.NewStorer(cfg.JSONLPath), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
