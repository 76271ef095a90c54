package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/kegelbahn/tenpin/internal/collector"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/storage"
)

const defaultBatchSize = 1000

// Pipeline defines the common interface for data ingestion pipelines
type Pipeline interface {
	// Run executes the pipeline with the given context
	Run(ctx context.Context) error

	// Stop gracefully stops the pipeline
	Stop()
}

// BulkOptions defines common bulk processing options
type BulkOptions struct {
	Enabled bool
	Size    int
}

// Stats counts what a pipeline run did. Failed covers both records
// that never became games and games the backend rejected.
type Stats struct {
	Saved  int64
	Failed int64
}

// ImportPipeline drains a game collector into a storage backend. With
// bulk enabled, games are flushed in batches of Size; otherwise each
// game is saved on its own.
type ImportPipeline struct {
	name      string
	collector collector.Collector[domain.Game]
	storer    storage.Storer
	bulk      *BulkOptions

	stats Stats
}

type ImportPipelineOption func(pipeline *ImportPipeline)

func WithBulk(size int) ImportPipelineOption {
	return func(pipeline *ImportPipeline) {
		if size <= 0 {
			size = defaultBatchSize
		}
		pipeline.bulk = &BulkOptions{
			Enabled: true,
			Size:    size,
		}
	}
}

func WithName(name string) ImportPipelineOption {
	return func(pipeline *ImportPipeline) {
		pipeline.name = name
	}
}

func NewImportPipeline(c collector.Collector[domain.Game], storer storage.Storer, opts ...ImportPipelineOption) *ImportPipeline {
	p := &ImportPipeline{
		name:      "import",
		collector: c,
		storer:    storer,
		bulk: &BulkOptions{
			Enabled: false,
			Size:    defaultBatchSize,
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *ImportPipeline) Run(ctx context.Context) error {
	start := time.Now()

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting games", "error", err, "pipeline", p.name)
		return err
	}

	var runErr error
	if p.bulk.Enabled {
		runErr = p.importBatch(ctx, results)
	} else {
		runErr = p.importBasic(ctx, results)
	}

	slog.Info("Pipeline run completed",
		"pipeline", p.name,
		"duration", time.Since(start),
		"saved", p.stats.Saved,
		"failed", p.stats.Failed)

	return runErr
}

// Stats reports the counters of the last run.
func (p *ImportPipeline) Stats() Stats {
	return p.stats
}

func (p *ImportPipeline) importBasic(ctx context.Context, results <-chan collector.Result[domain.Game]) error {
	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection", "pipeline", p.name)
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				slog.Info("Collection channel closed, stopping collection", "pipeline", p.name)
				return nil
			}
			if res.Err != nil {
				slog.Error("Error collecting game", "error", res.Err, "pipeline", p.name)
				p.stats.Failed++
				continue
			}

			if id, err := p.storer.Save(ctx, res.Result); err != nil {
				slog.Error("Error saving game", "error", err, "pipeline", p.name)
				p.stats.Failed++
			} else {
				p.stats.Saved++
				slog.Debug("Game saved", "id", id, "player", res.Result.Player)
			}
		}
	}
}

func (p *ImportPipeline) importBatch(ctx context.Context, results <-chan collector.Result[domain.Game]) error {
	var batch []domain.Game

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := p.storer.SaveBulk(ctx, batch); err != nil {
			slog.Error("Error saving game batch", "error", err, "count", len(batch), "pipeline", p.name)
			p.stats.Failed += int64(len(batch))
		} else {
			p.stats.Saved += int64(len(batch))
			slog.Info("Game batch saved", "count", len(batch), "pipeline", p.name)
		}
		batch = batch[:0]
	}

	defer flush()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection", "pipeline", p.name)
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				slog.Info("Collection channel closed, stopping collection", "pipeline", p.name)
				return nil
			}
			if res.Err != nil {
				slog.Error("Error collecting game", "error", res.Err, "pipeline", p.name)
				p.stats.Failed++
				continue
			}

			batch = append(batch, res.Result)

			if len(batch) >= p.bulk.Size {
				flush()
			}
		}
	}
}

func (p *ImportPipeline) Stop() {
	slog.Info("Pipeline stopped", "pipeline", p.name, "saved", p.stats.Saved, "failed", p.stats.Failed)
}

// Compile-time interface assertions
var _ Pipeline = (*ImportPipeline)(nil)
