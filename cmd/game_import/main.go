package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kegelbahn/tenpin/internal/collector"
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/ingest"
	"github.com/kegelbahn/tenpin/internal/reader"
	"github.com/kegelbahn/tenpin/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mappingFile, err := os.Open(cfg.DataMappingPath)
	if err != nil {
		slog.Error("failed to open mapping config file", "error", err)
		os.Exit(1)
	}
	loader := reader.NewYAMLConfigLoader(mappingFile)

	dataFile, err := os.Open(cfg.DatasetPath)
	if err != nil {
		slog.Error("failed to open dataset file", "error", err)
		os.Exit(1)
	}
	scorecardReader := reader.NewCSVReader(dataFile)

	mappingCfg, err := loader.Load(true)
	if err != nil {
		slog.Error("failed to load mapping config", "error", err)
		os.Exit(1)
	}
	mapper := reader.NewGameMapper(mappingCfg)

	c := collector.NewGameCollector(scorecardReader, mapper)

	pipeline, err := newPipeline(ctx, cfg, c)
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		os.Exit(1)
	}

	if err := pipeline.Run(ctx); err != nil {
		slog.Error("failed to run pipeline", "error", err)
		os.Exit(1)
	}
}

func newPipeline(
	ctx context.Context,
	cfg *GameImportConfig,
	coll collector.Collector[domain.Game]) (ingest.Pipeline, error) {
	slog.Info("Creating pipeline", "storageType", cfg.StorageConfig.Type)

	storer, err := factory.NewStorer(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create storer", "error", err)
		return nil, err
	}

	var opts []ingest.ImportPipelineOption
	if cfg.BulkOptions.Enabled {
		opts = append(opts, ingest.WithBulk(cfg.BulkOptions.Size))
	}

	return ingest.NewImportPipeline(coll, storer, opts...), nil
}
