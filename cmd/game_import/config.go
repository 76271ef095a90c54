package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/kegelbahn/tenpin/internal/ingest"
	"github.com/kegelbahn/tenpin/internal/storage/factory"
	"github.com/kegelbahn/tenpin/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type GameImportConfig struct {
	DatasetPath     string
	DataMappingPath string
	BulkOptions     ingest.BulkOptions
	factory.StorageConfig
}

func (as *AppConfig) Load() (*GameImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/game_import/.env")
	if err != nil {
		slog.Info("Failed to load .env file, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	mappingPath := os.Getenv("MAPPING_CONFIG_PATH")
	if mappingPath == "" {
		slog.Error("MAPPING_CONFIG_PATH environment variable is not set")
		return nil, fmt.Errorf("MAPPING_CONFIG_PATH environment variable is not set")
	}

	dsPath := os.Getenv("DATASET_PATH")
	if dsPath == "" {
		slog.Error("DATASET_PATH environment variable is not set")
		return nil, fmt.Errorf("DATASET_PATH environment variable is not set")
	}

	bulkEnabled := os.Getenv("BULK_ENABLED")
	bulkSizeNum, err := strconv.Atoi(os.Getenv("BULK_SIZE"))
	if err != nil {
		bulkSizeNum = 5_000
	}

	return &GameImportConfig{
		DatasetPath:     dsPath,
		DataMappingPath: mappingPath,
		BulkOptions: ingest.BulkOptions{
			Enabled: bulkEnabled == "true",
			Size:    bulkSizeNum,
		},
		StorageConfig: *storageCfg,
	}, nil
}
