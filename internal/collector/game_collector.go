package collector

import (
	"context"
	"log/slog"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/internal/reader"
)

const defaultWorkers = 10

// GameCollector pairs a raw record reader with a scorecard mapper and
// streams the resulting games.
type GameCollector struct {
	Reader reader.RawParallelReader
	Mapper reader.Mapper
}

func NewGameCollector(r reader.RawParallelReader, mapper reader.Mapper) *GameCollector {
	return &GameCollector{
		Reader: r,
		Mapper: mapper,
	}
}

func (gc *GameCollector) Collect(ctx context.Context) (<-chan Result[domain.Game], error) {
	records, err := gc.Reader.ReadParallel(ctx, defaultWorkers)
	if err != nil {
		return nil, err
	}

	games := make(chan Result[domain.Game])
	go func() {
		defer close(games)

		for {
			select {
			case <-ctx.Done():
				return
			case res, ok := <-records:
				if !ok {
					slog.Info("Reader channel closed, stopping collection")
					return
				}
				if res.Err != nil {
					games <- Result[domain.Game]{Err: res.Err}
					continue
				}

				game, err := gc.Mapper.Map(res.Record, nil)
				if err != nil {
					slog.Error("failed to map record to game", "error", err)
					games <- Result[domain.Game]{Err: err}
					continue
				}

				games <- Result[domain.Game]{Result: game}
			}
		}
	}()

	return games, nil
}

// Compile-time interface assertions
var _ Collector[domain.Game] = (*GameCollector)(nil)
