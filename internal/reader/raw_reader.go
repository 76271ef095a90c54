package reader

import "context"

// Reader loads a whole source into header-keyed records.
type Reader interface {
	Read() ([]map[string]string, error)
}

// ParallelReaderResult carries one decoded record or the error that
// produced it. Errors are per row; the stream keeps going.
type ParallelReaderResult struct {
	Record map[string]string
	Err    error
}

// RawParallelReader streams records with a pool of decoder workers.
// The channel closes when the source is drained or ctx is cancelled.
type RawParallelReader interface {
	ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelReaderResult, error)
}
