package collector

import "context"

// Result carries one collected value or the error that produced it.
// Errors are per item; the stream keeps flowing.
type Result[T any] struct {
	Result T
	Err    error
}

// Collector streams mapped domain values from a raw source until the
// source drains or ctx is cancelled.
type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
