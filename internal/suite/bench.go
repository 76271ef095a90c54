package suite

import (
	"time"

	"github.com/kegelbahn/tenpin/pkg/bowling"
)

const defaultIterations = 1000

// CaseBench is the latency profile of one case under repetition.
type CaseBench struct {
	ID      string
	Input   string
	Total   int
	Latency LatencyStats
}

// BenchResult carries per-case latency stats plus the aggregate over
// the whole suite.
type BenchResult struct {
	SuiteName  string
	Iterations int
	Cases      []CaseBench
	Overall    LatencyStats
}

// Bench scores every case the given number of times and collects
// latency stats per case. Iterations below one fall back to the
// default of 1000.
func Bench(s *Suite, iterations int) *BenchResult {
	if iterations < 1 {
		iterations = defaultIterations
	}

	br := &BenchResult{
		SuiteName:  s.Name,
		Iterations: iterations,
		Cases:      make([]CaseBench, 0, len(s.Cases)),
	}

	var perCase []LatencyStats
	for _, c := range s.Cases {
		durations := make([]time.Duration, iterations)
		total := 0
		for i := 0; i < iterations; i++ {
			start := time.Now()
			total = bowling.TotalScore(c.Input)
			durations[i] = time.Since(start)
		}
		stats := ComputeLatencyStats(durations)
		br.Cases = append(br.Cases, CaseBench{
			ID:      c.ID,
			Input:   c.Input,
			Total:   total,
			Latency: stats,
		})
		perCase = append(perCase, stats)
	}

	br.Overall = AggregateLatencyStats(perCase)
	return br
}
