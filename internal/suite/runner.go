package suite

import (
	"time"

	"github.com/kegelbahn/tenpin/pkg/bowling"
)

// CaseResult is the outcome of scoring one case.
type CaseResult struct {
	ID       string
	Input    string
	Expected int
	Got      int
	Passed   bool
	Elapsed  time.Duration
}

// Result collects the outcomes of one suite run.
type Result struct {
	SuiteName string
	Cases     []CaseResult
}

func (r *Result) PassCount() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

func (r *Result) FailCount() int {
	return len(r.Cases) - r.PassCount()
}

// Run scores every case and records whether the computed total matches
// the expected one. A mismatch marks the case failed and the run moves
// on to the next case.
func Run(s *Suite) *Result {
	res := &Result{
		SuiteName: s.Name,
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}
	for _, c := range s.Cases {
		start := time.Now()
		got := bowling.TotalScore(c.Input)
		res.Cases = append(res.Cases, CaseResult{
			ID:       c.ID,
			Input:    c.Input,
			Expected: c.Expected,
			Got:      got,
			Passed:   got == c.Expected,
			Elapsed:  time.Since(start),
		})
	}
	return res
}
