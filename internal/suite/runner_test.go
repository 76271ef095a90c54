package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultSuite(t *testing.T) {
	res := Run(Default())

	require.Len(t, res.Cases, 4)
	assert.Equal(t, 3, res.PassCount())
	assert.Equal(t, 1, res.FailCount())

	byID := make(map[string]CaseResult, len(res.Cases))
	for _, c := range res.Cases {
		byID[c.ID] = c
	}

	assert.True(t, byID["perfect-game"].Passed)
	assert.Equal(t, 300, byID["perfect-game"].Got)
	assert.True(t, byID["all-open-frames"].Passed)
	assert.Equal(t, 90, byID["all-open-frames"].Got)
	assert.True(t, byID["all-spares"].Passed)
	assert.Equal(t, 150, byID["all-spares"].Got)

	// Separator-blind parsing reads the mixed sheet as 168 against the
	// traditional 167, so this row fails on every run.
	mixed := byID["mixed-marks"]
	assert.False(t, mixed.Passed)
	assert.Equal(t, 167, mixed.Expected)
	assert.Equal(t, 168, mixed.Got)
}

func TestRun_MismatchDoesNotStopTheRun(t *testing.T) {
	s := &Suite{
		Name: "mixed-bag",
		Cases: []Case{
			{ID: "wrong", Input: "XXXXXXXXXXXX", Expected: 299},
			{ID: "right", Input: "5/5/5/5/5/5/5/5/5/5/5", Expected: 150},
		},
	}

	res := Run(s)

	require.Len(t, res.Cases, 2)
	assert.False(t, res.Cases[0].Passed)
	assert.Equal(t, 300, res.Cases[0].Got)
	assert.True(t, res.Cases[1].Passed)
}

func TestBench(t *testing.T) {
	s := &Suite{
		Name: "quick",
		Cases: []Case{
			{ID: "perfect", Input: "XXXXXXXXXXXX", Expected: 300},
			{ID: "spares", Input: "5/5/5/5/5/5/5/5/5/5/5", Expected: 150},
		},
	}

	br := Bench(s, 50)

	assert.Equal(t, 50, br.Iterations)
	require.Len(t, br.Cases, 2)
	assert.Equal(t, 300, br.Cases[0].Total)
	assert.Equal(t, 150, br.Cases[1].Total)
	assert.Equal(t, 50, br.Cases[0].Latency.SampleCount)
	assert.Equal(t, 100, br.Overall.SampleCount)
	assert.False(t, br.Overall.IsZero())
}

func TestBench_DefaultIterations(t *testing.T) {
	s := &Suite{
		Name:  "tiny",
		Cases: []Case{{ID: "empty", Input: "", Expected: 0}},
	}

	br := Bench(s, 0)

	assert.Equal(t, defaultIterations, br.Iterations)
	require.Len(t, br.Cases, 1)
	assert.Equal(t, defaultIterations, br.Cases[0].Latency.SampleCount)
}
