package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalScore(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     int
	}{
		{
			name:     "perfect game",
			notation: "XXXXXXXXXXXX",
			want:     300,
		},
		{
			name:     "all nines",
			notation: "9-9-9-9-9-9-9-9-9-9-",
			want:     90,
		},
		{
			name:     "all fives",
			notation: "5/5/5/5/5/5/5/5/5/5/5",
			want:     150,
		},
		{
			name:     "mixed game",
			notation: "X7/9-X-88/-6XXX81",
			want:     168,
		},
		{
			name:     "closing strike run",
			notation: "12-34-5/-0/-X-X-X-X-X-X-XX",
			want:     220,
		},
		{
			name:     "strike followed by spare mark",
			notation: "X/",
			want:     10,
		},
		{
			name:     "incomplete game",
			notation: "X7/9",
			want:     48,
		},
		{
			name:     "empty",
			notation: "",
			want:     0,
		},
		{
			name:     "separators only",
			notation: "----",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalScore(tt.notation))
		})
	}
}

func TestTotalScoreNeverExceedsPerfect(t *testing.T) {
	for _, notation := range []string{
		"XXXXXXXXXXXXXXXXXXXX",
		"X/X/X/X/X/X/X/X/X/X/X/",
		"9/9/9/9/9/9/9/9/9/9/9/9",
	} {
		assert.LessOrEqual(t, TotalScore(notation), 300, "notation %q", notation)
	}
}
