package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     []int
	}{
		{
			name:     "digits map to their value",
			notation: "81",
			want:     []int{8, 1},
		},
		{
			name:     "strike maps to ten",
			notation: "X",
			want:     []int{10},
		},
		{
			name:     "spare completes the previous throw",
			notation: "5/",
			want:     []int{5, 5},
		},
		{
			name:     "spare after zero is a full rack",
			notation: "0/",
			want:     []int{0, 10},
		},
		{
			name:     "spare after strike resolves to zero",
			notation: "X/",
			want:     []int{10, 0},
		},
		{
			name:     "leading spare is a full rack",
			notation: "/",
			want:     []int{10},
		},
		{
			name:     "separators are dropped",
			notation: "9-9-9",
			want:     []int{9, 9, 9},
		},
		{
			name:     "spare state survives separators",
			notation: "5-/",
			want:     []int{5, 5},
		},
		{
			name:     "unknown characters separate",
			notation: "7 èß3",
			want:     []int{7, 3},
		},
		{
			name:     "lowercase x is a separator",
			notation: "x7x",
			want:     []int{7},
		},
		{
			name:     "separators only",
			notation: "-- , *",
			want:     nil,
		},
		{
			name:     "empty input",
			notation: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.notation))
		})
	}
}

func TestTokenizePerfectGame(t *testing.T) {
	throws := Tokenize("XXXXXXXXXXXX")

	assert.Len(t, throws, 12)
	for _, pins := range throws {
		assert.Equal(t, 10, pins)
	}
}
