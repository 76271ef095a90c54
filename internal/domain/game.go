package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/pkg/bowling"
)

// PerfectScore is the highest total a ten-pin game can reach.
const PerfectScore = 300

type Game struct {
	ID        uuid.UUID    `json:"id"`
	Player    string       `json:"player,omitempty"`
	Notation  string       `json:"notation"`
	Throws    []int        `json:"throws,omitempty"`
	Total     int          `json:"total"`
	CreatedAt time.Time    `json:"createdAt"`
	Metadata  GameMetadata `json:"metadata"`
}

type GameMetadata struct {
	// Provenance
	League   string    `json:"league,omitempty"`
	PlayedAt time.Time `json:"playedAt,omitempty"`

	// System metadata
	ImportedAt time.Time `json:"importedAt,omitempty"`
}

// Rescore recomputes Throws and Total from Notation. Stored totals are
// derived values; every write path rescores before persisting so the
// three fields never drift apart.
func (g *Game) Rescore() {
	g.Throws = bowling.Tokenize(g.Notation)
	g.Total = bowling.Score(g.Throws)
}
