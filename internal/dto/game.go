package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kegelbahn/tenpin/internal/domain"
)

type Game struct {
	ID        uuid.UUID    `json:"id" swaggertype:"string"`
	Player    string       `json:"player,omitempty"`
	Notation  string       `json:"notation"`
	Throws    []int        `json:"throws,omitempty"`
	Total     int          `json:"total"`
	CreatedAt time.Time    `json:"createdAt"`
	Metadata  GameMetadata `json:"metadata"`
}

type GameMetadata struct {
	League   string    `json:"league,omitempty"`
	PlayedAt time.Time `json:"playedAt,omitempty"`

	// System metadata
	ImportedAt time.Time `json:"importedAt,omitempty"`
}

// CreateGameRequest is the payload for recording a played game.
// The total is never part of the request; it is always computed
// from the notation on the server.
type CreateGameRequest struct {
	Player   string    `json:"player,omitempty" example:"Earl Anthony"`
	Notation string    `json:"notation" example:"X7/9-X-88/-6XXX81"`
	League   string    `json:"league,omitempty" example:"tuesday-night"`
	PlayedAt time.Time `json:"playedAt,omitempty" example:"2025-03-18T20:30:00Z"`
}

func (r *CreateGameRequest) ToDomain() domain.Game {
	return domain.Game{
		Player:   r.Player,
		Notation: r.Notation,
		Metadata: domain.GameMetadata{
			League:   r.League,
			PlayedAt: r.PlayedAt,
		},
	}
}

func GameFromDomain(g domain.Game) Game {
	return Game{
		ID:        g.ID,
		Player:    g.Player,
		Notation:  g.Notation,
		Throws:    g.Throws,
		Total:     g.Total,
		CreatedAt: g.CreatedAt,
		Metadata: GameMetadata{
			League:     g.Metadata.League,
			PlayedAt:   g.Metadata.PlayedAt,
			ImportedAt: g.Metadata.ImportedAt,
		},
	}
}

func GamesFromDomain(games []domain.Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		out = append(out, GameFromDomain(g))
	}
	return out
}
