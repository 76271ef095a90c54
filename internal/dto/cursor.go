package dto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cursor represents a position in the games timeline.
// It carries the creation time and ID of the last item on the page so
// backends can resume with a keyset condition instead of an offset.
type Cursor struct {
	CreatedAt time.Time `json:"c"`
	ID        uuid.UUID `json:"i"`
}

// EncodeCursor converts a Cursor to a base64-encoded string
func EncodeCursor(createdAt time.Time, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", fmt.Errorf("cursor ID cannot be nil")
	}

	c := Cursor{
		CreatedAt: createdAt,
		ID:        id,
	}

	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}

// DecodeCursor parses a base64-encoded cursor string
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cursor: %w", err)
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}

	if c.ID == uuid.Nil {
		return nil, fmt.Errorf("invalid cursor: ID cannot be nil")
	}

	return &c, nil
}

// MustEncodeCursor is like EncodeCursor but panics on error
// Use only when you're certain the inputs are valid
func MustEncodeCursor(createdAt time.Time, id uuid.UUID) string {
	cursor, err := EncodeCursor(createdAt, id)
	if err != nil {
		panic(err)
	}
	return cursor
}
