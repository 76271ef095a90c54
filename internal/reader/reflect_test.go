package reader

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorecard struct {
	ID       uuid.UUID
	Player   string
	Notation string
	Pins     int
	Meta     struct {
		League   string
		PlayedAt time.Time
	}
}

func TestSetFlatField(t *testing.T) {
	var card scorecard
	val := reflect.ValueOf(&card).Elem()

	err := SetFlatField(val, "Player", "amy", "string", "")
	require.NoError(t, err)

	err = SetFlatField(val, "Notation", "X7/9-X-88/-6XXX81", "string", "")
	require.NoError(t, err)

	err = SetFlatField(val, "ID", "123e4567-e89b-12d3-a456-426614174000", "uuid", "")
	require.NoError(t, err)

	err = SetFlatField(val, "Pins", "42", "int", "")
	require.NoError(t, err)

	assert.Equal(t, "amy", card.Player)
	assert.Equal(t, "X7/9-X-88/-6XXX81", card.Notation)
	assert.Equal(t, 42, card.Pins)
}

func TestSetFlatField_TypeMismatch(t *testing.T) {
	var card scorecard
	val := reflect.ValueOf(&card).Elem()

	err := SetFlatField(val, "Pins", "not-a-number", "int", "")
	assert.Error(t, err)

	err = SetFlatField(val, "Player", "5", "int", "")
	assert.Error(t, err)

	err = SetFlatField(val, "NoSuchField", "x", "string", "")
	assert.Error(t, err)
}

func TestSetNestedField(t *testing.T) {
	var card scorecard
	val := reflect.ValueOf(&card).Elem()

	err := SetNestedField(val, []string{"Meta", "League"}, "tuesday", "string", "")
	require.NoError(t, err)

	err = SetNestedField(val, []string{"Meta", "PlayedAt"}, "2024-10-01T12:00:00Z", "datetime", time.RFC3339)
	require.NoError(t, err)

	assert.Equal(t, "tuesday", card.Meta.League)
	assert.Equal(t, time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC), card.Meta.PlayedAt)
}

func TestSetNestedField_InvalidPath(t *testing.T) {
	var card scorecard
	val := reflect.ValueOf(&card).Elem()

	err := SetNestedField(val, []string{"Meta", "Nope"}, "x", "string", "")
	assert.Error(t, err)
}
