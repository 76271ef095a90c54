package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: house-league
description: Tuesday night checks
version: "2"
cases:
  - id: perfect
    input: XXXXXXXXXXXX
    expected: 300
  - id: gutter-ball-game
    description: twenty misses
    input: "--------------------"
    expected: 0
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "house-league", s.Name)
		assert.Equal(t, "2", s.Version)
		require.Len(t, s.Cases, 2)
		assert.Equal(t, "perfect", s.Cases[0].ID)
		assert.Equal(t, 300, s.Cases[0].Expected)
		assert.Equal(t, "twenty misses", s.Cases[1].Description)
	})

	t.Run("no cases", func(t *testing.T) {
		yaml := `
name: empty
cases: []
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no cases")
	})

	t.Run("case missing id", func(t *testing.T) {
		yaml := `
name: broken
cases:
  - input: XXXXXXXXXXXX
    expected: 300
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no id")
	})

	t.Run("duplicate case ids", func(t *testing.T) {
		yaml := `
name: broken
cases:
  - id: twin
    input: XXXXXXXXXXXX
    expected: 300
  - id: twin
    input: 5/5/5/5/5/5/5/5/5/5/5
    expected: 150
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate case id")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("cases: [\n"))
		assert.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	content := `
name: from-file
cases:
  - id: all-nines
    input: 9-9-9-9-9-9-9-9-9-9-
    expected: 90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", s.Name)
	require.Len(t, s.Cases, 1)
	assert.Equal(t, 90, s.Cases[0].Expected)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
