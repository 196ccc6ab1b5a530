package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			require.NoError(t, err)
			assert.Equal(t, name, lvl.Name)
			assert.Len(t, lvl.EntitiesOfType("player"), 1, "each level spawns exactly one player")
			assert.Positive(t, lvl.PixelWidth())
			assert.Positive(t, lvl.PixelHeight())
		})
	}
}

func TestRoomMatchesTargetAspect(t *testing.T) {
	lvl, err := LoadLevelFromFS("levels/room.json")
	require.NoError(t, err)
	assert.Equal(t, 320, lvl.PixelWidth())
	assert.Equal(t, 180, lvl.PixelHeight())
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadLevelFromFS("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"bad_json", `{`},
		{"no_grid", `{"name":"x","layers":[{"rows":["#"]}]}`},
		{"no_layers", `{"name":"x","grid_size":16}`},
		{"ragged_row", `{"name":"x","grid_size":16,"layers":[{"rows":["##","#"]}]}`},
		{"layer_row_mismatch", `{"name":"x","grid_size":16,"layers":[{"rows":["#"]},{"rows":["#","#"]}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.json))
			assert.Error(t, err)
		})
	}
}

func TestSolid(t *testing.T) {
	lvl, err := Parse([]byte(`{"name":"x","grid_size":8,"layers":[{"rows":["#.",".#"]}]}`))
	require.NoError(t, err)
	assert.True(t, lvl.Solid(0, 0, 0))
	assert.False(t, lvl.Solid(0, 1, 0))
	assert.True(t, lvl.Solid(0, 1, 1))
	assert.False(t, lvl.Solid(0, 5, 5))
	assert.False(t, lvl.Solid(3, 0, 0))
	assert.Equal(t, 16, lvl.PixelWidth())
}
