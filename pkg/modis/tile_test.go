package modis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTile(t *testing.T) {
	tile, err := ParseTile("h11v03")
	require.NoError(t, err)
	assert.Equal(t, Tile{H: 11, V: 3}, tile)
	assert.Equal(t, "h11v03", tile.String())

	tile, err = ParseTile("h09v05")
	require.NoError(t, err)
	assert.Equal(t, Tile{H: 9, V: 5}, tile)
	assert.Equal(t, "h09v05", tile.String())
}

func TestParseTileInvalid(t *testing.T) {
	for _, bad := range []string{
		"",
		"h1v03",
		"h11v3",
		"11v03",
		"h11",
		"v03h11",
		"h11v03x",
		"H11V03",
	} {
		_, err := ParseTile(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
