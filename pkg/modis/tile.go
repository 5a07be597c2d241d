// Package modis holds MODIS sinusoidal-grid domain types shared by the
// catalog client and the CLI.
package modis

import (
	"fmt"
	"regexp"
	"strconv"
)

var tilePattern = regexp.MustCompile(`^h(\d{2})v(\d{2})$`)

// Tile identifies one cell of the MODIS sinusoidal grid.
type Tile struct {
	H int
	V int
}

// ParseTile parses a tile identifier in h##v## form, e.g. "h11v03".
func ParseTile(s string) (Tile, error) {
	m := tilePattern.FindStringSubmatch(s)
	if m == nil {
		return Tile{}, fmt.Errorf("%q does not match the h##v## tile format", s)
	}
	h, _ := strconv.Atoi(m[1])
	v, _ := strconv.Atoi(m[2])
	return Tile{H: h, V: v}, nil
}

// String renders the tile back in h##v## form.
func (t Tile) String() string {
	return fmt.Sprintf("h%02dv%02d", t.H, t.V)
}
