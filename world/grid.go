// This file is part of nadia - https://github.com/db47h/nadia
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package world

import (
	"strconv"
	"strings"

	"github.com/db47h/nadia/vm"
)

// Tile is the content of a grid cell.
type Tile int8

// Tile values. TileNone marks cells removed from a grid by Filter or lying
// outside of it.
const (
	TileNone Tile = iota
	TileAir
	TileWall
	TilePlayer
	TileExit
	TileCoin
)

var tileNames = [...]string{
	TileNone:   "NONE",
	TileAir:    "AIR",
	TileWall:   "WALL",
	TilePlayer: "PLAYER",
	TileExit:   "EXIT",
	TileCoin:   "COIN",
}

func (t Tile) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return "Tile(" + strconv.Itoa(int(t)) + ")"
	}
	return tileNames[t]
}

// tileOf maps layout characters to tiles.
func tileOf(r rune) Tile {
	switch r {
	case '%':
		return TileWall
	case 'P':
		return TilePlayer
	case 'E':
		return TileExit
	case '.':
		return TileCoin
	}
	return TileAir
}

// Grid is a two dimensional array of tiles, organized by rows. Rows do not
// need to have the same length.
//
// Grids are immutable.
type Grid struct {
	cells [][]Tile
}

// NewGrid returns a new grid with a copy of the given rows.
func NewGrid(rows [][]Tile) *Grid {
	g := &Grid{cells: make([][]Tile, len(rows))}
	for i, r := range rows {
		g.cells[i] = append([]Tile(nil), r...)
	}
	return g
}

// Shape returns the number of rows of the grid and the number of columns of
// its first row.
func (g *Grid) Shape() (rows, cols int) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	return len(g.cells), len(g.cells[0])
}

// At returns the tile at the given coordinates, or TileNone if they are out
// of the grid.
func (g *Grid) At(row, col int) Tile {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return TileNone
	}
	return g.cells[row][col]
}

// Contains returns true if the cell at p has not been filtered out.
func (g *Grid) Contains(p vm.Position) bool {
	return g.At(p.Row, p.Col) != TileNone
}

// Coordinates returns the positions of all cells that have not been filtered
// out, in row major order.
func (g *Grid) Coordinates() []vm.Position {
	var ps []vm.Position
	g.each(func(p vm.Position, t Tile) bool {
		if t != TileNone {
			ps = append(ps, p)
		}
		return true
	})
	return ps
}

// each calls fn for every cell in row major order until fn returns false.
func (g *Grid) each(fn func(p vm.Position, t Tile) bool) {
	for r, row := range g.cells {
		for c, t := range row {
			if !fn(vm.Position{Row: r, Col: c}, t) {
				return
			}
		}
	}
}

// First returns the position of the first cell containing t in row major
// order.
func (g *Grid) First(t Tile) (p vm.Position, ok bool) {
	g.each(func(pos vm.Position, tile Tile) bool {
		if tile == t {
			p, ok = pos, true
		}
		return !ok
	})
	return p, ok
}

// Last returns the position of the last cell containing t in row major order.
func (g *Grid) Last(t Tile) (p vm.Position, ok bool) {
	for r := len(g.cells) - 1; r >= 0; r-- {
		for c := len(g.cells[r]) - 1; c >= 0; c-- {
			if g.cells[r][c] == t {
				return vm.Position{Row: r, Col: c}, true
			}
		}
	}
	return p, false
}

// Filter returns a copy of the grid where all cells that do not contain one of
// the given tiles are set to TileNone.
func (g *Grid) Filter(keep ...Tile) *Grid {
	f := &Grid{cells: make([][]Tile, len(g.cells))}
	for r, row := range g.cells {
		f.cells[r] = make([]Tile, len(row))
		for c, t := range row {
			for _, k := range keep {
				if t == k {
					f.cells[r][c] = t
					break
				}
			}
		}
	}
	return f
}

// Equal reports whether g and o have the same cells.
func (g *Grid) Equal(o *Grid) bool {
	if len(g.cells) != len(o.cells) {
		return false
	}
	for r, row := range g.cells {
		if len(row) != len(o.cells[r]) {
			return false
		}
		for c, t := range row {
			if o.cells[r][c] != t {
				return false
			}
		}
	}
	return true
}

// String returns the grid as tab separated tile names, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for c, t := range row {
			if c > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(t.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
