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
	"fmt"

	"github.com/db47h/nadia/vm"
)

// LayoutError is returned by ParseLayout when a layout contains more than one
// player or exit.
type LayoutError struct {
	Tile          Tile
	First, Second vm.Position
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("more than one %v in layout: at %v and %v", e.Tile, e.First, e.Second)
}

// Data is a parsed world layout.
type Data struct {
	src       string
	grid      *Grid
	rows      int
	cols      int
	player    vm.Position
	hasPlayer bool
}

// ParseLayout parses a world layout.
//
// Each line of the layout is a grid row, each character a cell: '%' is a
// wall, 'P' the player start, 'E' the exit and '.' a coin. Any other
// character is air. A layout may have at most one player and one exit.
func ParseLayout(layout string) (*Data, error) {
	var (
		cells [][]Tile
		row   []Tile
		seen  = make(map[Tile]vm.Position)
	)
	for _, r := range layout {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			cells = append(cells, row)
			row = nil
			continue
		}
		t := tileOf(r)
		p := vm.Position{Row: len(cells), Col: len(row)}
		if t == TilePlayer || t == TileExit {
			if prev, ok := seen[t]; ok {
				return nil, &LayoutError{t, prev, p}
			}
			seen[t] = p
		}
		row = append(row, t)
	}
	if len(row) > 0 {
		cells = append(cells, row)
	}
	d := &Data{src: layout, grid: &Grid{cells: cells}}
	d.rows, d.cols = d.grid.Shape()
	d.player, d.hasPlayer = seen[TilePlayer]
	return d, nil
}

// Size returns the number of rows and columns of the layout. The number of
// columns is the length of the first row.
func (d *Data) Size() (rows, cols int) { return d.rows, d.cols }

// Grid returns the layout grid.
func (d *Data) Grid() *Grid { return d.grid }

// Player returns the player start position.
func (d *Data) Player() (vm.Position, bool) { return d.player, d.hasPlayer }

// Coins returns the grid of coins.
func (d *Data) Coins() *Grid { return d.grid.Filter(TileCoin) }

// Walls returns the grid of walls.
func (d *Data) Walls() *Grid { return d.grid.Filter(TileWall) }

func (d *Data) String() string {
	return fmt.Sprintf("Dimensions: (%d, %d)\nMap\n=====\n%s", d.rows, d.cols, d.src)
}
