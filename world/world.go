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

// Package world implements the grid world that NadiaVM programs play in.
//
// A World is built from a layout, usually read from a level configuration
// file with LoadConfigFile. A Player moves around a World, optionally
// recording its actions as NadiaVM source with a writer.Writer. Run replays a
// program in a vm.Instance against a World, enforcing the world rules.
package world

import "github.com/db47h/nadia/vm"

// World is a level: a grid with walls, coins, a player start and an exit.
type World struct {
	grid   *Grid
	walls  *Grid
	coins  *Grid
	rows   int
	cols   int
	player vm.Position
}

// New creates a new World from layout data.
func New(d *Data) *World {
	w := &World{
		grid:  d.Grid(),
		walls: d.Walls(),
		coins: d.Coins(),
	}
	w.rows, w.cols = d.Size()
	w.player, _ = d.Player()
	return w
}

// Player returns the player start position. It is (0, 0) if the layout has
// no player.
func (w *World) Player() vm.Position { return w.player }

// Size returns the number of rows and columns of the world.
func (w *World) Size() (rows, cols int) { return w.rows, w.cols }

// Grid returns the world grid.
func (w *World) Grid() *Grid { return w.grid }

// Walls returns a grid containing only the walls.
func (w *World) Walls() *Grid { return w.walls }

// Coins returns a grid containing only the coins.
func (w *World) Coins() *Grid { return w.coins }

// Exit returns the position of the exit.
func (w *World) Exit() (vm.Position, bool) { return w.grid.First(TileExit) }
