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
	"github.com/db47h/nadia/vm"
	"github.com/db47h/nadia/writer"
)

// Player is a player in a World. It keeps its own position and inventory;
// the world itself is never modified.
//
// If a writer is set with WithWriter, every action is recorded as NadiaVM
// source. Coins are then mirrored in two arrays: world_coins, holding the
// position of every coin still in the world, and inventory, holding the
// collected ones. Both are indexed by coin number in row major order.
type Player struct {
	world     *World
	pos       vm.Position
	coins     []vm.Position
	left      map[vm.Position]int
	inventory []vm.Position
	w         *writer.Writer
}

// PlayerOption interface
type PlayerOption func(*Player)

// At sets the player start position. Defaults to the world's player start.
func At(p vm.Position) PlayerOption {
	return func(pl *Player) { pl.pos = p }
}

// WithInventory sets the initial player inventory.
func WithInventory(items ...vm.Position) PlayerOption {
	return func(pl *Player) { pl.inventory = append(pl.inventory[:0], items...) }
}

// WithWriter makes the player record its actions with w.
func WithWriter(w *writer.Writer) PlayerOption {
	return func(pl *Player) { pl.w = w }
}

// NewPlayer creates a new player in world w.
func NewPlayer(w *World, opts ...PlayerOption) *Player {
	p := &Player{
		world: w,
		pos:   w.Player(),
		coins: w.Coins().Coordinates(),
	}
	p.left = make(map[vm.Position]int, len(p.coins))
	for i, c := range p.coins {
		p.left[c] = i
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.w != nil {
		p.w.Alloc("world_coins", len(p.coins))
		p.w.Alloc("inventory", len(p.coins))
		for i, c := range p.coins {
			p.w.Set(c)
			p.w.Push("world_coins", i)
		}
	}
	return p
}

// Location returns the current player position.
func (p *Player) Location() vm.Position { return p.pos }

// Origin returns the player start position in the world.
func (p *Player) Origin() vm.Position { return p.world.Player() }

// Capacity returns the number of items in the inventory.
func (p *Player) Capacity() int { return len(p.inventory) }

// Inventory returns a copy of the inventory.
func (p *Player) Inventory() []vm.Position {
	return append([]vm.Position(nil), p.inventory...)
}

// Blocked returns true if there is a wall next to the player.
func (p *Player) Blocked() bool {
	for _, dir := range [...]string{"north", "south", "west", "east"} {
		if p.world.walls.Contains(p.pos.Step(dir)) {
			return true
		}
	}
	return false
}

// Move moves the player one step in the given direction, unless there is a
// wall in the way. The move is recorded in either case.
func (p *Player) Move(dir string) *Player {
	if np := p.pos.Step(dir); !p.world.walls.Contains(np) {
		p.pos = np
	}
	if p.w != nil {
		p.w.Move(dir)
	}
	return p
}

// Collect picks up the coin at the player position, if any.
func (p *Player) Collect() *Player {
	i, ok := p.left[p.pos]
	if !ok {
		return p
	}
	delete(p.left, p.pos)
	p.inventory = append(p.inventory, p.pos)
	if p.w != nil {
		p.w.Pop("world_coins", i)
		p.w.Push("inventory", i)
		p.w.Collect()
	}
	return p
}

// CoinsLeft returns the number of coins still in the world.
func (p *Player) CoinsLeft() int { return len(p.left) }

// Exit records an exit attempt. It returns true if the player stands on the
// exit.
func (p *Player) Exit() bool {
	if p.w != nil {
		p.w.Exit()
	}
	e, ok := p.world.Exit()
	return ok && e == p.pos
}
