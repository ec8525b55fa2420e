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
	"github.com/db47h/nadia/lang"
	"github.com/db47h/nadia/vm"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of a program run against a World.
type Result struct {
	Position  vm.Position
	Coins     int
	CoinsLeft int
	Exited    bool
	Steps     int64
	Checks    map[Check]bool
	AllPassed bool
}

// Run executes the program loaded in i against world w, in lockstep.
//
// Before each instruction, Run looks at the command about to be executed.
// Moves into a wall are reverted, unless cfg carries BugNoCollision. A collect
// picks up the coin under the player, if any. Execution stops after the first
// exit instruction. Programs that end without exit are not an error.
//
// cfg may be nil, in which case no bug applies and no check is required.
// If an instruction fails, Run returns the partial result along with the
// error.
func Run(w *World, i *vm.Instance, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	p := NewPlayer(w, At(i.Position()))
	collide := !cfg.HasBug(BugNoCollision)
	res := &Result{}
	start := i.InstructionCount()

	var err error
	for i.HasMoreInstructions() {
		c, _ := i.PreviewNext()
		prev := i.Position()
		if err = i.Next(); err != nil {
			break
		}
		switch c {
		case lang.Move:
			pos := i.Position()
			if collide && w.walls.Contains(pos) {
				log.Debug().Stringer("from", prev).Stringer("to", pos).Msg("blocked by wall")
				// SetOptions never fails with Origin
				i.SetOptions(vm.Origin(prev))
				pos = prev
			}
			p.pos = pos
		case lang.Collect:
			n := p.Capacity()
			p.Collect()
			if p.Capacity() > n {
				log.Debug().Stringer("at", p.pos).Int("left", p.CoinsLeft()).Msg("coin collected")
			}
		case lang.Exit:
			res.Exited = p.Exit()
			log.Debug().Stringer("at", p.pos).Bool("exited", res.Exited).Msg("exit")
		}
		if c == lang.Exit {
			break
		}
	}

	res.Position = p.pos
	res.Coins = p.Capacity()
	res.CoinsLeft = p.CoinsLeft()
	res.Steps = i.InstructionCount() - start
	res.Checks = make(map[Check]bool, len(cfg.Checks))
	res.AllPassed = true
	for _, ck := range cfg.Checks {
		var ok bool
		switch ck {
		case CheckAtExit:
			ok = res.Exited
		case CheckAllDevices:
			ok = res.CoinsLeft == 0
		}
		res.Checks[ck] = ok
		res.AllPassed = res.AllPassed && ok
	}
	return res, err
}
