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

package vm

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/nadia/lang"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Position is a player position on the world grid.
type Position struct {
	Row, Col int
}

// Step returns the position one step away from p in the given direction:
// north, south, east or west. Any other direction steps east.
func (p Position) Step(dir string) Position {
	d, ok := directions[dir]
	if !ok {
		d = directions["east"]
	}
	return Position{p.Row + d.Row, p.Col + d.Col}
}

func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}

// Instance represents a NadiaVM instance.
//
// An Instance owns all of its state: instructions left to execute, operand
// stack, named arrays, casts, bindings and player position. Instances are not
// safe for concurrent use.
type Instance struct {
	prog        []lang.Instruction
	stack       []lang.Value
	arrays      map[string][]lang.Value
	casts       map[string]lang.Value
	binds       lang.Bindings
	pos         Position
	interactive bool
	insCount    int64
	log         zerolog.Logger

	seed    map[string]string
	srcName string
	src     io.Reader
}

// Option interface
type Option func(*Instance) error

// Program sets the program to run. The source is parsed once all options have
// been set, so that it sees the bindings set by the Bindings option. The name
// is only used in error messages.
func Program(name string, r io.Reader) Option {
	return func(i *Instance) error {
		i.srcName = name
		i.src = r
		return nil
	}
}

// Instructions appends already parsed instructions to the program.
func Instructions(prog []lang.Instruction) Option {
	return func(i *Instance) error {
		i.prog = append(i.prog, prog...)
		return nil
	}
}

// Origin sets the initial player position. The default is {0, 0}.
func Origin(p Position) Option {
	return func(i *Instance) error { i.pos = p; return nil }
}

// Interactive enables or disables interactive mode. Only interactive
// instances accept instructions through Input.
func Interactive(interactive bool) Option {
	return func(i *Instance) error { i.interactive = interactive; return nil }
}

// Bindings seeds the binding table with the given alias to command name map.
// Targets that are not commands make New fail.
func Bindings(seed map[string]string) Option {
	return func(i *Instance) error {
		for k, v := range seed {
			i.seed[k] = v
		}
		return nil
	}
}

// Logger sets the logger used to trace execution. The default logger
// discards everything.
func Logger(l zerolog.Logger) Option {
	return func(i *Instance) error { i.log = l; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new NadiaVM instance.
//
// Options will be set by calling SetOptions. If a program source has been
// supplied with the Program option, it is parsed before New returns and any
// parse error is returned.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		arrays: make(map[string][]lang.Value),
		casts:  make(map[string]lang.Value),
		seed:   make(map[string]string),
		log:    zerolog.Nop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	b, err := lang.NewBindings(i.seed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bindings")
	}
	i.binds, i.seed = b, nil
	if i.src != nil {
		prog, err := lang.Parse(i.srcName, i.src, i.binds)
		if err != nil {
			return nil, err
		}
		i.prog = append(i.prog, prog...)
		i.src = nil
	}
	return i, nil
}

// HasMoreInstructions returns true if there are instructions left to
// execute.
func (i *Instance) HasMoreInstructions() bool {
	return len(i.prog) > 0
}

// PreviewNext returns the command of the next instruction without executing
// it. The boolean result is false if there are no more instructions.
func (i *Instance) PreviewNext() (lang.Command, bool) {
	if len(i.prog) == 0 {
		return 0, false
	}
	return i.prog[0].Command, true
}

// Pending returns a copy of the instructions left to execute.
func (i *Instance) Pending() []lang.Instruction {
	p := make([]lang.Instruction, len(i.prog))
	copy(p, i.prog)
	return p
}

// Clear drops all pending instructions. Stack, arrays, casts, bindings and
// position are left untouched.
func (i *Instance) Clear() {
	i.prog = nil
}

// Stack returns a copy of the operand stack. The top of the stack is the last
// element.
func (i *Instance) Stack() []lang.Value {
	s := make([]lang.Value, len(i.stack))
	copy(s, i.stack)
	return s
}

// Top returns the value on top of the operand stack.
func (i *Instance) Top() (lang.Value, bool) {
	if len(i.stack) == 0 {
		return lang.Null, false
	}
	return i.stack[len(i.stack)-1], true
}

// Array returns a copy of the named array. Empty slots are lang.Null.
func (i *Instance) Array(name string) ([]lang.Value, bool) {
	a, ok := i.arrays[name]
	if !ok {
		return nil, false
	}
	c := make([]lang.Value, len(a))
	copy(c, a)
	return c, true
}

// Arrays returns a copy of all named arrays.
func (i *Instance) Arrays() map[string][]lang.Value {
	m := make(map[string][]lang.Value, len(i.arrays))
	for k := range i.arrays {
		m[k], _ = i.Array(k)
	}
	return m
}

// Cast returns the value cast to name.
func (i *Instance) Cast(name string) (lang.Value, bool) {
	v, ok := i.casts[name]
	return v, ok
}

// Lookup returns the command bound to alias.
func (i *Instance) Lookup(alias string) (lang.Command, bool) {
	return i.binds.Lookup(alias)
}

// Position returns the current player position.
func (i *Instance) Position() Position {
	return i.pos
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Interactive returns true if the instance accepts input.
func (i *Instance) Interactive() bool {
	return i.interactive
}

// Input parses a line of NadiaVM source, places the resulting instructions in
// front of the pending ones and executes them. It returns the value on top of
// the stack, if any.
//
// Input does nothing on non-interactive instances. If an instruction fails,
// the remaining instructions of the line are dropped and the error returned.
func (i *Instance) Input(line string) (lang.Value, bool, error) {
	if !i.interactive {
		return lang.Null, false, nil
	}
	prog, err := lang.Parse("input", strings.NewReader(line), i.binds)
	if err != nil {
		return lang.Null, false, err
	}
	i.prog = append(prog, i.prog...)
	for n := range prog {
		if err = i.Next(); err != nil {
			i.prog = i.prog[len(prog)-n-1:]
			return lang.Null, false, err
		}
	}
	v, ok := i.Top()
	return v, ok, nil
}
