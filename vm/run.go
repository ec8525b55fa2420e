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
	"github.com/db47h/nadia/lang"
	"github.com/pkg/errors"
)

var directions = map[string]Position{
	"north": {-1, 0},
	"south": {1, 0},
	"west":  {0, -1},
	"east":  {0, 1},
}

func (i *Instance) push(v lang.Value) {
	i.stack = append(i.stack, v)
}

func (i *Instance) pop() lang.Value {
	sp := len(i.stack) - 1
	v := i.stack[sp]
	i.stack = i.stack[:sp]
	return v
}

func name(v lang.Value) (string, error) {
	s, ok := v.AsText()
	if !ok {
		return "", &TypeError{lang.TextKind, v}
	}
	return s, nil
}

func integer(v lang.Value) (int, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, &TypeError{lang.IntKind, v}
	}
	return n, nil
}

// slot returns the array and index designated by the parameters of a push or
// pop instruction.
func (i *Instance) slot(nv, iv lang.Value) ([]lang.Value, int, error) {
	n, err := name(nv)
	if err != nil {
		return nil, 0, err
	}
	a, ok := i.arrays[n]
	if !ok {
		return nil, 0, &ArrayError{n}
	}
	idx, err := integer(iv)
	if err != nil {
		return nil, 0, err
	}
	if idx < 0 || idx >= len(a) {
		return nil, 0, &IndexError{n, idx, len(a)}
	}
	return a, idx, nil
}

// substitute returns a copy of the instruction parameters where every text
// parameter naming a cast is replaced by the cast value. Parameters of cast
// instructions and the target of set are left as is.
func (i *Instance) substitute(ins lang.Instruction) []lang.Value {
	params := make([]lang.Value, len(ins.Params))
	copy(params, ins.Params)
	if ins.Command == lang.Cast || len(i.casts) == 0 {
		return params
	}
	for n, p := range params {
		if n == 0 && ins.Command == lang.Set {
			continue
		}
		if s, ok := p.AsText(); ok {
			if v, ok := i.casts[s]; ok {
				params[n] = v
			}
		}
	}
	return params
}

func strs(vs []lang.Value) []string {
	s := make([]string, len(vs))
	for n, v := range vs {
		s[n] = v.String()
	}
	return s
}

// Next executes the next instruction.
//
// The instruction is consumed even if it fails. Errors returned by the
// instruction handlers are wrapped with the failing instruction; use
// errors.Cause to get to the fault itself.
func (i *Instance) Next() error {
	if len(i.prog) == 0 {
		return ErrNoInstructions
	}
	ins := i.prog[0]
	i.prog = i.prog[1:]
	i.insCount++

	params := i.substitute(ins)
	if e := i.log.Trace(); e.Enabled() {
		e.Int64("count", i.insCount).
			Str("command", ins.Command.String()).
			Strs("params", strs(params)).
			Strs("stack", strs(i.stack)).
			Msg("next")
	}

	if err := i.exec(ins.Command, params); err != nil {
		return errors.Wrap(err, ins.String())
	}
	return nil
}

// Run executes instructions until there are none left or an error occurs.
func (i *Instance) Run() error {
	for len(i.prog) > 0 {
		if err := i.Next(); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instance) exec(c lang.Command, p []lang.Value) error {
	switch c {
	case lang.Alloc, lang.Push, lang.Pop, lang.Bind, lang.Cast, lang.Set:
		if len(p) < 2 {
			return &ArgError{c, 2, len(p)}
		}
	case lang.Move:
		if len(p) < 1 {
			return &ArgError{c, 1, 0}
		}
	}

	switch c {
	case lang.Set:
		i.set(p[0], p[1])
	case lang.Bind:
		return i.bind(p[0], p[1])
	case lang.Cast:
		return i.cast(p[0], p[1])
	case lang.Collect, lang.Exit:
		// effects are up to the caller.
	case lang.Pop:
		return i.popArray(p[0], p[1])
	case lang.Push:
		return i.pushArray(p[0], p[1])
	case lang.Alloc:
		return i.alloc(p[0], p[1])
	case lang.Add, lang.Sub, lang.Mult, lang.Div:
		return i.arith(c)
	case lang.Neg:
		if len(i.stack) == 0 {
			return ErrEmptyStack
		}
		if _, err := integer(i.stack[len(i.stack)-1]); err != nil {
			return err
		}
		i.push(lang.Int(-1))
		return i.arith(lang.Mult)
	case lang.Move:
		i.move(p[len(p)-1])
	default:
		return &CommandNotFoundError{c}
	}
	return nil
}

// MaxArraySize is the largest array alloc will create.
const MaxArraySize = 1 << 20

func (i *Instance) alloc(nv, sv lang.Value) error {
	n, err := name(nv)
	if err != nil {
		return err
	}
	sz, err := integer(sv)
	if err != nil {
		return err
	}
	if sz < 0 || sz > MaxArraySize {
		return &SizeError{n, sz}
	}
	i.arrays[n] = make([]lang.Value, sz)
	return nil
}

// set pushes v if target is the constant keyword. Other targets are ignored.
func (i *Instance) set(target, v lang.Value) {
	if k, ok := target.AsKeyword(); ok && k == lang.Constant {
		i.push(v)
	}
}

func (i *Instance) pushArray(nv, iv lang.Value) error {
	a, idx, err := i.slot(nv, iv)
	if err != nil {
		return err
	}
	if len(i.stack) == 0 {
		return ErrEmptyStack
	}
	a[idx] = i.pop()
	return nil
}

func (i *Instance) popArray(nv, iv lang.Value) error {
	a, idx, err := i.slot(nv, iv)
	if err != nil {
		return err
	}
	i.push(a[idx])
	a[idx] = lang.Null
	return nil
}

// bind binds an alias. Reserved words and existing aliases are left alone.
func (i *Instance) bind(nv, cv lang.Value) error {
	c, ok := cv.AsCommand()
	if !ok {
		if s, isText := cv.AsText(); isText {
			c, ok = i.binds.Lookup(s)
		} else if k, isKey := cv.AsKeyword(); isKey {
			c, ok = k.Command()
		}
	}
	if !ok {
		return &TypeError{lang.CommandKind, cv}
	}
	if nv.Kind() == lang.KeywordKind {
		return nil
	}
	n, err := name(nv)
	if err != nil {
		return err
	}
	if !lang.Reserved(n) {
		i.binds.Bind(n, c)
	}
	return nil
}

// cast sets the value of a cast. Reserved words are silently ignored.
func (i *Instance) cast(nv, v lang.Value) error {
	if nv.Kind() == lang.KeywordKind {
		return nil
	}
	n, err := name(nv)
	if err != nil {
		return err
	}
	if !lang.Reserved(n) {
		i.casts[n] = v
	}
	return nil
}

// arith pops x then y and pushes x op y.
func (i *Instance) arith(c lang.Command) error {
	sp := len(i.stack)
	if sp < 2 {
		return ErrEmptyStack
	}
	x, err := integer(i.stack[sp-1])
	if err != nil {
		return err
	}
	y, err := integer(i.stack[sp-2])
	if err != nil {
		return err
	}
	var r int
	switch c {
	case lang.Add:
		r = x + y
	case lang.Sub:
		r = x - y
	case lang.Mult:
		r = x * y
	case lang.Div:
		if y == 0 {
			return ErrDivideByZero
		}
		r = x / y
	}
	i.stack = append(i.stack[:sp-2], lang.Int(r))
	return nil
}

func (i *Instance) move(dir lang.Value) {
	i.pos = i.pos.Step(dir.String())
}
