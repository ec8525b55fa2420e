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
	"strconv"

	"github.com/db47h/nadia/lang"
	"github.com/pkg/errors"
)

// Execution faults.
var (
	ErrEmptyStack     = errors.New("empty stack")
	ErrDivideByZero   = errors.New("division by zero")
	ErrNoInstructions = errors.New("no more instructions")
)

// CommandNotFoundError is returned when an instruction's command has no
// handler.
type CommandNotFoundError struct {
	Command lang.Command
}

func (e *CommandNotFoundError) Error() string {
	if e.Command.Valid() {
		return "invalid command: " + e.Command.String()
	}
	return "invalid command: " + strconv.Itoa(int(e.Command))
}

// IndexError is returned when accessing an array out of its bounds.
type IndexError struct {
	Array string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return "index out of range [" + strconv.Itoa(e.Index) + "] with length " + strconv.Itoa(e.Size) + " in array " + e.Array
}

// SizeError is returned by alloc when the requested size is negative or
// greater than MaxArraySize.
type SizeError struct {
	Array string
	Size  int
}

func (e *SizeError) Error() string {
	return "invalid size " + strconv.Itoa(e.Size) + " for array " + e.Array
}

// ArrayError is returned when accessing an array that has not been allocated.
type ArrayError struct {
	Array string
}

func (e *ArrayError) Error() string {
	return "undefined array " + e.Array
}

// TypeError is returned when a parameter or operand has the wrong type.
type TypeError struct {
	Want  lang.Kind
	Value lang.Value
}

func (e *TypeError) Error() string {
	return "expected " + e.Want.String() + ", got " + e.Value.GoString()
}

// ArgError is returned when an instruction has too few parameters.
type ArgError struct {
	Command lang.Command
	Want    int
	Got     int
}

func (e *ArgError) Error() string {
	return e.Command.String() + ": expected " + strconv.Itoa(e.Want) + " parameters, got " + strconv.Itoa(e.Got)
}
