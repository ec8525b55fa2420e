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

// Package vm implements NadiaVM, a small stack based virtual machine used to
// script player actions in a 2D grid world.
//
// An Instance executes a program made of lang.Instruction values, one
// instruction per call to Next. Programs are usually supplied as source text
// with the Program option; interactive instances also accept single lines of
// source through Input.
//
// The machine state is made of:
//
//	- an operand stack of lang.Value
//	- named, fixed size arrays created by alloc
//	- a cast table: names that are replaced by a value in the parameters of
//	  every instruction executed after the cast
//	- a binding table: aliases for commands
//	- the player position
//
// Supported commands:
//
//	command              stack    description
//	-------              -----    -----------------------------------------------
//	alloc name size               create (or replace) an array of size empty slots
//	push name index      v-       store TOS in the array slot
//	pop name index       -v       move the array slot to TOS and clear the slot
//	set constant v       -v       push v
//	move player dir               move the player north, south, east or west
//	bind name command             alias name to command, unless already bound
//	cast name v                   replace name by v in later instructions
//	collect                       no-op, handled by the caller
//	exit player                   no-op, handled by the caller
//	add                  yx-r     r = x + y
//	sub                  yx-r     r = x - y
//	mult                 yx-r     r = x * y
//	div                  yx-r     r = x / y, truncated toward zero
//	neg                  x-r      r = -x
//
// x is the value on top of the stack (TOS), y the next one.
//
// Unknown move directions default to east. The position is not checked
// against any world: this is up to the caller, usually by stepping through the
// program with PreviewNext and Next (see package world).
//
// A set instruction whose target is anything but the constant keyword does
// nothing. Casts and binds to reserved words are silently dropped.
package vm
