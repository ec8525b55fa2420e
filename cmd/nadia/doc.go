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

// The nadia command line tool runs NadiaVM programs, either stand alone or
// against a level of the grid world, and provides an interactive prompt to
// the virtual machine.
//
// Usage:
//
//	nadia [flags] [program.nvm]
//
//	-bind alias=command
//		  bind alias=command (can be specified multiple times)
//	-debug
//		  trace execution and enable debug diagnostics
//	-dump
//		  dump stack, arrays and position upon exit
//	-i
//		  interactive mode, default when no program is given
//	-level filename
//		  replay the program against the level configuration in filename
//	-origin row,col
//		  initial player position row,col
//
// -bind: seeds the binding table of the VM before the program is parsed, so
// that the program can use the alias right away. For example:
//
//	nadia -bind var=set -bind go=move prog.nvm
//
// -debug: logs every executed instruction along with its parameters and the
// operand stack to stderr, and prints a full stacktrace should the VM fail.
//
// -level: loads a TOML level configuration (see package world) and runs the
// program in lockstep with the level: moves into walls are reverted, collect
// picks up coins and execution stops at the first exit instruction. The
// outcome and the level checks are printed once the program ends. Unless
// -origin is given, the player starts at the level's start position.
//
// -i: once the program has run, or right away if no program is given, nadia
// reads lines of NadiaVM source from stdin and executes them, printing the
// value on top of the stack after each line. Errors are reported but do not
// end the session. If stdin is a terminal, lines are read with a line editor
// that completes reserved words on TAB.
package main
