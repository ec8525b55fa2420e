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

// Package lang implements the NadiaVM language front-end: a tokenizer, a
// parser and the instruction representation consumed by package vm.
//
// NadiaVM source is line oriented, one instruction per line:
//
//	alloc <name> <size>
//	push <name> <index>
//	pop <name> <index>
//	set constant <value>
//	move player <direction>
//	bind <name> <command>
//	cast <name> <value>
//	collect
//	exit player
//	add
//	sub
//	mult
//	div
//	neg
//
// Line breaks are not significant to the grammar: an instruction is a command
// followed by every token up to the next command. Comments start with a
// semicolon and run to the end of the line.
//
// Lexical elements:
//
//	kind        starts with       runs until
//	----        -----------       ----------
//	comment     ;                 end of line
//	string      "                 closing "
//	number      digit             first non digit
//	identifier  ASCII letter      first char not a letter, '_' or '-'
//	any         anything else     end of line
//
// Identifiers and Any tokens spelling one of the reserved words are keywords:
//
//	set bind cast collect exit pop push alloc add sub mult div neg move
//	constant origin player
//
// All of them but constant, origin and player are commands.
//
// Aliases can be given to commands, either when creating a parser or with the
// bind instruction:
//
//	bind var set
//	var constant 10	; same as set constant 10
//
// An alias, once bound, cannot be rebound.
package lang
