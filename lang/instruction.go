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

package lang

import (
	"io"
	"strings"

	"github.com/db47h/nadia/internal/nvi"
)

// Instruction is a command and its parameters.
type Instruction struct {
	Command Command
	Params  []Value
}

// Equal reports whether ins and o have the same command and parameters.
func (ins Instruction) Equal(o Instruction) bool {
	if ins.Command != o.Command || len(ins.Params) != len(o.Params) {
		return false
	}
	for i := range ins.Params {
		if ins.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// String returns the instruction as a single line of NadiaVM source, without
// the trailing newline.
func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Command.String())
	for _, p := range ins.Params {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// Format writes prog to w, one instruction per line.
func Format(w io.Writer, prog []Instruction) error {
	ew := nvi.NewErrWriter(w)
	for _, ins := range prog {
		io.WriteString(ew, ins.String())
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
