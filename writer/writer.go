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

// Package writer generates NadiaVM source code.
//
// A Writer records one instruction per method call. The recorded lines can be
// edited (Undo, Reset), written to any io.Writer or parsed back into
// instructions. File binds a Writer to a file on disk.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/nadia/internal/nvi"
	"github.com/db47h/nadia/lang"
)

// Writer accumulates NadiaVM instructions as source lines. The zero value is
// an empty Writer ready to use.
type Writer struct {
	lines []string
}

func (w *Writer) emit(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// Alloc records an alloc instruction for an array of the given size.
func (w *Writer) Alloc(array string, size int) { w.emit("alloc %s %d", array, size) }

// Push records a push of the top of the stack to array[index].
func (w *Writer) Push(array string, index int) { w.emit("push %s %d", array, index) }

// Pop records a pop of array[index] to the top of the stack.
func (w *Writer) Pop(array string, index int) { w.emit("pop %s %d", array, index) }

// Set records a constant push. The value is formatted with %v.
func (w *Writer) Set(v interface{}) { w.emit("set constant %v", v) }

// Move records a player move.
func (w *Writer) Move(direction string) { w.emit("move player %s", direction) }

// Bind records a command alias.
func (w *Writer) Bind(name string, c lang.Command) { w.emit("bind %s %s", name, c) }

// Cast records a cast. The value is formatted with %v.
func (w *Writer) Cast(name string, v interface{}) { w.emit("cast %s %v", name, v) }

// Collect records a collect instruction.
func (w *Writer) Collect() { w.emit("collect") }

// Exit records an exit instruction.
func (w *Writer) Exit() { w.emit("exit player") }

func (w *Writer) Add()  { w.emit("add") }
func (w *Writer) Sub()  { w.emit("sub") }
func (w *Writer) Mult() { w.emit("mult") }
func (w *Writer) Div()  { w.emit("div") }
func (w *Writer) Neg()  { w.emit("neg") }

// Append records an already built instruction.
func (w *Writer) Append(ins lang.Instruction) { w.lines = append(w.lines, ins.String()) }

// Lines returns a copy of the recorded lines, without line terminators.
func (w *Writer) Lines() []string {
	l := make([]string, len(w.lines))
	copy(l, w.lines)
	return l
}

// Len returns the number of recorded lines.
func (w *Writer) Len() int { return len(w.lines) }

// Reset drops all recorded lines.
func (w *Writer) Reset() { w.lines = w.lines[:0] }

// Undo removes the last recorded line.
//
// When the removed line is a collect and ignoreCollect is false, the push and
// pop instructions that precede it are removed as well. This reverts a whole
// coin pickup as recorded by world.Player.
func (w *Writer) Undo(ignoreCollect bool) {
	n := len(w.lines)
	if n == 0 {
		return
	}
	last := w.lines[n-1]
	w.lines = w.lines[:n-1]
	if last != "collect" || ignoreCollect {
		return
	}
	for _, prefix := range []string{"push ", "pop "} {
		n = len(w.lines)
		if n > 0 && strings.HasPrefix(w.lines[n-1], prefix) {
			w.lines = w.lines[:n-1]
		}
	}
}

// String returns the recorded source, one newline terminated instruction per
// line.
func (w *Writer) String() string {
	var b strings.Builder
	w.WriteTo(&b)
	return b.String()
}

// WriteTo writes the recorded source to dst. It implements io.WriterTo.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	ew := nvi.NewErrWriter(dst)
	n := ew.N
	for _, l := range w.lines {
		io.WriteString(ew, l)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			break
		}
	}
	return ew.N - n, ew.Err
}

// Instructions parses the recorded source.
func (w *Writer) Instructions(binds lang.Bindings) ([]lang.Instruction, error) {
	return lang.ParseString(w.String(), binds)
}
