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

package writer_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/nadia/lang"
	"github.com/db47h/nadia/writer"
	"github.com/pkg/errors"
)

func TestWriter(t *testing.T) {
	var w writer.Writer
	w.Alloc("x", 2)
	w.Set(5)
	w.Push("x", 0)
	w.Pop("x", 0)
	w.Set("(1, 2)")
	w.Move("north")
	w.Bind("go", lang.Move)
	w.Cast("n", 3)
	w.Add()
	w.Sub()
	w.Mult()
	w.Div()
	w.Neg()
	w.Collect()
	w.Exit()
	w.Append(lang.Instruction{Command: lang.Set, Params: []lang.Value{lang.Key(lang.Constant), lang.Int(-1)}})
	exp := `alloc x 2
set constant 5
push x 0
pop x 0
set constant (1, 2)
move player north
bind go move
cast n 3
add
sub
mult
div
neg
collect
exit player
set constant -1
`
	if s := w.String(); s != exp {
		t.Fatalf("Expected:\n%s\ngot:\n%s", exp, s)
	}
	if w.Len() != 16 {
		t.Fatalf("Expected 16 lines, got %d", w.Len())
	}
	w.Reset()
	if w.Len() != 0 || w.String() != "" {
		t.Fatal("Reset failed")
	}
}

func TestWriter_Instructions(t *testing.T) {
	var w writer.Writer
	w.Set(5)
	w.Set(10)
	w.Add()
	got, err := w.Instructions(nil)
	if err != nil {
		t.Fatal(err)
	}
	exp, _ := lang.ParseString("set constant 5\nset constant 10\nadd\n", nil)
	if len(got) != len(exp) {
		t.Fatalf("Expected %v, got %v", exp, got)
	}
	for i := range exp {
		if !got[i].Equal(exp[i]) {
			t.Fatalf("Instruction %d: expected %v, got %v", i, exp[i], got[i])
		}
	}
}

func TestWriter_Undo(t *testing.T) {
	data := []struct {
		name          string
		ignoreCollect bool
		exp           []string
	}{
		{"ignore collect", true, []string{"move player east", "pop world_coins 0", "push inventory 0"}},
		{"whole pickup", false, []string{"move player east"}},
	}
	for _, test := range data {
		var w writer.Writer
		w.Move("east")
		w.Pop("world_coins", 0)
		w.Push("inventory", 0)
		w.Collect()
		w.Undo(test.ignoreCollect)
		l := w.Lines()
		if strings.Join(l, "|") != strings.Join(test.exp, "|") {
			t.Errorf("%s: expected %q, got %q", test.name, test.exp, l)
		}
	}

	var w writer.Writer
	w.Undo(false)
	w.Set(1)
	w.Collect()
	w.Undo(false)
	if w.Len() != 1 {
		t.Fatalf("only push and pop lines should go with a collect: %q", w.Lines())
	}
}

func TestFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "nadia")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "lvl1.nvm")

	f := writer.Create(fn)
	f.Alloc("world_coins", 1)
	f.Move("south")
	f.Exit()
	if _, err = os.Stat(fn); !os.IsNotExist(err) {
		t.Fatal("file written before Close")
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	f.Collect()
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	exp := "alloc world_coins 1\nmove player south\nexit player\n"
	if string(b) != exp {
		t.Fatalf("Expected:\n%s\ngot:\n%s", exp, b)
	}
	prog, err := lang.ParseString(string(b), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 3 {
		t.Fatalf("Expected 3 instructions, got %d", len(prog))
	}
}

func TestWithFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "nadia")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "err.nvm")
	myErr := errors.New("oops")
	err = writer.WithFile(fn, func(f *writer.File) error {
		f.Set(42)
		return myErr
	})
	if err != myErr {
		t.Fatalf("Expected %v, got %v", myErr, err)
	}
	if b, _ := ioutil.ReadFile(fn); string(b) != "set constant 42\n" {
		t.Fatalf("file not saved on error: %q", b)
	}

	fn = filepath.Join(dir, "panic.nvm")
	func() {
		defer func() { recover() }()
		writer.WithFile(fn, func(f *writer.File) error {
			f.Exit()
			panic("boom")
		})
	}()
	if b, _ := ioutil.ReadFile(fn); string(b) != "exit player\n" {
		t.Fatalf("file not saved on panic: %q", b)
	}

	err = writer.WithFile(filepath.Join(dir, "nope", "x.nvm"), func(f *writer.File) error { return nil })
	if err == nil {
		t.Fatal("expected a create error")
	}
}
