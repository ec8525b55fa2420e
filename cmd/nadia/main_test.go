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

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/nadia/vm"
	"github.com/lmorg/readline"
)

func TestBindList(t *testing.T) {
	b := make(bindList)
	if err := b.Set("var=set"); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"var", "=set", "go=player", "go=nope"} {
		if err := b.Set(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
	if len(b) != 1 || b["var"] != "set" {
		t.Fatalf("bad bindings %v", b)
	}
}

func TestOrigin(t *testing.T) {
	var o origin
	if err := o.Set("3, -2"); err != nil {
		t.Fatal(err)
	}
	if !o.set || o.pos != (vm.Position{Row: 3, Col: -2}) {
		t.Fatalf("bad origin %v", o.pos)
	}
	for _, s := range []string{"3", "a,1", "1,b", "1,2,3"} {
		if err := o.Set(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestDumpVM(t *testing.T) {
	i, err := vm.New(vm.Program("dump", strings.NewReader(
		"alloc b 1\nalloc a 2\nset constant 7\npush a 1\nset constant east\nmove player south")))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = dumpVM(i, &b); err != nil {
		t.Fatal(err)
	}
	exp := "stack: [\"east\"]\narray a: [null int(7)]\narray b: [null]\nposition: (1, 0)\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected:\n%s\ngot:\n%s", exp, s)
	}
}

func TestREPL(t *testing.T) {
	i, err := vm.New(vm.Interactive(true))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	in := strings.NewReader("set constant 2\n\nset constant 3 mult\nbogus\nneg\n")
	if err = replLines(i, in, bufio.NewWriter(&out)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 || lines[0] != "2" || lines[1] != "6" || !strings.HasPrefix(lines[2], "error: ") || lines[3] != "-6" {
		t.Fatalf("unexpected output %q", lines)
	}
}

func TestComplete(t *testing.T) {
	prefix, s, _, _ := complete([]rune("set con"), 7, readline.DelayedTabContext{})
	if prefix != "con" || len(s) != 1 || s[0] != "stant" {
		t.Fatalf("bad completion %q %q", prefix, s)
	}
}
