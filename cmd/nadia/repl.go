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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/nadia/lang"
	"github.com/db47h/nadia/vm"
	"github.com/lmorg/readline"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const prompt = "nadia> "

// eval runs a single line of input and prints the value on top of the stack.
// Errors are reported to w and do not end the session.
func eval(i *vm.Instance, line string, w io.Writer) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	v, ok, err := i.Input(line)
	switch {
	case err != nil:
		fmt.Fprintf(w, "error: %v\n", err)
	case ok:
		fmt.Fprintln(w, v)
	}
}

// complete suggests reserved words for the word under the cursor.
func complete(line []rune, pos int, _ readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	word := string(line[:pos])
	if n := strings.LastIndexAny(word, " \t"); n >= 0 {
		word = word[n+1:]
	}
	var suggestions []string
	for _, kw := range lang.ReservedWords() {
		if strings.HasPrefix(kw, word) {
			suggestions = append(suggestions, kw[len(word):])
		}
	}
	return word, suggestions, nil, readline.TabDisplayGrid
}

func replLines(i *vm.Instance, r io.Reader, w *bufio.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		eval(i, s.Text(), w)
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return errors.Wrap(s.Err(), "read failed")
}

// repl reads lines of NadiaVM source from in and feeds them to i until end of
// input. If in is a terminal, lines are read with a line editor and the
// terminal settings are restored on return.
func repl(i *vm.Instance, in *os.File, w *bufio.Writer) error {
	if !term.IsTerminal(int(in.Fd())) {
		return replLines(i, in, w)
	}
	restore, err := saveTerm(in)
	if err != nil {
		log.Warn().Err(err).Msg("cannot save terminal settings")
	} else {
		defer restore()
	}

	rl := readline.NewInstance()
	rl.SetPrompt(prompt)
	rl.TabCompleter = complete
	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C or Ctrl-D
			return nil
		}
		eval(i, line, w)
		if err = w.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
}
