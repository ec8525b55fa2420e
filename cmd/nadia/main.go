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
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/nadia/lang"
	"github.com/db47h/nadia/vm"
	"github.com/db47h/nadia/world"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type bindList map[string]string

func (b bindList) String() string { return "" }
func (b bindList) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 || kv[0] == "" {
		return errors.Errorf("invalid binding %q, expected alias=command", s)
	}
	if _, ok := lang.LookupCommand(kv[1]); !ok {
		return errors.Errorf("%s is not a command", kv[1])
	}
	b[kv[0]] = kv[1]
	return nil
}
func (b bindList) Get() interface{} { return map[string]string(b) }

type origin struct {
	pos vm.Position
	set bool
}

func (o *origin) String() string { return strconv.Itoa(o.pos.Row) + "," + strconv.Itoa(o.pos.Col) }
func (o *origin) Set(s string) error {
	rc := strings.Split(s, ",")
	if len(rc) != 2 {
		return errors.Errorf("invalid position %q, expected row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rc[0]))
	if err != nil {
		return err
	}
	c, err := strconv.Atoi(strings.TrimSpace(rc[1]))
	if err != nil {
		return err
	}
	o.pos, o.set = vm.Position{Row: r, Col: c}, true
	return nil
}
func (o *origin) Get() interface{} { return o.pos }

var (
	interactive bool
	debug       bool
	dump        bool
	levelFile   string
	binds       = make(bindList)
	start       origin
)

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if debug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func printResult(w io.Writer, cfg *world.Config, res *world.Result) {
	fmt.Fprintf(w, "level: %s\n", cfg.Name)
	fmt.Fprintf(w, "position: %v, coins: %d (%d left), exit: %v\n", res.Position, res.Coins, res.CoinsLeft, res.Exited)
	for _, ck := range cfg.Checks {
		status := "FAIL"
		if res.Checks[ck] {
			status = "ok"
		}
		fmt.Fprintf(w, "check %s: %s\n", ck, status)
	}
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "Position: %v, Stack: %v, Executed: %d, Pending: %d\n",
			i.Position(), i.Stack(), i.InstructionCount(), len(i.Pending()))
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if err == nil && dump && i != nil {
			err = dumpVM(i, stdout)
		}
		stdout.Flush()
		atExit(i, err)
	}()

	flag.BoolVar(&interactive, "i", false, "interactive mode, default when no program is given")
	flag.Var(binds, "bind", "bind `alias=command` (can be specified multiple times)")
	flag.Var(&start, "origin", "initial player position `row,col`")
	flag.StringVar(&levelFile, "level", "", "replay the program against the level configuration in `filename`")
	flag.BoolVar(&dump, "dump", false, "dump stack, arrays and position upon exit")
	flag.BoolVar(&debug, "debug", false, "trace execution and enable debug diagnostics")

	flag.Parse()
	setupLogging()

	var cfg *world.Config
	if levelFile != "" {
		if cfg, err = world.LoadConfigFile(levelFile); err != nil {
			return
		}
		if !start.set {
			start.pos = world.New(cfg.Data).Player()
		}
	}

	var opts = []vm.Option{
		vm.Bindings(binds),
		vm.Origin(start.pos),
		vm.Logger(log.Logger),
	}
	if flag.NArg() > 0 {
		var f *os.File
		name := flag.Arg(0)
		if f, err = os.Open(name); err != nil {
			return
		}
		defer f.Close()
		opts = append(opts, vm.Program(name, bufio.NewReader(f)))
	} else {
		interactive = true
	}
	opts = append(opts, vm.Interactive(interactive))

	if i, err = vm.New(opts...); err != nil {
		return
	}

	if cfg != nil {
		var res *world.Result
		res, err = world.Run(world.New(cfg.Data), i, cfg)
		printResult(stdout, cfg, res)
	} else {
		err = i.Run()
	}
	if err != nil || !interactive {
		return
	}
	err = repl(i, os.Stdin, stdout)
}
