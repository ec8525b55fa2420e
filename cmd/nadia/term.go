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

//go:build !windows
// +build !windows

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// saveTerm snapshots the terminal settings of f and returns a function that
// restores them. We do not use the higher level functions of the term package
// because it does not allow the use of existing file descriptors.
func saveTerm(f *os.File) (func(), error) {
	var tios unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &tios); err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	return func() {
		termios.Tcsetattr(f.Fd(), termios.TCSANOW, &tios)
	}, nil
}
