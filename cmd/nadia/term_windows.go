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
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// saveTerm snapshots the console mode of f and returns a function that
// restores it.
func saveTerm(f *os.File) (func(), error) {
	fd := int(f.Fd())
	st, err := term.GetState(fd)
	if err != nil {
		return nil, errors.Wrap(err, "GetState failed")
	}
	return func() {
		term.Restore(fd, st)
	}, nil
}
