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
	"strconv"
	"text/scanner"
)

// TokenizeError is returned when the tokenizer cannot terminate a token.
type TokenizeError struct {
	Pos  scanner.Position
	Text string
}

func (e *TokenizeError) Error() string {
	if !e.Pos.IsValid() {
		return "cannot tokenize " + strconv.Quote(e.Text)
	}
	return e.Pos.String() + ": cannot tokenize " + strconv.Quote(e.Text)
}

// ParseError is returned for grammatically invalid input.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

// BindingError is returned when a seed binding targets something that is not
// a command.
type BindingError struct {
	Alias  string
	Target string
}

func (e *BindingError) Error() string {
	return "binding " + strconv.Quote(e.Alias) + ": " + strconv.Quote(e.Target) + " is not a command"
}
