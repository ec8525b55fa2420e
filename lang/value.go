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

import "strconv"

// Kind is the type of a Value.
type Kind int

// Value kinds.
const (
	NullKind Kind = iota
	IntKind
	TextKind
	KeywordKind
	CommandKind
)

var kindNames = [...]string{"null", "int", "text", "keyword", "command"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(?)"
	}
	return kindNames[k]
}

// Value is an instruction parameter or a VM stack entry. The zero Value is
// Null. Values are comparable with ==.
type Value struct {
	kind Kind
	n    int
	s    string
}

// Null is the null value. It also marks empty array slots.
var Null Value

// Int returns an integer value.
func Int(n int) Value { return Value{kind: IntKind, n: n} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: TextKind, s: s} }

// Key returns a keyword value.
func Key(k Keyword) Value { return Value{kind: KeywordKind, n: int(k)} }

// Cmd returns a command value. Command values are only produced for the
// target of a bind instruction.
func Cmd(c Command) Value { return Value{kind: CommandKind, n: int(c)} }

// Kind returns the type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// AsInt returns the integer held by v. Text values that spell a decimal
// integer, like "-1", are accepted as well.
func (v Value) AsInt() (int, bool) {
	switch v.kind {
	case IntKind:
		return v.n, true
	case TextKind:
		n, err := strconv.Atoi(v.s)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// AsText returns the text held by v.
func (v Value) AsText() (string, bool) {
	if v.kind != TextKind {
		return "", false
	}
	return v.s, true
}

// AsKeyword returns the keyword held by v.
func (v Value) AsKeyword() (Keyword, bool) {
	if v.kind != KeywordKind {
		return 0, false
	}
	return Keyword(v.n), true
}

// AsCommand returns the command held by v.
func (v Value) AsCommand() (Command, bool) {
	if v.kind != CommandKind {
		return 0, false
	}
	return Command(v.n), true
}

// String returns v as it would be written in NadiaVM source.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return strconv.Itoa(v.n)
	case TextKind:
		return v.s
	case KeywordKind:
		return Keyword(v.n).String()
	case CommandKind:
		return Command(v.n).String()
	}
	return "null"
}

// GoString implements fmt.GoStringer. It is mostly useful in test failures.
func (v Value) GoString() string {
	switch v.kind {
	case TextKind:
		return strconv.Quote(v.s)
	case NullKind:
		return "null"
	}
	return v.kind.String() + "(" + v.String() + ")"
}
