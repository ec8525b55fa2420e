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

// Command is a NadiaVM command. Commands are the subset of keywords that can
// start an instruction.
type Command int

// NadiaVM commands.
const (
	Set Command = iota
	Bind
	Cast
	Collect
	Exit
	Pop
	Push
	Alloc
	Add
	Sub
	Mult
	Div
	Neg
	Move
	commandCount
)

// Keyword is a reserved word of the NadiaVM language. The first keywords
// mirror the Command values one to one; the remaining ones are modifiers
// that may only appear as parameters.
type Keyword int

// Non-command keywords. Command keywords are obtained with Command.Keyword.
const (
	Constant Keyword = Keyword(commandCount) + iota
	Origin
	Player
	keywordCount
)

var keywords = [...]string{
	"set",
	"bind",
	"cast",
	"collect",
	"exit",
	"pop",
	"push",
	"alloc",
	"add",
	"sub",
	"mult",
	"div",
	"neg",
	"move",
	"constant",
	"origin",
	"player",
}

var keywordIndex = make(map[string]Keyword, len(keywords))

func init() {
	for i, v := range keywords {
		keywordIndex[v] = Keyword(i)
	}
}

func (k Keyword) String() string {
	if k < 0 || k >= keywordCount {
		return "keyword(?)"
	}
	return keywords[k]
}

// Command returns the command for k and true if k is a command keyword.
func (k Keyword) Command() (Command, bool) {
	if k < 0 || k >= Keyword(commandCount) {
		return 0, false
	}
	return Command(k), true
}

// Valid reports whether c is one of the NadiaVM commands.
func (c Command) Valid() bool {
	return c >= 0 && c < commandCount
}

// Keyword returns the keyword spelling of c.
func (c Command) Keyword() Keyword {
	return Keyword(c)
}

func (c Command) String() string {
	if !c.Valid() {
		return "command(?)"
	}
	return keywords[c]
}

// LookupKeyword returns the keyword spelled s.
func LookupKeyword(s string) (Keyword, bool) {
	k, ok := keywordIndex[s]
	return k, ok
}

// LookupCommand returns the command spelled s. Non-command keywords like
// "constant" are rejected.
func LookupCommand(s string) (Command, bool) {
	k, ok := keywordIndex[s]
	if !ok {
		return 0, false
	}
	return k.Command()
}

// Reserved reports whether s is a reserved keyword.
func Reserved(s string) bool {
	_, ok := keywordIndex[s]
	return ok
}

// ReservedWords returns the list of reserved keywords in declaration order.
func ReservedWords() []string {
	r := make([]string, len(keywords))
	copy(r, keywords[:])
	return r
}
