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

	"github.com/pkg/errors"
)

// TokenKind classifies a Token.
type TokenKind int

// Token kinds.
const (
	KeywordToken TokenKind = iota
	CommentToken
	StringToken
	NumberToken
	IdentifierToken
	AnyToken
	NoneToken
)

var tokenKinds = [...]string{
	"keyword",
	"comment",
	"string",
	"number",
	"identifier",
	"any",
	"none",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKinds) {
		return "token(?)"
	}
	return tokenKinds[k]
}

// Token is a lexical unit. Two tokens are equal if they have the same kind and
// text.
type Token struct {
	Kind TokenKind
	Text string
}

// Value returns the typed value of the token: numbers are converted to Int,
// keywords to Key, None to Null. Any other kind returns its raw text, quotes
// included for strings.
func (t Token) Value() (Value, error) {
	switch t.Kind {
	case NumberToken:
		n, err := strconv.Atoi(t.Text)
		if err != nil {
			return Null, &TokenizeError{Text: t.Text}
		}
		return Int(n), nil
	case KeywordToken:
		k, ok := LookupKeyword(t.Text)
		if !ok {
			return Null, errors.Errorf("unknown keyword %s", t.Text)
		}
		return Key(k), nil
	case NoneToken:
		return Null, nil
	}
	return Text(t.Text), nil
}

func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
}
