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
	"bufio"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type tokState int

const (
	stStart tokState = iota
	stInProgress
	stFinish
	stError
)

func isDigit(r rune) bool  { return '0' <= r && r <= '9' }
func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }
func isIdent(r rune) bool  { return isLetter(r) || r == '_' || r == '-' }
func isSpace(r rune) bool  { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// Tokenizer splits NadiaVM source into tokens. Each call to Next consumes
// characters from the underlying reader exactly once.
type Tokenizer struct {
	r      *bufio.Reader
	pos    scanner.Position
	prev   scanner.Position
	tokPos scanner.Position
}

// NewTokenizer returns a tokenizer reading from r. The name is only used in
// error positions.
func NewTokenizer(name string, r io.Reader) *Tokenizer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokenizer{
		r:   br,
		pos: scanner.Position{Filename: name, Line: 1, Column: 1},
	}
}

// Pos returns the position of the first character of the last token returned
// by Next.
func (t *Tokenizer) Pos() scanner.Position {
	return t.tokPos
}

func (t *Tokenizer) read() (rune, int, error) {
	r, sz, err := t.r.ReadRune()
	if err != nil {
		return r, sz, err
	}
	t.prev = t.pos
	t.pos.Offset += sz
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
	} else {
		t.pos.Column++
	}
	return r, sz, nil
}

func (t *Tokenizer) unread() {
	if t.r.UnreadRune() == nil {
		t.pos = t.prev
	}
}

// Next returns the next token. At the end of the input it returns io.EOF.
//
// The first character of a token decides its kind: ';' starts a comment that
// runs to the end of the line, '"' a string that runs to the closing quote, a
// digit a number, an ASCII letter an identifier made of letters, '_' and '-'.
// Anything else starts an Any token that runs to the end of the line.
// Whitespace between tokens is skipped. Identifiers and Any tokens that spell a
// reserved word are returned as keywords.
func (t *Tokenizer) Next() (Token, error) {
	var (
		state = stStart
		kind  = NoneToken
		text  strings.Builder
	)

	for state != stFinish && state != stError {
		pos := t.pos
		r, sz, err := t.read()
		if err == io.EOF {
			if state == stStart {
				return Token{}, io.EOF
			}
			break
		}
		if err != nil {
			return Token{}, errors.Wrap(err, "read failed")
		}
		if r == utf8.RuneError && sz == 1 {
			if state == stStart {
				t.tokPos = pos
			}
			state = stError
			break
		}

		switch state {
		case stStart:
			if isSpace(r) {
				continue
			}
			t.tokPos = pos
			switch {
			case r == ';':
				kind = CommentToken
			case r == '"':
				kind = StringToken
			case isDigit(r):
				kind = NumberToken
			case isLetter(r):
				kind = IdentifierToken
			default:
				kind = AnyToken
			}
			text.WriteRune(r)
			state = stInProgress
		case stInProgress:
			switch {
			case (kind == CommentToken || kind == AnyToken) && r == '\n':
				state = stFinish
			case kind == NumberToken && !isDigit(r),
				kind == IdentifierToken && !isIdent(r):
				t.unread()
				state = stFinish
			case kind == StringToken && r == '"':
				text.WriteRune(r)
				state = stFinish
			default:
				text.WriteRune(r)
			}
		}
	}

	s := text.String()
	if state == stError {
		return Token{}, &TokenizeError{t.tokPos, s}
	}
	if kind == CommentToken || kind == AnyToken {
		s = strings.TrimSuffix(s, "\r")
	}
	if kind == NumberToken {
		if _, err := strconv.Atoi(s); err != nil {
			return Token{}, &TokenizeError{t.tokPos, s}
		}
	}
	if (kind == IdentifierToken || kind == AnyToken) && Reserved(s) {
		kind = KeywordToken
	}
	return Token{kind, s}, nil
}

// Tokenize returns all the tokens from r.
func Tokenize(name string, r io.Reader) ([]Token, error) {
	var toks []Token
	t := NewTokenizer(name, r)
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}
