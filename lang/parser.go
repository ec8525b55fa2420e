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
	"fmt"
	"io"
	"strings"
	"text/scanner"
)

// Parser groups tokens into instructions.
//
// Commands are not delimited: once a command is read, every following token is
// a parameter of that command until the next token that is itself a command
// (a command keyword or a bound alias) or the end of input.
type Parser struct {
	t         *Tokenizer
	tokens    []Token
	pos       []scanner.Position
	idx       int
	tokenized bool
	binds     Bindings
}

// NewParser returns a parser for the NadiaVM source read from r. The name is
// used in error messages. The parser works on a copy of binds; aliases
// introduced by bind instructions are visible to the rest of the program but
// never leak back into binds.
func NewParser(name string, r io.Reader, binds Bindings) *Parser {
	return &Parser{
		t:     NewTokenizer(name, r),
		binds: binds.Clone(),
	}
}

// Tokenize consumes the whole input and returns its tokens. It is called
// implicitly by Parse.
func (p *Parser) Tokenize() ([]Token, error) {
	if p.tokenized {
		return p.tokens, nil
	}
	for {
		tok, err := p.t.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		p.tokens = append(p.tokens, tok)
		p.pos = append(p.pos, p.t.Pos())
	}
	p.tokenized = true
	return p.tokens, nil
}

func (p *Parser) more() bool { return p.idx < len(p.tokens) }

func (p *Parser) errorf(format string, args ...interface{}) error {
	var pos scanner.Position
	switch {
	case p.idx < len(p.pos):
		pos = p.pos[p.idx]
	case len(p.pos) > 0:
		pos = p.pos[len(p.pos)-1]
	}
	return &ParseError{pos, fmt.Sprintf(format, args...)}
}

// command resolves tok as a command. Aliases take precedence over keywords.
func (p *Parser) command(tok Token) (Command, bool) {
	if c, ok := p.binds.Lookup(tok.Text); ok {
		return c, true
	}
	if tok.Kind != KeywordToken {
		return 0, false
	}
	return LookupCommand(tok.Text)
}

func (p *Parser) param(tok Token) (Value, error) {
	v, err := tok.Value()
	if err != nil {
		return Null, p.errorf("%v", err)
	}
	return v, nil
}

func (p *Parser) parseInstruction() (Instruction, error) {
	if !p.more() {
		return Instruction{}, p.errorf("expected a command, got end of input")
	}
	tok := p.tokens[p.idx]
	cmd, ok := p.command(tok)
	if !ok {
		if tok.Kind == KeywordToken {
			return Instruction{}, p.errorf("expected a command: %s", tok.Text)
		}
		return Instruction{}, p.errorf("invalid expression: %s", tok.Text)
	}
	p.idx++

	ins := Instruction{Command: cmd}
	for ; p.more(); p.idx++ {
		tok = p.tokens[p.idx]
		if tok.Kind == CommentToken {
			continue
		}
		c, isCmd := p.command(tok)
		if cmd == Bind {
			// the first parameter is the alias name, whatever it looks like.
			if isCmd && len(ins.Params) > 0 {
				ins.Params = append(ins.Params, Cmd(c))
				p.idx++
				p.bind(ins)
				return ins, nil
			}
		} else if isCmd {
			break
		}
		v, err := p.param(tok)
		if err != nil {
			return Instruction{}, err
		}
		ins.Params = append(ins.Params, v)
	}

	if cmd == Bind {
		return Instruction{}, p.errorf("bind: missing target command")
	}
	return ins, nil
}

// bind registers the alias of a parsed bind instruction.
func (p *Parser) bind(ins Instruction) {
	name, ok := ins.Params[0].AsText()
	if !ok || Reserved(name) {
		return
	}
	c, _ := ins.Params[len(ins.Params)-1].AsCommand()
	p.binds.Bind(name, c)
}

// Parse parses the whole input and returns the resulting program. The input is
// tokenized first if Tokenize has not been called yet.
func (p *Parser) Parse() ([]Instruction, error) {
	if _, err := p.Tokenize(); err != nil {
		return nil, err
	}
	var prog []Instruction
	for p.more() {
		if p.tokens[p.idx].Kind == CommentToken {
			p.idx++
			continue
		}
		ins, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

// Bindings returns the parser's binding table, including aliases introduced by
// the parsed program.
func (p *Parser) Bindings() Bindings {
	return p.binds
}

// Parse parses the NadiaVM program read from r.
func Parse(name string, r io.Reader, binds Bindings) ([]Instruction, error) {
	return NewParser(name, r, binds).Parse()
}

// ParseString parses the NadiaVM program in src.
func ParseString(src string, binds Bindings) ([]Instruction, error) {
	return Parse("", strings.NewReader(src), binds)
}
