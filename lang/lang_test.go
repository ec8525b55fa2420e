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

package lang_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/nadia/lang"
	"github.com/pkg/errors"
)

type T []lang.Token

func kw(s string) lang.Token     { return lang.Token{Kind: lang.KeywordToken, Text: s} }
func num(s string) lang.Token    { return lang.Token{Kind: lang.NumberToken, Text: s} }
func ident(s string) lang.Token  { return lang.Token{Kind: lang.IdentifierToken, Text: s} }
func str(s string) lang.Token    { return lang.Token{Kind: lang.StringToken, Text: s} }
func anyTok(s string) lang.Token { return lang.Token{Kind: lang.AnyToken, Text: s} }
func cmt(s string) lang.Token    { return lang.Token{Kind: lang.CommentToken, Text: s} }

var tokenizeTests = [...]struct {
	name string
	src  string
	toks T
}{
	{"one token", "collect\n", T{kw("collect")}},
	{"params", "set constant 5\n", T{kw("set"), kw("constant"), num("5")}},
	{"no newline", "add", T{kw("add")}},
	{"blank lines", "\n\n  add \t\n\n", T{kw("add")}},
	{"comment", "; the end\nexit player", T{cmt("; the end"), kw("exit"), kw("player")}},
	{"string", `cast "n" 7`, T{kw("cast"), str(`"n"`), num("7")}},
	{"unterminated string", `"abc`, T{str(`"abc`)}},
	{"identifier", "push world_coins 12\n", T{kw("push"), ident("world_coins"), num("12")}},
	{"dash", "move player north-east", T{kw("move"), kw("player"), ident("north-east")}},
	{"digits end identifiers", "lvl2", T{ident("lvl"), num("2")}},
	{"number pushback", "12add", T{num("12"), kw("add")}},
	{"any", "set constant (1, 2)\nadd\n", T{kw("set"), kw("constant"), anyTok("(1, 2)"), kw("add")}},
	{"negative", "set constant -1\r\nmult\r\n", T{kw("set"), kw("constant"), anyTok("-1"), kw("mult")}},
	{"keyword identifiers only", "setting", T{ident("setting")}},
}

func TestTokenize(t *testing.T) {
	for _, test := range tokenizeTests {
		toks, err := lang.Tokenize(test.name, strings.NewReader(test.src))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if len(toks) != len(test.toks) {
			t.Errorf("%s: expected %v, got %v", test.name, test.toks, toks)
			continue
		}
		for i := range toks {
			if toks[i] != test.toks[i] {
				t.Errorf("%s: token %d: expected %v, got %v", test.name, i, test.toks[i], toks[i])
			}
		}
	}
}

func TestTokenize_error(t *testing.T) {
	_, err := lang.Tokenize("bad", strings.NewReader("add\nsub \xff"))
	e, ok := err.(*lang.TokenizeError)
	if !ok {
		t.Fatalf("expected a *TokenizeError, got %v", err)
	}
	if e.Pos.Line != 2 || e.Pos.Column != 5 {
		t.Errorf("bad position: %v", e.Pos)
	}
}

func TestTokenizer_consumesOnce(t *testing.T) {
	tk := lang.NewTokenizer("", strings.NewReader("add sub"))
	a, _ := tk.Next()
	b, _ := tk.Next()
	if a != kw("add") || b != kw("sub") {
		t.Fatalf("got %v, %v", a, b)
	}
	if _, err := tk.Next(); err == nil {
		t.Fatal("expected io.EOF")
	}
}

func TestToken_Value(t *testing.T) {
	tests := []struct {
		tok lang.Token
		v   lang.Value
	}{
		{num("42"), lang.Int(42)},
		{kw("constant"), lang.Key(lang.Constant)},
		{kw("add"), lang.Key(lang.Add.Keyword())},
		{ident("east"), lang.Text("east")},
		{str(`"x"`), lang.Text(`"x"`)},
		{lang.Token{Kind: lang.NoneToken}, lang.Null},
	}
	for _, test := range tests {
		v, err := test.tok.Value()
		if err != nil {
			t.Errorf("%v: %v", test.tok, err)
			continue
		}
		if v != test.v {
			t.Errorf("%v: expected %#v, got %#v", test.tok, test.v, v)
		}
	}
	if _, err := num("99999999999999999999999").Value(); err == nil {
		t.Error("expected an overflow error")
	} else if _, ok := err.(*lang.TokenizeError); !ok {
		t.Errorf("expected a *TokenizeError, got %v", err)
	}
}

func TestTokenize_numberOverflow(t *testing.T) {
	_, err := lang.Tokenize("big", strings.NewReader("alloc x\n  99999999999999999999999"))
	e, ok := err.(*lang.TokenizeError)
	if !ok {
		t.Fatalf("expected a *TokenizeError, got %v", err)
	}
	if e.Pos.Line != 2 || e.Pos.Column != 3 || e.Text != "99999999999999999999999" {
		t.Errorf("bad error: %v", e)
	}
	if _, err = lang.ParseString("set constant 99999999999999999999999", nil); err == nil {
		t.Fatal("expected an error")
	} else if _, ok = errors.Cause(err).(*lang.TokenizeError); !ok {
		t.Errorf("expected a *TokenizeError from Parse, got %v", err)
	}
}

func ins(c lang.Command, params ...lang.Value) lang.Instruction {
	return lang.Instruction{Command: c, Params: params}
}

var parseTests = [...]struct {
	name  string
	src   string
	binds map[string]string
	prog  []lang.Instruction
}{
	{"one command", "collect\n", nil, []lang.Instruction{ins(lang.Collect)}},
	{"params", "set constant 5\n", nil, []lang.Instruction{ins(lang.Set, lang.Key(lang.Constant), lang.Int(5))}},
	{"seed binding", "var constant 10\n", map[string]string{"var": "set"},
		[]lang.Instruction{ins(lang.Set, lang.Key(lang.Constant), lang.Int(10))}},
	{"program", "alloc x 3\nset constant 7\npush x 0\npop x 0\n", nil, []lang.Instruction{
		ins(lang.Alloc, lang.Text("x"), lang.Int(3)),
		ins(lang.Set, lang.Key(lang.Constant), lang.Int(7)),
		ins(lang.Push, lang.Text("x"), lang.Int(0)),
		ins(lang.Pop, lang.Text("x"), lang.Int(0)),
	}},
	{"no delimiters", "set constant 10 set constant 5 add", nil, []lang.Instruction{
		ins(lang.Set, lang.Key(lang.Constant), lang.Int(10)),
		ins(lang.Set, lang.Key(lang.Constant), lang.Int(5)),
		ins(lang.Add),
	}},
	{"comments", "; header\nmove player east ; go\n; trailer", nil, []lang.Instruction{
		ins(lang.Move, lang.Key(lang.Player), lang.Text("east")),
	}},
	{"bind", "bind var set\nvar constant 10\n", nil, []lang.Instruction{
		ins(lang.Bind, lang.Text("var"), lang.Cmd(lang.Set)),
		ins(lang.Set, lang.Key(lang.Constant), lang.Int(10)),
	}},
	{"bind alias target", "bind go move\nbind walk go\nwalk player south", nil, []lang.Instruction{
		ins(lang.Bind, lang.Text("go"), lang.Cmd(lang.Move)),
		ins(lang.Bind, lang.Text("walk"), lang.Cmd(lang.Move)),
		ins(lang.Move, lang.Key(lang.Player), lang.Text("south")),
	}},
	{"rebind", "bind var set\nbind var add\nvar constant 1", nil, []lang.Instruction{
		ins(lang.Bind, lang.Text("var"), lang.Cmd(lang.Set)),
		ins(lang.Bind, lang.Text("var"), lang.Cmd(lang.Add)),
		ins(lang.Set, lang.Key(lang.Constant), lang.Int(1)),
	}},
	{"cast", `cast "n" 7`, nil, []lang.Instruction{ins(lang.Cast, lang.Text(`"n"`), lang.Int(7))}},
	{"empty", "\n\n", nil, nil},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		b, err := lang.NewBindings(test.binds)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		prog, err := lang.Parse(test.name, strings.NewReader(test.src), b)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if len(prog) != len(test.prog) {
			t.Errorf("%s: expected %v, got %v", test.name, test.prog, prog)
			continue
		}
		for i := range prog {
			if !prog[i].Equal(test.prog[i]) {
				t.Errorf("%s: instruction %d: expected %v, got %v", test.name, i, test.prog[i], prog[i])
			}
		}
	}
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		src       string
		line, col int
	}{
		{"notacommand\n", 1, 1},
		{"constant 5", 1, 1},
		{"\"x\" 1", 1, 1},
		{"bind var set\n  constant 5", 2, 3},
		{"bind var", 1, 6},
		{"bind", 1, 1},
	}
	for _, test := range tests {
		_, err := lang.ParseString(test.src, nil)
		e, ok := errors.Cause(err).(*lang.ParseError)
		if !ok {
			t.Errorf("%q: expected a *ParseError, got %v", test.src, err)
			continue
		}
		if e.Pos.Line != test.line || e.Pos.Column != test.col {
			t.Errorf("%q: expected error at %d:%d, got %v", test.src, test.line, test.col, e)
		}
	}
}

func TestParser_bindingsAreCopied(t *testing.T) {
	seed, err := lang.NewBindings(map[string]string{"var": "set"})
	if err != nil {
		t.Fatal(err)
	}
	p := lang.NewParser("", strings.NewReader("bind go move\ngo player west"), seed)
	if _, err = p.Parse(); err != nil {
		t.Fatal(err)
	}
	if _, ok := seed.Lookup("go"); ok {
		t.Error("parser leaked an alias into the seed bindings")
	}
	if c, ok := p.Bindings().Lookup("go"); !ok || c != lang.Move {
		t.Errorf("expected go to be bound to move, got %v, %v", c, ok)
	}
}

func TestParser_tokenizeThenParse(t *testing.T) {
	p := lang.NewParser("", strings.NewReader("collect\n"), nil)
	toks, err := p.Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0] != kw("collect") {
		t.Fatalf("unexpected tokens %v", toks)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 1 || !prog[0].Equal(ins(lang.Collect)) {
		t.Fatalf("unexpected program %v", prog)
	}
}

func TestNewBindings(t *testing.T) {
	for _, target := range []string{"constant", "jump", ""} {
		_, err := lang.NewBindings(map[string]string{"x": target})
		if _, ok := err.(*lang.BindingError); !ok {
			t.Errorf("%q: expected a *BindingError, got %v", target, err)
		}
	}
	b, err := lang.NewBindings(map[string]string{"x": "neg"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Bind("x", lang.Add) {
		t.Error("rebinding should not take place")
	}
	if c, _ := b.Lookup("x"); c != lang.Neg {
		t.Errorf("expected neg, got %v", c)
	}
}

func TestFormat(t *testing.T) {
	src := `alloc world_coins 2
set constant (3, 4)
push world_coins 0
move player east
bind var set
cast "n" 7
collect
exit player
add
sub
mult
div
neg
`
	prog, err := lang.ParseString(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = lang.Format(&b, prog); err != nil {
		t.Fatal(err)
	}
	if b.String() != src {
		t.Errorf("Expected:\n%s\nGot:\n%s", src, b.String())
	}
}

func TestKeywords(t *testing.T) {
	for _, w := range lang.ReservedWords() {
		k, ok := lang.LookupKeyword(w)
		if !ok || k.String() != w {
			t.Errorf("%s: bad keyword lookup %v", w, k)
		}
		c, isCmd := lang.LookupCommand(w)
		switch w {
		case "constant", "origin", "player":
			if isCmd {
				t.Errorf("%s is not a command", w)
			}
		default:
			if !isCmd || c.String() != w || c.Keyword() != k {
				t.Errorf("%s: bad command lookup %v", w, c)
			}
		}
	}
}
