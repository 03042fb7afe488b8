// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements the lexer and parser for sensitivity expressions.
//
package hdl

import (
	"math"
	"strings"
	"unicode"

	"github.com/db47h/hdlsim/internal/lex"
	"github.com/pkg/errors"
)

// Tokens
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Ident
	ParenOpen
	ParenClose
	Comma
	Int
	Error
)

// Lexer returns a new lexer for sensitivity expressions.
//
func Lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case r == '(':
		l.Emit(ParenOpen, "(")
	case r == ')':
		l.Emit(ParenClose, ")")
	case r == ',':
		l.Emit(Comma, ",")
	case '0' <= r && r <= '9':
		return lexNumber
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *lex.Lexer) lex.StateFn {
	i := int64(l.Current() - '0')
	overflow := false
	r := l.Next()
	for '0' <= r && r <= '9' {
		d := int64(r - '0')
		if i > (math.MaxInt64-d)/10 {
			overflow = true
		}
		i = i*10 + d
		r = l.Next()
	}
	l.Backup()
	if overflow {
		l.Emit(Error, "integer overflow")
		return nil
	}
	l.Emit(Int, i)
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	r := l.Next()
	for unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		buf.WriteRune(r)
		r = l.Next()
	}
	l.Backup()
	l.Emit(Ident, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}

// Kind is the kind of a sensitivity term.
//
type Kind int

// Term kinds.
//
const (
	Change Kind = iota
	Posedge
	Negedge
	Delay
)

var keywords = map[string]Kind{
	"change":  Change,
	"posedge": Posedge,
	"negedge": Negedge,
	"delay":   Delay,
}

// Term is a single trigger in a sensitivity expression. Name is set for signal
// terms, Delay for delay terms.
//
type Term struct {
	Kind  Kind
	Name  string
	Delay int64
	Pos   lex.Pos
}

// Parse parses a comma separated list of terms:
//
//	clk                 // any change of clk
//	change(clk)         // same
//	posedge(clk)
//	negedge(clk)
//	delay(20)
//
// An empty input returns no terms and no error.
//
func Parse(input string) ([]Term, error) {
	var out []Term

	l := Lexer(input)
	i := l.Lex()
	if i.Type == EOF {
		return nil, nil
	}
	for {
		if i.Type != Ident {
			return nil, parseError(input, i.Pos, "expected signal name or trigger")
		}
		t := Term{Kind: Change, Name: i.Value.(string), Pos: i.Pos}
		i = l.Lex()
		if i.Type == ParenOpen {
			kind, ok := keywords[t.Name]
			if !ok {
				return nil, parseError(input, t.Pos, "unknown trigger "+t.Name)
			}
			t.Kind = kind
			t.Name = ""
			i = l.Lex()
			switch {
			case i.Type == Error:
				return nil, parseError(input, i.Pos, i.Value.(string))
			case kind == Delay && i.Type == Int:
				t.Delay = i.Value.(int64)
			case kind != Delay && i.Type == Ident:
				t.Name = i.Value.(string)
			case kind == Delay:
				return nil, parseError(input, i.Pos, "integer delay expected")
			default:
				return nil, parseError(input, i.Pos, "signal name expected")
			}
			i = l.Lex()
			if i.Type != ParenClose {
				return nil, parseError(input, i.Pos, "closing ')' expected")
			}
			i = l.Lex()
		}
		out = append(out, t)
		switch i.Type {
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, parseError(input, i.Pos, "unexpected "+i.String())
		}
	}
}

func parseError(in string, pos lex.Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
