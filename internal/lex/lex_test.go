package lex_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/db47h/hdlsim/internal/lex"
)

const (
	tWord lex.Type = iota + 1
	tSym
)

func lexWord(l *lex.Lexer) lex.StateFn {
	var b strings.Builder
	b.WriteRune(l.Current())
	for r := l.Next(); unicode.IsLetter(r); r = l.Next() {
		b.WriteRune(r)
	}
	l.Backup()
	l.Emit(tWord, b.String())
	return nil
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOF:
		l.Emit(lex.EOF, "EOF")
		return nil
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case unicode.IsLetter(r):
		return lexWord
	default:
		l.Emit(tSym, r)
	}
	return nil
}

func TestLexer(t *testing.T) {
	l := lex.New(strings.NewReader("ab  cd;é"), lexInit)
	exp := []lex.Item{
		{Type: tWord, Pos: 0, Value: "ab"},
		{Type: tWord, Pos: 4, Value: "cd"},
		{Type: tSym, Pos: 6, Value: ';'},
		{Type: tWord, Pos: 7, Value: "é"},
		{Type: lex.EOF, Pos: 8, Value: "EOF"},
		{Type: lex.EOF, Pos: 9, Value: "EOF"},
	}
	for _, e := range exp {
		i := l.Lex()
		if i != e {
			t.Fatalf("expected %v@%d (%d), got %v@%d (%d)", e, e.Pos, e.Type, i, i.Pos, i.Type)
		}
	}
}

func TestItem_String(t *testing.T) {
	for _, d := range []struct {
		i   lex.Item
		out string
	}{
		{lex.Item{Value: "ident"}, "ident"},
		{lex.Item{Value: '-'}, "'-'"},
		{lex.Item{Value: int64(42)}, "42"},
	} {
		if s := d.i.String(); s != d.out {
			t.Errorf("expected %q, got %q", d.out, s)
		}
	}
}
