// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a small state function based lexer.
//
// A lexer is a set of state functions. Each call to Lex resets the token start
// position and runs state functions, starting with the init state, until one
// of them emits an item. A state function returning nil ends the current token
// and the next call to Lex starts over from the init state.
//
package lex

import (
	"bufio"
	"fmt"
	"io"
)

// EOF is both the rune returned by Lexer.Next at end of input and the Type of
// the end of input item.
//
const EOF = -1

// Type is the type of a lexical item.
//
type Type int

// Pos is a rune offset in the input.
//
type Pos int

// Item is a lexical item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch v := i.Value.(type) {
	case string:
		return v
	case rune:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(i.Value)
}

// StateFn is a lexer state function.
//
type StateFn func(l *Lexer) StateFn

// Interface is implemented by lexers.
//
type Interface interface {
	Lex() Item
}

// Lexer is a state function based lexer.
//
type Lexer struct {
	r     io.RuneReader
	init  StateFn
	state StateFn
	items []Item

	cur    rune
	offs   Pos // offset of the next rune to read
	start  Pos
	backed bool
	eof    bool
}

// New returns a new lexer reading from r and starting each token in the init
// state.
//
func New(r io.Reader, init StateFn) *Lexer {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Lexer{r: rr, init: init}
}

// Lex returns the next item.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.start = l.offs
			l.state = l.init
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// Next returns the next rune in the input, or EOF.
//
func (l *Lexer) Next() rune {
	if l.backed {
		l.backed = false
		l.offs++
		return l.cur
	}
	if l.eof {
		l.cur = EOF
	} else if r, _, err := l.r.ReadRune(); err != nil {
		l.eof = true
		l.cur = EOF
	} else {
		l.cur = r
	}
	l.offs++
	return l.cur
}

// Backup reverts the last call to Next. Only one rune of backup is supported.
//
func (l *Lexer) Backup() {
	if l.backed {
		panic("lex: Backup called twice")
	}
	l.backed = true
	l.offs--
}

// Current returns the last rune returned by Next.
//
func (l *Lexer) Current() rune { return l.cur }

// Pos returns the offset of the next rune to read.
//
func (l *Lexer) Pos() Pos { return l.offs }

// AcceptWhile reads runes while f returns true. The first rejected rune is
// backed up.
//
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for f(l.Next()) {
	}
	l.Backup()
}

// Emit emits an item of type t and value v, positioned at the start of the
// current token.
//
func (l *Lexer) Emit(t Type, v interface{}) {
	l.items = append(l.items, Item{Type: t, Pos: l.start, Value: v})
}
