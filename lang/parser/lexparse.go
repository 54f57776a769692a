// Mathlang
// Copyright (C) James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package parser contains the lexer and parser for the language.
package parser

import (
	"fmt"
	"io"

	"github.com/mathlang/mathlang/lang/ast"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"
)

// These constants represent the different possible lexer/parser errors.
const (
	ErrLexerUnrecognized  = util.Error("unrecognized")
	ErrLexerFloatOverflow = util.Error("float: overflow")
	ErrLexerBadNumber     = util.Error("number: malformed")
	ErrParseError         = util.Error("parser")

	// ErrParseEOF means the input ended in the middle of something. More
	// input might complete it, which is what the REPL uses it for.
	ErrParseEOF = util.Error("parser: unexpected end of input")
)

// LexParseErr is a permanent failure error to notify about borkage.
type LexParseErr struct {
	Err util.Error
	Str string
	Row int // this is zero-indexed (the first line is 0)
	Col int // this is zero-indexed (the first char is 0)

	// Filename is the file that this error occurred in. If this is unknown,
	// then it will be empty. This is not set when run by the basic LexParse
	// function.
	Filename string
}

// Error displays this error with all the relevant state information.
func (e *LexParseErr) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: %s: `%s` @%d:%d", e.Filename, e.Err, e.Str, e.Row+1, e.Col+1)
	}
	return fmt.Sprintf("%s: `%s` @%d:%d", e.Err, e.Str, e.Row+1, e.Col+1)
}

// Unwrap returns the kind of this error, so that errors.Is works with it.
func (e *LexParseErr) Unwrap() error { return e.Err }

// LexParse runs the lexer/parser machinery and returns the AST.
func LexParse(input io.Reader) (*ast.StmtProg, error) {
	b, err := io.ReadAll(input)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read input")
	}
	return LexParseString(string(b))
}

// LexParseString is the same as LexParse, but it takes a string.
func LexParseString(input string) (*ast.StmtProg, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	return parse(tokens)
}

// LexParseFile is the same as LexParse, except that any error contains the name
// of the file.
func LexParseFile(input io.Reader, filename string) (*ast.StmtProg, error) {
	prog, err := LexParse(input)
	if e, ok := err.(*LexParseErr); ok {
		return nil, &LexParseErr{
			Err:      e.Err,
			Str:      e.Str,
			Row:      e.Row,
			Col:      e.Col,
			Filename: filename,
		}
	}
	return prog, err
}
