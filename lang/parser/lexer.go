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


package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// tokenKind is the category of a token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokNumber
	tokIdent
	tokKeyword
	tokOperator
	tokPunct
	tokBelongs
)

// String returns a name for this kind of token.
func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "newline"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokKeyword:
		return "keyword"
	case tokOperator:
		return "operator"
	case tokPunct:
		return "punctuation"
	case tokBelongs:
		return "belongs"
	}
	return "unknown"
}

// keywords are identifiers which are reserved.
var keywords = []string{"if", "then", "else", "end", "and", "or", "not"}

// operators are sorted so that the longer ones are matched first.
var operators = []string{"!=", "==", ">=", "<=", "=", ">", "<", "+", "-", "*", "/", "^", "%", "`"}

const punctuation = ",:(){}|"

// token is a single lexeme, along with where it was found. The row and col are
// zero-indexed.
type token struct {
	kind tokenKind
	str  string
	num  float64
	row  int
	col  int
}

// is returns true if the token is of this kind and has this text.
func (obj *token) is(kind tokenKind, str string) bool {
	return obj.kind == kind && obj.str == str
}

// describe is used in error messages.
func (obj *token) describe() string {
	switch obj.kind {
	case tokEOF, tokNewline:
		return obj.kind.String()
	}
	return obj.str
}

// lexer turns the program text into a list of tokens.
type lexer struct {
	input []rune
	pos   int
	row   int
	col   int
}

// lex returns all of the tokens in the input, ending with a tokEOF.
func lex(input string) ([]*token, error) {
	obj := &lexer{
		input: []rune(input),
	}
	tokens := []*token{}
	for {
		tok, err := obj.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

// peek returns the rune at the offset from the current position, or zero if
// that is past the end.
func (obj *lexer) peek(offset int) rune {
	if i := obj.pos + offset; i < len(obj.input) {
		return obj.input[i]
	}
	return 0
}

// advance moves forward by one rune and keeps track of the position.
func (obj *lexer) advance() {
	if obj.input[obj.pos] == '\n' {
		obj.row++
		obj.col = 0
	} else {
		obj.col++
	}
	obj.pos++
}

// next returns the next token.
func (obj *lexer) next() (*token, error) {
	// skip whitespace and comments
	for obj.pos < len(obj.input) {
		r := obj.input[obj.pos]
		if r == ' ' || r == '\t' || r == '\r' {
			obj.advance()
			continue
		}
		if r == '#' {
			for obj.pos < len(obj.input) && obj.input[obj.pos] != '\n' {
				obj.advance()
			}
			continue
		}
		break
	}

	tok := &token{
		row: obj.row,
		col: obj.col,
	}
	if obj.pos >= len(obj.input) {
		tok.kind = tokEOF
		return tok, nil
	}

	r := obj.input[obj.pos]
	switch {
	case r == '\n':
		obj.advance()
		tok.kind = tokNewline
		tok.str = "\n"
		return tok, nil

	case unicode.IsDigit(r) || r == '.':
		start := obj.pos
		for obj.pos < len(obj.input) && (unicode.IsDigit(obj.input[obj.pos]) || obj.input[obj.pos] == '.') {
			obj.advance()
		}
		tok.str = string(obj.input[start:obj.pos])
		return obj.number(tok)

	case unicode.IsLetter(r) || r == '_':
		start := obj.pos
		for obj.pos < len(obj.input) && isIdentRune(obj.input[obj.pos]) {
			obj.advance()
		}
		tok.str = string(obj.input[start:obj.pos])
		tok.kind = tokIdent
		if tok.str == "E" {
			tok.kind = tokBelongs
		}
		for _, x := range keywords {
			if tok.str == x {
				tok.kind = tokKeyword
			}
		}
		return tok, nil

	case strings.ContainsRune(punctuation, r):
		obj.advance()
		tok.kind = tokPunct
		tok.str = string(r)
		return tok, nil
	}

	for _, op := range operators {
		if obj.hasPrefix(op) {
			for range op {
				obj.advance()
			}
			tok.kind = tokOperator
			tok.str = op
			return tok, nil
		}
	}

	return nil, &LexParseErr{
		Err: ErrLexerUnrecognized,
		Str: string(r),
		Row: tok.row,
		Col: tok.col,
	}
}

// number parses the text of a numeric token.
func (obj *lexer) number(tok *token) (*token, error) {
	if tok.str == "." || strings.Count(tok.str, ".") > 1 {
		return nil, &LexParseErr{
			Err: ErrLexerBadNumber,
			Str: tok.str,
			Row: tok.row,
			Col: tok.col,
		}
	}
	f, err := strconv.ParseFloat(tok.str, 64)
	if errors.Is(err, strconv.ErrRange) {
		return nil, &LexParseErr{
			Err: ErrLexerFloatOverflow,
			Str: tok.str,
			Row: tok.row,
			Col: tok.col,
		}
	}
	if err != nil {
		return nil, &LexParseErr{
			Err: ErrLexerBadNumber,
			Str: tok.str,
			Row: tok.row,
			Col: tok.col,
		}
	}
	tok.kind = tokNumber
	tok.num = f
	return tok, nil
}

// hasPrefix returns true if the remaining input starts with the string.
func (obj *lexer) hasPrefix(s string) bool {
	for i, r := range []rune(s) {
		if obj.peek(i) != r {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// continuation returns true if a newline after this token doesn't end the
// statement, because the token can't end an expression.
func continuation(tok *token) bool {
	switch tok.kind {
	case tokOperator, tokBelongs:
		return tok.str != "`" // backticks appear before the call parens
	case tokPunct:
		return tok.str == "," || tok.str == ":" || tok.str == "|"
	case tokKeyword:
		return tok.str != "end"
	}
	return false
}

// filter removes the newlines which don't separate statements. These are the
// ones inside parentheses, braces or an if expression, the ones that follow a
// token which can't end an expression, and any repeated or leading ones.
func filter(tokens []*token) []*token {
	result := []*token{}
	depth := 0
	for _, tok := range tokens {
		switch {
		case tok.is(tokPunct, "("), tok.is(tokPunct, "{"), tok.is(tokKeyword, "if"):
			depth++
		case tok.is(tokPunct, ")"), tok.is(tokPunct, "}"), tok.is(tokKeyword, "end"):
			if depth > 0 {
				depth--
			}
		}

		if tok.kind != tokNewline {
			result = append(result, tok)
			continue
		}
		if depth > 0 || len(result) == 0 {
			continue
		}
		if last := result[len(result)-1]; last.kind == tokNewline || continuation(last) {
			continue
		}
		result = append(result, tok)
	}
	return result
}
