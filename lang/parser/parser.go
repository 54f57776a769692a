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
	"fmt"

	"github.com/mathlang/mathlang/lang/ast"
	"github.com/mathlang/mathlang/lang/interfaces"
)

// comparisons are the operators at the comparison level, except for E which is
// handled separately.
var comparisons = []string{"==", "!=", "<", ">", "<=", ">="}

// parser is a recursive descent parser over a filtered token list.
type parser struct {
	tokens []*token
	pos    int
}

// parse builds the program from the tokens.
func parse(tokens []*token) (*ast.StmtProg, error) {
	obj := &parser{
		tokens: filter(tokens),
	}
	return obj.prog()
}

// tok returns the current token. The list always ends with a tokEOF which is
// never consumed.
func (obj *parser) tok() *token {
	return obj.tokens[obj.pos]
}

// lookahead returns the token at the offset from the current one.
func (obj *parser) lookahead(offset int) *token {
	if i := obj.pos + offset; i < len(obj.tokens) {
		return obj.tokens[i]
	}
	return obj.tokens[len(obj.tokens)-1] // eof
}

// next consumes the current token and returns it.
func (obj *parser) next() *token {
	tok := obj.tok()
	if tok.kind != tokEOF {
		obj.pos++
	}
	return tok
}

// accept consumes the current token if it matches.
func (obj *parser) accept(kind tokenKind, str string) bool {
	if obj.tok().is(kind, str) {
		obj.next()
		return true
	}
	return false
}

// expect consumes the current token, and errors if it doesn't match.
func (obj *parser) expect(kind tokenKind, str string) error {
	if obj.accept(kind, str) {
		return nil
	}
	return obj.errorf("expected `%s`, got %s", str, obj.tok().describe())
}

// errorf builds an error at the current token. Running out of input is a
// different error, since more input could make it valid.
func (obj *parser) errorf(format string, v ...interface{}) error {
	tok := obj.tok()
	err := ErrParseError
	if tok.kind == tokEOF {
		err = ErrParseEOF
	}
	return &LexParseErr{
		Err: err,
		Str: fmt.Sprintf(format, v...),
		Row: tok.row,
		Col: tok.col,
	}
}

// prog := stmt*
func (obj *parser) prog() (*ast.StmtProg, error) {
	prog := &ast.StmtProg{
		Body: []interfaces.Stmt{},
	}
	for obj.tok().kind != tokEOF {
		stmt, err := obj.stmt()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)

		if obj.tok().kind == tokEOF {
			break
		}
		if !obj.accept(tokNewline, "\n") {
			return nil, obj.errorf("unexpected %s after statement", obj.tok().describe())
		}
	}
	return prog, nil
}

// stmt := IDENT '=' expr | funcdef | expr
func (obj *parser) stmt() (interfaces.Stmt, error) {
	tok := obj.tok()
	if tok.kind == tokIdent && obj.lookahead(1).is(tokOperator, "=") {
		obj.next()
		obj.next()
		value, err := obj.expr()
		if err != nil {
			return nil, err
		}
		return &ast.StmtBind{
			Ident: tok.str,
			Value: value,
		}, nil
	}

	if params, ok := obj.funcHead(); ok {
		return obj.funcDef(tok.str, params)
	}

	expr, err := obj.expr()
	if err != nil {
		return nil, err
	}
	return &ast.StmtExpr{
		Expr: expr,
	}, nil
}

// funcHead looks ahead for IDENT '(' [IDENT {',' IDENT}] ')' followed by either
// ':' or '=', which is the start of a function definition. It doesn't consume
// anything.
func (obj *parser) funcHead() ([]string, bool) {
	if obj.tok().kind != tokIdent || !obj.lookahead(1).is(tokPunct, "(") {
		return nil, false
	}
	params := []string{}
	i := 2
	if !obj.lookahead(i).is(tokPunct, ")") {
		for {
			tok := obj.lookahead(i)
			if tok.kind != tokIdent {
				return nil, false
			}
			params = append(params, tok.str)
			i++
			if obj.lookahead(i).is(tokPunct, ",") {
				i++
				continue
			}
			break
		}
		if !obj.lookahead(i).is(tokPunct, ")") {
			return nil, false
		}
	}
	i++
	if tok := obj.lookahead(i); !tok.is(tokPunct, ":") && !tok.is(tokOperator, "=") {
		return nil, false
	}
	return params, true
}

// funcDef := IDENT '(' params ')' [':' expr] '=' expr
func (obj *parser) funcDef(name string, params []string) (interfaces.Stmt, error) {
	// skip over the head which was already checked
	for !obj.tok().is(tokPunct, ")") {
		obj.next()
	}
	obj.next()

	stmt := &ast.StmtFunc{
		Name:   name,
		Params: params,
	}
	if obj.accept(tokPunct, ":") {
		domain, err := obj.expr()
		if err != nil {
			return nil, err
		}
		stmt.Domain = domain
	}
	if err := obj.expect(tokOperator, "="); err != nil {
		return nil, err
	}
	body, err := obj.expr()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// expr := or
func (obj *parser) expr() (interfaces.Expr, error) {
	return obj.or()
}

// or := and {'or' and}
func (obj *parser) or() (interfaces.Expr, error) {
	left, err := obj.and()
	if err != nil {
		return nil, err
	}
	for obj.accept(tokKeyword, "or") {
		right, err := obj.and()
		if err != nil {
			return nil, err
		}
		left = &ast.ExprLogical{Op: "or", A: left, B: right}
	}
	return left, nil
}

// and := not {'and' not}
func (obj *parser) and() (interfaces.Expr, error) {
	left, err := obj.not()
	if err != nil {
		return nil, err
	}
	for obj.accept(tokKeyword, "and") {
		right, err := obj.not()
		if err != nil {
			return nil, err
		}
		left = &ast.ExprLogical{Op: "and", A: left, B: right}
	}
	return left, nil
}

// not := 'not' not | cmp
func (obj *parser) not() (interfaces.Expr, error) {
	if obj.accept(tokKeyword, "not") {
		a, err := obj.not()
		if err != nil {
			return nil, err
		}
		return &ast.ExprUnary{Op: "not", A: a}, nil
	}
	return obj.cmp()
}

// cmp := sum {('=='|'!='|'<'|'>'|'<='|'>='|'E') sum}
func (obj *parser) cmp() (interfaces.Expr, error) {
	left, err := obj.sum()
	if err != nil {
		return nil, err
	}
	for {
		if obj.accept(tokBelongs, "E") {
			right, err := obj.sum()
			if err != nil {
				return nil, err
			}
			left = &ast.ExprBelongs{A: left, B: right}
			continue
		}
		op, ok := obj.acceptOperator(comparisons...)
		if !ok {
			return left, nil
		}
		right, err := obj.sum()
		if err != nil {
			return nil, err
		}
		left = &ast.ExprOperator{Op: op, A: left, B: right}
	}
}

// sum := term {('+'|'-') term}
func (obj *parser) sum() (interfaces.Expr, error) {
	left, err := obj.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := obj.acceptOperator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := obj.term()
		if err != nil {
			return nil, err
		}
		left = &ast.ExprOperator{Op: op, A: left, B: right}
	}
}

// term := unary {('*'|'/'|'%') unary}
func (obj *parser) term() (interfaces.Expr, error) {
	left, err := obj.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := obj.acceptOperator("*", "/", "%")
		if !ok {
			return left, nil
		}
		right, err := obj.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.ExprOperator{Op: op, A: left, B: right}
	}
}

// unary := '-' unary | power
func (obj *parser) unary() (interfaces.Expr, error) {
	if obj.accept(tokOperator, "-") {
		a, err := obj.unary()
		if err != nil {
			return nil, err
		}
		return &ast.ExprUnary{Op: "-", A: a}, nil
	}
	return obj.power()
}

// power := primary ['^' unary]
func (obj *parser) power() (interfaces.Expr, error) {
	base, err := obj.primary()
	if err != nil {
		return nil, err
	}
	if !obj.accept(tokOperator, "^") {
		return base, nil
	}
	exponent, err := obj.unary() // right associative
	if err != nil {
		return nil, err
	}
	return &ast.ExprOperator{Op: "^", A: base, B: exponent}, nil
}

// primary is a literal, a name, a call, a parenthesized expression, a set or
// an if expression.
func (obj *parser) primary() (interfaces.Expr, error) {
	tok := obj.tok()
	switch {
	case tok.kind == tokNumber:
		obj.next()
		return &ast.ExprNum{V: tok.num}, nil

	case tok.is(tokOperator, "`"): // prefix derivative
		deriv := obj.backticks()
		name := obj.tok()
		if name.kind != tokIdent {
			return nil, obj.errorf("expected a function name, got %s", name.describe())
		}
		obj.next()
		if !obj.tok().is(tokPunct, "(") {
			return nil, obj.errorf("expected `(`, got %s", obj.tok().describe())
		}
		return obj.call(name.str, deriv)

	case tok.kind == tokIdent:
		obj.next()
		next := obj.tok()
		if !next.is(tokOperator, "`") && !next.is(tokPunct, "(") {
			return &ast.ExprIdent{Name: tok.str}, nil
		}
		deriv := obj.backticks() // postfix derivative
		if !obj.tok().is(tokPunct, "(") {
			return nil, obj.errorf("expected `(`, got %s", obj.tok().describe())
		}
		return obj.call(tok.str, deriv)

	case tok.is(tokPunct, "("):
		obj.next()
		expr, err := obj.expr()
		if err != nil {
			return nil, err
		}
		if err := obj.expect(tokPunct, ")"); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.is(tokPunct, "{"):
		return obj.set()

	case tok.is(tokKeyword, "if"):
		return obj.ifExpr()
	}

	return nil, obj.errorf("unexpected %s", tok.describe())
}

// backticks consumes any number of backticks and returns the count.
func (obj *parser) backticks() int {
	n := 0
	for obj.accept(tokOperator, "`") {
		n++
	}
	return n
}

// call := '(' [expr {',' expr}] ')'
func (obj *parser) call(name string, deriv int) (interfaces.Expr, error) {
	if err := obj.expect(tokPunct, "("); err != nil {
		return nil, err
	}
	args := []interfaces.Expr{}
	if !obj.accept(tokPunct, ")") {
		for {
			arg, err := obj.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if obj.accept(tokPunct, ",") {
				continue
			}
			if err := obj.expect(tokPunct, ")"); err != nil {
				return nil, err
			}
			break
		}
	}
	return &ast.ExprCall{
		Name:  name,
		Args:  args,
		Deriv: deriv,
	}, nil
}

// set := '{' [expr {',' expr}] '}' | '{' IDENT ['E' expr] '|' expr '}'
func (obj *parser) set() (interfaces.Expr, error) {
	if err := obj.expect(tokPunct, "{"); err != nil {
		return nil, err
	}
	if obj.accept(tokPunct, "}") {
		return &ast.ExprSet{Elements: []interfaces.Expr{}}, nil
	}

	first, err := obj.expr()
	if err != nil {
		return nil, err
	}

	if obj.tok().is(tokPunct, "|") {
		builder := &ast.ExprSetBuilder{}
		switch x := first.(type) {
		case *ast.ExprIdent:
			builder.Param = x.Name
		case *ast.ExprBelongs:
			ident, ok := x.A.(*ast.ExprIdent)
			if !ok {
				return nil, obj.errorf("expected a variable before `E` in set builder, got `%s`", x.A)
			}
			builder.Param = ident.Name
			builder.Of = x.B
		default:
			return nil, obj.errorf("expected a variable in set builder, got `%s`", first)
		}
		obj.next()
		pred, err := obj.expr()
		if err != nil {
			return nil, err
		}
		builder.Pred = pred
		if err := obj.expect(tokPunct, "}"); err != nil {
			return nil, err
		}
		return builder, nil
	}

	elements := []interfaces.Expr{first}
	for obj.accept(tokPunct, ",") {
		x, err := obj.expr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, x)
	}
	if err := obj.expect(tokPunct, "}"); err != nil {
		return nil, err
	}
	return &ast.ExprSet{Elements: elements}, nil
}

// ifExpr := 'if' expr 'then' expr 'else' expr 'end'
func (obj *parser) ifExpr() (interfaces.Expr, error) {
	if err := obj.expect(tokKeyword, "if"); err != nil {
		return nil, err
	}
	condition, err := obj.expr()
	if err != nil {
		return nil, err
	}
	if err := obj.expect(tokKeyword, "then"); err != nil {
		return nil, err
	}
	thenBranch, err := obj.expr()
	if err != nil {
		return nil, err
	}
	if err := obj.expect(tokKeyword, "else"); err != nil {
		return nil, err
	}
	elseBranch, err := obj.expr()
	if err != nil {
		return nil, err
	}
	if err := obj.expect(tokKeyword, "end"); err != nil {
		return nil, err
	}
	return &ast.ExprIf{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}, nil
}

// acceptOperator consumes the current token if it is one of the operators, and
// returns which one it was.
func (obj *parser) acceptOperator(ops ...string) (string, bool) {
	tok := obj.tok()
	if tok.kind != tokOperator {
		return "", false
	}
	for _, op := range ops {
		if tok.str == op {
			obj.next()
			return op, true
		}
	}
	return "", false
}
