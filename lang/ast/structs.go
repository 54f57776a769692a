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


// Package ast contains the structs implementing and some utility functions for
// interacting with the abstract syntax tree for the language.
package ast

import (
	"fmt"
	"strings"

	"github.com/mathlang/mathlang/lang/funcs/operators"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"
)

// StmtProg represents a list of stmt's. This usually occurs at the top-level of
// any program, and often within an if stmt. It also contains the bodies of the
// function definitions, which are installed before anything else runs.
type StmtProg struct {
	Body []interfaces.Stmt
}

// String returns a short representation of this statement.
func (obj *StmtProg) String() string {
	s := []string{}
	for _, x := range obj.Body {
		s = append(s, x.String())
	}
	return strings.Join(s, "\n")
}

// Apply is a general purpose iterator method that operates on any AST node. It
// is not used as the primary AST traversal function because it is less readable
// and easy to reason about than manually implementing traversal for each node.
// Nevertheless, it is a useful facility for operations that might only apply to
// a select number of node types, since they won't need extra noop iterators...
func (obj *StmtProg) Apply(fn func(interfaces.Node) error) error {
	for _, x := range obj.Body {
		if err := x.Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}

// Hoist defines every function of this program in a new scope. This happens
// before any other statement runs, so a function can be called before the
// place it is defined in, and functions can call each other in any order.
func (obj *StmtProg) Hoist(scope *interfaces.Scope) (*interfaces.Scope, error) {
	for _, x := range obj.Body {
		stmt, ok := x.(*StmtFunc)
		if !ok {
			continue
		}
		next, _, err := stmt.Exec(scope)
		if err != nil {
			return nil, err
		}
		scope = next
	}
	return scope, nil
}

// Exec runs the program. The functions are hoisted first, and then the other
// statements run in order, each one in the scope left by the previous one. The
// value is that of the last expression statement, or nil if there wasn't one.
func (obj *StmtProg) Exec(scope *interfaces.Scope) (*interfaces.Scope, types.Value, error) {
	scope, err := obj.Hoist(scope)
	if err != nil {
		return nil, nil, errwrap.Wrapf(err, "could not define functions")
	}
	debug := scope.Runtime != nil && scope.Runtime.Debug

	var result types.Value
	for i, x := range obj.Body {
		if _, ok := x.(*StmtFunc); ok {
			continue // already done
		}
		if debug {
			scope.Logf("stmt(%d): %s", i, x)
		}
		next, v, err := x.Exec(scope)
		if err != nil {
			return nil, nil, err
		}
		scope = next
		if v == nil {
			continue
		}
		result = v
		if debug {
			scope.Logf("stmt(%d): %s", i, v)
		}
	}
	return scope, result, nil
}

// StmtBind is a representation of an assignment, which binds a variable to an
// expression. A later bind of the same name shadows this one.
type StmtBind struct {
	Ident string
	Value interfaces.Expr
}

// String returns a short representation of this statement.
func (obj *StmtBind) String() string {
	return fmt.Sprintf("%s = %s", obj.Ident, obj.Value)
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *StmtBind) Apply(fn func(interfaces.Node) error) error {
	if err := obj.Value.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Exec evaluates the value and returns a new scope with the variable bound.
func (obj *StmtBind) Exec(scope *interfaces.Scope) (*interfaces.Scope, types.Value, error) {
	v, err := obj.Value.Eval(scope)
	if err != nil {
		return nil, nil, err
	}
	return scope.Extend(map[string]types.Value{obj.Ident: v}), nil, nil
}

// StmtFunc represents a user defined function. The domain is optional, and it
// is an expression which must evaluate to a set.
type StmtFunc struct {
	Name   string
	Params []string
	Domain interfaces.Expr // nil for the default domain
	Body   interfaces.Expr
}

// String returns a short representation of this statement.
func (obj *StmtFunc) String() string {
	s := fmt.Sprintf("%s(%s)", obj.Name, strings.Join(obj.Params, ", "))
	if obj.Domain != nil {
		s += fmt.Sprintf(" : %s", obj.Domain)
	}
	return fmt.Sprintf("%s = %s", s, obj.Body)
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *StmtFunc) Apply(fn func(interfaces.Node) error) error {
	if obj.Domain != nil {
		if err := obj.Domain.Apply(fn); err != nil {
			return err
		}
	}
	if err := obj.Body.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Function builds the function entity. The domain expression is evaluated in
// the scope.
func (obj *StmtFunc) Function(scope *interfaces.Scope) (*interfaces.Function, error) {
	var domain types.Domain // nil means the default
	if obj.Domain != nil {
		v, err := obj.Domain.Eval(scope)
		if err != nil {
			return nil, err
		}
		if domain, err = types.ToDomain(v); err != nil {
			return nil, err
		}
	}
	return interfaces.NewFunction(obj.Name, obj.Params, obj.Body, domain)
}

// Exec builds the function and returns a new scope with it defined.
func (obj *StmtFunc) Exec(scope *interfaces.Scope) (*interfaces.Scope, types.Value, error) {
	fn, err := obj.Function(scope)
	if err != nil {
		return nil, nil, err
	}
	next, err := scope.Define(fn)
	if err != nil {
		return nil, nil, err
	}
	return next, nil, nil
}

// StmtExpr is an expression which runs for its value.
type StmtExpr struct {
	Expr interfaces.Expr
}

// String returns a short representation of this statement.
func (obj *StmtExpr) String() string { return obj.Expr.String() }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *StmtExpr) Apply(fn func(interfaces.Node) error) error {
	if err := obj.Expr.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Exec evaluates the expression. The scope is unchanged.
func (obj *StmtExpr) Exec(scope *interfaces.Scope) (*interfaces.Scope, types.Value, error) {
	v, err := obj.Expr.Eval(scope)
	if err != nil {
		return nil, nil, err
	}
	return scope, v, nil
}

// ExprNum is a representation of a number literal.
type ExprNum struct {
	V float64
}

// String returns a short representation of this expression.
func (obj *ExprNum) String() string { return util.FormatFloat(obj.V) }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprNum) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Eval returns the number.
func (obj *ExprNum) Eval(scope *interfaces.Scope) (types.Value, error) {
	return types.NewNumber(obj.V), nil
}

// ExprIdent is a reference to a variable, or to a function when it is used as
// a value.
type ExprIdent struct {
	Name string
}

// String returns a short representation of this expression.
func (obj *ExprIdent) String() string { return obj.Name }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprIdent) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Eval looks up the identifier in the scope.
func (obj *ExprIdent) Eval(scope *interfaces.Scope) (types.Value, error) {
	return scope.Lookup(obj.Name)
}

// ExprSet is a bounded set literal.
type ExprSet struct {
	Elements []interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprSet) String() string {
	s := []string{}
	for _, x := range obj.Elements {
		s = append(s, x.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprSet) Apply(fn func(interfaces.Node) error) error {
	for _, x := range obj.Elements {
		if err := x.Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}

// Eval evaluates the elements in order and builds the set.
func (obj *ExprSet) Eval(scope *interfaces.Scope) (types.Value, error) {
	values := []types.Value{}
	for _, x := range obj.Elements {
		v, err := x.Eval(scope)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return types.NewSet(values...), nil
}

// ExprSetBuilder is a symbolic set made of the values of a domain which satisfy
// a predicate, such as `{x E Integer | x > 0}`. The predicate is only evaluated
// when the set is queried.
type ExprSetBuilder struct {
	Param string
	Of    interfaces.Expr // nil for all real numbers
	Pred  interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprSetBuilder) String() string {
	if obj.Of == nil {
		return fmt.Sprintf("{%s | %s}", obj.Param, obj.Pred)
	}
	return fmt.Sprintf("{%s E %s | %s}", obj.Param, wrap(obj.Of, precSum), obj.Pred)
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprSetBuilder) Apply(fn func(interfaces.Node) error) error {
	if obj.Of != nil {
		if err := obj.Of.Apply(fn); err != nil {
			return err
		}
	}
	if err := obj.Pred.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates the underlying domain and returns the symbolic set.
func (obj *ExprSetBuilder) Eval(scope *interfaces.Scope) (types.Value, error) {
	var of types.Domain = types.Real()
	if obj.Of != nil {
		v, err := obj.Of.Eval(scope)
		if err != nil {
			return nil, err
		}
		if of, err = types.ToDomain(v); err != nil {
			return nil, err
		}
	}
	return types.NewDomain(&types.PredicateDomain{
		Of:    of,
		Param: obj.Param,
		Pred:  obj.Pred,
	}), nil
}

// ExprOperator is a binary arithmetic or comparison operator. Both operands are
// always evaluated, left first.
type ExprOperator struct {
	Op string
	A  interfaces.Expr
	B  interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprOperator) String() string {
	p := opPrecedence(obj.Op)
	if obj.Op == "^" { // right associative
		return fmt.Sprintf("%s ^ %s", wrap(obj.A, precPrimary), wrap(obj.B, precUnary))
	}
	return fmt.Sprintf("%s %s %s", wrap(obj.A, p), obj.Op, wrap(obj.B, p+1))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprOperator) Apply(fn func(interfaces.Node) error) error {
	if err := obj.A.Apply(fn); err != nil {
		return err
	}
	if err := obj.B.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates both operands and runs the operator on them.
func (obj *ExprOperator) Eval(scope *interfaces.Scope) (types.Value, error) {
	op, err := operators.LookupOperator(obj.Op)
	if err != nil {
		return nil, err
	}
	a, err := obj.A.Eval(scope)
	if err != nil {
		return nil, err
	}
	b, err := obj.B.Eval(scope)
	if err != nil {
		return nil, err
	}
	return op.F(a, b)
}

// ExprUnary is a prefix operator, either a numeric `-` or a boolean `not`.
type ExprUnary struct {
	Op string
	A  interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprUnary) String() string {
	if obj.Op == "not" {
		return fmt.Sprintf("not %s", wrap(obj.A, precNot))
	}
	return fmt.Sprintf("%s%s", obj.Op, wrap(obj.A, precUnary))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprUnary) Apply(fn func(interfaces.Node) error) error {
	if err := obj.A.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates the operand and applies the operator.
func (obj *ExprUnary) Eval(scope *interfaces.Scope) (types.Value, error) {
	v, err := obj.A.Eval(scope)
	if err != nil {
		return nil, err
	}
	switch obj.Op {
	case "-":
		f, err := types.ToNumber(v)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(-f), nil

	case "not":
		b, err := types.ToBool(v)
		if err != nil {
			return nil, err
		}
		return types.NewBool(!b), nil
	}
	return nil, fmt.Errorf("unknown unary operator: %s", obj.Op)
}

// ExprLogical is a boolean `and` or `or`. The right operand is only evaluated
// if it is needed.
type ExprLogical struct {
	Op string
	A  interfaces.Expr
	B  interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprLogical) String() string {
	p := opPrecedence(obj.Op)
	return fmt.Sprintf("%s %s %s", wrap(obj.A, p), obj.Op, wrap(obj.B, p+1))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprLogical) Apply(fn func(interfaces.Node) error) error {
	if err := obj.A.Apply(fn); err != nil {
		return err
	}
	if err := obj.B.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates the operands with short circuiting.
func (obj *ExprLogical) Eval(scope *interfaces.Scope) (types.Value, error) {
	a, err := eval2bool(scope, obj.A)
	if err != nil {
		return nil, err
	}
	switch obj.Op {
	case "and":
		if !a {
			return types.NewBool(false), nil
		}
	case "or":
		if a {
			return types.NewBool(true), nil
		}
	default:
		return nil, fmt.Errorf("unknown logical operator: %s", obj.Op)
	}
	b, err := eval2bool(scope, obj.B)
	if err != nil {
		return nil, err
	}
	return types.NewBool(b), nil
}

// ExprIf represents an if expression which *must* have both branches, and which
// returns a value. Only the branch which is taken gets evaluated.
type ExprIf struct {
	Condition  interfaces.Expr
	ThenBranch interfaces.Expr
	ElseBranch interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprIf) String() string {
	return fmt.Sprintf("if %s then %s else %s end", obj.Condition, obj.ThenBranch, obj.ElseBranch)
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprIf) Apply(fn func(interfaces.Node) error) error {
	if err := obj.Condition.Apply(fn); err != nil {
		return err
	}
	if err := obj.ThenBranch.Apply(fn); err != nil {
		return err
	}
	if err := obj.ElseBranch.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates the condition and then exactly one of the branches.
func (obj *ExprIf) Eval(scope *interfaces.Scope) (types.Value, error) {
	b, err := eval2bool(scope, obj.Condition)
	if err != nil {
		return nil, err
	}
	if b {
		return obj.ThenBranch.Eval(scope)
	}
	return obj.ElseBranch.Eval(scope)
}

// ExprBelongs is the membership test `x E S`. The right hand side can be any
// set, or a scalar which is treated as a set of one.
type ExprBelongs struct {
	A interfaces.Expr
	B interfaces.Expr
}

// String returns a short representation of this expression.
func (obj *ExprBelongs) String() string {
	return fmt.Sprintf("%s E %s", wrap(obj.A, precCmp), wrap(obj.B, precCmp+1))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprBelongs) Apply(fn func(interfaces.Node) error) error {
	if err := obj.A.Apply(fn); err != nil {
		return err
	}
	if err := obj.B.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Eval evaluates both sides and tests for membership.
func (obj *ExprBelongs) Eval(scope *interfaces.Scope) (types.Value, error) {
	a, err := obj.A.Eval(scope)
	if err != nil {
		return nil, err
	}
	b, err := obj.B.Eval(scope)
	if err != nil {
		return nil, err
	}
	d, err := types.ToDomain(b)
	if err != nil {
		return nil, err
	}
	ok, err := d.Contains(scope, a)
	if err != nil {
		return nil, err
	}
	return types.NewBool(ok), nil
}

// ExprCall is a representation of a function call. If Deriv is not zero, then
// this is instead the derivative of that order of the function, evaluated at
// the single arg.
type ExprCall struct {
	Name  string
	Args  []interfaces.Expr
	Deriv int
}

// String returns a short representation of this expression.
func (obj *ExprCall) String() string {
	s := []string{}
	for _, x := range obj.Args {
		s = append(s, x.String())
	}
	return fmt.Sprintf("%s%s(%s)", obj.Name, strings.Repeat("`", obj.Deriv), strings.Join(s, ", "))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *ExprCall) Apply(fn func(interfaces.Node) error) error {
	for _, x := range obj.Args {
		if err := x.Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}

// Eval evaluates the args in order, and then runs the function.
func (obj *ExprCall) Eval(scope *interfaces.Scope) (types.Value, error) {
	args := []types.Value{}
	for _, x := range obj.Args {
		v, err := x.Eval(scope)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if obj.Deriv == 0 {
		return scope.Call(obj.Name, args)
	}
	return Differentiate(scope, obj.Name, obj.Deriv, args)
}
