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


package ast

import (
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
)

// These are the binding strengths of the different kinds of expression, from
// the loosest to the tightest. They are used to add the minimum of parentheses
// when an expression is displayed.
const (
	precOr = iota + 1
	precAnd
	precNot
	precCmp
	precSum
	precTerm
	precUnary
	precPower
	precPrimary
)

// opPrecedence returns the binding strength of a binary operator.
func opPrecedence(op string) int {
	switch op {
	case "or":
		return precOr
	case "and":
		return precAnd
	case "==", "!=", "<", ">", "<=", ">=", "E":
		return precCmp
	case "+", "-":
		return precSum
	case "*", "/", "%":
		return precTerm
	case "^":
		return precPower
	}
	return precPrimary
}

// precedence returns the binding strength of an expression.
func precedence(expr interfaces.Expr) int {
	switch x := expr.(type) {
	case *ExprNum:
		if x.V < 0 {
			return precUnary // displayed with a minus sign
		}
	case *ExprOperator:
		return opPrecedence(x.Op)
	case *ExprLogical:
		return opPrecedence(x.Op)
	case *ExprBelongs:
		return precCmp
	case *ExprUnary:
		if x.Op == "not" {
			return precNot
		}
		return precUnary
	}
	return precPrimary
}

// wrap displays the expression, in parentheses if it binds looser than prec.
func wrap(expr interfaces.Expr, prec int) string {
	if precedence(expr) < prec {
		return "(" + expr.String() + ")"
	}
	return expr.String()
}

// eval2bool evaluates an expression which is used as a condition.
func eval2bool(scope *interfaces.Scope, expr interfaces.Expr) (bool, error) {
	v, err := expr.Eval(scope)
	if err != nil {
		return false, err
	}
	return types.ToBool(v)
}

// dependsOn returns true if the expression might refer to the named variable.
// Function bodies are evaluated in an extension of the caller's scope, so any
// call which might run a user function is assumed to read it too. Only the
// built-ins with a derivative rule are known not to.
func dependsOn(expr interfaces.Expr, name string) bool {
	found := false
	_ = expr.Apply(func(node interfaces.Node) error {
		switch x := node.(type) {
		case *ExprIdent:
			if x.Name == name {
				found = true
			}
		case *ExprCall:
			if !pureCall(x) {
				found = true
			}
		}
		return nil
	})
	return found
}

// pureCall returns true if the call is to a built-in which only reads its args.
func pureCall(x *ExprCall) bool {
	if x.Deriv != 0 {
		return false
	}
	if x.Name == "nrt" {
		return true
	}
	_, exists := derivatives[x.Name]
	return exists
}
