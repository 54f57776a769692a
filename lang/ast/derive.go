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
	"errors"
	"math"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
)

const (
	// DerivativeStep is the step size of the central difference which is
	// used when an expression can't be differentiated symbolically.
	DerivativeStep = 1e-4

	// ErrNotDifferentiable is returned by Derive when an expression has no
	// symbolic derivative rule.
	ErrNotDifferentiable = util.Error("not symbolically differentiable")
)

// derivatives are the rules for the unary built-ins. Each returns the derivative
// of the function evaluated at u, which is then multiplied by the derivative of
// u itself, as per the chain rule.
var derivatives = map[string]func(u interfaces.Expr) interfaces.Expr{
	"sin": func(u interfaces.Expr) interfaces.Expr {
		return call("cos", u)
	},
	"cos": func(u interfaces.Expr) interfaces.Expr {
		return neg(call("sin", u))
	},
	"tan": func(u interfaces.Expr) interfaces.Expr {
		return div(num(1), pow(call("cos", u), num(2)))
	},
	"log": func(u interfaces.Expr) interfaces.Expr {
		return div(num(1), u)
	},
	"sqrt": func(u interfaces.Expr) interfaces.Expr {
		return div(num(1), mul(num(2), call("sqrt", u)))
	},
	"cbrt": func(u interfaces.Expr) interfaces.Expr {
		return div(num(1), mul(num(3), pow(call("cbrt", u), num(2))))
	},
	"exp": func(u interfaces.Expr) interfaces.Expr {
		return call("exp", u)
	},
	"abs": func(u interfaces.Expr) interfaces.Expr {
		return div(u, call("abs", u))
	},
	"round": func(u interfaces.Expr) interfaces.Expr {
		return num(0)
	},
	"floor": func(u interfaces.Expr) interfaces.Expr {
		return num(0)
	},
	"ceil": func(u interfaces.Expr) interfaces.Expr {
		return num(0)
	},
}

// Derive returns the derivative of the expression with respect to the named
// variable. Anything which can't reach the variable is a constant. It returns
// ErrNotDifferentiable if some part of the expression that depends on the
// variable has no rule, such as a conditional or a call to a user function.
func Derive(expr interfaces.Expr, param string) (interfaces.Expr, error) {
	if !dependsOn(expr, param) {
		return num(0), nil
	}

	switch x := expr.(type) {
	case *ExprIdent:
		return num(1), nil // it must be the param

	case *ExprUnary:
		if x.Op != "-" {
			break
		}
		da, err := Derive(x.A, param)
		if err != nil {
			return nil, err
		}
		return neg(da), nil

	case *ExprOperator:
		return deriveOperator(x, param)

	case *ExprCall:
		return deriveCall(x, param)
	}

	return nil, ErrNotDifferentiable
}

// deriveOperator differentiates the arithmetic operators.
func deriveOperator(x *ExprOperator, param string) (interfaces.Expr, error) {
	switch x.Op {
	case "+", "-", "*", "/", "^":
	default:
		return nil, ErrNotDifferentiable
	}
	da, err := Derive(x.A, param)
	if err != nil {
		return nil, err
	}
	db, err := Derive(x.B, param)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case "+":
		return add(da, db), nil

	case "-":
		return sub(da, db), nil

	case "*":
		return add(mul(da, x.B), mul(x.A, db)), nil

	case "/":
		return div(sub(mul(da, x.B), mul(x.A, db)), pow(x.B, num(2))), nil
	}

	// power
	if !dependsOn(x.B, param) { // u^n
		return mul(mul(x.B, pow(x.A, sub(x.B, num(1)))), da), nil
	}
	if !dependsOn(x.A, param) { // a^v
		return mul(mul(x, call("log", x.A)), db), nil
	}
	// u^v
	return mul(x, add(mul(db, call("log", x.A)), div(mul(x.B, da), x.A))), nil
}

// deriveCall differentiates a call to a built-in with the chain rule. Any other
// call might run a user function which reads the variable from its scope, so
// it has no symbolic derivative.
func deriveCall(x *ExprCall, param string) (interfaces.Expr, error) {
	if !pureCall(x) {
		return nil, ErrNotDifferentiable
	}

	if x.Name == "nrt" {
		if len(x.Args) != 2 {
			return nil, ErrNotDifferentiable
		}
		u, n := x.Args[0], x.Args[1]
		if dependsOn(n, param) {
			return nil, ErrNotDifferentiable
		}
		du, err := Derive(u, param)
		if err != nil {
			return nil, err
		}
		// the nth root of u, divided by n times u
		return mul(div(x, mul(n, u)), du), nil
	}

	if len(x.Args) != 1 {
		return nil, ErrNotDifferentiable
	}
	u := x.Args[0]
	du, err := Derive(u, param)
	if err != nil {
		return nil, err
	}
	return mul(derivatives[x.Name](u), du), nil
}

// Differentiate evaluates the derivative of the given order of the named
// function at the single arg. The derivative is exact if the body of the
// function can be derived symbolically, and otherwise it is approximated with
// a central difference. The function must take exactly one param, and the arg
// must be in its domain.
func Differentiate(scope *interfaces.Scope, name string, order int, args []types.Value) (types.Value, error) {
	fn, err := differentiable(scope, name)
	if err != nil {
		return nil, err
	}
	if len(fn.Params) != 1 {
		return nil, types.Errorf(types.ErrArity, "can't differentiate `%s` which takes %d args", fn.Name, len(fn.Params))
	}
	if err := fn.Check(scope, args); err != nil {
		return nil, err
	}
	x, err := types.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	param := fn.Params[0]

	expr := fn.Body
	for i := 0; i < order && err == nil; i++ {
		expr, err = Derive(expr, param)
	}
	if err != nil && !errors.Is(err, ErrNotDifferentiable) {
		return nil, err
	}
	if err == nil {
		// the derivative only exists where the function does
		if _, err := fn.Eval(scope, args); err != nil {
			return nil, err
		}
		inner, err := scope.Nested(fn.Name, map[string]types.Value{param: args[0]})
		if err != nil {
			return nil, err
		}
		v, err := expr.Eval(inner)
		if err != nil {
			return nil, err
		}
		f, err := types.ToNumber(v)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(f), nil
	}

	if scope.Runtime != nil && scope.Runtime.Debug {
		scope.Logf("derivative of `%s` is approximated", fn.Name)
	}
	f, err := centralDifference(scope, fn, x, order)
	if err != nil {
		return nil, err
	}
	return types.NewNumber(f), nil
}

// differentiable resolves the name to a function that can be differentiated. A
// unary built-in is wrapped in a function of one param.
func differentiable(scope *interfaces.Scope, name string) (*interfaces.Function, error) {
	if b, exists := scope.Registry.Lookup(name); exists {
		if !b.Unary() {
			return nil, types.Errorf(types.ErrArity, "can't differentiate built-in `%s` which doesn't take exactly one arg", name)
		}
		param := "x"
		body := &ExprCall{
			Name: name,
			Args: []interfaces.Expr{&ExprIdent{Name: param}},
		}
		return interfaces.NewFunction(name, []string{param}, body, nil)
	}
	if fn, exists := scope.Functions[name]; exists {
		return fn, nil
	}
	if v, exists := scope.Variables[name]; exists {
		target, err := types.ToFuncName(v)
		if err != nil {
			return nil, err
		}
		if target != name {
			return differentiable(scope, target)
		}
	}
	return nil, types.Errorf(types.ErrUndefined, "function `%s` is not defined", name)
}

// centralDifference approximates the derivative of the given order of the
// function at x. Higher orders nest the difference.
func centralDifference(scope *interfaces.Scope, fn *interfaces.Function, x float64, order int) (float64, error) {
	if order == 0 {
		v, err := fn.Eval(scope, []types.Value{types.NewNumber(x)})
		if err != nil {
			return 0, err
		}
		return types.ToNumber(v)
	}
	a, err := centralDifference(scope, fn, x+DerivativeStep, order-1)
	if err != nil {
		return 0, err
	}
	b, err := centralDifference(scope, fn, x-DerivativeStep, order-1)
	if err != nil {
		return 0, err
	}
	return (a - b) / (2 * DerivativeStep), nil
}

// These build expressions while folding away the trivial cases, which keeps
// derived expressions small.

func num(f float64) interfaces.Expr { return &ExprNum{V: f} }

func isNum(expr interfaces.Expr, f float64) bool {
	x, ok := expr.(*ExprNum)
	return ok && x.V == f
}

func bothNum(a, b interfaces.Expr) (float64, float64, bool) {
	x, ok1 := a.(*ExprNum)
	y, ok2 := b.(*ExprNum)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return x.V, y.V, true
}

func call(name string, args ...interfaces.Expr) interfaces.Expr {
	return &ExprCall{Name: name, Args: args}
}

func neg(a interfaces.Expr) interfaces.Expr {
	switch x := a.(type) {
	case *ExprNum:
		return num(-x.V)
	case *ExprUnary:
		if x.Op == "-" {
			return x.A
		}
	}
	return &ExprUnary{Op: "-", A: a}
}

func add(a, b interfaces.Expr) interfaces.Expr {
	if x, y, ok := bothNum(a, b); ok {
		return num(x + y)
	}
	if isNum(a, 0) {
		return b
	}
	if isNum(b, 0) {
		return a
	}
	return &ExprOperator{Op: "+", A: a, B: b}
}

func sub(a, b interfaces.Expr) interfaces.Expr {
	if x, y, ok := bothNum(a, b); ok {
		return num(x - y)
	}
	if isNum(b, 0) {
		return a
	}
	if isNum(a, 0) {
		return neg(b)
	}
	return &ExprOperator{Op: "-", A: a, B: b}
}

func mul(a, b interfaces.Expr) interfaces.Expr {
	if x, y, ok := bothNum(a, b); ok {
		return num(x * y)
	}
	if isNum(a, 0) || isNum(b, 0) {
		return num(0)
	}
	if isNum(a, 1) {
		return b
	}
	if isNum(b, 1) {
		return a
	}
	return &ExprOperator{Op: "*", A: a, B: b}
}

func div(a, b interfaces.Expr) interfaces.Expr {
	if x, y, ok := bothNum(a, b); ok && y != 0 {
		return num(x / y)
	}
	if isNum(b, 1) {
		return a
	}
	return &ExprOperator{Op: "/", A: a, B: b}
}

func pow(a, b interfaces.Expr) interfaces.Expr {
	if x, y, ok := bothNum(a, b); ok {
		return num(math.Pow(x, y))
	}
	if isNum(b, 1) {
		return a
	}
	if isNum(b, 0) {
		return num(1)
	}
	return &ExprOperator{Op: "^", A: a, B: b}
}
