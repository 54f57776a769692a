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


// Package operators provides a helper library to load all of the built-in
// binary operators, which are actually just functions of two values.
package operators

import (
	"fmt"
	"math"

	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
)

func init() {
	RegisterOperator("+", &Operator{
		Doc: "addition",
		F: numeric(func(a, b float64) (float64, error) {
			return a + b, nil
		}),
	})

	RegisterOperator("-", &Operator{
		Doc: "subtraction",
		F: numeric(func(a, b float64) (float64, error) {
			return a - b, nil
		}),
	})

	RegisterOperator("*", &Operator{
		Doc: "multiplication",
		F: numeric(func(a, b float64) (float64, error) {
			return a * b, nil
		}),
	})

	RegisterOperator("/", &Operator{
		Doc: "division",
		F: numeric(func(a, b float64) (float64, error) {
			if b == 0.0 {
				return 0, types.Errorf(types.ErrArithmetic, "can't divide %s by zero", util.FormatFloat(a))
			}
			return a / b, nil
		}),
	})

	RegisterOperator("%", &Operator{
		Doc: "floating point remainder",
		F: numeric(func(a, b float64) (float64, error) {
			if b == 0.0 {
				return 0, types.Errorf(types.ErrArithmetic, "can't take %s modulo zero", util.FormatFloat(a))
			}
			return math.Mod(a, b), nil
		}),
	})

	RegisterOperator("^", &Operator{
		Doc: "exponentiation",
		F: numeric(func(a, b float64) (float64, error) {
			return math.Pow(a, b), nil
		}),
	})

	RegisterOperator("==", &Operator{
		Doc: "equality",
		F: func(a, b types.Value) (types.Value, error) {
			eq, err := types.Equal(a, b)
			if err != nil {
				return nil, err
			}
			return types.NewBool(eq), nil
		},
	})

	RegisterOperator("!=", &Operator{
		Doc: "inequality",
		F: func(a, b types.Value) (types.Value, error) {
			eq, err := types.Equal(a, b)
			if err != nil {
				return nil, err
			}
			return types.NewBool(!eq), nil
		},
	})

	RegisterOperator("<", &Operator{
		Doc: "less than",
		F: compare(func(a, b float64) bool {
			return a < b
		}),
	})

	RegisterOperator(">", &Operator{
		Doc: "greater than",
		F: compare(func(a, b float64) bool {
			return a > b
		}),
	})

	RegisterOperator("<=", &Operator{
		Doc: "less than or equal to",
		F: compare(func(a, b float64) bool {
			return a <= b
		}),
	})

	RegisterOperator(">=", &Operator{
		Doc: "greater than or equal to",
		F: compare(func(a, b float64) bool {
			return a >= b
		}),
	})
}

// Operator is the implementation of a binary operator. Both operands have
// already been evaluated when it runs.
type Operator struct {
	// Doc is a short description of the operator.
	Doc string

	// F is the implementation.
	F func(a, b types.Value) (types.Value, error)
}

// OperatorFuncs maps an operator to its implementation.
var OperatorFuncs = make(map[string]*Operator) // must initialize

// RegisterOperator registers the given operator. This is normally done from an
// init() function. It panics if something is wrong since that is a programming
// error.
func RegisterOperator(operator string, op *Operator) {
	if _, exists := OperatorFuncs[operator]; exists {
		panic(fmt.Sprintf("operator %s already has an implementation", operator))
	}
	if op == nil {
		panic(fmt.Sprintf("no operator specified for %s", operator))
	}
	if op.F == nil {
		panic(fmt.Sprintf("no implementation specified for operator %s", operator))
	}
	OperatorFuncs[operator] = op // store a copy for ourselves
}

// LookupOperator returns the implementation of the operator.
func LookupOperator(operator string) (*Operator, error) {
	op, exists := OperatorFuncs[operator]
	if !exists {
		return nil, fmt.Errorf("operator `%s` not found", operator)
	}
	return op, nil
}

// Operators returns the sorted list of registered operators.
func Operators() []string {
	return util.SortedKeys(OperatorFuncs)
}

// numeric wraps an arithmetic function so that both operands are coerced to
// numbers first.
func numeric(fn func(a, b float64) (float64, error)) func(a, b types.Value) (types.Value, error) {
	return func(a, b types.Value) (types.Value, error) {
		x, err := types.ToNumber(a)
		if err != nil {
			return nil, err
		}
		y, err := types.ToNumber(b)
		if err != nil {
			return nil, err
		}
		result, err := fn(x, y)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(result), nil
	}
}

// compare wraps an ordering function so that both operands are coerced to
// numbers first, and the result is a boolean.
func compare(fn func(a, b float64) bool) func(a, b types.Value) (types.Value, error) {
	return func(a, b types.Value) (types.Value, error) {
		x, err := types.ToNumber(a)
		if err != nil {
			return nil, err
		}
		y, err := types.ToNumber(b)
		if err != nil {
			return nil, err
		}
		return types.NewBool(fn(x, y)), nil
	}
}
