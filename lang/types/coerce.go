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

package types

import (
	"math"
)

// ToNumber coerces a value for use in a numeric context. Booleans become zero
// or one, and every other non-number variant is a TypeError.
func ToNumber(v Value) (float64, error) {
	switch x := v.(type) {
	case *NumberValue:
		return x.V, nil
	case *BoolValue:
		if x.V {
			return 1.0, nil
		}
		return 0.0, nil
	}
	return 0, Errorf(ErrType, "not numeric: %s", describe(v))
}

// ToBool coerces a value for use as a condition. Numbers are true when they are
// not zero.
func ToBool(v Value) (bool, error) {
	switch x := v.(type) {
	case *BoolValue:
		return x.V, nil
	case *NumberValue:
		return x.V != 0, nil
	}
	return false, Errorf(ErrType, "not a boolean: %s", describe(v))
}

// ToSet coerces a value for use in a set context. A symbolic set is only
// accepted if it is finite and can be enumerated with this context. Any scalar
// becomes a set with a single element.
func ToSet(v Value, ctx Context) (*SetValue, error) {
	switch x := v.(type) {
	case *SetValue:
		return x, nil
	case *DomainValue:
		values, finite, err := x.V.Enumerate(ctx)
		if err != nil {
			return nil, err
		}
		if !finite {
			return nil, Errorf(ErrType, "symbolic set %s is not finite", x.V)
		}
		return NewSet(values...), nil
	case *NumberValue, *BoolValue, *FuncValue:
		return NewSet(v), nil
	}
	return nil, Errorf(ErrType, "not a set: %s", describe(v))
}

// ToDomain coerces a value for use where a symbolic set is expected, such as
// the right hand side of the belongs operator. A bounded set becomes the domain
// that enumerates its elements, and any scalar the domain of just itself.
func ToDomain(v Value) (Domain, error) {
	switch x := v.(type) {
	case *DomainValue:
		return x.V, nil
	case *SetValue:
		return &EnumDomain{V: x.V}, nil
	case *NumberValue, *BoolValue, *FuncValue:
		return &EnumDomain{V: []Value{v}}, nil
	}
	return nil, Errorf(ErrType, "not a set: %s", describe(v))
}

// ToFuncName coerces a function value to the name it is known by, so that it
// can be looked up in the registry or in the function table.
func ToFuncName(v Value) (string, error) {
	if x, ok := v.(*FuncValue); ok {
		return x.V, nil
	}
	return "", Errorf(ErrType, "not a function: %s", describe(v))
}

// ToIndex coerces a value for use as a position in a bounded set. It must be a
// whole number.
func ToIndex(v Value) (int, error) {
	f, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, Errorf(ErrIndex, "index %s is not a whole number", v)
	}
	return int(f), nil
}

// Equal compares two values. Numbers and booleans compare numerically, bounded
// sets compare element by element in order, and functions compare by name. Any
// other combination of variants can't be compared and is a TypeError.
func Equal(a, b Value) (bool, error) {
	switch x := a.(type) {
	case *NumberValue, *BoolValue:
		switch b.(type) {
		case *NumberValue, *BoolValue:
			// these can't fail
			fa, _ := ToNumber(a)
			fb, _ := ToNumber(b)
			return fa == fb, nil
		}

	case *FuncValue:
		if y, ok := b.(*FuncValue); ok {
			return x.V == y.V, nil
		}

	case *SetValue:
		y, ok := b.(*SetValue)
		if !ok {
			break
		}
		if len(x.V) != len(y.V) {
			return false, nil
		}
		for i := range x.V {
			eq, err := Equal(x.V[i], y.V[i]) // recurse
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	}

	return false, Errorf(ErrType, "can't compare %s with %s", describe(a), describe(b))
}

// describe is used in error messages to name the value and its variant.
func describe(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String() + " " + v.String()
}
