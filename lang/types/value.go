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

// Package types provides the value model of the language. Every expression
// evaluates to exactly one Value, which is one of a closed set of variants.
package types

import (
	"fmt"
	"strings"

	"github.com/mathlang/mathlang/util"
)

// Kind represents the variant of a value.
type Kind int

// The different variants a value can be.
const (
	KindNumber Kind = iota
	KindBool
	KindFunc
	KindSet
	KindDomain
)

// String returns the name of this kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindFunc:
		return "function"
	case KindSet:
		return "set"
	case KindDomain:
		return "symbolic set"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value represents an interface to get values out of each variant. The set of
// implementations is closed, you can't add new ones outside of this package.
type Value interface {
	fmt.Stringer // String() string (for display purposes)
	Kind() Kind
	Copy() Value // returns a copy of this value

	sealed()
}

// base implements the methods that close the Value interface.
type base struct{}

func (obj *base) sealed() {}

// NumberValue represents a floating point number.
type NumberValue struct {
	base
	V float64
}

// NewNumber creates a new number value.
func NewNumber(f float64) *NumberValue { return &NumberValue{V: f} }

// String returns a visual representation of this value.
func (obj *NumberValue) String() string { return util.FormatFloat(obj.V) }

// Kind returns the variant of this value.
func (obj *NumberValue) Kind() Kind { return KindNumber }

// Copy returns a copy of this value.
func (obj *NumberValue) Copy() Value { return &NumberValue{V: obj.V} }

// BoolValue represents a boolean value.
type BoolValue struct {
	base
	V bool
}

// NewBool creates a new boolean value.
func NewBool(b bool) *BoolValue { return &BoolValue{V: b} }

// String returns a visual representation of this value.
func (obj *BoolValue) String() string {
	if obj.V {
		return "true"
	}
	return "false"
}

// Kind returns the variant of this value.
func (obj *BoolValue) Kind() Kind { return KindBool }

// Copy returns a copy of this value.
func (obj *BoolValue) Copy() Value { return &BoolValue{V: obj.V} }

// FuncValue is a function used as a value, for example when a function name is
// passed as an argument to map. It refers to the function by name, and is
// resolved against the registry and the function table when it is applied.
type FuncValue struct {
	base
	V string // name of the function
}

// NewFunc creates a new function value referring to the named function.
func NewFunc(name string) *FuncValue { return &FuncValue{V: name} }

// String returns a visual representation of this value.
func (obj *FuncValue) String() string { return obj.V }

// Kind returns the variant of this value.
func (obj *FuncValue) Kind() Kind { return KindFunc }

// Copy returns a copy of this value.
func (obj *FuncValue) Copy() Value { return &FuncValue{V: obj.V} }

// SetValue is a bounded set. It is an ordered, finite sequence of values where
// duplicates are allowed and the elements may be of any variant.
type SetValue struct {
	base
	V []Value
}

// NewSet creates a new bounded set from the list of values.
func NewSet(values ...Value) *SetValue {
	if values == nil {
		values = []Value{}
	}
	return &SetValue{V: values}
}

// String returns a visual representation of this value.
func (obj *SetValue) String() string {
	var s []string
	for _, x := range obj.V {
		s = append(s, x.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}

// Kind returns the variant of this value.
func (obj *SetValue) Kind() Kind { return KindSet }

// Copy returns a copy of this value. The elements are copied as well.
func (obj *SetValue) Copy() Value {
	values := []Value{}
	for _, x := range obj.V {
		values = append(values, x.Copy())
	}
	return &SetValue{V: values}
}

// Len returns the number of elements in this set.
func (obj *SetValue) Len() int { return len(obj.V) }

// Get returns the element at the position.
func (obj *SetValue) Get(index int) (Value, error) {
	if index < 0 || index >= len(obj.V) {
		return nil, Errorf(ErrIndex, "index %d out of range for set of length %d", index, len(obj.V))
	}
	return obj.V[index], nil
}

// Set returns a new set with the element at the position replaced. The
// original set is not changed.
func (obj *SetValue) Set(index int, v Value) (*SetValue, error) {
	if index < 0 || index >= len(obj.V) {
		return nil, Errorf(ErrIndex, "index %d out of range for set of length %d", index, len(obj.V))
	}
	values := make([]Value, len(obj.V))
	copy(values, obj.V)
	values[index] = v
	return &SetValue{V: values}, nil
}

// DomainValue is a symbolic set. It describes a domain instead of listing the
// elements, so membership and cardinality have to be queried with a Context.
type DomainValue struct {
	base
	V Domain
}

// NewDomain creates a new symbolic set value.
func NewDomain(d Domain) *DomainValue { return &DomainValue{V: d} }

// String returns a visual representation of this value.
func (obj *DomainValue) String() string { return obj.V.String() }

// Kind returns the variant of this value.
func (obj *DomainValue) Kind() Kind { return KindDomain }

// Copy returns a copy of this value. Domains are immutable so they are shared.
func (obj *DomainValue) Copy() Value { return &DomainValue{V: obj.V} }

// Default returns the value that side effect only operations return.
func Default() Value { return NewNumber(0) }
