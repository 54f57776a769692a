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
	"fmt"
	"math"
)

// Unbounded is the cardinality reported for a symbolic set that is not known
// to be finite.
var Unbounded = math.Inf(1)

// Expr is an opaque handle on an expression of the language. Symbolic sets keep
// their predicates as expressions, and only a Context knows how to run them.
type Expr interface {
	fmt.Stringer
}

// Context is the execution context that a symbolic set is queried against.
// Membership can depend on it because a predicate may refer to variables or
// call functions.
type Context interface {
	// Satisfies evaluates the predicate with the free variable named param
	// bound to v, and returns whether the result is true.
	Satisfies(param string, pred Expr, v Value) (bool, error)
}

// Domain is a declarative description of a set of values. It is queried rather
// than materialized.
type Domain interface {
	fmt.Stringer

	// Contains returns true if the value is a member of this domain.
	Contains(ctx Context, v Value) (bool, error)

	// Enumerate returns the members of this domain in order if it can be
	// shown to be finite. The boolean is false if it can't.
	Enumerate(ctx Context) ([]Value, bool, error)
}

// Len returns the number of elements in the domain, or Unbounded if it is not
// known to be finite.
func Len(d Domain, ctx Context) (float64, error) {
	values, finite, err := d.Enumerate(ctx)
	if err != nil {
		return 0, err
	}
	if !finite {
		return Unbounded, nil
	}
	return float64(len(values)), nil
}

// BaseSet is one of the named domains that everything else is built from.
type BaseSet int

// These are the base sets that are available.
const (
	BaseReal BaseSet = iota
	BaseInteger
	BaseNatural
	BaseBoolean
)

// BaseDomain is a named base set.
type BaseDomain struct {
	Set BaseSet
}

// Real returns the domain of all real numbers. This is the default domain of a
// function.
func Real() *BaseDomain { return &BaseDomain{Set: BaseReal} }

// BaseDomains returns all the named base domains, keyed by their name.
func BaseDomains() map[string]*BaseDomain {
	m := make(map[string]*BaseDomain)
	for _, x := range []BaseSet{BaseReal, BaseInteger, BaseNatural, BaseBoolean} {
		d := &BaseDomain{Set: x}
		m[d.String()] = d
	}
	return m
}

// IsDefault returns true if the domain is the unrestricted real domain.
func IsDefault(d Domain) bool {
	x, ok := d.(*BaseDomain)
	return ok && x.Set == BaseReal
}

// String returns the name of this domain.
func (obj *BaseDomain) String() string {
	switch obj.Set {
	case BaseReal:
		return "Real"
	case BaseInteger:
		return "Integer"
	case BaseNatural:
		return "Natural"
	case BaseBoolean:
		return "Boolean"
	}
	return fmt.Sprintf("BaseSet(%d)", int(obj.Set))
}

// Contains returns true if the value is a member of this domain. Values which
// aren't numeric are never members of the numeric domains.
func (obj *BaseDomain) Contains(ctx Context, v Value) (bool, error) {
	if obj.Set == BaseBoolean {
		_, ok := v.(*BoolValue)
		return ok, nil
	}

	f, err := ToNumber(v)
	if err != nil {
		return false, nil // not a number, so not a member
	}
	if math.IsNaN(f) {
		return false, nil
	}
	switch obj.Set {
	case BaseReal:
		return true, nil
	case BaseInteger:
		return !math.IsInf(f, 0) && math.Trunc(f) == f, nil
	case BaseNatural:
		return !math.IsInf(f, 0) && math.Trunc(f) == f && f >= 0, nil
	}
	return false, fmt.Errorf("unknown base set: %d", int(obj.Set))
}

// Enumerate returns the members of this domain if it is finite.
func (obj *BaseDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	if obj.Set == BaseBoolean {
		return []Value{NewBool(false), NewBool(true)}, true, nil
	}
	return nil, false, nil
}

// EnumDomain is a finite domain made of a literal list of values.
type EnumDomain struct {
	V []Value
}

// String returns a visual representation of this domain.
func (obj *EnumDomain) String() string {
	return NewSet(obj.V...).String()
}

// Contains returns true if an element is equal to the value. Elements which
// can't be compared with the value are skipped.
func (obj *EnumDomain) Contains(ctx Context, v Value) (bool, error) {
	return containsValue(obj.V, v), nil
}

// Enumerate returns the elements of this domain.
func (obj *EnumDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	values := make([]Value, len(obj.V))
	copy(values, obj.V)
	return values, true, nil
}

// UnionDomain contains every value that is in either of the two domains.
type UnionDomain struct {
	A Domain
	B Domain
}

// String returns a visual representation of this domain.
func (obj *UnionDomain) String() string {
	return fmt.Sprintf("union(%s, %s)", obj.A, obj.B)
}

// Contains returns true if either domain contains the value.
func (obj *UnionDomain) Contains(ctx Context, v Value) (bool, error) {
	if ok, err := obj.A.Contains(ctx, v); err != nil || ok {
		return ok, err
	}
	return obj.B.Contains(ctx, v)
}

// Enumerate returns the elements of the first domain followed by those of the
// second one which weren't already seen. It is finite if both sides are.
func (obj *UnionDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	a, finite, err := obj.A.Enumerate(ctx)
	if err != nil || !finite {
		return nil, false, err
	}
	b, finite, err := obj.B.Enumerate(ctx)
	if err != nil || !finite {
		return nil, false, err
	}
	values := a
	for _, x := range b {
		if containsValue(values, x) {
			continue
		}
		values = append(values, x)
	}
	return values, true, nil
}

// IntersectionDomain contains the values that are in both of the domains.
type IntersectionDomain struct {
	A Domain
	B Domain
}

// String returns a visual representation of this domain.
func (obj *IntersectionDomain) String() string {
	return fmt.Sprintf("intersection(%s, %s)", obj.A, obj.B)
}

// Contains returns true if both domains contain the value.
func (obj *IntersectionDomain) Contains(ctx Context, v Value) (bool, error) {
	if ok, err := obj.A.Contains(ctx, v); err != nil || !ok {
		return false, err
	}
	return obj.B.Contains(ctx, v)
}

// Enumerate filters whichever side is finite through the other side. It is
// finite if either side is.
func (obj *IntersectionDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	a, finite, err := obj.A.Enumerate(ctx)
	if err != nil {
		return nil, false, err
	}
	if finite {
		return filter(ctx, a, obj.B, true)
	}
	b, finite, err := obj.B.Enumerate(ctx)
	if err != nil || !finite {
		return nil, false, err
	}
	return filter(ctx, b, obj.A, true)
}

// DifferenceDomain contains the values of the first domain which are not in the
// second one.
type DifferenceDomain struct {
	A Domain
	B Domain
}

// String returns a visual representation of this domain.
func (obj *DifferenceDomain) String() string {
	return fmt.Sprintf("difference(%s, %s)", obj.A, obj.B)
}

// Contains returns true if the first domain has the value and the second does
// not.
func (obj *DifferenceDomain) Contains(ctx Context, v Value) (bool, error) {
	if ok, err := obj.A.Contains(ctx, v); err != nil || !ok {
		return false, err
	}
	ok, err := obj.B.Contains(ctx, v)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Enumerate removes the members of the second domain from the first one. It is
// finite if the first domain is.
func (obj *DifferenceDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	a, finite, err := obj.A.Enumerate(ctx)
	if err != nil || !finite {
		return nil, false, err
	}
	return filter(ctx, a, obj.B, false)
}

// PredicateDomain restricts a domain to the values which satisfy a predicate.
// The predicate is an expression over the free variable named Param.
type PredicateDomain struct {
	Of    Domain
	Param string
	Pred  Expr
}

// String returns a visual representation of this domain.
func (obj *PredicateDomain) String() string {
	return fmt.Sprintf("{%s E %s | %s}", obj.Param, obj.Of, obj.Pred)
}

// Contains returns true if the value is in the underlying domain and satisfies
// the predicate. The predicate is not evaluated for non-members.
func (obj *PredicateDomain) Contains(ctx Context, v Value) (bool, error) {
	if ok, err := obj.Of.Contains(ctx, v); err != nil || !ok {
		return false, err
	}
	if ctx == nil {
		return false, fmt.Errorf("a context is needed to test %s", obj)
	}
	return ctx.Satisfies(obj.Param, obj.Pred, v)
}

// Enumerate filters the underlying domain with the predicate. It is finite only
// if the underlying domain is. There is no attempt to prove that a predicate
// makes an infinite domain finite.
func (obj *PredicateDomain) Enumerate(ctx Context) ([]Value, bool, error) {
	values, finite, err := obj.Of.Enumerate(ctx)
	if err != nil || !finite {
		return nil, false, err
	}
	if ctx == nil {
		return nil, false, fmt.Errorf("a context is needed to enumerate %s", obj)
	}
	result := []Value{}
	for _, x := range values {
		ok, err := ctx.Satisfies(obj.Param, obj.Pred, x)
		if err != nil {
			return nil, false, err
		}
		if ok {
			result = append(result, x)
		}
	}
	return result, true, nil
}

// filter keeps the values whose membership in d matches keep.
func filter(ctx Context, values []Value, d Domain, keep bool) ([]Value, bool, error) {
	result := []Value{}
	for _, x := range values {
		ok, err := d.Contains(ctx, x)
		if err != nil {
			return nil, false, err
		}
		if ok == keep {
			result = append(result, x)
		}
	}
	return result, true, nil
}

// containsValue returns true if any of the values is equal to v.
func containsValue(values []Value, v Value) bool {
	for _, x := range values {
		if eq, err := Equal(x, v); err == nil && eq {
			return true
		}
	}
	return false
}
