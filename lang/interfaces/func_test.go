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


package interfaces

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mathlang/mathlang/lang/types"
)

// testVar is an expression that looks up a variable.
type testVar struct {
	name string
}

func (obj *testVar) String() string                  { return obj.name }
func (obj *testVar) Apply(fn func(Node) error) error { return fn(obj) }
func (obj *testVar) Eval(scope *Scope) (types.Value, error) {
	return scope.Lookup(obj.name)
}

// testCall is an expression that calls a function with some variables.
type testCall struct {
	name string
	args []string
}

func (obj *testCall) String() string                  { return fmt.Sprintf("%s(%v)", obj.name, obj.args) }
func (obj *testCall) Apply(fn func(Node) error) error { return fn(obj) }
func (obj *testCall) Eval(scope *Scope) (types.Value, error) {
	args := []types.Value{}
	for _, x := range obj.args {
		v, err := scope.Lookup(x)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return scope.Call(obj.name, args)
}

// testPositive is an expression that checks if a variable is positive.
type testPositive struct {
	name string
}

func (obj *testPositive) String() string                  { return obj.name + " > 0" }
func (obj *testPositive) Apply(fn func(Node) error) error { return fn(obj) }
func (obj *testPositive) Eval(scope *Scope) (types.Value, error) {
	v, err := scope.Lookup(obj.name)
	if err != nil {
		return nil, err
	}
	f, err := types.ToNumber(v)
	if err != nil {
		return nil, err
	}
	return types.NewBool(f > 0), nil
}

func testScope(t *testing.T) *Scope {
	scope := EmptyScope()
	double := &Builtin{
		Name:  "double",
		Arity: 1,
		Fn: func(scope *Scope, args []types.Value) (types.Value, error) {
			f, err := types.ToNumber(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewNumber(f * 2), nil
		},
	}
	if err := scope.Registry.Register(double); err != nil {
		t.Fatalf("could not register: %+v", err)
	}
	return scope
}

func TestFunctionRun1(t *testing.T) {
	scope := testScope(t)
	scope.Variables["y"] = types.NewNumber(42)

	// second(x, y) = y
	fn, err := NewFunction("second", []string{"x", "y"}, &testVar{"y"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	result, err := fn.Run(scope, []types.Value{types.NewNumber(1), types.NewNumber(2)})
	if err != nil {
		t.Fatalf("run failed: %+v", err)
	}
	if s := result.String(); s != "2" {
		t.Errorf("unexpected result: %s", s)
	}

	// the caller's scope must not change
	if s := scope.Variables["y"].String(); s != "42" {
		t.Errorf("caller scope was mutated: %s", s)
	}
	if _, exists := scope.Variables["x"]; exists {
		t.Errorf("caller scope gained a param")
	}
}

func TestFunctionArity1(t *testing.T) {
	scope := testScope(t)
	fn, err := NewFunction("id", []string{"x"}, &testVar{"x"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	_, err = fn.Run(scope, []types.Value{types.NewNumber(1), types.NewNumber(2)})
	if !errors.Is(err, types.ErrArity) {
		t.Errorf("expected an arity error, got: %+v", err)
	}
}

func TestFunctionDomain1(t *testing.T) {
	scope := testScope(t)
	integer := &types.BaseDomain{Set: types.BaseInteger}
	fn, err := NewFunction("id", []string{"x"}, &testVar{"x"}, integer)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if _, err := fn.Run(scope, []types.Value{types.NewNumber(3)}); err != nil {
		t.Errorf("unexpected error: %+v", err)
	}
	_, err = fn.Run(scope, []types.Value{types.NewNumber(2.5)})
	if !errors.Is(err, types.ErrDomain) {
		t.Errorf("expected a domain error, got: %+v", err)
	}

	// the default domain doesn't check anything, not even the variant
	loose, err := NewFunction("loose", []string{"x"}, &testVar{"x"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if _, err := loose.Run(scope, []types.Value{types.NewSet()}); err != nil {
		t.Errorf("unexpected error: %+v", err)
	}

	// predicate domains are evaluated in the calling scope
	positive := &types.PredicateDomain{Of: types.Real(), Param: "v", Pred: &testPositive{"v"}}
	pos, err := NewFunction("pos", []string{"x"}, &testVar{"x"}, positive)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if _, err := pos.Run(scope, []types.Value{types.NewNumber(-1)}); !errors.Is(err, types.ErrDomain) {
		t.Errorf("expected a domain error, got: %+v", err)
	}
}

func TestFunctionRecursion1(t *testing.T) {
	scope := testScope(t)
	scope.Runtime.MaxDepth = 50
	forever, err := NewFunction("forever", []string{"x"}, &testCall{"forever", []string{"x"}}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	scope, err = scope.Define(forever)
	if err != nil {
		t.Fatalf("could not define: %+v", err)
	}
	_, err = scope.Call("forever", []types.Value{types.NewNumber(1)})
	if !errors.Is(err, types.ErrRecursion) {
		t.Errorf("expected a recursion error, got: %+v", err)
	}
}

func TestFunctionValidate1(t *testing.T) {
	if _, err := NewFunction("f", []string{"x", "x"}, &testVar{"x"}, nil); !errors.Is(err, ErrBadParams) {
		t.Errorf("expected a params error, got: %+v", err)
	}
	if _, err := NewFunction("", []string{"x"}, &testVar{"x"}, nil); err == nil {
		t.Errorf("expected an error for an empty name")
	}
	fn, err := NewFunction("f", []string{"x"}, &testVar{"x"}, &types.BaseDomain{Set: types.BaseNatural})
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if s := fn.String(); s != "f(x) : Natural = x" {
		t.Errorf("unexpected string: %s", s)
	}
}

func TestScopeDefine1(t *testing.T) {
	scope := testScope(t)
	id, err := NewFunction("id", []string{"x"}, &testVar{"x"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	next, err := scope.Define(id)
	if err != nil {
		t.Fatalf("could not define: %+v", err)
	}
	if _, exists := scope.Functions["id"]; exists {
		t.Errorf("define mutated the original scope")
	}
	if _, err := next.Define(id); !errors.Is(err, ErrRedefined) {
		t.Errorf("expected a redefinition error, got: %+v", err)
	} else if s := err.Error(); s != "`id` is already defined: function redefined" {
		t.Errorf("unexpected message: %s", s)
	}

	double, err := NewFunction("double", []string{"x"}, &testVar{"x"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if _, err := next.Define(double); !errors.Is(err, ErrRedefined) {
		t.Errorf("expected a redefinition error, got: %+v", err)
	} else if s := err.Error(); s != "`double` is a built-in: function redefined" {
		t.Errorf("unexpected message: %s", s)
	}
}

func TestScopeCall1(t *testing.T) {
	scope := testScope(t)
	id, err := NewFunction("id", []string{"x"}, &testVar{"x"}, nil)
	if err != nil {
		t.Fatalf("could not build function: %+v", err)
	}
	if scope, err = scope.Define(id); err != nil {
		t.Fatalf("could not define: %+v", err)
	}
	scope = scope.Extend(map[string]types.Value{
		"alias": types.NewFunc("double"),
		"seven": types.NewNumber(7),
	})
	args := []types.Value{types.NewNumber(4)}

	type test struct { // an individual test
		name string
		exp  string
		err  error
	}
	values := []test{}

	values = append(values, test{
		name: "double",
		exp:  "8",
	})
	values = append(values, test{
		name: "id",
		exp:  "4",
	})
	values = append(values, test{
		name: "alias",
		exp:  "8",
	})
	values = append(values, test{
		name: "seven",
		err:  types.ErrType,
	})
	values = append(values, test{
		name: "nope",
		err:  types.ErrUndefined,
	})

	for index, tc := range values {
		result, err := scope.Call(tc.name, args)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("test #%d (%s): expected error %v, got: %+v", index, tc.name, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test #%d (%s): error: %+v", index, tc.name, err)
			continue
		}
		if s := result.String(); s != tc.exp {
			t.Errorf("test #%d (%s): got %s, expected %s", index, tc.name, s, tc.exp)
		}
	}
}

func TestScopeLookup1(t *testing.T) {
	scope := testScope(t)
	scope.Variables["x"] = types.NewNumber(3)

	if v, err := scope.Lookup("x"); err != nil || v.String() != "3" {
		t.Errorf("unexpected lookup: %v (%+v)", v, err)
	}
	v, err := scope.Lookup("double")
	if err != nil {
		t.Fatalf("lookup failed: %+v", err)
	}
	if v.Kind() != types.KindFunc {
		t.Errorf("expected a function value, got: %s", v.Kind())
	}
	if _, err := scope.Lookup("nope"); !errors.Is(err, types.ErrUndefined) {
		t.Errorf("expected an undefined error, got: %+v", err)
	}
}

func TestScopeSatisfies1(t *testing.T) {
	scope := testScope(t)
	ok, err := scope.Satisfies("v", &testPositive{"v"}, types.NewNumber(5))
	if err != nil || !ok {
		t.Errorf("expected 5 to satisfy the predicate: %+v", err)
	}
	if _, exists := scope.Variables["v"]; exists {
		t.Errorf("satisfies mutated the scope")
	}
	if _, err := scope.Satisfies("v", &testPositive{"v"}, types.NewSet()); !errors.Is(err, types.ErrType) {
		t.Errorf("expected a type error, got: %+v", err)
	}
}

func TestBuiltinArity1(t *testing.T) {
	scope := testScope(t)
	if _, err := scope.Call("double", []types.Value{}); !errors.Is(err, types.ErrArity) {
		t.Errorf("expected an arity error, got: %+v", err)
	}
	if err := scope.Registry.Register(&Builtin{Name: "double", Arity: 1, Fn: func(*Scope, []types.Value) (types.Value, error) { return nil, nil }}); err == nil {
		t.Errorf("expected a duplicate registration error")
	}
	if names := scope.Registry.Names(); len(names) != 1 || names[0] != "double" {
		t.Errorf("unexpected names: %v", names)
	}
}
