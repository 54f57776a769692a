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
	"fmt"
	"strings"

	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"
)

// Function is a user defined function. It is created when the definition is
// executed and is never changed afterwards. It carries no captured state, the
// body runs in an extension of whatever scope calls it.
type Function struct {
	Name   string
	Params []string
	Body   Expr

	// Domain constrains every argument. It is the real numbers by default.
	Domain types.Domain
}

// NewFunction builds a new function and validates it. A nil domain means the
// default, unrestricted domain.
func NewFunction(name string, params []string, body Expr, domain types.Domain) (*Function, error) {
	if domain == nil {
		domain = types.Real()
	}
	fn := &Function{
		Name:   name,
		Params: params,
		Body:   body,
		Domain: domain,
	}
	if err := fn.Validate(); err != nil {
		return nil, err
	}
	return fn, nil
}

// Validate checks that the function is well formed.
func (obj *Function) Validate() error {
	if obj.Name == "" {
		return fmt.Errorf("empty function name")
	}
	if obj.Body == nil {
		return fmt.Errorf("function `%s` has no body", obj.Name)
	}
	if obj.Domain == nil {
		return fmt.Errorf("function `%s` has no domain", obj.Name)
	}
	if dupe, exists := util.StrFirstDuplicate(obj.Params); exists {
		return errwrap.Wrapf(ErrBadParams, "function `%s` has duplicate param `%s`", obj.Name, dupe)
	}
	return nil
}

// String returns the definition of this function.
func (obj *Function) String() string {
	s := fmt.Sprintf("%s(%s)", obj.Name, strings.Join(obj.Params, ", "))
	if !types.IsDefault(obj.Domain) {
		s += fmt.Sprintf(" : %s", obj.Domain)
	}
	return fmt.Sprintf("%s = %s", s, obj.Body)
}

// Check validates a list of arguments against this function. The number of
// arguments must match the params, and each argument must be a member of the
// domain if a narrower domain than the default was declared.
func (obj *Function) Check(scope *Scope, args []types.Value) error {
	if len(args) != len(obj.Params) {
		return types.Errorf(types.ErrArity, "function `%s` takes %d args, got %d", obj.Name, len(obj.Params), len(args))
	}
	if types.IsDefault(obj.Domain) {
		return nil
	}
	for _, arg := range args {
		ok, err := obj.Domain.Contains(scope, arg)
		if err != nil {
			return errwrap.Wrapf(err, "domain check of `%s` failed", obj.Name)
		}
		if !ok {
			return types.Errorf(types.ErrDomain, "%s is not in the domain %s of `%s`", arg, obj.Domain, obj.Name)
		}
	}
	return nil
}

// Run checks the arguments and then evaluates the body with the params bound
// to them in an extension of the calling scope.
func (obj *Function) Run(scope *Scope, args []types.Value) (types.Value, error) {
	if err := obj.Check(scope, args); err != nil {
		return nil, err
	}
	return obj.Eval(scope, args)
}

// Eval evaluates the body with the params bound to the arguments without any
// arity or domain checks. The call depth limit still applies.
func (obj *Function) Eval(scope *Scope, args []types.Value) (types.Value, error) {
	variables := make(map[string]types.Value)
	for i, param := range obj.Params {
		if i < len(args) {
			variables[param] = args[i]
		}
	}
	inner, err := scope.Nested(obj.Name, variables)
	if err != nil {
		return nil, err
	}
	return obj.Body.Eval(inner)
}

// BuiltinFunc is the signature of a native operation. It receives the already
// evaluated arguments and the full scope so that it can call back into other
// functions.
type BuiltinFunc func(scope *Scope, args []types.Value) (types.Value, error)

// Builtin is a native operation which is available by name.
type Builtin struct {
	// Name is what the built-in is called with.
	Name string

	// Sig is a short usage signature such as `nrt(x, n)`.
	Sig string

	// Doc is a one line description.
	Doc string

	// Arity is the number of args. If Variadic is true, then it is the
	// minimum number of args instead.
	Arity    int
	Variadic bool

	// Sink is true if the built-in is only run for its side effect, so
	// that its result shouldn't be displayed.
	Sink bool

	Fn BuiltinFunc
}

// Validate checks that the built-in is well formed.
func (obj *Builtin) Validate() error {
	if obj.Name == "" {
		return fmt.Errorf("empty built-in name")
	}
	if obj.Fn == nil {
		return fmt.Errorf("built-in `%s` has no implementation", obj.Name)
	}
	if obj.Arity < 0 {
		return fmt.Errorf("built-in `%s` has a negative arity", obj.Name)
	}
	return nil
}

// Unary returns true if the built-in takes exactly one arg.
func (obj *Builtin) Unary() bool {
	return obj.Arity == 1 && !obj.Variadic
}

// Call checks the number of arguments and runs the built-in.
func (obj *Builtin) Call(scope *Scope, args []types.Value) (types.Value, error) {
	if obj.Variadic && len(args) < obj.Arity {
		return nil, types.Errorf(types.ErrArity, "built-in `%s` takes at least %d args, got %d", obj.Name, obj.Arity, len(args))
	}
	if !obj.Variadic && len(args) != obj.Arity {
		return nil, types.Errorf(types.ErrArity, "built-in `%s` takes %d args, got %d", obj.Name, obj.Arity, len(args))
	}
	return obj.Fn(scope, args)
}

// Registry is the table of built-ins, keyed by name. It is built once when the
// program starts and is only read from afterwards.
type Registry struct {
	builtins map[string]*Builtin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builtins: make(map[string]*Builtin),
	}
}

// Register adds a built-in to the registry. It errors if it is invalid or if
// the name is already taken.
func (obj *Registry) Register(b *Builtin) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, exists := obj.builtins[b.Name]; exists {
		return fmt.Errorf("a built-in named `%s` is already registered", b.Name)
	}
	obj.builtins[b.Name] = b
	return nil
}

// Lookup returns the built-in of that name. It is safe to use on a nil
// registry.
func (obj *Registry) Lookup(name string) (*Builtin, bool) {
	if obj == nil {
		return nil, false
	}
	b, exists := obj.builtins[name]
	return b, exists
}

// Names returns the sorted list of registered names.
func (obj *Registry) Names() []string {
	if obj == nil {
		return []string{}
	}
	return util.SortedKeys(obj.builtins)
}
