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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util/errwrap"
)

const (
	// DefaultMaxDepth is the call depth limit used when none is specified.
	DefaultMaxDepth = 1000

	// DefaultPrompt is what gets written before read waits for a number.
	DefaultPrompt = "Enter number: "
)

// Runtime contains the handles that are shared by an entire evaluation. It is
// the only part of the scope that is shared when the scope is extended.
type Runtime struct {
	// Stdout is where print and graph write their output.
	Stdout io.Writer

	// Stdin is where read gets its input from.
	Stdin *bufio.Reader

	// Prompt is written to Stdout before each read.
	Prompt string

	// Plotter renders the output of graph.
	Plotter Plotter

	// Graph contains the sampling and size parameters for graph.
	Graph *GraphOptions

	// MaxDepth is the limit on nested function calls. If it is negative,
	// then there is no limit.
	MaxDepth int

	// Debug represents if we're running in debug mode or not.
	Debug bool

	// Logf is a logger which should be used.
	Logf func(format string, v ...interface{})
}

// DefaultRuntime returns a runtime that uses the standard streams of the
// process and no plotter.
func DefaultRuntime() *Runtime {
	return &Runtime{
		Stdout:   os.Stdout,
		Stdin:    bufio.NewReader(os.Stdin),
		Prompt:   DefaultPrompt,
		Graph:    DefaultGraphOptions(),
		MaxDepth: DefaultMaxDepth,
		Logf:     func(format string, v ...interface{}) {}, // noop
	}
}

// Scope represents the execution context. It contains the variables and user
// functions which are visible, the registry of built-ins, and the runtime. A
// scope is never changed once it is in use, anything that needs different
// bindings builds a new scope with Extend or Define.
type Scope struct {
	Variables map[string]types.Value
	Functions map[string]*Function
	Registry  *Registry
	Runtime   *Runtime

	// Depth is the number of function calls we're currently nested in.
	Depth int
}

// EmptyScope returns the zero, empty value for the scope, with all the internal
// lists initialized appropriately.
func EmptyScope() *Scope {
	return &Scope{
		Variables: make(map[string]types.Value),
		Functions: make(map[string]*Function),
		Registry:  NewRegistry(),
		Runtime:   DefaultRuntime(),
	}
}

// InitScope initializes any uninitialized part of the struct. It is safe to use
// on scopes with existing data.
func (obj *Scope) InitScope() {
	if obj.Variables == nil {
		obj.Variables = make(map[string]types.Value)
	}
	if obj.Functions == nil {
		obj.Functions = make(map[string]*Function)
	}
	if obj.Registry == nil {
		obj.Registry = NewRegistry()
	}
	if obj.Runtime == nil {
		obj.Runtime = DefaultRuntime()
	}
}

// Copy makes a copy of the Scope struct. This ensures that if the internal map
// is changed, it doesn't affect other copies of the Scope. It does *not* copy
// the values or the functions contained within, since these are immutable. The
// registry and runtime are shared.
func (obj *Scope) Copy() *Scope {
	variables := make(map[string]types.Value)
	functions := make(map[string]*Function)
	if obj == nil { // allow copying nil scopes
		scope := &Scope{}
		scope.InitScope()
		return scope
	}
	for k, v := range obj.Variables { // copy
		variables[k] = v
	}
	for k, v := range obj.Functions { // copy
		functions[k] = v
	}
	return &Scope{
		Variables: variables,
		Functions: functions,
		Registry:  obj.Registry,
		Runtime:   obj.Runtime,
		Depth:     obj.Depth,
	}
}

// Extend returns a new scope with the additional variables bound. A variable
// that already exists is shadowed in the new scope. The receiver is unchanged.
func (obj *Scope) Extend(variables map[string]types.Value) *Scope {
	scope := obj.Copy()
	for k, v := range variables {
		scope.Variables[k] = v
	}
	return scope
}

// Define returns a new scope with the additional user function. It errors if
// a function or a built-in of the same name already exists.
func (obj *Scope) Define(fn *Function) (*Scope, error) {
	if _, exists := obj.Functions[fn.Name]; exists {
		return nil, errwrap.Wrapf(ErrRedefined, "`%s` is already defined", fn.Name)
	}
	if _, exists := obj.Registry.Lookup(fn.Name); exists {
		return nil, errwrap.Wrapf(ErrRedefined, "`%s` is a built-in", fn.Name)
	}
	scope := obj.Copy()
	scope.Functions[fn.Name] = fn
	return scope, nil
}

// Lookup resolves an identifier. Variables are searched first, and then any
// function or built-in of that name is returned as a function value.
func (obj *Scope) Lookup(name string) (types.Value, error) {
	if v, exists := obj.Variables[name]; exists {
		return v, nil
	}
	if _, exists := obj.Functions[name]; exists {
		return types.NewFunc(name), nil
	}
	if _, exists := obj.Registry.Lookup(name); exists {
		return types.NewFunc(name), nil
	}
	return nil, types.Errorf(types.ErrUndefined, "`%s` is not defined", name)
}

// Call runs the named function with the already evaluated arguments. The
// registry is searched first, then the user functions, and finally a variable
// which holds a function value is followed to the function it names.
func (obj *Scope) Call(name string, args []types.Value) (types.Value, error) {
	if b, exists := obj.Registry.Lookup(name); exists {
		return b.Call(obj, args)
	}
	if fn, exists := obj.Functions[name]; exists {
		return fn.Run(obj, args)
	}
	if v, exists := obj.Variables[name]; exists {
		target, err := types.ToFuncName(v)
		if err != nil {
			return nil, err
		}
		if target != name {
			return obj.Call(target, args)
		}
	}
	return nil, types.Errorf(types.ErrUndefined, "function `%s` is not defined", name)
}

// CallValue runs the function that a function value refers to.
func (obj *Scope) CallValue(fn types.Value, args []types.Value) (types.Value, error) {
	name, err := types.ToFuncName(fn)
	if err != nil {
		return nil, err
	}
	return obj.Call(name, args)
}

// Satisfies evaluates a predicate with the param bound to the value. This lets
// a scope act as the context that symbolic sets are queried against.
func (obj *Scope) Satisfies(param string, pred types.Expr, v types.Value) (bool, error) {
	expr, ok := pred.(Expr)
	if !ok {
		return false, fmt.Errorf("predicate `%s` is not an expression", pred)
	}
	result, err := expr.Eval(obj.Extend(map[string]types.Value{param: v}))
	if err != nil {
		return false, err
	}
	return types.ToBool(result)
}

// Logf logs through the runtime, if there is one.
func (obj *Scope) Logf(format string, v ...interface{}) {
	if obj.Runtime == nil || obj.Runtime.Logf == nil {
		return
	}
	obj.Runtime.Logf(format, v...)
}

// Nested returns a new scope for running the body of the named function, with
// the variables bound and the call depth incremented. It errors if the call
// depth limit would be exceeded.
func (obj *Scope) Nested(name string, variables map[string]types.Value) (*Scope, error) {
	limit := DefaultMaxDepth
	if obj.Runtime != nil {
		limit = obj.Runtime.MaxDepth
	}
	if limit >= 0 && obj.Depth >= limit {
		return nil, types.Errorf(types.ErrRecursion, "call depth limit of %d exceeded in `%s`", limit, name)
	}
	scope := obj.Extend(variables)
	scope.Depth++
	return scope, nil
}
