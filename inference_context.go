// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hm

import (
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// InferenceContext is a reusable session for type inference. It owns the type-variable
// allocator and the printer used to name type-variables, so ids and display names keep
// advancing across calls of Infer on the same context.
//
// An inference context cannot be used concurrently. Independent contexts may run concurrently
// only when their type-environments do not share type-variables.
type InferenceContext struct {
	vars       typeutil.VarTracker
	printer    types.Printer
	instLookup map[*types.Var]*types.Var // instantiation lookup for generic type-variables
	err        error
	invalid    ast.Expr
	needsReset bool
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{instLookup: make(map[*types.Var]*types.Var, 16)}
}

func (ti *InferenceContext) reset() {
	ti.clearInstLookup()
	ti.vars.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the error state of the context. The context will be reset automatically before inference.
// Type-variable ids and display names are not reset.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Create an unbound type-variable. Ids are unique among the type-variables of the context's
// allocator. Inference within a type-environment synchronizes the allocators of the context and
// the environment, so ids allocated by either after that point follow every id allocated before.
func (ti *InferenceContext) NewVar() *types.Var { return ti.vars.New() }

// Printer returns the printer which names type-variables for the context.
func (ti *InferenceContext) Printer() *types.Printer { return &ti.printer }

// TypeString returns a string representation of t. Type-variables are named in the order the
// context first prints them.
func (ti *InferenceContext) TypeString(t types.Type) string { return ti.printer.TypeString(t) }

// Infer the type of expr within env. No type-variables are non-generic at the root.
//
// Type-variables in env are bound in place by unification; after a failed inference the
// type-variables reachable from env and from partial results must not be reused.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	return ti.Analyse(expr, env, types.EmptyVarSet)
}

// Infer the type of expr within env, treating type-variables which occur within nongen as
// non-generic.
func (ti *InferenceContext) Analyse(expr ast.Expr, env *TypeEnv, nongen types.VarSet) (types.Type, error) {
	if expr == nil {
		return nil, errEmptyExpr
	}
	if env == nil {
		env = NewTypeEnv(nil)
	}
	if ti.needsReset {
		ti.reset()
	}
	if ti.instLookup == nil {
		ti.instLookup = make(map[*types.Var]*types.Var, 16)
	}
	ti.vars.SkipTo(env.NextVarId())
	t, err := ti.infer(env, nongen, expr)
	env.skipVarIds(ti.vars.NextId)
	ti.needsReset = true
	if err != nil {
		if ti.err == nil {
			ti.invalid, ti.err = expr, err
		}
		return nil, err
	}
	ti.vars.FlattenLinks()
	return types.Prune(t), nil
}

// fail records the expression at which inference first failed.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.err == nil {
		ti.invalid, ti.err = e, err
	}
	return err
}

func (ti *InferenceContext) clearInstLookup() {
	for k := range ti.instLookup {
		delete(ti.instLookup, k)
	}
}
