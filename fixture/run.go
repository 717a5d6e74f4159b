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

package fixture

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Result is the outcome of inferring the type of an example.
type Result struct {
	Example *Example
	// Type is the inferred type, or nil if inference failed.
	Type types.Type
	// Rendered is the type rendered by the inference context, with display names which keep
	// advancing across the session.
	Rendered string
	// Canonical is the type rendered with type-variables named from α.
	Canonical string
	Err       error
	// Invalid is the expression at which inference failed, if any.
	Invalid ast.Expr
}

// Run infers the type of each example within the fixture's environment, in order, using ctx.
// Display names are assigned by ctx, so results of earlier examples affect the names printed
// for later ones.
func Run(ctx *hm.InferenceContext, fx *Fixture) []Result {
	results := make([]Result, len(fx.Examples))
	for i := range fx.Examples {
		results[i] = RunExample(ctx, fx.Env, &fx.Examples[i])
	}
	return results
}

// RunExample infers the type of a single example within env, using ctx.
func RunExample(ctx *hm.InferenceContext, env *hm.TypeEnv, ex *Example) Result {
	r := Result{Example: ex}
	t, err := ctx.Infer(ex.Expr, env)
	if err != nil {
		r.Err, r.Invalid = err, ctx.InvalidExpr()
		return r
	}
	r.Type = t
	r.Rendered = ctx.TypeString(t)
	r.Canonical = types.CanonicalString(t)
	return r
}

// String returns the expression and either its type or the failure message.
func (r *Result) String() string {
	s := ast.ExprString(r.Example.Expr) + " : "
	if r.Err != nil {
		return s + r.Err.Error()
	}
	return s + r.Rendered
}

// Check returns an error if the result does not satisfy the expectation of its example.
func (r *Result) Check() error {
	ex := r.Example
	switch {
	case ex.Error != "":
		expected, ok := hm.ParseErrorKind(ex.Error)
		if !ok {
			return errors.Errorf("%s: unknown error kind %q", r.label(), ex.Error)
		}
		if r.Err == nil {
			return errors.Errorf("%s: expected %s, inferred %s", r.label(), expected, r.Canonical)
		}
		if kind, ok := hm.KindOf(r.Err); !ok || kind != expected {
			return errors.Errorf("%s: expected %s, got: %v", r.label(), expected, r.Err)
		}

	case ex.Type != "":
		if r.Err != nil {
			return errors.Wrapf(r.Err, "%s: expected %s", r.label(), ex.Type)
		}
		if r.Canonical != ex.Type {
			return errors.Errorf("%s: expected %s, inferred %s", r.label(), ex.Type, r.Canonical)
		}
	}
	return nil
}

func (r *Result) label() string {
	ex := r.Example
	name := ex.Name
	if name == "" {
		name = ast.ExprString(ex.Expr)
	}
	if ex.Line > 0 {
		return fmt.Sprintf("line %d: %s", ex.Line, name)
	}
	return name
}

// Failures returns the errors of the results which do not satisfy their expectations.
func Failures(results []Result) []error {
	var errs []error
	for i := range results {
		if err := results[i].Check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
