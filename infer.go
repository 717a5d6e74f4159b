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
	"github.com/wdamron/hm/types"
)

func (ti *InferenceContext) infer(env *TypeEnv, nongen types.VarSet, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Ident:
		if t, ok := env.Lookup(e.Name); ok {
			return ti.Fresh(t, nongen), nil
		}
		if isIntegerLiteral(e.Name) {
			return types.Int, nil
		}
		return nil, ti.fail(e, undefinedSymbol(e.Name))

	case *ast.Apply:
		fn, err := ti.infer(env, nongen, e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := ti.infer(env, nongen, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := ti.vars.New()
		if err := ti.unify(types.Function(arg, ret), fn); err != nil {
			return nil, ti.fail(e, err)
		}
		return ret, nil

	case *ast.Lambda:
		// The parameter is non-generic within the body:
		param := ti.vars.New()
		body, err := ti.infer(env.Extend(e.Param, param), nongen.Add(param), e.Body)
		if err != nil {
			return nil, err
		}
		return types.Function(param, body), nil

	case *ast.Let:
		t, err := ti.infer(env, nongen, e.Value)
		if err != nil {
			return nil, err
		}
		return ti.infer(env.Extend(e.Var, t), nongen, e.Body)

	case *ast.Letrec:
		// Allow monomorphic self-references within the value:
		tv := ti.vars.New()
		recEnv := env.Extend(e.Var, tv)
		t, err := ti.infer(recEnv, nongen.Add(tv), e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(tv, t); err != nil {
			return nil, ti.fail(e, err)
		}
		return ti.infer(recEnv, nongen, e.Body)

	case nil:
		return nil, ti.fail(e, errEmptyExpr)
	}
	panic("unknown expression type: " + e.ExprName())
}

func isIntegerLiteral(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
