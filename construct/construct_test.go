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

package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func TestTypes(t *testing.T) {
	a, b := TVar(0), TVar(1)

	assert.Equal(t, "(α -> (β -> (α × β)))", types.CanonicalString(TFunc(a, b, TProduct(a, b))))
	assert.Equal(t, "(int -> bool)", types.CanonicalString(TArrow(TConst("int"), TConst("bool"))))
	assert.Equal(t, "list α", types.CanonicalString(TOper("list", a)))
	assert.Same(t, a, TFunc(a))
	assert.True(t, types.IsFunction(TFunc(a, b)))
}

func TestExpressions(t *testing.T) {
	assert.Equal(t, "(fn x => (fn y => x))", ast.ExprString(Func([]string{"x", "y"}, Ident("x"))))
	assert.Equal(t, "x", ast.ExprString(Func(nil, Ident("x"))))
	assert.Equal(t, "((f x) y)", ast.ExprString(Call(Ident("f"), Ident("x"), Ident("y"))))
	assert.Equal(t, "f", ast.ExprString(Call(Ident("f"))))
	assert.Equal(t, "(let x = 1 in x)", ast.ExprString(Let("x", Ident("1"), Ident("x"))))
	assert.Equal(t, "(letrec f = (fn x => (f x)) in f)",
		ast.ExprString(Letrec("f", Lambda("x", Apply(Ident("f"), Ident("x"))), Ident("f"))))
}
