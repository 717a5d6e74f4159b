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
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Oper {
	return types.NewOper(name)
}

// Type-operator: `list int`, `(a × b)`
func TOper(name string, args ...types.Type) *types.Oper {
	return types.NewOper(name, args...)
}

// Function type: `(int -> int)`
func TArrow(arg, ret types.Type) *types.Oper {
	return types.Function(arg, ret)
}

// Curried function type: `(int -> (int -> int))`
//
// TFunc(t) returns t.
func TFunc(first types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return first
	}
	return types.Function(first, TFunc(rest[0], rest[1:]...))
}

// Product type: `(a × b)`
func TProduct(a, b types.Type) *types.Oper {
	return types.Product(a, b)
}

// Expressions:

// Identifier
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Abstraction: `fn x => body`
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// Curried abstraction: `fn x => fn y => body`
//
// Func with no parameters returns body.
func Func(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lambda{Param: params[i], Body: body}
	}
	return body
}

// Application: `f x`
func Apply(f, arg ast.Expr) *ast.Apply {
	return &ast.Apply{Func: f, Arg: arg}
}

// Curried application: `((f x) y)`
//
// Call with no arguments returns f.
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

// Let-binding: `let v = value in body`
func Let(v string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: v, Value: value, Body: body}
}

// Recursive let-binding: `letrec v = value in body`
func Letrec(v string, value, body ast.Expr) *ast.Letrec {
	return &ast.Letrec{Var: v, Value: value, Body: body}
}
