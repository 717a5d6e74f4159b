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

package ast

// Expr is the base for all expressions. Expressions are immutable and carry no type information.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*Ident)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Letrec)(nil)
)

// Identifier: `x`
//
// An identifier made up only of decimal digits which is not bound in the type-environment
// denotes an integer literal.
type Ident struct {
	Name string
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

// Abstraction: `fn x => body`
type Lambda struct {
	Param string
	Body  Expr
}

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }

// Application: `f x`
type Apply struct {
	Func Expr
	Arg  Expr
}

// "Apply"
func (e *Apply) ExprName() string { return "Apply" }

// Let-binding: `let v = value in body`
//
// The bound name is not visible within its own value.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Recursive let-binding: `letrec v = value in body`
//
// The bound name is visible within its own value, where it is monomorphic.
type Letrec struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Letrec"
func (e *Letrec) ExprName() string { return "Letrec" }

func (e *Ident) isExpr()  {}
func (e *Lambda) isExpr() {}
func (e *Apply) isExpr()  {}
func (e *Let) isExpr()    {}
func (e *Letrec) isExpr() {}
