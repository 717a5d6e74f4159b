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

// Package fixture loads type-environments and example expressions from YAML, and checks the
// types inferred for the examples against their expectations.
//
// A fixture document has the form:
//
//	name: polymorphism
//	env:
//	  pair: {fn: [$a, $b, {product: [$a, $b]}]}
//	  true: bool
//	examples:
//	  - name: let-bound identity
//	    expr:
//	      let:
//	        name: f
//	        value: {fn: {param: x, body: x}}
//	        body: {apply: [pair, {apply: [f, "4"]}, {apply: [f, "true"]}]}
//	    type: (int × bool)
//
// Types within env are written as scalars (type-constants such as int, or type-variables
// prefixed with $, which are shared by every declaration in the same env), {fn: [t1, t2, ...]}
// for curried function types, {product: [a, b]} for products, and {op: name, args: [...]} for
// any other type-operator.
//
// Expressions are written as scalars (identifiers and integer literals), {fn: {param: x, body: e}}
// or {fn: {params: [x, y], body: e}} for abstractions, {apply: [f, a, b, ...]} for curried
// application, and {let: {name: x, value: e, body: e}} or {letrec: {...}} for bindings.
//
// An example may declare the expected type (rendered with type-variables named from α in order
// of first occurrence) or the expected error kind (UndefinedSymbol, TypeMismatch, or
// RecursiveUnification).
package fixture

import (
	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
)

// Fixture is a type-environment with a list of examples to infer within it.
type Fixture struct {
	Name     string
	Env      *hm.TypeEnv
	Examples []Example
}

// Example is an expression with an optional expectation.
type Example struct {
	Name string
	Expr ast.Expr
	// Type is the expected canonical rendering of the inferred type, if not empty.
	Type string
	// Error is the expected error kind name, if not empty.
	Error string
	// Line is the line of the example within its source document, or 0.
	Line int
}

// HasExpectation returns true if the example declares an expected type or error.
func (ex *Example) HasExpectation() bool { return ex.Type != "" || ex.Error != "" }
