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

// hm provides Hindley-Milner type inference for a small lambda calculus with let-polymorphism.
//
// Inference follows Algorithm W with destructive unification: type-variables are mutable cells
// which unification binds in place, and pruning compresses chains of bound variables. Let-bound
// definitions are generalized by instantiating fresh copies of their generic type-variables at
// each use; type-variables which occur within the non-generic set (lambda parameters and
// letrec placeholders in scope) are shared instead of copied.
//
// Expressions:
//
//   * Identifiers (digit-only identifiers which are not bound denote integer literals)
//   * Abstractions: `fn x => body`
//   * Applications: `f x`
//   * Let-bindings: `let v = value in body`
//   * Recursive let-bindings: `letrec v = value in body`
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Basic Polymorphic Typechecking (Cardelli, 1987): http://lucacardelli.name/Papers/BasicTypechecking.pdf
package hm
