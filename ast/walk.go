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

// WalkExpr calls f for e and each of its sub-expressions, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Ident:
		f(e)

	case *Lambda:
		f(e)
		WalkExpr(e.Body, f)

	case *Apply:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *Letrec:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// CountNodes returns the number of expressions within e, including e.
func CountNodes(e Expr) int {
	n := 0
	WalkExpr(e, func(Expr) { n++ })
	return n
}

// FreeIdents returns the names referenced by e which are not bound within e, in order of
// first occurrence. Integer literals are included.
func FreeIdents(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	freeIdents(e, map[string]int{}, seen, &names)
	return names
}

func freeIdents(e Expr, bound map[string]int, seen map[string]bool, names *[]string) {
	switch e := e.(type) {
	case *Ident:
		if bound[e.Name] == 0 && !seen[e.Name] {
			seen[e.Name] = true
			*names = append(*names, e.Name)
		}

	case *Lambda:
		bound[e.Param]++
		freeIdents(e.Body, bound, seen, names)
		bound[e.Param]--

	case *Apply:
		freeIdents(e.Func, bound, seen, names)
		freeIdents(e.Arg, bound, seen, names)

	case *Let:
		freeIdents(e.Value, bound, seen, names)
		bound[e.Var]++
		freeIdents(e.Body, bound, seen, names)
		bound[e.Var]--

	case *Letrec:
		bound[e.Var]++
		freeIdents(e.Value, bound, seen, names)
		freeIdents(e.Body, bound, seen, names)
		bound[e.Var]--
	}
}
