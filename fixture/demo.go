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
	"github.com/wdamron/hm"
	. "github.com/wdamron/hm/construct"
	"github.com/wdamron/hm/types"
)

// DemoEnv returns the environment of the demonstration examples:
//
//	pair  : α -> β -> (α × β)
//	true  : bool
//	cond  : bool -> γ -> γ -> γ
//	zero  : int -> bool
//	pred  : int -> int
//	times : int -> int -> int
func DemoEnv() *hm.TypeEnv {
	env := hm.NewTypeEnv(nil)
	var1, var2 := env.NewVar(), env.NewVar()
	pairType := TFunc(var1, var2, TProduct(var1, var2))
	var3 := env.NewVar()
	return env.
		Declare("pair", pairType).
		Declare("true", types.Bool).
		Declare("cond", TFunc(types.Bool, var3, var3, var3)).
		Declare("zero", TArrow(types.Int, types.Bool)).
		Declare("pred", TArrow(types.Int, types.Int)).
		Declare("times", TFunc(types.Int, types.Int, types.Int))
}

// Demo returns the demonstration examples within DemoEnv.
func Demo() *Fixture {
	pair := Ident("pair")
	f, g, x := Ident("f"), Ident("g"), Ident("x")
	n := Ident("n")

	return &Fixture{
		Name: "demo",
		Env:  DemoEnv(),
		Examples: []Example{
			{
				Name: "factorial",
				Expr: Letrec("factorial",
					Lambda("n",
						Call(Ident("cond"),
							Apply(Ident("zero"), n),
							Ident("1"),
							Call(Ident("times"), n, Apply(Ident("factorial"), Apply(Ident("pred"), n))))),
					Apply(Ident("factorial"), Ident("5"))),
				Type: "int",
			},
			{
				Name:  "lambda-bound parameter is monomorphic",
				Expr:  Lambda("x", Call(pair, Apply(x, Ident("3")), Apply(x, Ident("true")))),
				Error: hm.TypeMismatch.String(),
			},
			{
				Name:  "undefined symbol",
				Expr:  Call(pair, Apply(f, Ident("4")), Apply(f, Ident("true"))),
				Error: hm.UndefinedSymbol.String(),
			},
			{
				Name: "let-bound identity is polymorphic",
				Expr: Let("f", Lambda("x", x), Call(pair, Apply(f, Ident("4")), Apply(f, Ident("true")))),
				Type: "(int × bool)",
			},
			{
				Name:  "self-application",
				Expr:  Lambda("f", Apply(f, f)),
				Error: hm.RecursiveUnification.String(),
			},
			{
				Name: "let-bound constant function",
				Expr: Let("g", Lambda("f", Ident("5")), Apply(g, g)),
				Type: "int",
			},
			{
				Name: "generic and non-generic variables",
				Expr: Lambda("g", Let("f", Lambda("x", g), Call(pair, Apply(f, Ident("3")), Apply(f, Ident("true"))))),
				Type: "(α -> (α × α))",
			},
			{
				Name: "function composition",
				Expr: Func([]string{"f", "g", "arg"}, Apply(g, Apply(f, Ident("arg")))),
				Type: "((α -> β) -> ((β -> γ) -> (α -> γ)))",
			},
		},
	}
}
