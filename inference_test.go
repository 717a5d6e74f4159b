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
	"errors"
	"testing"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func apply(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

func lambda(param string, body ast.Expr) *ast.Lambda { return &ast.Lambda{Param: param, Body: body} }

func fn(ts ...types.Type) types.Type {
	t := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		t = types.Function(ts[i], t)
	}
	return t
}

func testEnv() *TypeEnv {
	env := NewTypeEnv(nil)
	A, B, C := env.NewVar(), env.NewVar(), env.NewVar()
	return env.
		Declare("pair", fn(A, B, types.Product(A, B))).
		Declare("true", types.Bool).
		Declare("cond", fn(types.Bool, C, C, C)).
		Declare("zero", fn(types.Int, types.Bool)).
		Declare("pred", fn(types.Int, types.Int)).
		Declare("times", fn(types.Int, types.Int, types.Int))
}

func factorialExpr() ast.Expr {
	n := ident("n")
	return &ast.Letrec{
		Var: "factorial",
		Value: lambda("n", apply(ident("cond"),
			apply(ident("zero"), n),
			ident("1"),
			apply(ident("times"), n, apply(ident("factorial"), apply(ident("pred"), n))))),
		Body: apply(ident("factorial"), ident("5")),
	}
}

func TestFactorial(t *testing.T) {
	env := testEnv()
	ctx := NewContext()
	expr := factorialExpr()

	exprString := ast.ExprString(expr)
	if exprString != "(letrec factorial = (fn n => (((cond (zero n)) 1) ((times n) (factorial (pred n))))) in (factorial 5))" {
		t.Fatalf("expr: %s", exprString)
	}
	t.Logf("expr: %s", exprString)

	// Infer twice to ensure state is properly reset between calls:

	envCount := env.Len()

	ty, err := ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}

	if env.Len() != envCount {
		t.Fatalf("expected unmodified type environment after inference")
	}

	ty, err = ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}

	typeString := ctx.TypeString(ty)
	if typeString != "int" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestLetPolymorphism(t *testing.T) {
	env := testEnv()
	ctx := NewContext()

	expr := &ast.Let{
		Var:   "f",
		Value: lambda("x", ident("x")),
		Body:  apply(ident("pair"), apply(ident("f"), ident("4")), apply(ident("f"), ident("true"))),
	}

	exprString := ast.ExprString(expr)
	if exprString != "(let f = (fn x => x) in ((pair (f 4)) (f true)))" {
		t.Fatalf("expr: %s", exprString)
	}

	ty, err := ctx.Infer(expr, env)
	if err != nil {
		t.Fatal(err)
	}
	typeString := ctx.TypeString(ty)
	if typeString != "(int × bool)" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestLambdaParameterIsMonomorphic(t *testing.T) {
	env := testEnv()
	ctx := NewContext()

	expr := lambda("x", apply(ident("pair"), apply(ident("x"), ident("3")), apply(ident("x"), ident("true"))))

	_, err := ctx.Infer(expr, env)
	if err == nil {
		t.Fatalf("expected type mismatch")
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got: %v", err)
	}
	if err.Error() != "Type mismatch: bool != int" {
		t.Fatalf("error: %v", err)
	}
	if ctx.Error() != err {
		t.Fatalf("expected the context to record the error")
	}
	invalid := ast.ExprString(ctx.InvalidExpr())
	if invalid != "(x true)" {
		t.Fatalf("invalid expr: %s", invalid)
	}
	t.Logf("Passed check for type mismatch: %v at %s", err, invalid)
}

func TestSelfApplication(t *testing.T) {
	ctx := NewContext()

	expr := lambda("f", apply(ident("f"), ident("f")))

	_, err := ctx.Infer(expr, testEnv())
	if !errors.Is(err, ErrRecursiveUnification) {
		t.Fatalf("expected recursive unification, got: %v", err)
	}
	if err.Error() != "recursive unification" {
		t.Fatalf("error: %v", err)
	}
}

func TestUndefinedSymbol(t *testing.T) {
	ctx := NewContext()

	expr := apply(ident("pair"), apply(ident("f"), ident("4")), apply(ident("f"), ident("true")))

	_, err := ctx.Infer(expr, testEnv())
	if !errors.Is(err, ErrUndefinedSymbol) {
		t.Fatalf("expected undefined symbol, got: %v", err)
	}
	var te *TypeError
	if !errors.As(err, &te) || te.Name != "f" {
		t.Fatalf("expected undefined symbol f, got: %v", err)
	}
	if kind, ok := KindOf(err); !ok || kind != UndefinedSymbol {
		t.Fatalf("kind: %v", kind)
	}
	if err.Error() != "Undefined symbol f" {
		t.Fatalf("error: %v", err)
	}
	if ctx.InvalidExpr() != ast.Expr(expr.(*ast.Apply).Func.(*ast.Apply).Arg.(*ast.Apply).Func) {
		t.Fatalf("invalid expr: %s", ast.ExprString(ctx.InvalidExpr()))
	}
}

func TestIntegerLiterals(t *testing.T) {
	ctx := NewContext()

	for _, name := range []string{"0", "5", "0042"} {
		ty, err := ctx.Infer(ident(name), nil)
		if err != nil {
			t.Fatal(err)
		}
		if ctx.TypeString(ty) != "int" {
			t.Fatalf("type of %s: %s", name, ctx.TypeString(ty))
		}
	}
	for _, name := range []string{"", "4a", "-1", "1.5", "x1"} {
		if _, err := ctx.Infer(ident(name), nil); !errors.Is(err, ErrUndefinedSymbol) {
			t.Fatalf("expected undefined symbol for %q, got: %v", name, err)
		}
	}

	// Bound identifiers shadow integer literals:
	env := NewTypeEnv(nil).Declare("1", types.Bool)
	ty, err := ctx.Infer(ident("1"), env)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.TypeString(ty) != "bool" {
		t.Fatalf("type: %s", ctx.TypeString(ty))
	}
}

func TestLetIgnoresArgument(t *testing.T) {
	ctx := NewContext()

	expr := &ast.Let{
		Var:   "g",
		Value: lambda("f", ident("5")),
		Body:  apply(ident("g"), ident("g")),
	}

	ty, err := ctx.Infer(expr, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "int" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestGenericAndNonGeneric(t *testing.T) {
	ctx := NewContext()

	expr := lambda("g", &ast.Let{
		Var:   "f",
		Value: lambda("x", ident("g")),
		Body:  apply(ident("pair"), apply(ident("f"), ident("3")), apply(ident("f"), ident("true"))),
	})

	exprString := ast.ExprString(expr)
	if exprString != "(fn g => (let f = (fn x => g) in ((pair (f 3)) (f true))))" {
		t.Fatalf("expr: %s", exprString)
	}

	ty, err := ctx.Infer(expr, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(α -> (α × α))" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestComposition(t *testing.T) {
	ctx := NewContext()

	expr := lambda("f", lambda("g", lambda("arg", apply(ident("g"), apply(ident("f"), ident("arg"))))))

	ty, err := ctx.Infer(expr, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "((α -> β) -> ((β -> γ) -> (α -> γ)))" {
		t.Fatalf("type: %s", typeString)
	}

	// Names keep advancing within the context:
	ty, err = ctx.Infer(lambda("x", ident("x")), nil)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(δ -> δ)" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestLetrecBodyIsPolymorphic(t *testing.T) {
	ctx := NewContext()

	// letrec id = fn x => x in pair (id 1) (id true)
	expr := &ast.Letrec{
		Var:   "id",
		Value: lambda("x", ident("x")),
		Body:  apply(ident("pair"), apply(ident("id"), ident("1")), apply(ident("id"), ident("true"))),
	}

	ty, err := ctx.Infer(expr, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(int × bool)" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestLetrecValueIsMonomorphic(t *testing.T) {
	ctx := NewContext()

	// letrec f = fn x => pair (f 1) (f true) in f
	expr := &ast.Letrec{
		Var:   "f",
		Value: lambda("x", apply(ident("pair"), apply(ident("f"), ident("1")), apply(ident("f"), ident("true")))),
		Body:  ident("f"),
	}

	_, err := ctx.Infer(expr, testEnv())
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got: %v", err)
	}
}

func TestLetValueCannotSeeItself(t *testing.T) {
	ctx := NewContext()

	expr := &ast.Let{
		Var:   "f",
		Value: lambda("x", apply(ident("f"), ident("x"))),
		Body:  ident("f"),
	}

	_, err := ctx.Infer(expr, testEnv())
	if !errors.Is(err, ErrUndefinedSymbol) {
		t.Fatalf("expected undefined symbol, got: %v", err)
	}
}

func TestShadowing(t *testing.T) {
	ctx := NewContext()

	// fn x => let x = true in x
	expr := lambda("x", &ast.Let{Var: "x", Value: ident("true"), Body: ident("x")})

	ty, err := ctx.Infer(expr, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(α -> bool)" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestNonGenericPropagation(t *testing.T) {
	ctx := NewContext()
	env := testEnv()

	// fn x => let y = x in let z = y in pair (z 1) (z true)
	//
	// x is non-generic in all nested scopes, so y and z share its type.
	expr := lambda("x", &ast.Let{
		Var:   "y",
		Value: ident("x"),
		Body: &ast.Let{
			Var:   "z",
			Value: ident("y"),
			Body:  apply(ident("pair"), apply(ident("z"), ident("1")), apply(ident("z"), ident("true"))),
		},
	})

	if _, err := ctx.Infer(expr, env); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got: %v", err)
	}
}

func TestAnalyseWithNonGenericSet(t *testing.T) {
	ctx := NewContext()
	env := NewTypeEnv(nil)
	A := env.NewVar()
	env = env.Declare("pair", testEnv().mustLookup("pair")).Declare("v", A)

	expr := apply(ident("pair"), ident("v"), ident("v"))

	// Generic: each reference to v is instantiated separately.
	ty, err := ctx.Analyse(expr, env, types.EmptyVarSet)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(α × β)" {
		t.Fatalf("type: %s", typeString)
	}

	// Non-generic: references to v share A.
	ty, err = ctx.Analyse(expr, env, types.NewVarSet(A))
	if err != nil {
		t.Fatal(err)
	}
	if typeString := ctx.TypeString(ty); typeString != "(γ × γ)" {
		t.Fatalf("type: %s", typeString)
	}
	if A.Name() != "γ" {
		t.Fatalf("expected A to be shared, got name %q", A.Name())
	}
}

func TestEmptyExpression(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.Infer(nil, nil); err == nil {
		t.Fatalf("expected error for empty expression")
	}
	if _, err := ctx.Infer(lambda("x", nil), nil); err == nil {
		t.Fatalf("expected error for empty lambda body")
	}
}

func (e *TypeEnv) mustLookup(name string) types.Type {
	t, ok := e.Lookup(name)
	if !ok {
		panic("missing " + name)
	}
	return t
}
