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

import (
	"strings"
)

// ExprString returns a string representation of an expression. Identifiers are printed bare
// and every other expression is enclosed in parentheses.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	if et, ok := e.(*Ident); ok {
		sb.WriteString(et.Name)
		return
	}
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	sb.WriteByte('(')
	switch et := e.(type) {
	case *Lambda:
		sb.WriteString("fn ")
		sb.WriteString(et.Param)
		sb.WriteString(" => ")
		exprString(sb, et.Body)

	case *Apply:
		exprString(sb, et.Func)
		sb.WriteByte(' ')
		exprString(sb, et.Arg)

	case *Let:
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, et.Value)
		sb.WriteString(" in ")
		exprString(sb, et.Body)

	case *Letrec:
		sb.WriteString("letrec ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, et.Value)
		sb.WriteString(" in ")
		exprString(sb, et.Body)
	}
	sb.WriteByte(')')
}
