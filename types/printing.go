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

package types

import (
	"strconv"
	"strings"
)

// Letters used for display names of type-variables. Final sigma is skipped.
var greek = []rune("αβγδεζηθικλμνξοπρστυφχψω")

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = varName(i)
	}
}

func varName(i int) string {
	letter := string(greek[i%len(greek)])
	if i < len(greek) {
		return letter
	}
	return letter + strconv.Itoa(i/len(greek))
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return varName(i)
}

// Printer renders type terms. Type-variables are named the first time they are printed,
// in the order they are encountered. A name is stored on the variable together with the
// printer which assigned it, and reused by every later rendering through that printer.
// Variables already named by another printer are named again from this printer's sequence,
// so two variables never share a name within one printer's output.
//
// A printer should be owned by a single inference session and cannot be used concurrently.
type Printer struct {
	next      int
	canonical bool
	local     map[*Var]string
	sb        strings.Builder
}

func NewPrinter() *Printer { return &Printer{} }

// NewCanonicalPrinter returns a printer which names type-variables from α in the order it
// encounters them, without reading or storing the names kept on the variables.
func NewCanonicalPrinter() *Printer { return &Printer{canonical: true} }

// Named returns the number of display names assigned by the printer.
func (p *Printer) Named() int { return p.next }

// VarName returns the display name of tv, assigning the next name if tv has none.
func (p *Printer) VarName(tv *Var) string {
	if !p.canonical {
		if tv.namer == p {
			return tv.name
		}
		if tv.namer == nil {
			tv.name, tv.namer = getVarName(p.next), p
			p.next++
			return tv.name
		}
	}
	name, ok := p.local[tv]
	if !ok {
		if p.local == nil {
			p.local = make(map[*Var]string)
		}
		name = getVarName(p.next)
		p.local[tv] = name
		p.next++
	}
	return name
}

// TypeString returns a string representation of t.
func (p *Printer) TypeString(t Type) string {
	p.sb.Reset()
	p.typeString(t)
	s := p.sb.String()
	p.sb.Reset()
	return s
}

func (p *Printer) typeString(t Type) {
	switch t := Prune(t).(type) {
	case *Var:
		p.sb.WriteString(p.VarName(t))

	case *Oper:
		switch len(t.Args) {
		case 0:
			p.sb.WriteString(t.Name)
		case 2:
			p.sb.WriteByte('(')
			p.typeString(t.Args[0])
			p.sb.WriteByte(' ')
			p.sb.WriteString(t.Name)
			p.sb.WriteByte(' ')
			p.typeString(t.Args[1])
			p.sb.WriteByte(')')
		default:
			p.sb.WriteString(t.Name)
			for _, arg := range t.Args {
				p.sb.WriteByte(' ')
				p.typeString(arg)
			}
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}

// TypeString returns a string representation of t using a new canonical printer. Names stored
// on type-variables are neither read nor assigned.
func TypeString(t Type) string { return NewCanonicalPrinter().TypeString(t) }

// CanonicalString returns a string representation of t in which type-variables are named from α
// in order of first occurrence. Two types which differ only by a renaming of their type-variables
// have the same canonical string.
func CanonicalString(t Type) string { return NewCanonicalPrinter().TypeString(t) }
