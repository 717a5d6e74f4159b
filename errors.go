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
)

// ErrorKind classifies type errors.
type ErrorKind int

const (
	// An identifier is not bound in the type-environment and is not an integer literal.
	UndefinedSymbol ErrorKind = iota + 1
	// Unification reached two type-operators with differing names or argument counts.
	TypeMismatch
	// Unification would bind a type-variable to a type which contains it.
	RecursiveUnification
)

var kindNames = map[ErrorKind]string{
	UndefinedSymbol:      "UndefinedSymbol",
	TypeMismatch:         "TypeMismatch",
	RecursiveUnification: "RecursiveUnification",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "ErrorKind(?)"
}

// ParseErrorKind returns the kind with the given name, as returned by ErrorKind.String.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for k, kname := range kindNames {
		if kname == name {
			return k, true
		}
	}
	return 0, false
}

// TypeError is returned when inference fails.
type TypeError struct {
	Kind ErrorKind
	// Name is the undefined identifier (UndefinedSymbol).
	Name string
	// Left and Right are renderings of the mismatched types (TypeMismatch).
	Left, Right string
}

// Sentinel errors for use with errors.Is. A *TypeError matches the sentinel of its kind.
var (
	ErrUndefinedSymbol      error = &TypeError{Kind: UndefinedSymbol}
	ErrTypeMismatch         error = &TypeError{Kind: TypeMismatch}
	ErrRecursiveUnification error = &TypeError{Kind: RecursiveUnification}
)

func (e *TypeError) Error() string {
	switch e.Kind {
	case UndefinedSymbol:
		return "Undefined symbol " + e.Name
	case TypeMismatch:
		return "Type mismatch: " + e.Left + " != " + e.Right
	case RecursiveUnification:
		return "recursive unification"
	}
	return "type error"
}

func (e *TypeError) Is(target error) bool {
	t, ok := target.(*TypeError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the *TypeError within err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var te *TypeError
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

var errEmptyExpr = errors.New("Empty expression")

func undefinedSymbol(name string) error { return &TypeError{Kind: UndefinedSymbol, Name: name} }

func typeMismatch(left, right string) error {
	return &TypeError{Kind: TypeMismatch, Left: left, Right: right}
}

func recursiveUnification() error { return &TypeError{Kind: RecursiveUnification} }
