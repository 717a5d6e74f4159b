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

	"github.com/wdamron/hm/types"
)

// Unify makes a and b equal by binding type-variables in place.
//
// Bindings made before a failure are kept; after a failed unification the type-variables
// reachable from a and b must not be reused.
func (ti *InferenceContext) Unify(a, b types.Type) error { return ti.unify(a, b) }

func (ti *InferenceContext) unify(a, b types.Type) error {
	a, b = types.Prune(a), types.Prune(b)

	switch a := a.(type) {
	case *types.Var:
		if bv, ok := b.(*types.Var); ok && a == bv {
			return nil
		}
		if b == nil {
			break
		}
		if types.OccursIn(a, b) {
			return recursiveUnification()
		}
		a.Bind(b)
		return nil

	case *types.Oper:
		switch b := b.(type) {
		case *types.Var:
			return ti.unify(b, a)

		case *types.Oper:
			if a.Name != b.Name || len(a.Args) != len(b.Args) {
				return typeMismatch(ti.printer.TypeString(a), ti.printer.TypeString(b))
			}
			for i := range a.Args {
				if err := ti.unify(a.Args[i], b.Args[i]); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return errors.New("Failed to unify " + typeName(a) + " with " + typeName(b))
}

func typeName(t types.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.TypeName()
}
