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

// Type-variable
//
// A type-variable is a unification cell. Its instance is set at most once, by unification,
// and may afterwards be re-linked only to the representative of its own chain (see Prune).
// Two type-variables are the same variable only if they are the same pointer.
type Var struct {
	instance Type
	name     string
	namer    *Printer
	id       int
}

// Create a new unbound type-variable with the given id.
func NewVar(id int) *Var {
	return &Var{id: id}
}

// Id returns the identifier of the type-variable within its allocating session.
func (tv *Var) Id() int { return tv.id }

// Set the identifier of an unused type-variable.
func (tv *Var) SetId(id int) { tv.id = id }

// Instance returns the type which the type-variable is bound to, or nil.
func (tv *Var) Instance() Type { return tv.instance }

func (tv *Var) IsBound() bool { return tv.instance != nil }

// Name returns the display name assigned by the first printer which printed the type-variable,
// or an empty string if no printer has named it.
func (tv *Var) Name() string { return tv.name }

// Bind the type-variable to t. Binding an already-bound type-variable panics.
func (tv *Var) Bind(t Type) {
	if tv.instance != nil {
		panic("type-variable is already bound")
	}
	if t == nil {
		panic("cannot bind type-variable to nil")
	}
	tv.instance = t
}
