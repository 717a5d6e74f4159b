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

// Type is the base interface for all type terms. The only implementations are *Var and *Oper.
type Type interface {
	TypeName() string
	isType()
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Oper)(nil)
)

func (t *Var) TypeName() string  { return "Var" }
func (t *Oper) TypeName() string { return "Oper" }

func (t *Var) isType()  {}
func (t *Oper) isType() {}

// Operator names with special meaning.
const (
	FunctionName = "->"
	ProductName  = "×"
	IntName      = "int"
	BoolName     = "bool"
)

// Type-operator: `int`, `(int -> bool)`, `(int × bool)`
//
// Operators are immutable once constructed; only type-variables reachable from their
// arguments change during unification.
type Oper struct {
	Name string
	Args []Type
}

var (
	Int  = &Oper{Name: IntName}
	Bool = &Oper{Name: BoolName}
)

// Create a type-operator. The argument slice is copied.
func NewOper(name string, args ...Type) *Oper {
	if len(args) == 0 {
		return &Oper{Name: name}
	}
	copied := make([]Type, len(args))
	copy(copied, args)
	return &Oper{Name: name, Args: copied}
}

// Function type: `(from -> to)`
func Function(from, to Type) *Oper {
	return &Oper{Name: FunctionName, Args: []Type{from, to}}
}

// Product type: `(a × b)`
func Product(a, b Type) *Oper {
	return &Oper{Name: ProductName, Args: []Type{a, b}}
}

// IsFunction reports whether t is a function type after pruning.
func IsFunction(t Type) bool {
	op, ok := Prune(t).(*Oper)
	return ok && op.Name == FunctionName && len(op.Args) == 2
}

// Prune returns the representative term for t. Bound type-variables along the chain are
// re-linked directly to the representative.
func Prune(t Type) Type {
	tv, ok := t.(*Var)
	if !ok || tv.instance == nil {
		return t
	}
	tv.instance = Prune(tv.instance)
	return tv.instance
}

// OccursIn reports whether v appears anywhere within the pruned form of t.
func OccursIn(v *Var, t Type) bool {
	switch t := Prune(t).(type) {
	case *Var:
		return t == v
	case *Oper:
		return OccursInAny(v, t.Args)
	}
	return false
}

// OccursInAny reports whether v appears within any of ts.
func OccursInAny(v *Var, ts []Type) bool {
	for _, t := range ts {
		if OccursIn(v, t) {
			return true
		}
	}
	return false
}

// Equal compares the pruned forms of a and b. Operators are compared by name and arguments;
// type-variables are compared by identity.
func Equal(a, b Type) bool {
	a, b = Prune(a), Prune(b)
	switch a := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && a == bv
	case *Oper:
		bo, ok := b.(*Oper)
		if !ok || a.Name != bo.Name || len(a.Args) != len(bo.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], bo.Args[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
