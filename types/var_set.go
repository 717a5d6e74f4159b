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
	"sort"

	"github.com/benbjohnson/immutable"
)

// varHasher keys type-variables by identity.
type varHasher struct{}

func (varHasher) Hash(key interface{}) uint32 { return uint32(key.(*Var).id) }

func (varHasher) Equal(a, b interface{}) bool { return a.(*Var) == b.(*Var) }

var emptyVarMap = immutable.NewMap(varHasher{})

// EmptyVarSet contains no type-variables.
var EmptyVarSet = VarSet{emptyVarMap}

// VarSet is an immutable set of type-variables. Adding to a set returns a new set and
// leaves the original unchanged. The zero value is an empty set.
type VarSet struct {
	m *immutable.Map
}

// Create a set containing vs.
func NewVarSet(vs ...*Var) VarSet {
	s := EmptyVarSet
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

// Get the number of type-variables in the set.
func (s VarSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Contains reports whether v itself is a member of the set.
func (s VarSet) Contains(v *Var) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(v)
	return ok
}

// Add returns a set which also contains v.
func (s VarSet) Add(v *Var) VarSet {
	m := s.m
	if m == nil {
		m = emptyVarMap
	}
	if _, ok := m.Get(v); ok {
		return VarSet{m}
	}
	return VarSet{m.Set(v, v)}
}

// Union returns a set containing the members of both sets.
func (s VarSet) Union(o VarSet) VarSet {
	if s.Len() < o.Len() {
		s, o = o, s
	}
	o.Range(func(v *Var) bool {
		s = s.Add(v)
		return true
	})
	return s
}

// Iterate over members of the set, in no particular order.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(*Var) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(*Var)) {
			return
		}
	}
}

// Vars returns the members of the set ordered by id.
func (s VarSet) Vars() []*Var {
	vs := make([]*Var, 0, s.Len())
	s.Range(func(v *Var) bool {
		vs = append(vs, v)
		return true
	})
	sort.Slice(vs, func(i, j int) bool { return vs[i].id < vs[j].id })
	return vs
}

// ContainsOccurrence reports whether v occurs within the pruned form of any member of the set.
// A type-variable for which this holds is non-generic.
func (s VarSet) ContainsOccurrence(v *Var) bool {
	found := false
	s.Range(func(member *Var) bool {
		found = OccursIn(v, member)
		return !found
	})
	return found
}
