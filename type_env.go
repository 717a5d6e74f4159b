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
	"github.com/benbjohnson/immutable"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

var emptyTypes = immutable.NewSortedMap(nil)

// TypeEnv is an immutable type-environment containing mappings from identifiers to declared types.
//
// Each declared type acts as a type-scheme: when an identifier is referenced, type-variables
// within its type which are not non-generic at the reference are instantiated fresh.
//
// Extending a type-environment returns a new type-environment; the receiver is not modified.
// Type-environments derived from a common root share the root's type-variable allocator, so
// type-variables created through NewVar cannot be used concurrently across derived environments.
type TypeEnv struct {
	vars  *typeutil.VarTracker
	types *immutable.SortedMap
}

// Create a type-environment. The new environment will inherit bindings and the type-variable
// allocator from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	if parent != nil {
		return &TypeEnv{vars: parent.tracker(), types: parent.bindings()}
	}
	return &TypeEnv{vars: &typeutil.VarTracker{}, types: emptyTypes}
}

func (e *TypeEnv) tracker() *typeutil.VarTracker {
	if e.vars == nil {
		e.vars = &typeutil.VarTracker{}
	}
	return e.vars
}

func (e *TypeEnv) bindings() *immutable.SortedMap {
	if e == nil || e.types == nil {
		return emptyTypes
	}
	return e.types
}

// Create an unbound type-variable, for use in declared types. Ids are unique among the
// type-variables of the environment's allocator, and among those of any context which has
// inferred within the environment since.
func (e *TypeEnv) NewVar() *types.Var { return e.tracker().New() }

// NextVarId returns the next unused type-variable id.
func (e *TypeEnv) NextVarId() int {
	if e == nil || e.vars == nil {
		return 0
	}
	return e.vars.NextId
}

// skipVarIds advances the allocator of the environment so that no id below next is allocated.
func (e *TypeEnv) skipVarIds(next int) { e.tracker().SkipTo(next) }

// Extend returns a type-environment which maps name to t, shadowing any existing mapping for name.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	var vars *typeutil.VarTracker
	if e != nil {
		vars = e.vars
	}
	return &TypeEnv{vars: vars, types: e.bindings().Set(name, t)}
}

// Declare returns a type-environment which maps name to t. Type-variables within t are generic
// wherever they are not non-generic at a reference to name.
//
// Declare is an alias for Extend.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv { return e.Extend(name, t) }

// Lookup the type for an identifier.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	t, ok := e.bindings().Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Get the number of identifiers in the type-environment.
func (e *TypeEnv) Len() int { return e.bindings().Len() }

// Iterate over mappings in the type-environment, sorted by identifier.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, types.Type) bool) {
	iter := e.bindings().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

// Names returns the identifiers in the type-environment, sorted.
func (e *TypeEnv) Names() []string {
	names := make([]string, 0, e.Len())
	e.Range(func(name string, _ types.Type) bool {
		names = append(names, name)
		return true
	})
	return names
}
