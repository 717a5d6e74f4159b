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
	"github.com/wdamron/hm/types"
)

// Fresh instantiates t. Generic type-variables within t (those which do not occur within any
// member of nongen) are consistently replaced by new type-variables; non-generic type-variables
// are shared with t.
func (ti *InferenceContext) Fresh(t types.Type, nongen types.VarSet) types.Type {
	if ti.instLookup == nil {
		ti.instLookup = make(map[*types.Var]*types.Var, 16)
	}
	ti.clearInstLookup()
	t = ti.fresh(t, nongen)
	ti.clearInstLookup()
	return t
}

func (ti *InferenceContext) fresh(t types.Type, nongen types.VarSet) types.Type {
	switch t := types.Prune(t).(type) {
	case *types.Var:
		if tv, ok := ti.instLookup[t]; ok {
			return tv
		}
		if nongen.ContainsOccurrence(t) {
			return t
		}
		tv := ti.vars.New()
		ti.instLookup[t] = tv
		return tv

	case *types.Oper:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ti.fresh(arg, nongen)
		}
		return &types.Oper{Name: t.Name, Args: args}
	}
	return t
}
