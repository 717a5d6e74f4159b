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

package typeutil

import (
	"github.com/wdamron/hm/types"
)

const blockSize = 8

// VarTracker allocates type-variables in blocks and remembers which variables it allocated
// since the last reset.
//
// Ids are unique per tracker: they increase monotonically and are never reused. Reset forgets
// the remembered variables but keeps NextId.
type VarTracker struct {
	NextId int
	vars   []*types.Var
	block  []types.Var
}

func (vt *VarTracker) Reset() { vt.vars, vt.block = vt.vars[:0], nil }

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return len(vt.vars) }

// SkipTo ensures no id below next is allocated.
func (vt *VarTracker) SkipTo(next int) {
	if next > vt.NextId {
		vt.NextId = next
	}
}

// FlattenLinks prunes every type-variable allocated since the last reset, so bound variables
// link directly to their representative type.
func (vt *VarTracker) FlattenLinks() {
	for _, tv := range vt.vars {
		types.Prune(tv)
	}
}

// New allocates an unbound type-variable.
func (vt *VarTracker) New() *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, blockSize)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.SetId(vt.NextId)
	vt.NextId++
	vt.vars = append(vt.vars, tv)
	return tv
}
