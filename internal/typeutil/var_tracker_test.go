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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/hm/types"
)

func TestVarTrackerIds(t *testing.T) {
	var vt VarTracker
	for i := 0; i < 20; i++ {
		assert.Equal(t, i, vt.New().Id())
	}
	assert.Equal(t, 20, vt.Count())

	// Reset forgets allocations but ids are never reused:
	vt.Reset()
	assert.Equal(t, 0, vt.Count())
	assert.Equal(t, 20, vt.New().Id())
}

func TestVarTrackerSkipTo(t *testing.T) {
	var vt VarTracker
	vt.SkipTo(5)
	assert.Equal(t, 5, vt.New().Id())
	vt.SkipTo(3)
	assert.Equal(t, 6, vt.New().Id(), "never moves backwards")
	assert.Equal(t, 2, vt.Count())
}

func TestFlattenLinks(t *testing.T) {
	var vt VarTracker
	a, b, c := vt.New(), vt.New(), vt.New()
	a.Bind(b)
	b.Bind(c)
	c.Bind(types.Int)

	vt.FlattenLinks()
	assert.Same(t, types.Int, a.Instance())
	assert.Same(t, types.Int, b.Instance())

	// After a reset only new allocations are tracked:
	vt.Reset()
	d, e := vt.New(), vt.New()
	x := types.NewVar(-1)
	x.Bind(types.Bool)
	e.Bind(x)
	d.Bind(e)
	vt.FlattenLinks()
	assert.Same(t, types.Bool, d.Instance())
	assert.Equal(t, 2, vt.Count())
}
