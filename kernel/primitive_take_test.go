// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel_test

import (
	"testing"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/kernel"
	"github.com/colvec/take/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveTakeNoNulls(t *testing.T) {
	values := coltype.NewFixedWidth([]int32{10, 20, 30, 40}, nil, 0)
	indices := coltype.NewFixedWidth([]uint32{3, 0, 1}, nil, 0)

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	require.NoError(t, err)
	assert.Equal(t, []int32{40, 10, 20}, coltype.ValuesAs[int32](out))
	assert.Zero(t, out.NullCount())
}

func TestPrimitiveTakeNullIndices(t *testing.T) {
	values := coltype.NewFixedWidth([]int32{10, 20, 30}, nil, 0)
	idxValid := make([]byte, 1)
	bitutil.SetBit(idxValid, 0)
	bitutil.SetBit(idxValid, 2)
	indices := coltype.NewFixedWidth([]uint32{1, 99, 2}, idxValid, 1)

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.NullCount())
	assert.True(t, out.IsValid(0))
	assert.False(t, out.IsValid(1))
	assert.True(t, out.IsValid(2))
	got := coltype.ValuesAs[int32](out)
	assert.Equal(t, int32(20), got[0])
	assert.Equal(t, int32(30), got[2])
}

func TestPrimitiveTakeNullValues(t *testing.T) {
	valValid := make([]byte, 1)
	bitutil.SetBit(valValid, 0)
	bitutil.SetBit(valValid, 2)
	values := coltype.NewFixedWidth([]int32{10, 20, 30}, valValid, 1)
	indices := coltype.NewFixedWidth([]uint32{0, 1, 2}, nil, 0)

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.NullCount())
	assert.True(t, out.IsValid(0))
	assert.False(t, out.IsValid(1))
	assert.True(t, out.IsValid(2))
}

func TestPrimitiveTakeNullPayloadHygiene(t *testing.T) {
	values := coltype.NewFixedWidth([]int32{10, 20, 30}, nil, 0)
	idxValid := make([]byte, 1)
	bitutil.SetBit(idxValid, 0)
	indices := coltype.NewFixedWidth([]uint32{2, 99}, idxValid, 1)

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	require.NoError(t, err)
	got := coltype.ValuesAs[int32](out)
	assert.Equal(t, int32(0), got[1], "null payload slot must stay zeroed")
}

func TestPrimitiveTakeOutOfRangeIndex(t *testing.T) {
	values := coltype.NewFixedWidth([]int32{1, 2, 3}, nil, 0)
	indices := coltype.NewFixedWidth([]uint32{5}, nil, 0)

	_, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	assert.ErrorIs(t, err, errs.ErrIndex)
}

func TestPrimitiveTakeBoundsCheckDisabledSkipsValidation(t *testing.T) {
	values := coltype.NewFixedWidth([]int32{10, 20, 30}, nil, 0)
	// row 2 is logically out of range: trimming Length to 2 after
	// construction leaves the backing buffer with a 3rd in-bounds element.
	values.Length = 2
	indices := coltype.NewFixedWidth([]uint32{2}, nil, 0)

	_, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	assert.ErrorIs(t, err, errs.ErrIndex, "bounds check enabled must still reject it")

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, false)
	require.NoError(t, err, "bounds check disabled must skip validation entirely")
	assert.Equal(t, int32(30), coltype.ValuesAs[int32](out)[0])
}

func TestPrimitiveTakeAcrossBlockBoundary(t *testing.T) {
	// exercise a values/index length that spans more than one 64-bit block.
	n := 130
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i)
	}
	values := coltype.NewFixedWidth(vals, nil, 0)

	idxValid := make([]byte, (n+7)/8)
	idx := make([]uint64, n)
	for i := range idx {
		idx[i] = uint64(n - 1 - i)
		if i%7 != 0 {
			bitutil.SetBit(idxValid, i)
		}
	}
	indices := coltype.NewFixedWidth(idx, idxValid, coltype.UnknownNullCount)

	out, err := kernel.PrimitiveTake(values, indices, memory.DefaultAllocator, true)
	require.NoError(t, err)
	got := coltype.ValuesAs[int64](out)
	for i := 0; i < n; i++ {
		if i%7 != 0 {
			assert.True(t, out.IsValid(int64(i)))
			assert.Equal(t, int64(n-1-i), got[i])
		} else {
			assert.False(t, out.IsValid(int64(i)))
		}
	}
}
