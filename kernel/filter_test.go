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
	"math"
	"testing"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/kernel"
	"github.com/colvec/take/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterToIndicesDropNulls(t *testing.T) {
	valid := make([]byte, 1)
	bitutil.SetBit(valid, 0)
	bitutil.SetBit(valid, 1)
	bitutil.SetBit(valid, 3)
	filter := boolColumn(true, false, true, true)
	filter.Validity = valid
	filter.Nulls = 1 // row 2 is null

	out, err := kernel.FilterToIndices(filter, kernel.DropNulls, memory.DefaultAllocator)
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Length)
	assert.Zero(t, out.NullCount())
	got := coltype.ValuesAs[uint16](out)
	assert.Equal(t, []uint16{0, 3}, got)
}

func TestFilterToIndicesEmitNulls(t *testing.T) {
	valid := make([]byte, 1)
	bitutil.SetBit(valid, 0)
	bitutil.SetBit(valid, 1)
	bitutil.SetBit(valid, 3)
	filter := boolColumn(true, false, true, true)
	filter.Validity = valid
	filter.Nulls = 1 // row 2 is null

	out, err := kernel.FilterToIndices(filter, kernel.EmitNulls, memory.DefaultAllocator)
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Length)
	assert.EqualValues(t, 1, out.NullCount())
	assert.True(t, out.IsValid(0))
	assert.False(t, out.IsValid(1))
	assert.True(t, out.IsValid(2))
	got := coltype.ValuesAs[uint16](out)
	assert.Equal(t, uint16(0), got[0])
	assert.Equal(t, uint16(3), got[2])
}

func TestFilterToIndicesWidthSelection(t *testing.T) {
	filter := boolColumn(true, true)
	out, err := kernel.FilterToIndices(filter, kernel.DropNulls, memory.DefaultAllocator)
	require.NoError(t, err)
	assert.Equal(t, 2, out.ByteWidth)
}

func TestFilterToIndicesRejectsOversizedFilter(t *testing.T) {
	// A filter this long has no representable 16/32-bit output index; no
	// Values/Validity buffer is allocated since the length check must
	// reject it before either filter algorithm ever runs.
	filter := &coltype.Column{Layout: coltype.Boolean, Length: int64(math.MaxUint32) + 1}
	_, err := kernel.FilterToIndices(filter, kernel.DropNulls, memory.DefaultAllocator)
	assert.ErrorIs(t, err, errs.ErrNotImplemented)
}

func TestFilterREEToIndices(t *testing.T) {
	// runs: [0,3)=true, [3,5)=false, [5,6)=true
	runValues := boolColumn(true, false, true)
	filter := &coltype.Column{
		Layout:      coltype.RunEndEncoded,
		Length:      6,
		RunEnds:     []int64{3, 5, 6},
		REEValues:   runValues,
		RunEndWidth: coltype.RunEndI32,
	}
	out, err := kernel.FilterToIndices(filter, kernel.DropNulls, memory.DefaultAllocator)
	require.NoError(t, err)
	assert.Equal(t, 4, out.ByteWidth)
	got := coltype.ValuesAs[uint32](out)
	assert.Equal(t, []uint32{0, 1, 2, 5}, got)
}
