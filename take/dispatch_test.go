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

package take_test

import (
	"testing"

	"github.com/colvec/take/chunked"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/memory"
	"github.com/colvec/take/take"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fwCol(vals ...int64) *coltype.Column {
	return coltype.NewFixedWidth(vals, nil, 0)
}

func mustChunked(t *testing.T, chunks []*coltype.Column) *chunked.Chunked {
	t.Helper()
	c, err := chunked.NewChunked(chunks)
	require.NoError(t, err)
	return c
}

func TestTakeChunkedArrayScenarioS5(t *testing.T) {
	values := mustChunked(t, []*coltype.Column{fwCol(1, 2), fwCol(3, 4, 5), fwCol(6)})
	indices := fwCol(5, 0, 3, 2)

	result, chunkOf, err := take.TakeChunkedArray(values, indices, memory.DefaultAllocator)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 0, 1, 1}, chunkOf)
	assert.Equal(t, []int64{6, 1, 4, 3}, coltype.ValuesAs[int64](result))
}

func TestTakeArrayChunkedShapePreserved(t *testing.T) {
	values := fwCol(100, 200, 300)
	indices := mustChunked(t, []*coltype.Column{fwCol(0, 2), fwCol(1)})

	result, err := take.TakeArrayChunked(values, indices, memory.DefaultAllocator)
	require.NoError(t, err)
	require.Len(t, result.Chunks, 2)
	assert.Equal(t, []int64{100, 300}, coltype.ValuesAs[int64](result.Chunks[0]))
	assert.Equal(t, []int64{200}, coltype.ValuesAs[int64](result.Chunks[1]))
}

func TestTakeChunkedChunked(t *testing.T) {
	values := mustChunked(t, []*coltype.Column{fwCol(1, 2), fwCol(3, 4, 5)})
	indices := mustChunked(t, []*coltype.Column{fwCol(4, 1), fwCol(0)})

	result, err := take.TakeChunkedChunked(values, indices, memory.DefaultAllocator)
	require.NoError(t, err)
	require.Len(t, result.Chunks, 1)
	assert.Equal(t, []int64{5, 2, 1}, coltype.ValuesAs[int64](result.Chunks[0]))
}

func TestTakeTableAppliesColumnWise(t *testing.T) {
	tbl := &take.Table{
		Names: []string{"a", "b"},
		Columns: []*chunked.Chunked{
			mustChunked(t, []*coltype.Column{fwCol(1, 2), fwCol(3)}),
			mustChunked(t, []*coltype.Column{fwCol(10, 20), fwCol(30)}),
		},
	}
	indices := fwCol(2, 0)
	out, err := take.TakeTable(tbl, indices, memory.DefaultAllocator)
	require.NoError(t, err)
	require.Len(t, out.Columns, 2)
	assert.Equal(t, []int64{3, 1}, coltype.ValuesAs[int64](out.Columns[0].Chunks[0]))
	assert.Equal(t, []int64{30, 10}, coltype.ValuesAs[int64](out.Columns[1].Chunks[0]))
}
