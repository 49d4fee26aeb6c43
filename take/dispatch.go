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

package take

import (
	"fmt"

	"github.com/colvec/take/chunked"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/memory"
)

// gatherFor adapts arrayTake (the recursive, dictionary/extension-aware
// array/array gather) into the chunked.Gather shape the chunked
// dispatcher calls per chunk, so dispatch never needs to know about
// dictionary or extension recursion itself. The chunked-shape entry
// points always bounds-check each per-chunk gather; TakeOptions.BoundsCheck
// is only configurable through the direct array/array Take entry point,
// where a caller can reason about the one values column it bypasses
// validation for.
func gatherFor(pool memory.Allocator) chunked.Gather {
	return func(values, indices *coltype.Column) (*coltype.Column, error) {
		return arrayTake(values, indices, pool, true)
	}
}

// TakeChunkedArray is the chunked-values/array-indices case: each index
// resolves into whichever source chunk holds it.
func TakeChunkedArray(values *chunked.Chunked, indices *coltype.Column, pool memory.Allocator) (*coltype.Column, []int32, error) {
	return chunked.TakeChunkedArray(values, indices, gatherFor(pool))
}

// TakeArrayChunked is the array-values/chunked-indices case: one gather
// per index chunk, shape-preserving.
func TakeArrayChunked(values *coltype.Column, indices *chunked.Chunked, pool memory.Allocator) (*chunked.Chunked, error) {
	return chunked.TakeArrayChunked(values, indices, gatherFor(pool))
}

// TakeChunkedChunked is the fully chunked case: each index chunk is
// resolved against the whole chunked values column independently, and
// the per-index-chunk results are concatenated into a single chunk.
func TakeChunkedChunked(values, indices *chunked.Chunked, pool memory.Allocator) (*chunked.Chunked, error) {
	return chunked.TakeChunkedChunked(values, indices, gatherFor(pool), pool)
}

// Table is a minimal column-table: named chunked columns sharing a
// common row count, standing in for Arrow's arrow.Table/RecordBatch in
// this subsystem's scope.
type Table struct {
	Names   []string
	Columns []*chunked.Chunked
}

// TakeTable applies the chunked-values/array-indices gather
// independently to every column, the table-wide case 5 of the
// dispatch matrix: a table take is column-wise application of the
// chunked/array case, not a distinct algorithm.
func TakeTable(values *Table, indices *coltype.Column, pool memory.Allocator) (*Table, error) {
	out := &Table{Names: values.Names, Columns: make([]*chunked.Chunked, len(values.Columns))}
	for i, col := range values.Columns {
		res, _, err := TakeChunkedArray(col, indices, pool)
		if err != nil {
			return nil, fmt.Errorf("take table column %q: %w", values.Names[i], err)
		}
		column, err := chunked.NewChunked([]*coltype.Column{res})
		if err != nil {
			return nil, fmt.Errorf("take table column %q: %w", values.Names[i], err)
		}
		out.Columns[i] = column
	}
	return out, nil
}
