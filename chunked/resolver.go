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

// Package chunked models a column split into ordered, independently
// addressable chunks, and the resolver that maps a logical row number
// to the (chunk, offset-within-chunk) pair that holds it.
package chunked

import (
	"fmt"
	"sort"

	"github.com/JohnCGriffin/overflow"

	"github.com/colvec/take/errs"
)

// Resolved identifies a single logical row's physical location.
type Resolved struct {
	// ChunkIndex is the index into the resolver's chunk lengths. It
	// equals the chunk count for an out-of-range row.
	ChunkIndex int
	// Offset is the row's offset within chunk ChunkIndex.
	Offset int64
}

// Resolver maps logical row indices to chunk-relative offsets via
// binary search over cumulative chunk-length boundaries, the same
// structural approach the teacher's array.Chunked.NewSlice uses to walk
// chunks, generalized to O(log n) instead of a linear scan.
type Resolver struct {
	// offsets[i] is the cumulative row count before chunk i; offsets has
	// len(chunkLengths)+1 entries, offsets[len-1] is the total row count.
	offsets []int64
}

// NewResolver builds a Resolver from the lengths of each chunk in
// order. Cumulative offsets are computed with checked addition since a
// pathological set of chunk lengths could overflow int64; the core
// never terminates the process over bad input, so overflow comes back
// as an error rather than a panic.
func NewResolver(chunkLengths []int64) (*Resolver, error) {
	offsets := make([]int64, len(chunkLengths)+1)
	var cum int64
	for i, l := range chunkLengths {
		next, ok := overflow.Add64(cum, l)
		if !ok {
			return nil, fmt.Errorf("%w: cumulative chunk length overflows int64 at chunk %d", errs.ErrIndex, i)
		}
		offsets[i] = cum
		cum = next
	}
	offsets[len(chunkLengths)] = cum
	return &Resolver{offsets: offsets}, nil
}

// NumChunks returns the number of chunks the resolver was built over.
func (r *Resolver) NumChunks() int { return len(r.offsets) - 1 }

// Length returns the total logical row count across all chunks.
func (r *Resolver) Length() int64 { return r.offsets[len(r.offsets)-1] }

// Resolve maps logical row to its chunk and within-chunk offset. A row
// outside [0, Length()) resolves to ChunkIndex == NumChunks(), signaling
// out-of-range to the caller rather than panicking, so bounds checking
// stays the caller's single responsibility.
func (r *Resolver) Resolve(row int64) Resolved {
	n := r.NumChunks()
	if row < 0 || row >= r.Length() {
		return Resolved{ChunkIndex: n}
	}
	// sort.Search finds the smallest i such that offsets[i+1] > row,
	// i.e. the chunk whose [offsets[i], offsets[i+1]) range contains row.
	idx := sort.Search(n, func(i int) bool {
		return r.offsets[i+1] > row
	})
	return Resolved{ChunkIndex: idx, Offset: row - r.offsets[idx]}
}
