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

package chunked

import (
	"fmt"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/memory"
)

// Gather performs a single contiguous take: values and indices are both
// plain (non-chunked) Columns. Dispatch never calls the primitive/boolean
// kernels directly - it is supplied a Gather so that the caller (the
// take package) retains ownership of dictionary/extension recursion and
// byte-width dispatch, keeping this package free of an import cycle.
type Gather func(values, indices *coltype.Column) (*coltype.Column, error)

// TakeArrayArray is the trivial shape: both operands are plain arrays,
// so dispatch reduces to a single Gather call.
func TakeArrayArray(values, indices *coltype.Column, gather Gather) (*coltype.Column, error) {
	return gather(values, indices)
}

// TakeArrayChunked takes from a single array using a chunked indices
// column, gathering once per index chunk and returning a Chunked result
// with one output chunk per index chunk - the natural shape-preserving
// choice, since nothing here needs to merge chunks together.
func TakeArrayChunked(values *coltype.Column, indices *Chunked, gather Gather) (*Chunked, error) {
	out := make([]*coltype.Column, len(indices.Chunks))
	for i, idxChunk := range indices.Chunks {
		res, err := gather(values, idxChunk)
		if err != nil {
			return nil, fmt.Errorf("take array/chunked at index chunk %d: %w", i, err)
		}
		out[i] = res
	}
	return NewChunked(out)
}

// TakeChunkedArray is the "interesting case": a chunked values column
// addressed by a single flat array of indices. Each index may land in a
// different chunk, so the indices are first partitioned per source
// chunk (recording each row's origin chunk in a parallel chunkOf
// array), gathered once per touched chunk, and finally reassembled into
// a single contiguous output in original row order without ever
// sorting the indices.
func TakeChunkedArray(values *Chunked, indices *coltype.Column, gather Gather) (result *coltype.Column, chunkOf []int32, err error) {
	n := indices.Length
	numChunks := values.NumChunks()
	chunkOf = make([]int32, n)

	if numChunks == 0 {
		// Zero chunks behaves as a single empty chunk (§9): every valid
		// index is out of range, but a null index slot must still
		// produce a null output row rather than touch a nonexistent
		// chunk.
		for i := int64(0); i < n; i++ {
			if indices.MayHaveNulls() && !indices.IsValid(i) {
				continue
			}
			return nil, nil, fmt.Errorf("%w: index %d at position %d out of range for chunked column of length 0", errs.ErrIndex, indexValueAt(indices, i), i)
		}
		return coltype.NewNull(n), chunkOf, nil
	}

	type collected struct {
		offsets []int64
		valid   []bool
		outPos  []int64
	}
	perChunk := make([]collected, numChunks)

	for i := int64(0); i < n; i++ {
		if indices.MayHaveNulls() && !indices.IsValid(i) {
			chunkOf[i] = 0
			perChunk[0].offsets = append(perChunk[0].offsets, 0)
			perChunk[0].valid = append(perChunk[0].valid, false)
			perChunk[0].outPos = append(perChunk[0].outPos, i)
			continue
		}
		row := indexValueAt(indices, i)
		resolved := values.Resolve(row)
		if resolved.ChunkIndex >= numChunks {
			return nil, nil, fmt.Errorf("%w: index %d out of range for chunked column of length %d", errs.ErrIndex, row, values.Len())
		}
		chunkOf[i] = int32(resolved.ChunkIndex)
		c := &perChunk[resolved.ChunkIndex]
		c.offsets = append(c.offsets, resolved.Offset)
		c.valid = append(c.valid, true)
		c.outPos = append(c.outPos, i)
	}

	var out *coltype.Column
	for chunkIdx, c := range perChunk {
		if len(c.offsets) == 0 {
			continue
		}
		var validity []byte
		hasInvalid := false
		for _, v := range c.valid {
			if !v {
				hasInvalid = true
				break
			}
		}
		if hasInvalid {
			validity = make([]byte, bitutil.BytesForBits(int64(len(c.valid))))
			for j, v := range c.valid {
				if v {
					bitutil.SetBit(validity, j)
				}
			}
		}
		idxCol := coltype.NewFixedWidth(c.offsets, validity, coltype.UnknownNullCount)
		partial, err := gather(values.Chunks[chunkIdx], idxCol)
		if err != nil {
			return nil, nil, fmt.Errorf("take chunked/array at value chunk %d: %w", chunkIdx, err)
		}
		if out == nil {
			out = allocateLike(partial, n)
		}
		scatterInto(out, partial, c.outPos)
	}
	if out == nil {
		out = coltype.NewNull(n)
	}
	return out, chunkOf, nil
}

// TakeChunkedChunked handles both operands chunked (spec.md §4.F case
// 4): each index chunk is resolved against the full chunked values
// column independently via TakeChunkedArray, then the per-index-chunk
// results are concatenated back into a single contiguous chunk, the
// same way the spec literally describes this case - "apply case 3,
// concatenate the per-chunk result into a single contiguous chunk".
func TakeChunkedChunked(values *Chunked, indices *Chunked, gather Gather, pool memory.Allocator) (*Chunked, error) {
	parts := make([]*coltype.Column, len(indices.Chunks))
	for i, idxChunk := range indices.Chunks {
		res, _, err := TakeChunkedArray(values, idxChunk, gather)
		if err != nil {
			return nil, fmt.Errorf("take chunked/chunked at index chunk %d: %w", i, err)
		}
		parts[i] = res
	}
	flat, err := coltype.Concatenate(parts, pool)
	if err != nil {
		return nil, fmt.Errorf("take chunked/chunked: %w", err)
	}
	return NewChunked([]*coltype.Column{flat})
}

// indexValueAt reads logical index row i as an int64 regardless of the
// index column's physical byte width.
func indexValueAt(idx *coltype.Column, i int64) int64 {
	switch idx.ByteWidth {
	case 1:
		return int64(coltype.ValuesAs[uint8](idx)[i])
	case 2:
		return int64(coltype.ValuesAs[uint16](idx)[i])
	case 4:
		return int64(coltype.ValuesAs[uint32](idx)[i])
	default:
		return int64(coltype.ValuesAs[uint64](idx)[i])
	}
}

func allocateLike(sample *coltype.Column, length int64) *coltype.Column {
	out := &coltype.Column{Layout: sample.Layout, ByteWidth: sample.ByteWidth, Length: length}
	out.Values = memory.AllocateValues(memory.DefaultAllocator, length, sample.ByteWidth)
	out.Validity = memory.AllocateBitmap(memory.DefaultAllocator, length)
	out.Nulls = length
	return out
}

// scatterInto copies partial's rows into out at the row positions
// outPos records, updating out's validity bit per row and decrementing
// its (initially all-null) null count as valid rows are written.
func scatterInto(out, partial *coltype.Column, outPos []int64) {
	byteWidth := out.ByteWidth
	for j, pos := range outPos {
		if partial.MayHaveNulls() && !partial.IsValid(int64(j)) {
			continue
		}
		if out.Validity != nil && !bitutil.BitIsSet(out.Validity, int(pos)) {
			bitutil.SetBit(out.Validity, int(pos))
			out.Nulls--
		}
		if byteWidth == 0 {
			if partial.BoolValue(int64(j)) {
				bitutil.SetBit(out.Values, int(pos))
			}
			continue
		}
		src := int(partial.Offset+int64(j)) * byteWidth
		dst := int(pos) * byteWidth
		copy(out.Values[dst:dst+byteWidth], partial.Values[src:src+byteWidth])
	}
}
