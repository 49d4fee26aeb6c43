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

package coltype

import (
	"fmt"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/memory"
)

// Concatenate materializes a single contiguous Column holding every row
// of chunks in order. It is the collaborator the chunked dispatcher's
// "chunked values, chunked indices" case uses to flatten the
// per-index-chunk results into one array.
//
// Only Boolean and FixedWidth layouts are supported directly; Null
// columns concatenate trivially. RunEndEncoded, Dictionary and
// Extension inputs are rejected, mirroring the take/filter core's scope
// (recursive composition for those layouts happens one level up, in the
// caller that owns type-specific knowledge of storage/indices).
func Concatenate(chunks []*Column, pool memory.Allocator) (*Column, error) {
	if len(chunks) == 0 {
		return NewNull(0), nil
	}
	layout := chunks[0].Layout
	var total int64
	for _, c := range chunks {
		if c.Layout != layout {
			return nil, fmt.Errorf("%w: concatenate requires uniform layout, got %v and %v", errs.ErrInvalid, layout, c.Layout)
		}
		total += c.Length
	}

	switch layout {
	case Null:
		return NewNull(total), nil
	case Boolean, FixedWidth:
		return concatenateBitOrFixed(chunks, layout, total, pool)
	default:
		return nil, fmt.Errorf("%w: concatenate does not support layout %v", errs.ErrNotImplemented, layout)
	}
}

func concatenateBitOrFixed(chunks []*Column, layout Layout, total int64, pool memory.Allocator) (*Column, error) {
	byteWidth := chunks[0].ByteWidth

	var anyNulls bool
	for _, c := range chunks {
		if c.MayHaveNulls() {
			anyNulls = true
			break
		}
	}

	out := &Column{Layout: layout, ByteWidth: byteWidth, Length: total}
	out.Values = memory.AllocateValues(pool, total, byteWidth)
	if anyNulls {
		out.Validity = memory.AllocateBitmap(pool, total)
	}

	var pos int64
	var nulls int64
	for _, c := range chunks {
		if anyNulls {
			for i := int64(0); i < c.Length; i++ {
				if c.IsValid(i) {
					bitutil.SetBit(out.Validity, int(pos+i))
				} else {
					nulls++
				}
			}
		}
		copyValues(out, pos, c, byteWidth)
		pos += c.Length
	}
	if anyNulls {
		out.Nulls = nulls
	}
	return out, nil
}

func copyValues(dst *Column, dstRow int64, src *Column, byteWidth int) {
	if byteWidth == 0 {
		// Boolean: bit-packed values buffer, copy bit by bit.
		for i := int64(0); i < src.Length; i++ {
			if src.BoolValue(i) {
				bitutil.SetBit(dst.Values, int(dstRow+i))
			}
		}
		return
	}
	srcStart := int(src.Offset) * byteWidth
	n := int(src.Length) * byteWidth
	copy(dst.Values[int(dstRow)*byteWidth:], src.Values[srcStart:srcStart+n])
}
