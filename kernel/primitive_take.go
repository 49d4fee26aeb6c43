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

package kernel

import (
	"fmt"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/bitutils"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/memory"
)

// PrimitiveTake gathers values[indices[i]] into a freshly allocated
// FixedWidth column of the same byte width as values, honoring the
// spec's null-payload hygiene invariant: a null output slot's bytes are
// left at whatever the allocator zero-filled them to, never partially
// written. When boundsCheck is true, every non-null index is validated
// against values' length first; callers that have already validated
// indices out-of-band may pass false to skip the redundant O(n) scan.
func PrimitiveTake(values, indices *coltype.Column, pool memory.Allocator, boundsCheck bool) (*coltype.Column, error) {
	if values.Layout != coltype.FixedWidth && values.Layout != coltype.Boolean {
		return nil, fmt.Errorf("%w: PrimitiveTake requires a FixedWidth or Boolean values column, got %v", errs.ErrInvalid, values.Layout)
	}
	if boundsCheck {
		if err := checkIndexBounds(indices, values.Length); err != nil {
			return nil, err
		}
	}

	n := indices.Length
	byteWidth := values.ByteWidth
	out := &coltype.Column{Layout: coltype.FixedWidth, ByteWidth: byteWidth, Length: n}
	out.Values = memory.AllocateValues(pool, n, byteWidth)

	needsValidity := indices.MayHaveNulls() || values.MayHaveNulls()
	if needsValidity {
		out.Validity = memory.AllocateBitmap(pool, n)
	}

	var validCount int64
	valuesHaveNulls := values.MayHaveNulls()

	var idxValidity []byte
	if indices.MayHaveNulls() {
		idxValidity = indices.Validity
	}
	counter := bitutils.NewOptionalBitBlockCounter(idxValidity, indices.Offset, n)

	var pos int64
	for pos < n {
		block := counter.NextBlock()
		switch {
		case !valuesHaveNulls && block.AllSet():
			copyBlockFast(out, values, indices, pos, block.Len, byteWidth)
			if out.Validity != nil {
				setValidityRange(out.Validity, pos, int64(block.Len))
			}
			validCount += int64(block.Len)
		case block.NoneSet():
			// leave zero-initialized, already null.
		case !valuesHaveNulls:
			validCount += copyBlockPartial(out, values, indices, pos, int64(block.Len), byteWidth, false)
		default:
			// values may have nulls: every slot in the block, even an
			// all-set index block, needs a per-row value-validity check.
			validCount += copyBlockPartial(out, values, indices, pos, int64(block.Len), byteWidth, true)
		}
		pos += int64(block.Len)
	}

	if out.Validity != nil {
		out.Nulls = n - validCount
	} else {
		out.Nulls = 0
	}
	return out, nil
}

func copyBlockFast(out, values, indices *coltype.Column, start int64, blockLen int16, byteWidth int) {
	for i := int64(0); i < int64(blockLen); i++ {
		row := indexValueAt(indices, start+i)
		copyElement(out, start+i, values, row, byteWidth)
	}
}

// copyBlockPartial copies each row in [start, start+blockLen) whose
// index is valid (and, if checkValueValidity, whose addressed value row
// is also valid), returning the count of rows actually written valid.
func copyBlockPartial(out, values, indices *coltype.Column, start, blockLen int64, byteWidth int, checkValueValidity bool) int64 {
	var written int64
	for i := int64(0); i < blockLen; i++ {
		pos := start + i
		if indices.MayHaveNulls() && !indices.IsValid(pos) {
			continue
		}
		row := indexValueAt(indices, pos)
		if checkValueValidity && !values.IsValid(row) {
			continue
		}
		copyElement(out, pos, values, row, byteWidth)
		if out.Validity != nil {
			bitutil.SetBit(out.Validity, int(pos))
		}
		written++
	}
	return written
}

func copyElement(out *coltype.Column, outRow int64, values *coltype.Column, valuesRow int64, byteWidth int) {
	if byteWidth == 0 {
		if values.BoolValue(valuesRow) {
			bitutil.SetBit(out.Values, int(outRow))
		}
		return
	}
	src := int(values.Offset+valuesRow) * byteWidth
	dst := int(outRow) * byteWidth
	copy(out.Values[dst:dst+byteWidth], values.Values[src:src+byteWidth])
}

func setValidityRange(validity []byte, start, length int64) {
	for i := int64(0); i < length; i++ {
		bitutil.SetBit(validity, int(start+i))
	}
}
