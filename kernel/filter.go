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
	"math"

	"github.com/colvec/take/bitutil"
	"github.com/colvec/take/bitutils"
	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/memory"
)

// maxFilterLength is the largest filter length FilterToIndices will
// address: a Boolean filter's output index widths (16/32-bit) top out
// at 32 bits. The limit is applied to every filter layout, including
// RunEndEncoded filters with a 64-bit run-end width.
const maxFilterLength = math.MaxUint32

// NullSelection controls how a null filter slot is handled when
// materializing matching row numbers.
type NullSelection int

const (
	// DropNulls omits a null filter row from the output entirely, the
	// same as a filter row that evaluated to false.
	DropNulls NullSelection = iota
	// EmitNulls keeps a null filter row in the output, as a null index
	// slot, preserving its position relative to the selected rows
	// around it.
	EmitNulls
)

// FilterToIndices materializes the row numbers a boolean or run-end
// encoded filter selects, as a freshly allocated FixedWidth index
// column. The output width is chosen automatically: 16-bit if every
// addressable row fits, otherwise 32-bit for a Boolean filter; a
// RunEndEncoded filter's output instead matches that filter's own
// run-end width, since its selected ranges are already expressed in
// that domain.
func FilterToIndices(filter *coltype.Column, policy NullSelection, pool memory.Allocator) (*coltype.Column, error) {
	if filter.Length > maxFilterLength {
		return nil, fmt.Errorf("%w: filter length %d exceeds the maximum addressable index range of %d", errs.ErrNotImplemented, filter.Length, maxFilterLength)
	}
	switch filter.Layout {
	case coltype.Boolean:
		return filterBooleanToIndices(filter, policy, pool)
	case coltype.RunEndEncoded:
		return filterREEToIndices(filter, policy, pool)
	default:
		return nil, fmt.Errorf("%w: FilterToIndices does not support layout %v", errs.ErrNotImplemented, filter.Layout)
	}
}

type selectedRow struct {
	row  int64
	null bool
}

// filterBooleanToIndices first reduces the filter to a single selection
// mask bitmap - value AND valid for DropNulls, value OR NOT valid for
// EmitNulls - using the same block-wise AllSet/NoneSet fast paths the
// block counters exist for, then walks the mask's set-bit runs once to
// emit row numbers in order.
func filterBooleanToIndices(filter *coltype.Column, policy NullSelection, pool memory.Allocator) (*coltype.Column, error) {
	n := filter.Length
	var mask []byte
	var maskOffset int64
	if !filter.MayHaveNulls() {
		mask, maskOffset = filter.Values, filter.Offset
	} else {
		mask = buildSelectionMask(filter, policy)
	}

	selected := make([]selectedRow, 0, n)
	err := bitutils.VisitSetBitRuns(mask, maskOffset, n, func(pos, length int64) error {
		for row := pos; row < pos+length; row++ {
			isNull := policy == EmitNulls && filter.MayHaveNulls() && !filter.IsValid(row)
			selected = append(selected, selectedRow{row: row, null: isNull})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buildIndexColumn(selected, chooseIndexWidth(n), pool)
}

// buildSelectionMask computes value-AND-valid (DropNulls) or
// value-OR-NOT-valid (EmitNulls) into a freshly allocated 0-offset
// bitmap, one block at a time via BinaryBitBlockCounter.
func buildSelectionMask(filter *coltype.Column, policy NullSelection) []byte {
	n := filter.Length
	mask := make([]byte, bitutil.BytesForBits(n))
	counter := bitutils.NewBinaryBitBlockCounter(filter.Values, filter.Validity, filter.Offset, filter.Offset, n)

	var pos int64
	for pos < n {
		var block bitutils.BitBlockCount
		if policy == DropNulls {
			block = counter.NextAndWord()
		} else {
			block = counter.NextOrNotWord()
		}
		switch {
		case block.AllSet():
			bitutil.SetBitsTo(mask, pos, int64(block.Len), true)
		case block.NoneSet():
			// already zero.
		default:
			for i := int64(0); i < int64(block.Len); i++ {
				row := pos + i
				var set bool
				if policy == DropNulls {
					set = filter.IsValid(row) && filter.BoolValue(row)
				} else {
					set = !filter.IsValid(row) || filter.BoolValue(row)
				}
				if set {
					bitutil.SetBit(mask, int(row))
				}
			}
		}
		pos += int64(block.Len)
	}
	return mask
}

func filterREEToIndices(filter *coltype.Column, policy NullSelection, pool memory.Allocator) (*coltype.Column, error) {
	if filter.REEValues == nil || filter.REEValues.Layout != coltype.Boolean {
		return nil, fmt.Errorf("%w: RunEndEncoded filter requires Boolean run values", errs.ErrInvalid)
	}
	var selected []selectedRow
	var start int64
	for i, end := range filter.RunEnds {
		runStart := start
		start = end
		valid := !filter.REEValues.MayHaveNulls() || filter.REEValues.IsValid(int64(i))
		if !valid {
			if policy == EmitNulls {
				for row := runStart; row < end; row++ {
					selected = append(selected, selectedRow{row: row, null: true})
				}
			}
			continue
		}
		if filter.REEValues.BoolValue(int64(i)) {
			for row := runStart; row < end; row++ {
				selected = append(selected, selectedRow{row: row})
			}
		}
	}
	return buildIndexColumn(selected, filter.RunEndWidth.Bytes(), pool)
}

// chooseIndexWidth picks the smallest of 16/32-bit that can address
// every row in [0, length).
func chooseIndexWidth(length int64) int {
	if length <= 1<<16 {
		return 2
	}
	return 4
}

func buildIndexColumn(selected []selectedRow, byteWidth int, pool memory.Allocator) (*coltype.Column, error) {
	n := int64(len(selected))
	out := &coltype.Column{Layout: coltype.FixedWidth, ByteWidth: byteWidth, Length: n}
	out.Values = memory.AllocateValues(pool, n, byteWidth)

	var nulls int64
	var validity []byte
	for _, s := range selected {
		if s.null {
			nulls++
		}
	}
	if nulls > 0 {
		validity = memory.AllocateBitmap(pool, n)
	}

	for i, s := range selected {
		if s.null {
			continue
		}
		if validity != nil {
			bitutil.SetBit(validity, i)
		}
		writeIndexElement(out.Values, i, s.row, byteWidth)
	}
	out.Validity = validity
	out.Nulls = nulls
	return out, nil
}

func writeIndexElement(buf []byte, pos int, value int64, byteWidth int) {
	switch byteWidth {
	case 2:
		v := uint16(value)
		buf[pos*2] = byte(v)
		buf[pos*2+1] = byte(v >> 8)
	case 4:
		v := uint32(value)
		buf[pos*4] = byte(v)
		buf[pos*4+1] = byte(v >> 8)
		buf[pos*4+2] = byte(v >> 16)
		buf[pos*4+3] = byte(v >> 24)
	default:
		v := uint64(value)
		for b := 0; b < 8; b++ {
			buf[pos*8+b] = byte(v >> (8 * b))
		}
	}
}
