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

package bitutils

import "github.com/colvec/take/bitutil"

// BinaryBitBlockCounter walks two bitmaps of equal length in lockstep,
// computing either the popcount of their bitwise AND (used by the
// filter materializer's DROP path: "selected AND valid") or of
// a OR-NOT-b (used by its EMIT_NULL path: "selected OR null").
type BinaryBitBlockCounter struct {
	left, right             []byte
	leftOffset, rightOffset int64
	pos, length             int64
}

// NewBinaryBitBlockCounter returns a counter over two same-length bit
// ranges, left[leftOffset:leftOffset+length) and right[rightOffset:rightOffset+length).
func NewBinaryBitBlockCounter(left, right []byte, leftOffset, rightOffset, length int64) *BinaryBitBlockCounter {
	return &BinaryBitBlockCounter{
		left: left, right: right,
		leftOffset: leftOffset, rightOffset: rightOffset,
		length: length,
	}
}

func (b *BinaryBitBlockCounter) nextBlockLen() int64 {
	return minI64(wordBits, b.length-b.pos)
}

// NextAndWord returns the popcount of left & right over the next block.
func (b *BinaryBitBlockCounter) NextAndWord() BitBlockCount {
	if b.pos >= b.length {
		return BitBlockCount{}
	}
	n := b.nextBlockLen()
	var popcnt int16
	for i := int64(0); i < n; i++ {
		if bitutil.BitIsSet(b.left, int(b.leftOffset+b.pos+i)) && bitutil.BitIsSet(b.right, int(b.rightOffset+b.pos+i)) {
			popcnt++
		}
	}
	b.pos += n
	return BitBlockCount{Len: int16(n), Popcnt: popcnt}
}

// NextOrNotWord returns the popcount of left | ~right over the next block
// ("selected or null" when left is the filter's value bitmap and right is
// its validity bitmap).
func (b *BinaryBitBlockCounter) NextOrNotWord() BitBlockCount {
	if b.pos >= b.length {
		return BitBlockCount{}
	}
	n := b.nextBlockLen()
	var popcnt int16
	for i := int64(0); i < n; i++ {
		if bitutil.BitIsSet(b.left, int(b.leftOffset+b.pos+i)) || bitutil.BitIsNotSet(b.right, int(b.rightOffset+b.pos+i)) {
			popcnt++
		}
	}
	b.pos += n
	return BitBlockCount{Len: int16(n), Popcnt: popcnt}
}
