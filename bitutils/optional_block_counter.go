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

import "math"

// OptionalBitBlockCounter lets kernels write one code path that handles
// both "has a validity bitmap" and "has no validity bitmap" (therefore
// never null) inputs, by reporting synthetic all-set blocks when the
// bitmap pointer is absent.
type OptionalBitBlockCounter struct {
	counter   *BitBlockCounter
	hasBitmap bool
	pos, len  int64
}

// NewOptionalBitBlockCounter returns a counter for a possibly-nil bitmap.
// Prefer NewBitBlockCounter directly when the bitmap is known to be
// present.
func NewOptionalBitBlockCounter(bitmap []byte, offset, length int64) *OptionalBitBlockCounter {
	o := &OptionalBitBlockCounter{len: length, hasBitmap: bitmap != nil}
	if o.hasBitmap {
		o.counter = NewBitBlockCounter(bitmap, offset, length)
	}
	return o
}

// NextBlock returns the next word-sized block, or an all-set block of up
// to math.MaxInt16 bits when there is no bitmap.
func (o *OptionalBitBlockCounter) NextBlock() BitBlockCount {
	if o.hasBitmap {
		block := o.counter.NextWord()
		o.pos += int64(block.Len)
		return block
	}
	const maxBlock = math.MaxInt16
	n := minI64(maxBlock, o.len-o.pos)
	o.pos += n
	return BitBlockCount{Len: int16(n), Popcnt: int16(n)}
}
