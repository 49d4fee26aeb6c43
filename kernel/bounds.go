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

// Package kernel implements the block-wise take and filter-to-indices
// primitives: bitmap block scanning, primitive/boolean take, and
// boolean/run-end filter materialization. It operates purely on
// coltype.Column buffers and never sees chunked or dictionary/extension
// wrapping - that composition lives one layer up, in package take.
package kernel

import (
	"fmt"

	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
)

// CheckIndexBounds validates indices against valuesLen; exported for
// callers (package take) that dispatch a layout kernel itself does not
// implement (e.g. Null) but still must enforce the same bounds
// invariant on.
func CheckIndexBounds(idx *coltype.Column, valuesLen int64) error {
	return checkIndexBounds(idx, valuesLen)
}

// checkIndexBounds validates that every valid (non-null) entry of idx
// addresses a row within [0, valuesLen). Null index slots are exempt:
// their payload is never read.
func checkIndexBounds(idx *coltype.Column, valuesLen int64) error {
	n := idx.Length
	for i := int64(0); i < n; i++ {
		if idx.MayHaveNulls() && !idx.IsValid(i) {
			continue
		}
		row := indexValueAt(idx, i)
		if row < 0 || row >= valuesLen {
			return fmt.Errorf("%w: index %d at position %d out of range [0, %d)", errs.ErrIndex, row, i, valuesLen)
		}
	}
	return nil
}

// indexValueAt reads logical index row i as an int64 regardless of the
// index column's physical byte width (8/16/32/64-bit).
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
