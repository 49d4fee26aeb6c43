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
	"unsafe"

	"github.com/colvec/take/bitutil"
	"golang.org/x/exp/constraints"
)

// UnknownNullCount is the sentinel stored in Column.Nulls meaning "this
// column may have nulls, but the count has not been computed".
const UnknownNullCount int64 = -1

// Column is a contiguous columnar value sequence (spec data model §3):
// a length and offset in rows, a null count (or UnknownNullCount), an
// optional packed validity bitmap, and one or more physical value
// buffers whose meaning depends on Layout.
type Column struct {
	Layout Layout

	// ByteWidth is the per-element byte width for FixedWidth columns
	// (1, 2, 4, 8, 16 or 32) and the physical index width for
	// Dictionary columns; it is 0 for Boolean/Null/RunEndEncoded/
	// Extension columns (an REE column's run-end width is RunEndWidth).
	ByteWidth int

	Length int64
	Offset int64
	Nulls  int64

	// Validity is the packed validity bitmap addressing bits
	// [Offset, Offset+Length). May be nil when Nulls==0; Null-layout
	// columns have none.
	Validity []byte

	// Values holds the packed value buffer for FixedWidth (ByteWidth*
	// (Offset+Length) bytes) and Boolean (bit-packed) layouts. Unused
	// for Null, RunEndEncoded, Dictionary and Extension.
	Values []byte

	// RunEnds and REEValues are populated for RunEndEncoded columns.
	// RunEnds holds the normalized (always int64, regardless of the
	// declared RunEndWidth) monotonically increasing run boundaries;
	// the last entry equals Offset+Length. REEValues holds one logical
	// value per run and shares its index domain with RunEnds.
	RunEnds       []int64
	REEValues     *Column
	RunEndWidth   RunEndWidth

	// Dictionary is populated for Dictionary columns: the Column itself
	// holds the physical indices (as a FixedWidth column's
	// ByteWidth/Values/Validity), and Dictionary points at the shared
	// values array that those indices address.
	Dictionary *Column

	// Storage is populated for Extension columns: the underlying
	// physical column that ExtensionName logically wraps.
	Storage       *Column
	ExtensionName string
}

// MayHaveNulls reports whether any logical row might be null. Matches
// the teacher's `values.Nulls != 0` check: an unknown null count (-1)
// is treated conservatively as "may have nulls".
func (c *Column) MayHaveNulls() bool {
	return c.Nulls != 0
}

// NullCount resolves Nulls, computing it from the validity bitmap if it
// is currently UnknownNullCount.
func (c *Column) NullCount() int64 {
	if c.Nulls != UnknownNullCount {
		return c.Nulls
	}
	if c.Validity == nil {
		return 0
	}
	set := bitutil.CountSetBits(c.Validity, int(c.Offset), int(c.Length))
	return c.Length - int64(set)
}

// IsValid reports whether logical row i (0-indexed from Offset) is
// valid. A Null-layout column has no valid rows; any other column with
// no validity bitmap has no nulls.
func (c *Column) IsValid(i int64) bool {
	if c.Layout == Null {
		return false
	}
	if c.Validity == nil {
		return true
	}
	return bitutil.BitIsSet(c.Validity, int(c.Offset+i))
}

// NewNull returns a Null-typed column of the given length: every row is
// null and there is no value or validity buffer.
func NewNull(length int64) *Column {
	return &Column{Layout: Null, Length: length, Nulls: length}
}

// NewBoolean returns a Boolean column from a bit-packed values buffer.
// valid may be nil, meaning no row is null.
func NewBoolean(values []byte, length int64, valid []byte, nulls int64) *Column {
	return &Column{Layout: Boolean, Values: values, Length: length, Validity: valid, Nulls: nulls}
}

// NewFixedWidthRaw returns a FixedWidth column directly from a packed
// byte buffer, used for widths (16, 32 bytes) with no corresponding Go
// numeric type, e.g. decimal128/decimal256.
func NewFixedWidthRaw(byteWidth int, values []byte, length int64, valid []byte, nulls int64) *Column {
	return &Column{Layout: FixedWidth, ByteWidth: byteWidth, Values: values, Length: length, Validity: valid, Nulls: nulls}
}

// FixedWidthElem is the set of Go element types NewFixedWidth accepts;
// each maps directly onto a physical byte width via unsafe.Sizeof. Built
// from golang.org/x/exp/constraints the same way the teacher's
// exec.IntTypes/UintTypes/FloatTypes are, since take only ever copies
// bits and never interprets them arithmetically.
type FixedWidthElem interface {
	constraints.Integer | constraints.Float
}

// NewFixedWidth builds a FixedWidth column by reinterpreting vals as a
// raw byte buffer; it does not copy. valid may be nil.
func NewFixedWidth[T FixedWidthElem](vals []T, valid []byte, nulls int64) *Column {
	var zero T
	w := int(unsafe.Sizeof(zero))
	c := &Column{Layout: FixedWidth, ByteWidth: w, Length: int64(len(vals)), Validity: valid, Nulls: nulls}
	if len(vals) > 0 {
		c.Values = unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*w)
	}
	return c
}

// ValuesAs reinterprets a FixedWidth column's value buffer (honoring
// Offset and Length) as a []T slice without copying. The caller is
// responsible for requesting a T whose size matches c.ByteWidth.
func ValuesAs[T FixedWidthElem](c *Column) []T {
	total := int(c.Offset + c.Length)
	if total == 0 || len(c.Values) == 0 {
		return nil
	}
	full := unsafe.Slice((*T)(unsafe.Pointer(&c.Values[0])), total)
	return full[c.Offset:]
}

// BoolValue returns the boolean value buffer bit at logical row i
// (0-indexed from Offset). The payload of a null slot is unspecified.
func (c *Column) BoolValue(i int64) bool {
	return bitutil.BitIsSet(c.Values, int(c.Offset+i))
}
