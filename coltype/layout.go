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

// Package coltype defines the minimal columnar data model the take/filter
// subsystem operates on: a contiguous Column (fixed-width primitive,
// bit-packed boolean, null-typed, run-end-encoded, dictionary or
// extension) and its validity-bitmap invariants.
//
// Variable-length (string/list), union, and nested physical layouts, and
// the full type-registry/metadata machinery that would describe a
// logical Arrow-style type system, are external collaborators per the
// take/filter core's scope and are not modeled here.
package coltype

// Layout identifies the physical representation of a Column's value
// buffer(s).
type Layout int

const (
	// Null is the null-typed layout: no value or validity buffer, every
	// logical row is null.
	Null Layout = iota
	// Boolean is a bit-packed boolean value buffer.
	Boolean
	// FixedWidth is a fixed-width primitive value buffer (1/2/4/8/16/32
	// bytes per element), used for integers, floats, decimals,
	// intervals, and any other fixed-size physical type.
	FixedWidth
	// RunEndEncoded is a run-end encoded layout: a monotonically
	// increasing run-ends array paired with a values array.
	RunEndEncoded
	// Dictionary wraps a fixed-width index column plus a shared
	// dictionary of values.
	Dictionary
	// Extension wraps an arbitrary storage column under an extension
	// type tag.
	Extension
)

// RunEndWidth identifies the integer width of an REE column's run-ends
// array, matching Arrow's I16/I32/I64 run-end types.
type RunEndWidth int

const (
	RunEndI16 RunEndWidth = 2
	RunEndI32 RunEndWidth = 4
	RunEndI64 RunEndWidth = 8
)

// Bytes returns the run-end width in bytes.
func (w RunEndWidth) Bytes() int { return int(w) }
