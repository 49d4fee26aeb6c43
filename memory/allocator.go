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

// Package memory provides the buffer pool collaborator that take and
// filter kernels allocate their output buffers from.
package memory

import "github.com/colvec/take/bitutil"

// Allocator is the pool collaborator every kernel output is allocated
// from. Implementations must zero-fill returned buffers: kernels rely on
// that to leave null payload slots zeroed without writing them
// explicitly (spec's null-payload hygiene property).
type Allocator interface {
	Allocate(size int) []byte
	Free(buf []byte)
}

// GoAllocator is the default Allocator, backed directly by the Go
// runtime's allocator. It is safe to use from multiple goroutines.
type GoAllocator struct{}

// NewGoAllocator returns a new GoAllocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate returns a zeroed byte slice of the requested size.
func (a *GoAllocator) Allocate(size int) []byte { return make([]byte, size) }

// Free is a no-op: GoAllocator relies entirely on the garbage collector.
func (a *GoAllocator) Free(buf []byte) {}

// DefaultAllocator is a shared GoAllocator usable anywhere an Allocator
// is required but the caller has no pool of its own.
var DefaultAllocator Allocator = NewGoAllocator()

// AllocateBitmap allocates a zeroed validity bitmap large enough to
// address length bits.
func AllocateBitmap(a Allocator, length int64) []byte {
	return a.Allocate(int(bitutil.BytesForBits(length)))
}

// AllocateValues allocates a zeroed value buffer for length elements of
// byteWidth bytes each (byteWidth==0 is treated as a 1-bit-per-element
// boolean buffer).
func AllocateValues(a Allocator, length int64, byteWidth int) []byte {
	if byteWidth == 0 {
		return AllocateBitmap(a, length)
	}
	return a.Allocate(int(length) * byteWidth)
}
