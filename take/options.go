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

// Package take is the public take/filter-to-indices operation surface:
// it dispatches across array/chunked shapes and recurses through
// dictionary and extension wrapping, delegating the actual block-wise
// work to package kernel.
package take

import "github.com/colvec/take/kernel"

// NullSelectionBehavior controls how FilterToIndices treats a null
// filter slot. Re-exported from kernel so callers never need to import
// it directly.
type NullSelectionBehavior = kernel.NullSelection

const (
	DropNulls = kernel.DropNulls
	EmitNulls = kernel.EmitNulls
)

// TakeOptions configures a Take call.
type TakeOptions struct {
	// BoundsCheck, when true (the default), validates every non-null
	// index against the values length before gathering. Callers that
	// have already validated indices out-of-band may disable it to
	// skip the redundant O(n) scan.
	BoundsCheck bool
}

// DefaultTakeOptions returns the conservative default: bounds checking
// enabled.
func DefaultTakeOptions() TakeOptions {
	return TakeOptions{BoundsCheck: true}
}

// FilterOptions configures a FilterToIndices/Filter call.
type FilterOptions struct {
	NullSelection NullSelectionBehavior
}

// DefaultFilterOptions returns EmitNulls, matching Arrow's own default
// filter null-selection behavior.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{NullSelection: EmitNulls}
}
