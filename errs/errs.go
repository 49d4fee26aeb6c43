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

// Package errs defines the sentinel error values shared across the
// take/filter subsystem. Call sites wrap one of these with fmt.Errorf's
// %w verb so callers can classify a failure with errors.Is while still
// getting a useful message.
package errs

import "errors"

var (
	// ErrIndex is returned when a valid index addresses outside
	// [0, values.length), including negative signed values and
	// chunk-resolver overflow.
	ErrIndex = errors.New("index out of bounds")
	// ErrNotImplemented is returned for inputs this core deliberately
	// does not support: filters longer than 2^32-1, unsupported
	// physical widths, or unsupported value/index shape combinations.
	ErrNotImplemented = errors.New("not implemented")
	// ErrInvalid is returned for type mismatches between collaborating
	// inputs, such as non-integer indices.
	ErrInvalid = errors.New("invalid")
	// ErrAllocation is returned when the memory pool collaborator fails
	// to service a buffer request.
	ErrAllocation = errors.New("allocation failure")
)
