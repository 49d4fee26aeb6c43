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

	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/memory"
)

// BooleanTake gathers a bit-packed Boolean column. It shares the same
// block-wise dispatch as PrimitiveTake (byteWidth 0 routes through the
// bit-level copyElement/BoolValue path there); this entry point only
// adds the Layout check so callers get a clear error instead of a
// silently wrong take on the wrong column kind.
func BooleanTake(values, indices *coltype.Column, pool memory.Allocator, boundsCheck bool) (*coltype.Column, error) {
	if values.Layout != coltype.Boolean {
		return nil, fmt.Errorf("%w: BooleanTake requires a Boolean values column, got %v", errs.ErrInvalid, values.Layout)
	}
	out, err := PrimitiveTake(values, indices, pool, boundsCheck)
	if err != nil {
		return nil, err
	}
	out.Layout = coltype.Boolean
	return out, nil
}
