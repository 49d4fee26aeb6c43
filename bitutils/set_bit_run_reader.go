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

// SetBitRun is a single maximal run of consecutive set bits, reported as
// a (start, length) pair in the caller's bit-offset domain.
type SetBitRun struct {
	Pos, Len int64
}

// VisitSetBitRuns walks bitmap[offset:offset+length) and calls visit once
// per maximal run of consecutive set bits, with pos relative to offset
// (i.e. the first addressable bit is reported as pos 0). When bitmap is
// nil every bit is considered set and visit is called exactly once with
// the whole range - this is the fastest path for a filter or value
// buffer known to have no validity bitmap.
func VisitSetBitRuns(bitmap []byte, offset, length int64, visit func(pos, length int64) error) error {
	if length == 0 {
		return nil
	}
	if bitmap == nil {
		return visit(0, length)
	}

	var runStart int64 = -1
	for i := int64(0); i < length; i++ {
		set := bitutil.BitIsSet(bitmap, int(offset+i))
		switch {
		case set && runStart < 0:
			runStart = i
		case !set && runStart >= 0:
			if err := visit(runStart, i-runStart); err != nil {
				return err
			}
			runStart = -1
		}
	}
	if runStart >= 0 {
		if err := visit(runStart, length-runStart); err != nil {
			return err
		}
	}
	return nil
}
