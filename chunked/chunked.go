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

package chunked

import "github.com/colvec/take/coltype"

// Chunked is an ordered sequence of Columns treated as one logical
// column, mirroring the teacher's array.Chunked but stripped of
// reference counting and dtype metadata that belong to the external
// type-registry layer.
type Chunked struct {
	Chunks   []*coltype.Column
	resolver *Resolver
}

// NewChunked builds a Chunked and its row resolver from chunks in
// order. An empty chunks slice is a valid zero-length Chunked. It fails
// only if the chunks' cumulative length overflows int64.
func NewChunked(chunks []*coltype.Column) (*Chunked, error) {
	lengths := make([]int64, len(chunks))
	for i, c := range chunks {
		lengths[i] = c.Length
	}
	resolver, err := NewResolver(lengths)
	if err != nil {
		return nil, err
	}
	return &Chunked{Chunks: chunks, resolver: resolver}, nil
}

// Len returns the total row count across all chunks.
func (c *Chunked) Len() int64 { return c.resolver.Length() }

// NumChunks returns the chunk count.
func (c *Chunked) NumChunks() int { return c.resolver.NumChunks() }

// Resolve maps a logical row to its chunk and within-chunk offset.
func (c *Chunked) Resolve(row int64) Resolved { return c.resolver.Resolve(row) }
