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

package take

import (
	"fmt"

	"github.com/colvec/take/coltype"
	"github.com/colvec/take/errs"
	"github.com/colvec/take/kernel"
	"github.com/colvec/take/memory"
)

// Take gathers values[indices[i]] for a single contiguous values column
// addressed by a single contiguous indices column. Dictionary and
// Extension values recurse into their storage/indices and reattach the
// wrapper; every other layout delegates straight to package kernel.
func Take(values, indices *coltype.Column, opts TakeOptions, pool memory.Allocator) (*coltype.Column, error) {
	return arrayTake(values, indices, pool, opts.BoundsCheck)
}

// TakeArray is a convenience wrapper using DefaultTakeOptions and the
// shared DefaultAllocator.
func TakeArray(values, indices *coltype.Column) (*coltype.Column, error) {
	return Take(values, indices, DefaultTakeOptions(), memory.DefaultAllocator)
}

// TakeArrayOpts is TakeArray with caller-supplied options.
func TakeArrayOpts(values, indices *coltype.Column, opts TakeOptions) (*coltype.Column, error) {
	return Take(values, indices, opts, memory.DefaultAllocator)
}

// FilterToIndices materializes the row numbers a filter selects.
func FilterToIndices(filter *coltype.Column, opts FilterOptions, pool memory.Allocator) (*coltype.Column, error) {
	return kernel.FilterToIndices(filter, opts.NullSelection, pool)
}

// Filter is Take composed with FilterToIndices: it gathers every row
// values selects, in order.
func Filter(values, filter *coltype.Column, opts FilterOptions, pool memory.Allocator) (*coltype.Column, error) {
	idx, err := FilterToIndices(filter, opts, pool)
	if err != nil {
		return nil, err
	}
	return Take(values, idx, DefaultTakeOptions(), pool)
}

// arrayTake is the recursive array/array gather: the composition point
// for Dictionary and Extension columns, which recurse into their
// storage/indices rather than being special-cased inside the kernels
// themselves.
func arrayTake(values, indices *coltype.Column, pool memory.Allocator, boundsCheck bool) (*coltype.Column, error) {
	switch values.Layout {
	case coltype.FixedWidth:
		return kernel.PrimitiveTake(values, indices, pool, boundsCheck)
	case coltype.Boolean:
		return kernel.BooleanTake(values, indices, pool, boundsCheck)
	case coltype.Null:
		if boundsCheck {
			if err := kernel.CheckIndexBounds(indices, values.Length); err != nil {
				return nil, err
			}
		}
		return coltype.NewNull(indices.Length), nil
	case coltype.Dictionary:
		return dictionaryTake(values, indices, pool, boundsCheck)
	case coltype.Extension:
		return extensionTake(values, indices, pool, boundsCheck)
	default:
		return nil, fmt.Errorf("%w: Take does not support layout %v", errs.ErrNotImplemented, values.Layout)
	}
}

// dictionaryTake gathers the physical index buffer (the Dictionary
// column's own FixedWidth Values/Validity) and reattaches the shared
// dictionary unchanged - the indices move, the dictionary they address
// does not.
func dictionaryTake(values, indices *coltype.Column, pool memory.Allocator, boundsCheck bool) (*coltype.Column, error) {
	physical := &coltype.Column{
		Layout:    coltype.FixedWidth,
		ByteWidth: values.ByteWidth,
		Length:    values.Length,
		Offset:    values.Offset,
		Validity:  values.Validity,
		Values:    values.Values,
		Nulls:     values.Nulls,
	}
	taken, err := kernel.PrimitiveTake(physical, indices, pool, boundsCheck)
	if err != nil {
		return nil, err
	}
	return &coltype.Column{
		Layout:     coltype.Dictionary,
		ByteWidth:  taken.ByteWidth,
		Length:     taken.Length,
		Validity:   taken.Validity,
		Values:     taken.Values,
		Nulls:      taken.Nulls,
		Dictionary: values.Dictionary,
	}, nil
}

// extensionTake recurses into the wrapped storage column and reattaches
// the extension tag to the result.
func extensionTake(values, indices *coltype.Column, pool memory.Allocator, boundsCheck bool) (*coltype.Column, error) {
	storageTaken, err := arrayTake(values.Storage, indices, pool, boundsCheck)
	if err != nil {
		return nil, err
	}
	return &coltype.Column{
		Layout:        coltype.Extension,
		Storage:       storageTaken,
		ExtensionName: values.ExtensionName,
		Length:        storageTaken.Length,
		Validity:      storageTaken.Validity,
		Nulls:         storageTaken.Nulls,
	}, nil
}
