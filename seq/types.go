// Copyright 2025 go-classic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seq holds the element constraints shared by the classic search and
// sort algorithms in seq/contrib.
//
// Every algorithm operates on a plain Go slice whose element type supports the
// native ordering operators (<, <=, >, >=, ==). Types without an ordering are
// rejected at compile time by the Ordered constraint.
//
// Basic usage:
//
//	import (
//	    "github.com/ajroetker/go-classic/seq/contrib/search"
//	    "github.com/ajroetker/go-classic/seq/contrib/sort"
//	)
//
//	data := []int{5, 3, 4, 1, 2}
//	sort.Insertion(data)               // in place
//	idx, ok := search.Jump(data, 4)    // 3, true
package seq

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all types that support the ordering operators.
// Floats are included; NaN compares false against everything, so slices
// holding NaN have no defined sorted order.
type Ordered interface {
	Floats | Integers | ~string
}
