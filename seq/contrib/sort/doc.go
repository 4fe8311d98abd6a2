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

// Package sort provides the classic comparison sorts: bubble, selection,
// insertion, merge, quick and heap sort.
//
// # In Place or Copying
//
// The signature tells whether a function mutates its argument:
//   - Bubble, Selection, Insertion and Heap sort data in place and return
//     nothing.
//   - Merge and Quick return a newly allocated sorted slice and never modify
//     or alias their input, even for empty and single-element input.
//
// # Stability
//
// Bubble, Insertion and Merge are stable. Quick keeps the input order within
// each of its buckets, so it is stable for ordered values, but it is not a
// general stable sort: a NaN fails all three bucket comparisons and is
// dropped from the result. Selection and Heap are not stable.
//
// # Catalog
//
// Algorithms lists every sort with its properties behind a uniform
// func([]T) []T signature, for callers that select an algorithm by name.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-classic/seq/contrib/sort"
//
//	data := []int{9, 4, 7, 1, 3}
//	sort.Heap(data)           // data is now [1 3 4 7 9]
//	out := sort.Merge(data)   // data untouched, out is a fresh copy
package sort
