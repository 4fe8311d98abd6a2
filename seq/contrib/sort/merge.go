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

package sort

import (
	"slices"

	"github.com/ajroetker/go-classic/seq"
)

// Merge returns a sorted copy of data using top-down merge sort.
// data is not modified.
func Merge[T seq.Ordered](data []T) []T {
	if len(data) <= 1 {
		return slices.Clone(data)
	}

	mid := len(data) / 2
	return merge(Merge(data[:mid]), Merge(data[mid:]))
}

// merge combines two sorted slices, taking from left on ties.
func merge[T seq.Ordered](left, right []T) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}
