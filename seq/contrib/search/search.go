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

package search

import (
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-classic/seq"
)

// NotFound is the index returned alongside false when the target is absent.
const NotFound = -1

// Linear scans data front to back and returns the index of the first element
// equal to target.
func Linear[T seq.Ordered](data []T, target T) (int, bool) {
	for _, v := range data {
		if v == target {
			// Report the first occurrence of the matched value.
			return lo.IndexOf(data, v), true
		}
	}
	return NotFound, false
}

// Binary sorts data in place in ascending order and then bisects it for
// target. The returned index is a position in the sorted data.
//
// With duplicate values, the index of whichever match the bisection probes
// first is returned.
func Binary[T seq.Ordered](data []T, target T) (int, bool) {
	slices.Sort(data)

	start, end := 0, len(data)-1
	for start <= end {
		mid := (start + end) / 2
		switch {
		case data[mid] == target:
			return mid, true
		case data[mid] < target:
			start = mid + 1
		default:
			end = mid - 1
		}
	}
	return NotFound, false
}
