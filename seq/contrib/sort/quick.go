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

	"github.com/samber/lo"

	"github.com/ajroetker/go-classic/seq"
)

// Quick returns a sorted copy of data using quicksort with a middle pivot.
//
// Elements are split into three buckets (less than, equal to, and greater
// than the pivot) that keep their input order; the outer buckets are sorted
// recursively. data is not modified. Worst case is O(n^2).
//
// NaN belongs to no bucket, so NaN elements are missing from the result.
func Quick[T seq.Ordered](data []T) []T {
	if len(data) <= 1 {
		return slices.Clone(data)
	}

	pivot := data[len(data)/2]
	less := lo.Filter(data, func(x T, _ int) bool { return x < pivot })
	equal := lo.Filter(data, func(x T, _ int) bool { return x == pivot })
	greater := lo.Filter(data, func(x T, _ int) bool { return x > pivot })

	return slices.Concat(Quick(less), equal, Quick(greater))
}
