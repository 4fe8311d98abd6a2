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
	"math"

	"github.com/ajroetker/go-classic/seq"
)

// blockSize returns floor(sqrt(n)), the jump length for a slice of n elements.
func blockSize(n int) int {
	return int(math.Sqrt(float64(n)))
}

// Jump searches data, which must be sorted in ascending order, by skipping
// ahead in blocks of floor(sqrt(n)) elements until the last element of the
// current block is not less than target, then scanning that block.
//
// Jump returns the index of the first element equal to target.
func Jump[T seq.Ordered](data []T, target T) (int, bool) {
	n := len(data)
	if n == 0 {
		return NotFound, false
	}

	step := blockSize(n)
	prev, end := 0, step
	for data[min(end, n)-1] < target {
		prev = end
		if prev >= n {
			return NotFound, false
		}
		end += step
	}

	for i := prev; i < min(end, n); i++ {
		if data[i] == target {
			return i, true
		}
		if data[i] > target {
			break
		}
	}
	return NotFound, false
}

// JumpLegacy reproduces the legacy jump search step for step.
//
// After every step it shrinks the jump to floor(sqrt(previous jump)) and gives
// up unless data at the new jump equals target. Its closing scan covers
// [prev, min(prev, n)), which is always empty, so a call that returns reports
// NotFound. Like the legacy code it indexes without bounds checks: an empty
// slice, or a jump that lands past the end, panics with an index out of range
// runtime error.
//
// The legacy loop never terminates once the jump settles at 1 with
// data[0] < target == data[1]. JumpLegacy detects that fixed point and
// returns NotFound instead; this is its only departure from the legacy
// control flow.
func JumpLegacy[T seq.Ordered](data []T, target T) (int, bool) {
	n := len(data)
	jump := blockSize(n)
	prev := 0

	for data[min(jump, n)-1] < target {
		if prev == jump {
			return NotFound, false
		}
		prev = jump
		jump = blockSize(prev)
		if data[jump] != target {
			return NotFound, false
		}
	}

	for i := prev; i < min(prev, n); i++ {
		if data[i] == target {
			return i, true
		}
	}
	return NotFound, false
}
