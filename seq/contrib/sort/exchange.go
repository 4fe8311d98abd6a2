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

import "github.com/ajroetker/go-classic/seq"

// Bubble sorts data in place by repeatedly swapping adjacent out-of-order
// pairs. After pass i the last i+1 elements are final.
func Bubble[T seq.Ordered](data []T) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

// Selection sorts data in place by swapping the minimum of the unsorted
// suffix into the next position.
func Selection[T seq.Ordered](data []T) {
	n := len(data)
	for i := range n {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[minIdx] > data[j] {
				minIdx = j
			}
		}
		data[minIdx], data[i] = data[i], data[minIdx]
	}
}

// Insertion sorts data in place by shifting each element left past every
// larger predecessor.
func Insertion[T seq.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && key < data[j] {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
