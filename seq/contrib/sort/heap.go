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

// Heap sorts data in place using heapsort.
func Heap[T seq.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		Heapify(data, n, i)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		Heapify(data, i, 0)
	}
}

// Heapify restores the max-heap property for the subtree rooted at i within
// data[:n], assuming both child subtrees are already max-heaps. The element
// at i sinks towards the larger child until neither child exceeds it.
func Heapify[T seq.Ordered](data []T, n, i int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[largest] < data[left] {
			largest = left
		}
		if right < n && data[largest] < data[right] {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
