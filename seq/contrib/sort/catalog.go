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

// Algorithm describes one sort behind a uniform signature.
type Algorithm[T seq.Ordered] struct {
	// Name is the lower-case algorithm name, e.g. "merge".
	Name string

	// InPlace reports whether Sort reorders its argument. When true, Sort
	// returns the argument itself; otherwise it returns a new slice and
	// leaves the argument untouched.
	InPlace bool

	// Stable reports whether equal elements keep their relative order.
	Stable bool

	// Sort sorts data in ascending order.
	Sort func(data []T) []T
}

// inPlace adapts an in-place sort to the catalog signature.
func inPlace[T seq.Ordered](fn func([]T)) func([]T) []T {
	return func(data []T) []T {
		fn(data)
		return data
	}
}

// Algorithms returns every sort in the package, in a fixed order.
func Algorithms[T seq.Ordered]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "bubble", InPlace: true, Stable: true, Sort: inPlace(Bubble[T])},
		{Name: "selection", InPlace: true, Stable: false, Sort: inPlace(Selection[T])},
		{Name: "insertion", InPlace: true, Stable: true, Sort: inPlace(Insertion[T])},
		{Name: "merge", InPlace: false, Stable: true, Sort: Merge[T]},
		{Name: "quick", InPlace: false, Stable: true, Sort: Quick[T]},
		{Name: "heap", InPlace: true, Stable: false, Sort: inPlace(Heap[T])},
	}
}

// Lookup returns the algorithm called name.
func Lookup[T seq.Ordered](name string) (Algorithm[T], bool) {
	for _, a := range Algorithms[T]() {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm[T]{}, false
}
