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

// Package search provides linear, binary and jump search over slices of
// ordered elements.
//
// All functions share one result convention: they return the index of a
// matching element and true, or NotFound and false when no element equals the
// target. None of them report errors.
//
// # Preconditions
//
//   - Linear accepts any order and leaves data untouched.
//   - Binary sorts data in place before searching; the returned index refers
//     to the sorted slice the caller is left holding.
//   - Jump and JumpLegacy assume data is already sorted ascending.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-classic/seq/contrib/search"
//
//	data := []int{4, 2, 7}
//	if i, ok := search.Linear(data, 2); ok {
//	    fmt.Println(i) // 1
//	}
//
// # JumpLegacy
//
// JumpLegacy keeps the control flow of an older jump search that shrinks its
// jump size after every step and bails out unless it lands exactly on the
// target. Its final block scan covers an empty range, so it can only report
// NotFound. Use Jump for a working jump search.
package search
