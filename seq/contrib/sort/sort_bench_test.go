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
	"math/rand"
	"testing"
)

// Generate random data for benchmarks
func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

func BenchmarkAlgorithms_100(b *testing.B) {
	benchmarkAlgorithms(b, 100)
}

func BenchmarkAlgorithms_1000(b *testing.B) {
	benchmarkAlgorithms(b, 1000)
}

func benchmarkAlgorithms(b *testing.B, n int) {
	ref := generateInt64(n)
	for _, a := range Algorithms[int64]() {
		b.Run(a.Name, func(b *testing.B) {
			data := make([]int64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				a.Sort(data)
			}
		})
	}
}

// Quadratic sorts are skipped at this size.
func BenchmarkAlgorithms_100000(b *testing.B) {
	ref := generateInt64(100000)
	data := make([]int64, len(ref))
	for _, a := range Algorithms[int64]() {
		if a.Name == "bubble" || a.Name == "selection" || a.Name == "insertion" {
			continue
		}
		b.Run(a.Name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				a.Sort(data)
			}
		})
	}
}
