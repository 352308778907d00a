// SPDX-License-Identifier: MIT

package balance_test

import (
	"testing"

	"github.com/Trehinos/balanced-direction/balance"
)

var sink balance.Balance

// BenchmarkRotateLeft measures a single table-driven operator.
func BenchmarkRotateLeft(b *testing.B) {
	p := balance.TopLeft
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.RotateLeft()
	}
	sink = p
}

// BenchmarkAdd measures clamped addition over all 81 pairs.
func BenchmarkAdd(b *testing.B) {
	all := balance.All()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range all {
			for _, q := range all {
				sink = p.Add(q)
			}
		}
	}
}

// BenchmarkFromAngleNearest measures angle normalization and rounding.
func BenchmarkFromAngleNearest(b *testing.B) {
	opt := balance.WithNearest()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := balance.FromAngle(float64(i%720)-360.5, opt)
		if err != nil {
			b.Fatalf("FromAngle failed: %v", err)
		}
		sink = p
	}
}

// BenchmarkHtImply measures a digit-wise binary logic operator.
func BenchmarkHtImply(b *testing.B) {
	all := balance.All()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = all[i%9].HtImply(all[(i/9)%9])
	}
}
