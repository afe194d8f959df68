package align_test

import (
	"strings"
	"testing"

	"github.com/dirhq88/hangul-dtw/align"
)

// benchmarkAlign is a helper that aligns two synthetic sentences of the
// given syllable counts. It resets the timer before entering the loop
// and fails on unexpected errors.
func benchmarkAlign(b *testing.B, gtSyllables, rawSyllables int) {
	gt := strings.Repeat("안녕하세요", (gtSyllables+4)/5)[: gtSyllables*3]
	raw := strings.Repeat("안녕하세여", (rawSyllables+4)/5)[: rawSyllables*3]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(gt, raw, nil); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Short benchmarks a typical short utterance pair.
func BenchmarkAlign_Short(b *testing.B) {
	benchmarkAlign(b, 5, 5)
}

// BenchmarkAlign_Sentence benchmarks sentence-length inputs.
func BenchmarkAlign_Sentence(b *testing.B) {
	benchmarkAlign(b, 25, 25)
}

// BenchmarkAlign_Skewed benchmarks inputs of unequal length, forcing a
// long insertion/deletion tail.
func BenchmarkAlign_Skewed(b *testing.B) {
	benchmarkAlign(b, 10, 40)
}
