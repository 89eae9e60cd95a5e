package strobeprng

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/dnsimmons/strobego/strobe"
)

// benchSizes mirrors the teacher's own comparative-benchmark sweep so the
// two throughput numbers are read off the same output sizes.
var benchSizes = []int{32, 128, 256, 1024, 4096, 64 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func BenchmarkStrobePRF(b *testing.B) {
	for _, size := range benchSizes {
		s := strobe.New([]byte("bench"), strobe.Sec128)
		s.KEY([]byte("benchmark-key-material"), false)
		rng := New(s)
		out := make([]byte, size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = rng.Read(out)
			}
		})
	}
}

func BenchmarkXCryptoSHAKE128(b *testing.B) {
	for _, size := range benchSizes {
		out := make([]byte, size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := sha3.NewShake128()
			for b.Loop() {
				h.Reset()
				_, _ = h.Write([]byte("benchmark-key-material"))
				_, _ = h.Read(out)
			}
		})
	}
}
