package archive

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/huff0"
)

const benchSize = 1 << 20

func BenchmarkEncode(b *testing.B) {
	data := naturalText(42, benchSize)
	arch := NewArchiver(nil)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arch.Encode(io.Discard, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := naturalText(42, benchSize)
	packed, _ := encode(b, data)
	arch := NewArchiver(nil)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arch.Decode(bytes.NewReader(packed), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

// huff0Size compresses data in 64 KiB blocks with huff0 and returns the total
// size, counting blocks huff0 declines as stored.
func huff0Size(tb testing.TB, data []byte) int {
	const block = 64 << 10
	var s huff0.Scratch
	total := 0
	for len(data) > 0 {
		n := block
		if n > len(data) {
			n = len(data)
		}
		out, _, err := huff0.Compress1X(data[:n], &s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible), errors.Is(err, huff0.ErrUseRLE):
			total += n
		default:
			tb.Fatalf("huff0: %v", err)
		}
		data = data[n:]
	}
	return total
}

// BenchmarkCompareHuff0 reports the compression ratio of the static
// whole-file code next to huff0's per-block tables on the same corpora.
func BenchmarkCompareHuff0(b *testing.B) {
	corpora := map[string][]byte{
		"text":   naturalText(7, benchSize),
		"random": randomBytes(7, benchSize),
		"skewed": append(bytes.Repeat([]byte("aaaaaaab"), benchSize/8), "cd"...),
	}
	for name, data := range corpora {
		b.Run(name, func(b *testing.B) {
			var stats Stats
			for i := 0; i < b.N; i++ {
				_, stats = encode(b, data)
			}
			ours := stats.Compressed + stats.FrequencyTable
			b.ReportMetric(float64(len(data))/float64(ours), "ratio")
			b.ReportMetric(float64(len(data))/float64(huff0Size(b, data)), "huff0-ratio")
		})
	}
}
