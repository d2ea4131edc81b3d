//go:build bench
// +build bench

package codec

import (
	"testing"

	"github.com/ssargent/fpconv/pkg/format"
)

func BenchmarkSlotCodec_Decode(b *testing.B) {
	for _, f := range format.All() {
		data := make([]byte, 0, f.TotalSize())
		for i := 0; i < f.Capacity; i++ {
			if i%3 == 0 {
				data = append(data, make([]byte, f.SlotSize)...)
				continue
			}
			data = append(data, slot(f.SlotSize, byte(i))...)
		}

		b.Run(f.Name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Decode(data, f)
			}
		})
	}
}

func BenchmarkSlotCodec_Encode(b *testing.B) {
	src := mustFormat(b, format.AS608)
	templates := make([]Template, src.Capacity)
	for i := range templates {
		templates[i] = Template{ID: i + 1, Data: slot(src.SlotSize, byte(i))}
	}

	for _, f := range format.All() {
		b.Run(f.Name, func(b *testing.B) {
			b.SetBytes(int64(f.TotalSize()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Encode(templates, f)
			}
		})
	}
}
