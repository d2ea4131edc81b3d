package codec

import (
	"github.com/ssargent/fpconv/pkg/format"
)

// Template is one occupied slot of a template database
type Template struct {
	ID   int    // 1-based slot index in the source database
	Data []byte // Raw template bytes
}

// Size returns the template length in bytes
func (t Template) Size() int {
	return len(t.Data)
}

// EncodeResult describes how templates were framed into a target layout
type EncodeResult struct {
	Slots     int // Slots written from templates
	Capacity  int // Slot capacity of the target format
	Truncated int // Templates cut down to the slot size
	Padded    int // Templates zero-padded up to the slot size
	Overflow  int // Slots written beyond Capacity
}

// Overflowed reports whether more templates were written than the target holds
func (r EncodeResult) Overflowed() bool {
	return r.Overflow > 0
}

// SlotCodec frames templates for a single database format
type SlotCodec struct {
	format format.Descriptor
}

// NewSlotCodec creates a codec for the given format
func NewSlotCodec(f format.Descriptor) *SlotCodec {
	return &SlotCodec{format: f}
}

// Format returns the descriptor the codec frames for
func (c *SlotCodec) Format() format.Descriptor {
	return c.format
}

// Decode splits data into slots and returns the occupied ones in slot order
func (c *SlotCodec) Decode(data []byte) []Template {
	size := c.format.SlotSize
	if size <= 0 {
		return []Template{}
	}

	templates := make([]Template, 0, len(data)/size)
	for off := 0; off+size <= len(data); off += size {
		chunk := data[off : off+size]
		if isFilled(chunk, 0x00) {
			continue
		}

		buf := make([]byte, size)
		copy(buf, chunk)
		templates = append(templates, Template{
			ID:   off/size + 1,
			Data: buf,
		})
	}

	return templates
}

// Encode frames templates into a full database image.
// Output length is max(Capacity, len(templates)) * SlotSize.
func (c *SlotCodec) Encode(templates []Template) ([]byte, EncodeResult) {
	size := c.format.SlotSize
	res := EncodeResult{
		Slots:    len(templates),
		Capacity: c.format.Capacity,
	}
	if res.Slots > res.Capacity {
		res.Overflow = res.Slots - res.Capacity
	}

	// make zero-fills, so padding within a slot and up to capacity is implicit
	buf := make([]byte, max(res.Slots, res.Capacity)*size)
	for i, t := range templates {
		switch {
		case len(t.Data) > size:
			res.Truncated++
		case len(t.Data) < size:
			res.Padded++
		}
		copy(buf[i*size:(i+1)*size], t.Data)
	}

	return buf, res
}

// Decode splits data into slots of format f
func Decode(data []byte, f format.Descriptor) []Template {
	return NewSlotCodec(f).Decode(data)
}

// Encode frames templates into a database image of format f
func Encode(templates []Template, f format.Descriptor) ([]byte, EncodeResult) {
	return NewSlotCodec(f).Encode(templates)
}

func isFilled(b []byte, v byte) bool {
	for _, c := range b {
		if c != v {
			return false
		}
	}
	return true
}
