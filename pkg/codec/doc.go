// Package codec provides slot framing for fingerprint template databases.
//
// A template database is a raw binary file with no header, index table or
// checksum. It is a flat concatenation of fixed-size slots, one per template
// the sensor can hold. The slot size and slot count depend on the sensor and
// are described by a format.Descriptor.
//
// # Slot Layout
//
//	[Slot 1][Slot 2]...[Slot Capacity]
//
// Each slot is exactly SlotSize bytes. A slot made entirely of zero bytes is
// unused. Any other slot holds one template.
//
// # Decoding
//
// Decode splits a buffer into SlotSize chunks starting at offset 0. A trailing
// chunk shorter than SlotSize is dropped, as is every all-zero chunk. Each
// surviving chunk becomes a Template whose ID is its 1-based slot index, so
// gaps left by empty slots are preserved:
//
//	templates := codec.Decode(data, src)
//
// # Encoding
//
// Encode writes templates back-to-back into a target layout. Templates larger
// than the target slot are truncated, smaller ones are zero-padded. The output
// is then zero-padded up to the full database size of the target format:
//
//	out, res := codec.Encode(templates, dst)
//	if res.Overflowed() {
//	    // more templates than dst.Capacity; out is larger than dst.TotalSize()
//	}
//
// Encode never drops templates to fit the target capacity. The caller decides
// what to do with an over-capacity result.
//
// # Inspection
//
// Validate reports degenerate templates (all zeros, erased flash, undersized)
// and Statistics summarizes template sizes and IDs. Neither blocks conversion.
//
// # Thread Safety
//
// All functions are pure. Templates returned by Decode own their bytes and are
// not modified afterwards.
package codec
