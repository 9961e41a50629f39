// Package bitbuf implements an append-only, bit-accurate buffer and the
// pure encoders that frame a field's raw value into its on-wire form.
//
// A Buffer is a sequence of bits rather than bytes: length is measured in
// bits, append and slice operate at bit granularity, and conversion to
// bytes zero-pads the trailing side when the length is not a multiple of
// eight. This mirrors how a wire-protocol frame is built up field by
// field before any byte boundary is guaranteed.
package bitbuf

import "github.com/bits-and-blooms/bitset"

// Buffer is an immutable-by-convention bit sequence. No method modifies a
// buffer in place: Append and Slice build new storage (Slice returns the
// receiver itself when n covers the whole buffer), so a rendered buffer
// handed to a caller is never retroactively changed by further mutation
// of the field that produced it.
type Buffer struct {
	bits   *bitset.BitSet
	length uint
}

// Empty returns a zero-length buffer.
func Empty() Buffer {
	return Buffer{bits: bitset.New(0), length: 0}
}

// FromBytes builds a buffer from a byte slice, least-significant-bit
// first within each byte, matching the bit ordering Bytes uses for the
// inverse conversion.
func FromBytes(data []byte) Buffer {
	length := uint(len(data)) * 8
	bs := bitset.New(length)
	for i, b := range data {
		for j := uint(0); j < 8; j++ {
			if b&(1<<j) != 0 {
				bs.Set(uint(i)*8 + j)
			}
		}
	}
	return Buffer{bits: bs, length: length}
}

// Len reports the number of valid bits in the buffer.
func (b Buffer) Len() uint {
	return b.length
}

// IsEmpty reports whether the buffer holds zero bits.
func (b Buffer) IsEmpty() bool {
	return b.length == 0
}

// Append returns a new buffer holding b's bits followed by other's bits.
func (b Buffer) Append(other Buffer) Buffer {
	total := b.length + other.length
	bs := bitset.New(total)
	for i := uint(0); i < b.length; i++ {
		if b.bits.Test(i) {
			bs.Set(i)
		}
	}
	for i := uint(0); i < other.length; i++ {
		if other.bits.Test(i) {
			bs.Set(b.length + i)
		}
	}
	return Buffer{bits: bs, length: total}
}

// Repeat returns a new buffer holding b's bits concatenated with itself
// `times` times. Repeat(0) yields an empty buffer.
func (b Buffer) Repeat(times int) Buffer {
	if times <= 0 {
		return Empty()
	}
	out := Empty()
	for i := 0; i < times; i++ {
		out = out.Append(b)
	}
	return out
}

// Slice returns the first n bits of the buffer. If n exceeds Len, the
// whole buffer is returned.
func (b Buffer) Slice(n uint) Buffer {
	if n >= b.length {
		return b
	}
	bs := bitset.New(n)
	for i := uint(0); i < n; i++ {
		if b.bits.Test(i) {
			bs.Set(i)
		}
	}
	return Buffer{bits: bs, length: n}
}

// Bytes renders the buffer as a byte slice, zero-padding the final byte
// on its trailing (high) side when Len is not a multiple of eight.
func (b Buffer) Bytes() []byte {
	numBytes := (b.length + 7) / 8
	out := make([]byte, numBytes)
	for i := uint(0); i < b.length; i++ {
		if b.bits.Test(i) {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// Equal reports whether two buffers have the same length and bits.
func (b Buffer) Equal(other Buffer) bool {
	if b.length != other.length {
		return false
	}
	for i := uint(0); i < b.length; i++ {
		if b.bits.Test(i) != other.bits.Test(i) {
			return false
		}
	}
	return true
}
