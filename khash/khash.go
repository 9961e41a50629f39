// Package khash implements the 32-bit structural-hash mixer used to
// detect template changes across runs (see container.Container.Hash).
// It is a change detector, not a cryptographic digest: any stable
// avalanche mixer satisfies the contract, and this one is built on
// xxhash, the fast non-cryptographic hash already present in the
// dependency graph this module grew out of.
package khash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// String hashes a string to a 32-bit value, independent of any running
// accumulator. Used to seed a type name's contribution to a field's hash.
func String(s string) uint32 {
	return fold(xxhash.Sum64String(s))
}

// Mix folds acc with data, returning a new 32-bit accumulator. Containers
// use this to combine a running hash with each child's hash in order.
func Mix(acc uint32, data ...byte) uint32 {
	h := xxhash.New()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], acc)
	h.Write(buf[:])
	h.Write(data)
	return fold(h.Sum64())
}

// MixUint32 folds acc with a single 32-bit value.
func MixUint32(acc uint32, v uint32) uint32 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return Mix(acc, buf[:]...)
}

// MixUint64 folds acc with a single 64-bit value.
func MixUint64(acc uint32, v uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return Mix(acc, buf[:]...)
}

// MixString folds acc with a string's bytes.
func MixString(acc uint32, s string) uint32 {
	return Mix(acc, []byte(s)...)
}

// fold collapses a 64-bit digest to 32 bits by XORing the two halves,
// keeping avalanche behavior from both halves of the wide hash.
func fold(sum uint64) uint32 {
	return uint32(sum) ^ uint32(sum>>32)
}
