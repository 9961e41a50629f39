package bitbuf

import "github.com/bits-and-blooms/bitset"

// zeroBits returns a freshly allocated, all-clear bitset of length n.
func zeroBits(n uint) *bitset.BitSet {
	return bitset.New(n)
}
