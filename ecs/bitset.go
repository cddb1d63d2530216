package ecs

import "math/bits"

const bitsetWordSize = 64

// bitset is a growable set of uint32 indices backed by 64-bit words.
// It grows on demand as higher indices are set and never shrinks.
type bitset struct {
	words []uint64
}

func (b *bitset) set(i uint32) {
	w := i / bitsetWordSize
	for uint32(len(b.words)) <= w {
		b.words = append(b.words, 0)
	}
	b.words[w] |= 1 << (i % bitsetWordSize)
}

func (b *bitset) unset(i uint32) {
	w := i / bitsetWordSize
	if w >= uint32(len(b.words)) {
		return
	}
	b.words[w] &^= 1 << (i % bitsetWordSize)
}

// test reports whether index i is set. Indices beyond the high-water mark
// are unset.
func (b *bitset) test(i uint32) bool {
	w := i / bitsetWordSize
	if w >= uint32(len(b.words)) {
		return false
	}
	return b.words[w]&(1<<(i%bitsetWordSize)) != 0
}

func (b *bitset) count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// ones returns all set indices in ascending order as a materialized slice.
func (b *bitset) ones() []uint32 {
	out := make([]uint32, 0, b.count())
	for wi, w := range b.words {
		base := uint32(wi) * bitsetWordSize
		for w != 0 {
			out = append(out, base+uint32(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return out
}

func (b *bitset) reset() {
	b.words = b.words[:0]
}
