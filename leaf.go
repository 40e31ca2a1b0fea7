package vebset

import "math/bits"

// leaf is the bit-vector base case: a substructure of width <= leafBits
// stored as one word, bit j set iff local key j is present. Bit
// numbering is LSB0, the same convention as the bloom bitsets.
type leaf uint64

func newLeaf() *leaf {
	return new(leaf)
}

func (l *leaf) empty() bool {
	return *l == 0
}

// min and max are undefined for an empty leaf.
func (l *leaf) min() uint16 {
	return uint16(bits.TrailingZeros64(uint64(*l)))
}

func (l *leaf) max() uint16 {
	return uint16(bits.Len64(uint64(*l)) - 1)
}

func (l *leaf) has(v uint16) bool {
	return *l&(1<<v) != 0
}

func (l *leaf) insert(v uint16) bool {
	m := leaf(1) << v
	if *l&m != 0 {
		return false
	}
	*l |= m
	return true
}

func (l *leaf) erase(v uint16) bool {
	m := leaf(1) << v
	if *l&m == 0 {
		return false
	}
	*l &^= m
	return true
}

func (l *leaf) successor(v uint16) (uint16, bool) {
	// Mask away v and everything below it, then take the lowest
	// surviving bit. The shift saturates to zero when v is the top bit
	// of the word.
	above := uint64(*l) &^ (uint64(1)<<(v+1) - 1)
	if above == 0 {
		return 0, false
	}
	return uint16(bits.TrailingZeros64(above)), true
}

func (l *leaf) predecessor(v uint16) (uint16, bool) {
	below := uint64(*l) & (uint64(1)<<v - 1)
	if below == 0 {
		return 0, false
	}
	return uint16(bits.Len64(below) - 1), true
}

func (l *leaf) clone() subtree {
	c := *l
	return &c
}
