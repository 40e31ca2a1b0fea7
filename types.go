package vebset

const (
	// KeyBits is the fixed width of the key universe. Keys are uint16
	// and every Set covers the full 0..65535 range.
	KeyBits = 16

	// UniverseSize is the number of representable keys.
	UniverseSize = 1 << KeyBits

	// leafBits is the width at or below which a substructure is stored
	// as a flat bitmap in a single uint64 word instead of a node. The
	// 16 -> 8 -> 4 halving bottoms out at 4-bit substructures; 6 is the
	// widest universe one word can hold, so any split the recursion can
	// produce fits.
	leafBits = 6
)

// nilKey marks an iterator positioned past the last element. Iterator
// positions are widened to uint32 so the whole 16-bit universe remains
// representable alongside the sentinel.
const nilKey = ^uint32(0)
