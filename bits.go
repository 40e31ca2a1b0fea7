package vebset

// splitBits returns the cluster-index width (high) and in-cluster width
// (low) for a substructure of the given key width. The high half takes
// the extra bit when width is odd, matching the ceil/floor split the
// summary sizing relies on.
func splitBits(width int) (high, low int) {
	high = (width + 1) / 2
	return high, width - high
}

// highPart returns the cluster index of v for a node whose clusters are
// low bits wide.
func highPart(v uint16, low int) uint16 {
	return v >> low
}

// lowPart returns v's key within its cluster.
func lowPart(v uint16, low int) uint16 {
	return v & (1<<low - 1)
}

// joinParts reassembles a key from a cluster index and an in-cluster
// key. It is the inverse of highPart/lowPart for the same low width.
func joinParts(hi, lo uint16, low int) uint16 {
	return hi<<low | lo
}
