package vebset

// subtree is the tagged variant over the two substructure layouts: an
// internal node above leafBits, a flat bitmap at or below it. The
// variant is selected once, from the width, when the substructure is
// created. All keys are local to the substructure's own width.
type subtree interface {
	empty() bool
	min() uint16 // undefined when empty
	max() uint16 // undefined when empty
	has(v uint16) bool
	insert(v uint16) bool
	erase(v uint16) bool
	successor(v uint16) (uint16, bool)
	predecessor(v uint16) (uint16, bool)
	clone() subtree
}

func newSubtree(width int) subtree {
	if width <= leafBits {
		return newLeaf()
	}
	return newNode(width)
}

// node is an internal vEB node of the given key width. minV is elided:
// it is cached here and never stored in a cluster. maxV is cached for
// O(1) reads but, unlike minV, also lives in its cluster. clusters[i]
// is nil until a key lands in cluster i, and is released as soon as
// the cluster empties; a materialized cluster is never empty.
type node struct {
	low      int
	hasAny   bool
	minV     uint16
	maxV     uint16
	summary  subtree
	clusters []subtree
}

func newNode(width int) *node {
	high, low := splitBits(width)
	return &node{
		low:      low,
		summary:  newSubtree(high),
		clusters: make([]subtree, 1<<high),
	}
}

func (n *node) empty() bool {
	return !n.hasAny
}

func (n *node) min() uint16 {
	return n.minV
}

func (n *node) max() uint16 {
	return n.maxV
}

func (n *node) has(v uint16) bool {
	if !n.hasAny {
		return false
	}
	if v == n.minV || v == n.maxV {
		return true
	}
	if v < n.minV || v > n.maxV {
		return false
	}
	c := n.clusters[highPart(v, n.low)]
	return c != nil && c.has(lowPart(v, n.low))
}

func (n *node) insert(v uint16) bool {
	if !n.hasAny {
		// First key: cache it here, touch no children.
		n.minV, n.maxV = v, v
		n.hasAny = true
		return true
	}
	if v == n.minV || v == n.maxV {
		return false
	}
	if v < n.minV {
		// The min never lives in a cluster. Keep the new key here and
		// push the old min down instead.
		v, n.minV = n.minV, v
	}
	hi, lo := highPart(v, n.low), lowPart(v, n.low)
	c := n.clusters[hi]
	if c == nil {
		n.summary.insert(hi)
		c = newSubtree(n.low)
		n.clusters[hi] = c
	}
	added := c.insert(lo)
	if v > n.maxV {
		n.maxV = v
	}
	return added
}

func (n *node) erase(v uint16) bool {
	if !n.hasAny {
		return false
	}
	if n.minV == n.maxV {
		if v != n.minV {
			return false
		}
		n.hasAny = false
		return true
	}
	if v == n.minV {
		if n.summary.empty() {
			// Only the cached max remains.
			n.minV = n.maxV
			return true
		}
		// Pull the smallest clustered key up to be the new min, then
		// fall through to remove it from its cluster so it is not held
		// twice.
		hi := n.summary.min()
		n.minV = joinParts(hi, n.clusters[hi].min(), n.low)
		v = n.minV
	}
	hi := highPart(v, n.low)
	c := n.clusters[hi]
	if c == nil || !c.erase(lowPart(v, n.low)) {
		return false
	}
	if c.empty() {
		n.summary.erase(hi)
		n.clusters[hi] = nil
	}
	if v == n.maxV {
		if n.summary.empty() {
			n.maxV = n.minV
		} else {
			shi := n.summary.max()
			n.maxV = joinParts(shi, n.clusters[shi].max(), n.low)
		}
	}
	return true
}

func (n *node) successor(v uint16) (uint16, bool) {
	if !n.hasAny {
		return 0, false
	}
	if v < n.minV {
		return n.minV, true
	}
	hi, lo := highPart(v, n.low), lowPart(v, n.low)
	// Within v's own cluster first; a materialized cluster is never
	// empty, so max is defined.
	if c := n.clusters[hi]; c != nil && lo < c.max() {
		nlo, _ := c.successor(lo)
		return joinParts(hi, nlo, n.low), true
	}
	// Otherwise the min of the next non-empty cluster.
	if shi, ok := n.summary.successor(hi); ok {
		return joinParts(shi, n.clusters[shi].min(), n.low), true
	}
	if v < n.maxV {
		return n.maxV, true
	}
	return 0, false
}

func (n *node) predecessor(v uint16) (uint16, bool) {
	if !n.hasAny {
		return 0, false
	}
	if v > n.maxV {
		return n.maxV, true
	}
	hi, lo := highPart(v, n.low), lowPart(v, n.low)
	if c := n.clusters[hi]; c != nil && lo > c.min() {
		plo, _ := c.predecessor(lo)
		return joinParts(hi, plo, n.low), true
	}
	if shi, ok := n.summary.predecessor(hi); ok {
		return joinParts(shi, n.clusters[shi].max(), n.low), true
	}
	// The elided min is not in any cluster, so it is found here or not
	// at all.
	if v > n.minV {
		return n.minV, true
	}
	return 0, false
}

func (n *node) clone() subtree {
	c := &node{
		low:      n.low,
		hasAny:   n.hasAny,
		minV:     n.minV,
		maxV:     n.maxV,
		summary:  n.summary.clone(),
		clusters: make([]subtree, len(n.clusters)),
	}
	for i, cl := range n.clusters {
		if cl != nil {
			c.clusters[i] = cl.clone()
		}
	}
	return c
}
