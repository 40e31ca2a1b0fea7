package vebset

// Iterator is a bidirectional cursor over a Set in ascending key
// order.
//
// An Iterator holds only the key it is positioned on (or the end
// sentinel) plus a reference to the owning Set; every move is a fresh
// Successor or Predecessor query against the owner. Because no
// structural state is captured, moving an iterator after the set has
// been mutated is well defined: the move answers from the set's
// current contents. The owning Set must outlive its iterators.
//
// Iterators compare with ==: two are equal when they belong to the
// same Set and sit on the same position (the end sentinels of a Set
// compare equal). The zero Iterator belongs to no set and is never
// valid.
type Iterator struct {
	set  *Set
	curr uint32
}

// Valid reports whether the iterator is positioned on an element
// rather than the end sentinel.
func (it Iterator) Valid() bool {
	return it.set != nil && it.curr != nilKey
}

// Value returns the key the iterator is positioned on. It is
// meaningful only while Valid reports true.
func (it Iterator) Value() uint16 {
	return uint16(it.curr)
}

// Next moves to the next larger key, reporting whether one exists.
// When no larger key exists the iterator becomes the end sentinel; a
// Next at the end sentinel stays there.
func (it *Iterator) Next() bool {
	if it.set == nil || it.curr == nilKey {
		return false
	}
	if v, ok := it.set.successorKey(uint16(it.curr)); ok {
		it.curr = uint32(v)
		return true
	}
	it.curr = nilKey
	return false
}

// Prev moves to the next smaller key, reporting whether one exists.
// From the end sentinel Prev moves to the largest key, so a reverse
// sweep is:
//
//	for it := s.End(); it.Prev(); {
//		_ = it.Value()
//	}
func (it *Iterator) Prev() bool {
	if it.set == nil {
		return false
	}
	if it.curr == nilKey {
		if v, ok := it.set.Max(); ok {
			it.curr = uint32(v)
			return true
		}
		return false
	}
	if v, ok := it.set.predecessorKey(uint16(it.curr)); ok {
		it.curr = uint32(v)
		return true
	}
	it.curr = nilKey
	return false
}
