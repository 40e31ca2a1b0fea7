package vebset

import "iter"

// Set is a van Emde Boas ordered set of 16-bit keys. The zero value is
// an empty set ready for use.
//
// A Set in use must not be copied by assignment: it exclusively owns
// its structure. Use Clone for an independent deep copy and Swap to
// exchange two sets in O(1).
type Set struct {
	root   subtree
	length int
}

// New returns a new empty Set.
func New() *Set {
	return &Set{}
}

// Len returns the number of keys in the set. The count is cached, so
// this is O(1).
func (s *Set) Len() int {
	return s.length
}

// Empty reports whether the set holds no keys.
func (s *Set) Empty() bool {
	return s.length == 0
}

// Has reports whether v is in the set.
func (s *Set) Has(v uint16) bool {
	return s.root != nil && s.root.has(v)
}

// Min returns the smallest key in the set, reporting false if the set
// is empty.
func (s *Set) Min() (uint16, bool) {
	if s.length == 0 {
		return 0, false
	}
	return s.root.min(), true
}

// Max returns the largest key in the set, reporting false if the set
// is empty.
func (s *Set) Max() (uint16, bool) {
	if s.length == 0 {
		return 0, false
	}
	return s.root.max(), true
}

// Insert adds v to the set. It returns an iterator positioned on v,
// paired with true if v was newly added or false if it was already
// present.
func (s *Set) Insert(v uint16) (Iterator, bool) {
	if s.root == nil {
		s.root = newSubtree(KeyBits)
	}
	added := s.root.insert(v)
	if added {
		s.length++
	}
	return Iterator{set: s, curr: uint32(v)}, added
}

// Erase removes v from the set, reporting whether it was present.
func (s *Set) Erase(v uint16) bool {
	if s.root == nil || !s.root.erase(v) {
		return false
	}
	s.length--
	return true
}

// EraseIterator removes the key the iterator is positioned on,
// reporting whether a key was removed. Erasing the end sentinel, or an
// iterator obtained from a different set, reports false.
func (s *Set) EraseIterator(it Iterator) bool {
	if it.set != s || !it.Valid() {
		return false
	}
	return s.Erase(it.Value())
}

// Find returns an iterator positioned on v, or the end sentinel if v
// is absent.
func (s *Set) Find(v uint16) Iterator {
	if !s.Has(v) {
		return s.End()
	}
	return Iterator{set: s, curr: uint32(v)}
}

// Successor returns an iterator on the smallest key strictly greater
// than v, or the end sentinel if none exists. v itself need not be in
// the set.
func (s *Set) Successor(v uint16) Iterator {
	if next, ok := s.successorKey(v); ok {
		return Iterator{set: s, curr: uint32(next)}
	}
	return s.End()
}

// Predecessor returns an iterator on the largest key strictly less
// than v, or the end sentinel if none exists. v itself need not be in
// the set.
func (s *Set) Predecessor(v uint16) Iterator {
	if prev, ok := s.predecessorKey(v); ok {
		return Iterator{set: s, curr: uint32(prev)}
	}
	return s.End()
}

// First returns an iterator on the smallest key, or the end sentinel
// for an empty set.
func (s *Set) First() Iterator {
	if v, ok := s.Min(); ok {
		return Iterator{set: s, curr: uint32(v)}
	}
	return s.End()
}

// Last returns an iterator on the largest key, or the end sentinel for
// an empty set.
func (s *Set) Last() Iterator {
	if v, ok := s.Max(); ok {
		return Iterator{set: s, curr: uint32(v)}
	}
	return s.End()
}

// End returns the end sentinel iterator. Prev from it reaches the
// largest key, which is how a reverse sweep starts.
func (s *Set) End() Iterator {
	return Iterator{set: s, curr: nilKey}
}

// Clone returns a deep copy sharing no structure with s.
func (s *Set) Clone() *Set {
	c := &Set{length: s.length}
	if s.root != nil {
		c.root = s.root.clone()
	}
	return c
}

// Swap exchanges the contents of s and other in O(1). Iterators keep
// the set they were obtained from and answer from its new contents.
func (s *Set) Swap(other *Set) {
	s.root, other.root = other.root, s.root
	s.length, other.length = other.length, s.length
}

// Clear removes all keys in O(1) by releasing the whole structure.
func (s *Set) Clear() {
	s.root = nil
	s.length = 0
}

// All returns the keys in ascending order, for use with range.
func (s *Set) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for it := s.First(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns the keys in descending order, for use with range.
func (s *Set) Backward() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for it := s.End(); it.Prev(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

func (s *Set) successorKey(v uint16) (uint16, bool) {
	if s.root == nil {
		return 0, false
	}
	return s.root.successor(v)
}

func (s *Set) predecessorKey(v uint16) (uint16, bool) {
	if s.root == nil {
		return 0, false
	}
	return s.root.predecessor(v)
}
