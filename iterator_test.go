package vebset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorForward(t *testing.T) {
	s := New()
	keys := []uint16{10, 50, 200}
	for _, k := range keys {
		s.Insert(k)
	}

	it := s.First()
	for _, want := range keys {
		require.True(t, it.Valid())
		require.Equal(t, want, it.Value())
		it.Next()
	}
	require.False(t, it.Valid())
	require.False(t, it.Next(), "Next at end must stay at end")
	require.True(t, it == s.End())
}

func TestIteratorReverse(t *testing.T) {
	s := New()
	for _, k := range []uint16{10, 50, 200} {
		s.Insert(k)
	}

	var got []uint16
	for it := s.End(); it.Prev(); {
		got = append(got, it.Value())
	}
	require.Equal(t, []uint16{200, 50, 10}, got)
}

func TestIteratorBidirectional(t *testing.T) {
	s := New()
	for _, k := range []uint16{1, 2, 3} {
		s.Insert(k)
	}

	it := s.First()
	require.True(t, it.Next())
	require.Equal(t, uint16(2), it.Value())
	require.True(t, it.Prev())
	require.Equal(t, uint16(1), it.Value())

	// Prev below the first key lands on the end sentinel, from which
	// Prev recovers the maximum.
	require.False(t, it.Prev())
	require.False(t, it.Valid())
	require.True(t, it.Prev())
	require.Equal(t, uint16(3), it.Value())
}

func TestIteratorEmptySet(t *testing.T) {
	s := New()

	it := s.First()
	require.False(t, it.Valid())
	require.False(t, it.Next())
	require.False(t, it.Prev())
	require.True(t, s.First() == s.End())
	require.True(t, s.Last() == s.End())
}

func TestIteratorEquality(t *testing.T) {
	s := New()
	s.Insert(42)

	require.True(t, s.Find(42) == s.First())
	require.True(t, s.Find(7) == s.End())

	// Iterators of distinct sets are never equal, sentinel or not.
	o := New()
	o.Insert(42)
	require.True(t, s.Find(42) != o.Find(42))
	require.True(t, s.End() != o.End())
}

func TestEraseIterator(t *testing.T) {
	s := New()
	for _, k := range []uint16{10, 50, 200} {
		s.Insert(k)
	}

	require.True(t, s.EraseIterator(s.Find(50)))
	require.Equal(t, 2, s.Len())
	require.False(t, s.Has(50))

	// Erasing the end sentinel reports failure, it does not panic.
	require.False(t, s.EraseIterator(s.End()))
	require.Equal(t, 2, s.Len())

	// So does erasing via an iterator owned by another set, or the
	// zero Iterator.
	o := New()
	o.Insert(10)
	require.False(t, s.EraseIterator(o.Find(10)))
	require.False(t, s.EraseIterator(Iterator{}))
	require.True(t, o.Has(10))
	require.True(t, s.Has(10))
}

// Iterators capture no structural state, so a move after mutation
// answers from the current contents.
func TestIteratorAfterMutation(t *testing.T) {
	s := New()
	for _, k := range []uint16{10, 20, 30} {
		s.Insert(k)
	}

	it := s.Find(20)
	s.Erase(30)
	s.Insert(25)

	require.True(t, it.Next())
	require.Equal(t, uint16(25), it.Value())

	// Even the iterator's own key may be erased; it then moves to the
	// successor the key would have had.
	it = s.Find(20)
	s.Erase(20)
	require.True(t, it.Next())
	require.Equal(t, uint16(25), it.Value())
}

func TestIteratorRangeFuncEarlyStop(t *testing.T) {
	s := New()
	for _, k := range []uint16{1, 2, 3, 4} {
		s.Insert(k)
	}

	var got []uint16
	for v := range s.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []uint16{1, 2}, got)

	got = got[:0]
	for v := range s.Backward() {
		got = append(got, v)
		if v == 3 {
			break
		}
	}
	require.Equal(t, []uint16{4, 3}, got)
}
