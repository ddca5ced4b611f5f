package deque

import (
	"fmt"

	"github.com/npillmayer/deque/blocks"
)

// Iterator addresses a position in a deque: an element, the terminal
// position End(), or the position in front of the first element reached by
// stepping back from Begin().
//
// Iterators are values; stepping returns a new iterator. The zero Iterator
// belongs to no deque and addresses nothing.
type Iterator[T any] struct {
	g   *blocks.Graph[T]
	loc blocks.Loc
}

// Next returns an iterator to the following element. Stepping past End() is
// not checked.
func (it Iterator[T]) Next() Iterator[T] {
	if it.g == nil {
		return it
	}
	return Iterator[T]{g: it.g, loc: it.g.Next(it.loc)}
}

// Prev returns an iterator to the preceding element. Prev of Begin() is the
// position in front of the first element, which may not be dereferenced;
// stepping further back is not checked.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.g == nil {
		return it
	}
	return Iterator[T]{g: it.g, loc: it.g.Prev(it.loc)}
}

// Add steps it n elements forward, or backward for negative n.
func (it Iterator[T]) Add(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Sub steps it n elements backward, or forward for negative n.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Distance returns the signed number of steps from other to it, i.e. the
// value n with other.Add(n).Equal(it). Both iterators must belong to the same
// deque and be valid.
func (it Iterator[T]) Distance(other Iterator[T]) (int, error) {
	if it.g == nil || it.g != other.g {
		return 0, fmt.Errorf("%w: distance between iterators of different deques", ErrInvalidIterator)
	}
	n, err := it.g.Distance(it.loc, other.loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIterator, err)
	}
	return n, nil
}

// Index returns the linear index of the position of it. End() has index
// Len(), the position in front of the first element has index -1.
func (it Iterator[T]) Index() (int, error) {
	if it.g == nil {
		return 0, fmt.Errorf("%w: iterator belongs to no deque", ErrInvalidIterator)
	}
	i, err := it.g.IndexOf(it.loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIterator, err)
	}
	return i, nil
}

// Value returns the element addressed by it.
func (it Iterator[T]) Value() (T, error) {
	if !it.Valid() {
		var zero T
		return zero, fmt.Errorf("%w: no element to dereference", ErrInvalidIterator)
	}
	return it.g.Value(it.loc), nil
}

// Set replaces the element addressed by it.
func (it Iterator[T]) Set(v T) error {
	if !it.Valid() {
		return fmt.Errorf("%w: no element to set", ErrInvalidIterator)
	}
	it.g.SetValue(it.loc, v)
	return nil
}

// Valid reports whether it addresses an element and has not been
// invalidated.
func (it Iterator[T]) Valid() bool {
	return it.g != nil && it.g.Dereferenceable(it.loc)
}

// IsEnd reports whether it is the terminal iterator of its deque.
func (it Iterator[T]) IsEnd() bool {
	return it.g != nil && it.g.IsEnd(it.loc)
}

// Equal reports whether it and other belong to the same deque and address
// the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.g == other.g && it.loc.Same(other.loc)
}

// EqualConst compares it with a read-only iterator, see Equal.
func (it Iterator[T]) EqualConst(c ConstIterator[T]) bool {
	return it.Equal(c.it)
}

// Const returns a read-only iterator for the position of it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Next returns a read-only iterator for the following position.
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.it.Next().Const() }

// Prev returns a read-only iterator for the preceding position.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.it.Prev().Const() }

// Add steps n positions forward (backward for negative n).
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return c.it.Add(n).Const() }

// Sub steps n positions backward.
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return c.it.Sub(n).Const() }

// Value returns the element addressed by c.
func (c ConstIterator[T]) Value() (T, error) { return c.it.Value() }

// Index returns the position of c in its deque.
func (c ConstIterator[T]) Index() (int, error) { return c.it.Index() }

// Valid reports whether c addresses an element and has not been invalidated.
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// IsEnd reports whether c is the terminal iterator of its deque.
func (c ConstIterator[T]) IsEnd() bool { return c.it.IsEnd() }

// Equal reports whether c and o address the same position of the same deque.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// EqualIterator compares c with a mutable iterator.
func (c ConstIterator[T]) EqualIterator(it Iterator[T]) bool { return c.it.Equal(it) }

// Distance returns the signed number of steps from other to c.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) (int, error) {
	return c.it.Distance(other.it)
}
