package deque

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/deque/blocks"
	"github.com/npillmayer/schuko/gtrace"
)

// Deque is a double-ended sequence of values of type T.
//
// A deque created by
//
//	Deque[T]{}
//
// is a valid object and behaves like an empty deque with the default
// configuration.
//
// Copying a Deque value makes both copies share their elements. Use Clone or
// Assign for an independent copy.
type Deque[T any] struct {
	g *blocks.Graph[T]
}

// New creates an empty deque with the default configuration.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// NewWithConfig creates an empty deque with the thresholds of cfg. Zero
// fields of cfg take their defaults.
func NewWithConfig[T any](cfg blocks.Config) (*Deque[T], error) {
	g, err := blocks.New[T](cfg)
	if err != nil {
		return nil, err
	}
	return &Deque[T]{g: g}, nil
}

// FromSlice creates a deque holding values, in order.
func FromSlice[T any](values ...T) *Deque[T] {
	d := New[T]()
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// graph returns the engine of d, creating it on first use.
func (d *Deque[T]) graph() *blocks.Graph[T] {
	if d.g == nil {
		g, err := blocks.New[T](blocks.Config{})
		assert(err == nil, "deque: default configuration rejected")
		d.g = g
	}
	return d.g
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.g.Len()
}

// IsEmpty reports whether d holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// --- Element access --------------------------------------------------------

// At returns the value at index i.
func (d *Deque[T]) At(i int) (T, error) {
	l, err := d.locate(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.g.Value(l), nil
}

// Set replaces the value at index i.
func (d *Deque[T]) Set(i int, v T) error {
	l, err := d.locate(i)
	if err != nil {
		return err
	}
	d.g.SetValue(l, v)
	return nil
}

func (d *Deque[T]) locate(i int) (blocks.Loc, error) {
	if i < 0 || i >= d.Len() {
		return blocks.Loc{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, i, d.Len())
	}
	l, err := d.g.Locate(i)
	assert(err == nil, "deque: locate failed for a checked index")
	return l, nil
}

// Front returns the first value.
func (d *Deque[T]) Front() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: Front", ErrEmptyContainer)
	}
	return d.g.Front(), nil
}

// Back returns the last value.
func (d *Deque[T]) Back() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: Back", ErrEmptyContainer)
	}
	return d.g.Back(), nil
}

// --- Modifiers -------------------------------------------------------------

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	d.graph().PushFront(v)
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	d.graph().PushBack(v)
}

// PopFront removes and returns the first value.
func (d *Deque[T]) PopFront() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: PopFront", ErrEmptyContainer)
	}
	return d.g.PopFront(), nil
}

// PopBack removes and returns the last value.
func (d *Deque[T]) PopBack() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: PopBack", ErrEmptyContainer)
	}
	return d.g.PopBack(), nil
}

// Insert inserts v in front of pos and returns an iterator to the new
// element. pos may be End(), which appends v.
//
// Insert fails with ErrInvalidIterator if pos belongs to another deque, has
// been invalidated, or addresses no position inside d.
func (d *Deque[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	g := d.graph()
	if pos.g != g {
		return Iterator[T]{}, fmt.Errorf("%w: Insert with iterator of another deque", ErrInvalidIterator)
	}
	if !g.Dereferenceable(pos.loc) && !g.IsEnd(pos.loc) {
		return Iterator[T]{}, fmt.Errorf("%w: Insert at position without element", ErrInvalidIterator)
	}
	return Iterator[T]{g: g, loc: g.InsertBefore(pos.loc, v)}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// following it, or End().
//
// Erase fails with ErrInvalidIterator if pos belongs to another deque, has
// been invalidated, or addresses no element, and with ErrEmptyContainer if d
// is empty.
//
// The blocks around the gap are merged; a merged block reaching the split
// limit is halved again. Other iterators into these blocks are invalidated.
func (d *Deque[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	g := d.graph()
	if pos.g != g || !g.Fresh(pos.loc) {
		return Iterator[T]{}, fmt.Errorf("%w: Erase with stale or foreign iterator", ErrInvalidIterator)
	}
	if g.Len() == 0 {
		return Iterator[T]{}, fmt.Errorf("%w: Erase", ErrEmptyContainer)
	}
	if !g.Dereferenceable(pos.loc) {
		return Iterator[T]{}, fmt.Errorf("%w: Erase at position without element", ErrInvalidIterator)
	}
	return Iterator[T]{g: g, loc: g.Remove(pos.loc)}, nil
}

// Clear removes all elements. Iterators into d are invalidated.
func (d *Deque[T]) Clear() {
	if d.g != nil {
		d.g.Clear()
	}
}

// Clone returns a deep copy of d with the same configuration.
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{g: d.graph().Clone()}
}

// Assign replaces the contents of d by a deep copy of src. Assigning a deque
// to itself does nothing.
func (d *Deque[T]) Assign(src *Deque[T]) {
	if d == src || (d.g != nil && d.g == src.g) {
		return
	}
	if src.g == nil {
		d.Clear()
		return
	}
	d.graph().CopyFrom(src.g)
	gtrace.CoreTracer.Debugf("deque: assigned %d elements in %d blocks", d.g.Len(), d.g.BlockCount())
}

// --- Iteration -------------------------------------------------------------

// Begin returns an iterator to the first element, or End() if d is empty.
func (d *Deque[T]) Begin() Iterator[T] {
	g := d.graph()
	return Iterator[T]{g: g, loc: g.Begin()}
}

// End returns the terminal iterator, one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	g := d.graph()
	return Iterator[T]{g: g, loc: g.End()}
}

// CBegin is the read-only variant of Begin.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return d.Begin().Const()
}

// CEnd is the read-only variant of End.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return d.End().Const()
}

// All iterates over index and value of all elements, front to back.
// d must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.IsEmpty() {
			return
		}
		i := 0
		for b := range d.g.Blocks() {
			for v := range d.g.Elements(b) {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}

// Backward iterates over index and value of all elements, back to front.
// d must not be modified during iteration.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.IsEmpty() {
			return
		}
		g := d.g
		i := g.Len() - 1
		for l := g.Prev(g.End()); !g.IsBeforeBegin(l); l = g.Prev(l) {
			if !yield(i, g.Value(l)) {
				return
			}
			i--
		}
	}
}

// Segments iterates over the blocks holding the elements of d, yielding the
// values of each block as a fresh slice.
func (d *Deque[T]) Segments() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if d.IsEmpty() {
			return
		}
		for b, size := range d.g.Blocks() {
			seg := make([]T, 0, size)
			for v := range d.g.Elements(b) {
				seg = append(seg, v)
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Values returns the elements of d as a slice.
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.Len())
	for _, v := range d.All() {
		values = append(values, v)
	}
	return values
}

// --- Introspection ---------------------------------------------------------

// BlockSizes returns the sizes of the blocks holding the elements of d, in
// order.
func (d *Deque[T]) BlockSizes() []int {
	return d.Stats().Sizes
}

// Stats returns the current block layout of d together with the thresholds
// governing it.
func (d *Deque[T]) Stats() blocks.Stats {
	return d.graph().Stats()
}

// Config returns the effective thresholds of d.
func (d *Deque[T]) Config() blocks.Config {
	return d.graph().Config()
}

// Check validates the internal structure of d. It is intended for tests and
// debugging.
func (d *Deque[T]) Check() error {
	if d.g == nil {
		return nil
	}
	return d.g.Check()
}

// String lists the elements of d, e.g. "[1 2 3]". This may be an expensive
// operation for long deques.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range d.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
