package blocks

import (
	"fmt"
	"iter"
)

// Graph is the two-level block structure holding a sequence of values of
// type T. A graph always contains the sentinel blocks HeadBlock and
// TailBlock; real blocks are chained between them and are never empty.
//
// Graph performs no argument checking beyond what is needed to keep its own
// structure intact: operations on an empty graph, or with locations not
// addressing an element, are programming errors and panic. Package deque
// wraps a Graph with checked operations.
type Graph[T any] struct {
	cfg    Config
	blocks arena[block]
	elems  arena[element[T]]
	total  int
}

// New creates an empty graph with a validated configuration.
func New[T any](cfg Config) (*Graph[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &Graph[T]{
		cfg:    cfg.normalized(),
		blocks: newArena[block](8),
		elems:  newArena[element[T]](32),
	}
	h, t := g.newBlock(), g.newBlock()
	assert(h == HeadBlock && t == TailBlock, "sentinel blocks must occupy the reserved handles")
	g.blk(HeadBlock).next = TailBlock
	g.blk(TailBlock).prev = HeadBlock
	return g, nil
}

// Config returns a copy of the effective configuration.
func (g *Graph[T]) Config() Config {
	return g.cfg
}

// Len returns the number of elements.
func (g *Graph[T]) Len() int {
	if g == nil {
		return 0
	}
	return g.total
}

// BlockCount returns the number of real blocks.
func (g *Graph[T]) BlockCount() int {
	return g.blocks.inUse - 2
}

// --- Locations -------------------------------------------------------------

func (g *Graph[T]) loc(b BlockRef, x ElemRef) Loc {
	return Loc{
		block: b,
		elem:  x,
		bgen:  g.blocks.gen(int32(b)),
		egen:  g.elems.gen(int32(x)),
	}
}

// Begin returns the location of the first element, or End() for an empty
// graph.
func (g *Graph[T]) Begin() Loc {
	b := g.blk(HeadBlock).next
	return g.loc(b, g.first(b))
}

// End returns the terminal location: the tail sentinel element of the tail
// sentinel block.
func (g *Graph[T]) End() Loc {
	return g.loc(TailBlock, g.blk(TailBlock).tail)
}

// Fresh reports whether the block and element of l are still the ones l was
// created for.
func (g *Graph[T]) Fresh(l Loc) bool {
	return g.blocks.live(int32(l.block)) && g.blocks.gen(int32(l.block)) == l.bgen &&
		g.elems.live(int32(l.elem)) && g.elems.gen(int32(l.elem)) == l.egen
}

// Dereferenceable reports whether l is fresh and addresses a real element.
func (g *Graph[T]) Dereferenceable(l Loc) bool {
	if !g.Fresh(l) || isSentinelBlock(l.block) {
		return false
	}
	blk := g.blk(l.block)
	return l.elem != blk.head && l.elem != blk.tail
}

// IsEnd reports whether l is the terminal location.
func (g *Graph[T]) IsEnd(l Loc) bool {
	return l.block == TailBlock && g.Fresh(l) && l.elem == g.blk(TailBlock).tail
}

// IsBeforeBegin reports whether l is the position in front of the first
// element, as reached by stepping back from Begin().
func (g *Graph[T]) IsBeforeBegin(l Loc) bool {
	return l.block == HeadBlock && g.Fresh(l) && l.elem == g.blk(HeadBlock).head
}

// Next steps l to the following element, crossing block boundaries. Stepping
// past End() is not checked; it yields a location addressing no element.
// Stepping from a stale location yields the zero Loc.
func (g *Graph[T]) Next(l Loc) Loc {
	if !g.Fresh(l) {
		return Loc{}
	}
	b, x := l.block, l.elem
	if g.elem(x).next == g.blk(b).tail {
		b = g.blk(b).next
		x = g.first(b)
	} else {
		x = g.elem(x).next
	}
	return g.loc(b, x)
}

// Prev steps l to the preceding element, crossing block boundaries. Stepping
// back from Begin() yields the position in front of the first element; going
// further is not checked.
func (g *Graph[T]) Prev(l Loc) Loc {
	if !g.Fresh(l) {
		return Loc{}
	}
	b, x := l.block, l.elem
	if g.elem(x).prev == g.blk(b).head {
		b = g.blk(b).prev
		x = g.last(b)
	} else {
		x = g.elem(x).prev
	}
	return g.loc(b, x)
}

// Value returns the value at a dereferenceable location.
func (g *Graph[T]) Value(l Loc) T {
	assert(g.Dereferenceable(l), "Value called for a location without element")
	return g.elem(l.elem).value
}

// SetValue replaces the value at a dereferenceable location.
func (g *Graph[T]) SetValue(l Loc, v T) {
	assert(g.Dereferenceable(l), "SetValue called for a location without element")
	g.elem(l.elem).value = v
}

// --- Boundary operations ---------------------------------------------------

// Front returns the first value. The graph must not be empty.
func (g *Graph[T]) Front() T {
	assert(g.total > 0, "Front called for an empty graph")
	return g.elem(g.first(g.blk(HeadBlock).next)).value
}

// Back returns the last value. The graph must not be empty.
func (g *Graph[T]) Back() T {
	assert(g.total > 0, "Back called for an empty graph")
	return g.elem(g.last(g.blk(TailBlock).prev)).value
}

// PushFront prepends v to the first block, creating it if the graph is
// empty, and splits that block if it has grown beyond the split limit.
func (g *Graph[T]) PushFront(v T) {
	g.total++
	b := g.blk(HeadBlock).next
	if b == TailBlock {
		b = g.newBlock()
		g.linkBlockAfter(HeadBlock, b)
	}
	x := g.newElem(v)
	g.linkElemAfter(g.blk(b).head, x)
	g.blk(b).size++
	g.growBoundary(b)
}

// PushBack appends v to the last block, creating it if the graph is empty,
// and splits that block if it has grown beyond the split limit.
func (g *Graph[T]) PushBack(v T) {
	g.total++
	b := g.blk(TailBlock).prev
	if b == HeadBlock {
		b = g.newBlock()
		g.linkBlockAfter(HeadBlock, b)
	}
	x := g.newElem(v)
	g.linkElemAfter(g.last(b), x)
	g.blk(b).size++
	g.growBoundary(b)
}

// PopFront removes and returns the first value. The graph must not be empty.
func (g *Graph[T]) PopFront() T {
	assert(g.total > 0, "PopFront called for an empty graph")
	return g.removeFromBoundary(g.blk(HeadBlock).next, true)
}

// PopBack removes and returns the last value. The graph must not be empty.
func (g *Graph[T]) PopBack() T {
	assert(g.total > 0, "PopBack called for an empty graph")
	return g.removeFromBoundary(g.blk(TailBlock).prev, false)
}

func (g *Graph[T]) removeFromBoundary(b BlockRef, front bool) T {
	g.total--
	x := g.last(b)
	if front {
		x = g.first(b)
	}
	v := g.elem(x).value
	if g.blk(b).size == 1 {
		g.unlinkBlock(b)
		g.dropBlock(b)
		g.emit(Event{Kind: EventDrop, Block: b})
		return v
	}
	g.unlinkElem(x)
	g.elems.release(int32(x))
	g.blk(b).size--
	return v
}

// --- Inner operations ------------------------------------------------------

// InsertBefore inserts v in front of the element at l and returns the
// location of the new element. l may be End(); it must not be stale or in
// front of the first element.
//
// The block of l is split at l's element, a fresh singleton block holding v is
// linked into the gap, and the block chain is rescanned for mergeable pairs.
func (g *Graph[T]) InsertBefore(l Loc, v T) Loc {
	assert(g.Fresh(l) && l.block != HeadBlock, "InsertBefore called with an invalid location")
	g.total++
	at := g.Split(l.block, l.elem)
	s := g.newBlock()
	x := g.newElem(v)
	g.linkElemAfter(g.blk(s).head, x)
	g.blk(s).size = 1
	g.linkBlockAfter(g.blk(at).prev, s)
	s = g.Maintain(s)
	return g.loc(s, x)
}

// Remove deletes the element at l and returns the location of the element
// following it, or End().
//
// The element is isolated as a block of its own by splitting its block twice;
// that block is unlinked and released, and the blocks adjacent at the gap are
// merged. If the merged block reaches the split limit it is halved again, so
// Remove may report a split event after the merge.
func (g *Graph[T]) Remove(l Loc) Loc {
	assert(g.Dereferenceable(l), "Remove called with a location without element")
	g.total--
	x := l.elem
	b := g.Split(l.block, x)
	g.Split(b, g.elem(x).next)
	assert(g.blk(b).size == 1, "Remove could not isolate element")
	before, after := g.blk(b).prev, g.blk(b).next
	g.unlinkBlock(b)
	g.dropBlock(b)
	g.emit(Event{Kind: EventDrop, Block: b})
	return g.closeGap(before, after, g.first(after))
}

// Clear releases all real blocks and their elements.
func (g *Graph[T]) Clear() {
	for b := g.blk(HeadBlock).next; b != TailBlock; {
		next := g.blk(b).next
		g.dropBlock(b)
		b = next
	}
	g.blk(HeadBlock).next = TailBlock
	g.blk(TailBlock).prev = HeadBlock
	g.total = 0
	g.emit(Event{Kind: EventClear})
}

// CopyFrom replaces the contents of g with a deep copy of src, block by
// block, preserving order, values and block sizes. The configuration of g is
// kept.
func (g *Graph[T]) CopyFrom(src *Graph[T]) {
	if g == src {
		return
	}
	g.Clear()
	for b := src.blk(HeadBlock).next; b != TailBlock; b = src.blk(b).next {
		nb := g.newBlock()
		for x := src.first(b); x != src.blk(b).tail; x = src.elem(x).next {
			g.linkElemAfter(g.last(nb), g.newElem(src.elem(x).value))
		}
		g.blk(nb).size = src.blk(b).size
		g.linkBlockAfter(g.blk(TailBlock).prev, nb)
	}
	g.total = src.total
}

// Clone returns a deep copy of g with the same configuration.
func (g *Graph[T]) Clone() *Graph[T] {
	c, err := New[T](g.cfg)
	assert(err == nil, fmt.Sprintf("Clone: configuration became invalid: %v", err))
	c.CopyFrom(g)
	return c
}

// --- Introspection ---------------------------------------------------------

// Blocks iterates over the real blocks in order, yielding handle and size.
func (g *Graph[T]) Blocks() iter.Seq2[BlockRef, int] {
	return func(yield func(BlockRef, int) bool) {
		for b := g.blk(HeadBlock).next; b != TailBlock; b = g.blk(b).next {
			if !yield(b, g.blk(b).size) {
				return
			}
		}
	}
}

// Elements iterates over the values of block b in order.
func (g *Graph[T]) Elements(b BlockRef) iter.Seq[T] {
	return func(yield func(T) bool) {
		tail := g.blk(b).tail
		for x := g.first(b); x != tail; x = g.elem(x).next {
			if !yield(g.elem(x).value) {
				return
			}
		}
	}
}

// Stats summarizes the shape of a graph.
type Stats struct {
	Total      int     // number of elements
	Sizes      []int   // sizes of the real blocks, in order
	MergeLimit float64 // adjacent blocks up to this combined size get merged
	SplitLimit float64 // boundary blocks of this size get halved
}

// Stats returns the current shape of g.
func (g *Graph[T]) Stats() Stats {
	s := Stats{
		Total:      g.total,
		Sizes:      make([]int, 0, g.BlockCount()),
		MergeLimit: g.mergeLimit(),
		SplitLimit: g.splitLimit(),
	}
	for _, size := range g.Blocks() {
		s.Sizes = append(s.Sizes, size)
	}
	return s
}

// MaxBlockSize returns the size of the largest block.
func (s Stats) MaxBlockSize() int {
	m := 0
	for _, size := range s.Sizes {
		m = max(m, size)
	}
	return m
}
