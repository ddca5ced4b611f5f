package blocks

import "math"

// mergeLimit is the largest combined size of two adjacent blocks which
// still are merged by Maintain.
func (g *Graph[T]) mergeLimit() float64 {
	return g.cfg.MergeFactor * math.Sqrt(float64(g.total))
}

// splitLimit is the block size at which a block is halved.
func (g *Graph[T]) splitLimit() float64 {
	return g.cfg.SplitFactor * math.Sqrt(float64(g.total))
}

func (g *Graph[T]) overflows(b BlockRef) bool {
	return !isSentinelBlock(b) && float64(g.blk(b).size) >= g.splitLimit()
}

// Split cuts block b just before element x. b keeps the elements in front of
// x, a new block linked directly behind b receives x and its successors. Split
// returns the block starting with x.
//
// If x already is the first real element of b, or is b's tail sentinel, Split
// does nothing and returns b, so no empty blocks are created.
//
// Locations into b are stale after a split.
func (g *Graph[T]) Split(b BlockRef, x ElemRef) BlockRef {
	if x == g.first(b) || x == g.blk(b).tail {
		return b
	}
	assert(!isSentinelBlock(b), "Split called for a sentinel block")
	k := g.ElemRank(b, x)
	assert(k > 0 && k < g.blk(b).size, "Split called with an element not in block")
	r := g.newBlock()
	left, right := g.blk(b), g.blk(r)
	last := g.elem(left.tail).prev
	before := g.elem(x).prev
	g.elem(right.head).next = x
	g.elem(x).prev = right.head
	g.elem(last).next = right.tail
	g.elem(right.tail).prev = last
	g.elem(before).next = left.tail
	g.elem(left.tail).prev = before
	right.size = left.size - k
	left.size = k
	g.linkBlockAfter(b, r)
	g.blocks.touch(int32(b))
	g.emit(Event{Kind: EventSplit, Block: r, Sizes: [2]int{k, g.blk(r).size}})
	return r
}

// SplitHalf splits block b at its midpoint rank and returns the right part
// (or b, if b is too small to be split).
func (g *Graph[T]) SplitHalf(b BlockRef) BlockRef {
	mid := g.blk(b).size / 2
	return g.Split(b, g.nth(b, mid))
}

// Merge joins block a and its direct successor b into a fresh block holding
// the elements of both, in order. a and b are released; the fresh block is
// returned.
func (g *Graph[T]) Merge(a, b BlockRef) BlockRef {
	assert(!isSentinelBlock(a) && !isSentinelBlock(b), "Merge called for a sentinel block")
	assert(g.blk(a).next == b, "Merge called for blocks not adjacent")
	assert(g.blk(a).size > 0 && g.blk(b).size > 0, "Merge called for an empty block")
	m := g.newBlock()
	A, B, M := g.blk(a), g.blk(b), g.blk(m)
	sizes := [2]int{A.size, B.size}
	fa, la := g.elem(A.head).next, g.elem(A.tail).prev
	fb, lb := g.elem(B.head).next, g.elem(B.tail).prev
	g.elem(M.head).next = fa
	g.elem(fa).prev = M.head
	g.elem(la).next = fb
	g.elem(fb).prev = la
	g.elem(lb).next = M.tail
	g.elem(M.tail).prev = lb
	M.size = A.size + B.size
	M.prev, M.next = A.prev, B.next
	g.blk(M.prev).next = m
	g.blk(M.next).prev = m
	g.freeBlock(a)
	g.freeBlock(b)
	g.emit(Event{Kind: EventMerge, Block: m, Sizes: sizes})
	return m
}

// Maintain rescans the whole block chain and merges every pair of adjacent
// real blocks whose combined size is at most the merge limit. A merged block
// is checked against its new successor before the scan moves on.
//
// focus is a block the caller wants to keep track of. If it is consumed by a
// merge, the merged block takes its place. Maintain returns the (possibly
// re-anchored) focus.
func (g *Graph[T]) Maintain(focus BlockRef) BlockRef {
	limit := g.mergeLimit()
	b := g.blk(HeadBlock).next
	for b != TailBlock {
		next := g.blk(b).next
		if next == TailBlock {
			break
		}
		if float64(g.blk(b).size+g.blk(next).size) > limit {
			b = next
			continue
		}
		m := g.Merge(b, next)
		if focus == b || focus == next {
			focus = m
		}
		b = m
	}
	return focus
}

// growBoundary restores the size bound after a push into boundary block b.
func (g *Graph[T]) growBoundary(b BlockRef) {
	if g.overflows(b) {
		g.SplitHalf(b)
		g.Maintain(nilBlock)
	}
}

// closeGap merges the blocks left and right of a removed block, provided
// neither is a sentinel. x is the element following the gap; closeGap returns
// the location of x after the merge.
//
// Should the merged block reach the split limit, it is halved again.
func (g *Graph[T]) closeGap(before, after BlockRef, x ElemRef) Loc {
	if isSentinelBlock(before) || isSentinelBlock(after) {
		return g.loc(after, x)
	}
	rank := g.blk(before).size
	m := g.Merge(before, after)
	if !g.overflows(m) {
		return g.loc(m, x)
	}
	mid := g.blk(m).size / 2
	r := g.SplitHalf(m)
	if r != m && rank >= mid {
		return g.loc(r, x)
	}
	return g.loc(m, x)
}
