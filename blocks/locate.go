package blocks

// Locate maps the linear index p to the location of its element.
//
// It accumulates block sizes from the head sentinel until the next block
// would overshoot p, then scans the owning block to the exact offset.
func (g *Graph[T]) Locate(p int) (Loc, error) {
	if p < 0 || p >= g.total {
		return Loc{}, ErrIndexOutOfBounds
	}
	b := g.blk(HeadBlock).next
	for b != TailBlock && p >= g.blk(b).size {
		p -= g.blk(b).size
		b = g.blk(b).next
	}
	assert(b != TailBlock, "Locate ran past the last block")
	return g.loc(b, g.nth(b, p)), nil
}

// nth returns the k-th real element of block b. For k == size it returns the
// tail sentinel.
func (g *Graph[T]) nth(b BlockRef, k int) ElemRef {
	tail := g.blk(b).tail
	x := g.first(b)
	for ; x != tail && k > 0; k-- {
		x = g.elem(x).next
	}
	return x
}

// BlockRank returns the zero-based position of block b in the block chain,
// not counting the head sentinel. The tail sentinel block ranks after all
// real blocks. BlockRank returns -1 if b is not linked into the chain.
func (g *Graph[T]) BlockRank(b BlockRef) int {
	if b == HeadBlock {
		return -1
	}
	rank := 0
	for i := g.blk(HeadBlock).next; i != b; i = g.blk(i).next {
		if i == TailBlock {
			return -1
		}
		rank++
	}
	return rank
}

// ElemRank returns the zero-based position of element x within block b.
// The tail sentinel ranks at size(b). ElemRank returns -1 if x is not
// chained into b.
func (g *Graph[T]) ElemRank(b BlockRef, x ElemRef) int {
	tail := g.blk(b).tail
	rank := 0
	for i := g.first(b); i != x; i = g.elem(i).next {
		if i == tail {
			return -1
		}
		rank++
	}
	return rank
}

// IndexOf maps a location back to its linear index. The terminal location
// maps to Len(), the location in front of the first element maps to -1.
func (g *Graph[T]) IndexOf(l Loc) (int, error) {
	if !g.Fresh(l) {
		return 0, ErrStaleLocation
	}
	if l.block == HeadBlock {
		return -1, nil
	}
	idx := 0
	for b := g.blk(HeadBlock).next; b != l.block; b = g.blk(b).next {
		if b == TailBlock {
			return 0, ErrStaleLocation
		}
		idx += g.blk(b).size
	}
	k := g.ElemRank(l.block, l.elem)
	if k < 0 {
		return 0, ErrStaleLocation
	}
	return idx + k, nil
}

// Distance returns the signed number of steps from location b to location a,
// i.e. index(a) − index(b).
func (g *Graph[T]) Distance(a, b Loc) (int, error) {
	if a.block == b.block && g.Fresh(a) && g.Fresh(b) && !isSentinelBlock(a.block) {
		ra, rb := g.ElemRank(a.block, a.elem), g.ElemRank(b.block, b.elem)
		if ra >= 0 && rb >= 0 {
			return ra - rb, nil
		}
	}
	ia, err := g.IndexOf(a)
	if err != nil {
		return 0, err
	}
	ib, err := g.IndexOf(b)
	if err != nil {
		return 0, err
	}
	return ia - ib, nil
}
