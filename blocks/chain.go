package blocks

// blk returns a pointer to block slot b. The pointer must not be held across
// allocations.
func (g *Graph[T]) blk(b BlockRef) *block {
	return g.blocks.at(int32(b))
}

// elem returns a pointer to element slot x. The pointer must not be held
// across allocations.
func (g *Graph[T]) elem(x ElemRef) *element[T] {
	return g.elems.at(int32(x))
}

// --- Element chain ---------------------------------------------------------

func (g *Graph[T]) newElem(v T) ElemRef {
	x := ElemRef(g.elems.alloc())
	g.elem(x).value = v
	return x
}

// linkElemAfter links the unlinked element x directly behind at.
func (g *Graph[T]) linkElemAfter(at, x ElemRef) {
	next := g.elem(at).next
	assert(next != nilElem, "linkElemAfter called at a tail sentinel")
	e := g.elem(x)
	e.prev, e.next = at, next
	g.elem(at).next = x
	g.elem(next).prev = x
}

// unlinkElem removes a real element from its chain without releasing it.
func (g *Graph[T]) unlinkElem(x ElemRef) {
	e := g.elem(x)
	assert(e.prev != nilElem && e.next != nilElem, "unlinkElem called for a sentinel")
	g.elem(e.prev).next = e.next
	g.elem(e.next).prev = e.prev
	e.prev, e.next = nilElem, nilElem
}

func (g *Graph[T]) first(b BlockRef) ElemRef {
	return g.elem(g.blk(b).head).next
}

func (g *Graph[T]) last(b BlockRef) ElemRef {
	return g.elem(g.blk(b).tail).prev
}

// --- Block chain -----------------------------------------------------------

// newBlock allocates an empty, unlinked block together with its two
// sentinel elements.
func (g *Graph[T]) newBlock() BlockRef {
	b := BlockRef(g.blocks.alloc())
	head := ElemRef(g.elems.alloc())
	tail := ElemRef(g.elems.alloc())
	g.elem(head).next = tail
	g.elem(tail).prev = head
	blk := g.blk(b)
	blk.head, blk.tail = head, tail
	return b
}

// freeBlock releases an unlinked block and its sentinels. Real elements must
// have been moved out or released before.
func (g *Graph[T]) freeBlock(b BlockRef) {
	blk := g.blk(b)
	head, tail := blk.head, blk.tail
	g.elems.release(int32(head))
	g.elems.release(int32(tail))
	g.blocks.release(int32(b))
}

// dropBlock releases an unlinked block together with all of its elements.
func (g *Graph[T]) dropBlock(b BlockRef) {
	tail := g.blk(b).tail
	for x := g.first(b); x != tail; {
		next := g.elem(x).next
		g.elems.release(int32(x))
		x = next
	}
	g.freeBlock(b)
}

// linkBlockAfter links the unlinked block b directly behind at.
func (g *Graph[T]) linkBlockAfter(at, b BlockRef) {
	next := g.blk(at).next
	assert(next != nilBlock, "linkBlockAfter called at the tail sentinel block")
	blk := g.blk(b)
	blk.prev, blk.next = at, next
	g.blk(at).next = b
	g.blk(next).prev = b
}

// unlinkBlock removes a real block from the block chain without releasing it.
func (g *Graph[T]) unlinkBlock(b BlockRef) {
	assert(!isSentinelBlock(b), "unlinkBlock called for a sentinel block")
	blk := g.blk(b)
	g.blk(blk.prev).next = blk.next
	g.blk(blk.next).prev = blk.prev
	blk.prev, blk.next = nilBlock, nilBlock
}
