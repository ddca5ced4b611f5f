package blocks

import "fmt"

// Check validates the structural invariants of the graph:
//   - sentinel blocks exist, are empty and bound the block chain,
//   - block and element links are mutually consistent,
//   - every real block is non-empty and its size matches its element chain,
//   - the total count equals the sum of all block sizes,
//   - no arena slot is leaked.
//
// Check is intended for tests and debugging; it runs in O(n).
func (g *Graph[T]) Check() error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrCorrupted)
	}
	if !g.blocks.live(int32(HeadBlock)) || !g.blocks.live(int32(TailBlock)) {
		return fmt.Errorf("%w: sentinel block missing", ErrCorrupted)
	}
	if g.blk(HeadBlock).prev != nilBlock || g.blk(TailBlock).next != nilBlock {
		return fmt.Errorf("%w: sentinel blocks do not bound the chain", ErrCorrupted)
	}
	limit := g.blocks.capacity()
	realBlocks, sum := 0, 0
	for b := HeadBlock; b != TailBlock; {
		next := g.blk(b).next
		if !g.blocks.live(int32(next)) {
			return fmt.Errorf("%w: block #%d links to released block #%d", ErrCorrupted, b, next)
		}
		if g.blk(next).prev != b {
			return fmt.Errorf("%w: block link mismatch between #%d and #%d", ErrCorrupted, b, next)
		}
		n, err := g.checkElements(b)
		if err != nil {
			return err
		}
		if isSentinelBlock(b) {
			if n != 0 {
				return fmt.Errorf("%w: sentinel block #%d holds %d elements", ErrCorrupted, b, n)
			}
		} else {
			if n == 0 {
				return fmt.Errorf("%w: block #%d is empty", ErrCorrupted, b)
			}
			if n != g.blk(b).size {
				return fmt.Errorf("%w: block #%d size mismatch (%d != %d)", ErrCorrupted, b, g.blk(b).size, n)
			}
			realBlocks++
			sum += n
		}
		if realBlocks > limit {
			return fmt.Errorf("%w: cycle in block chain", ErrCorrupted)
		}
		b = next
	}
	if n, err := g.checkElements(TailBlock); err != nil {
		return err
	} else if n != 0 {
		return fmt.Errorf("%w: tail sentinel block holds %d elements", ErrCorrupted, n)
	}
	if sum != g.total {
		return fmt.Errorf("%w: total mismatch (%d != %d)", ErrCorrupted, g.total, sum)
	}
	if g.blocks.inUse != realBlocks+2 {
		return fmt.Errorf("%w: %d block slots in use for %d blocks", ErrCorrupted, g.blocks.inUse, realBlocks+2)
	}
	if want := g.total + 2*(realBlocks+2); g.elems.inUse != want {
		return fmt.Errorf("%w: %d element slots in use, expected %d", ErrCorrupted, g.elems.inUse, want)
	}
	return nil
}

// checkElements walks the element chain of block b and returns the number of
// real elements.
func (g *Graph[T]) checkElements(b BlockRef) (int, error) {
	blk := g.blk(b)
	if !g.elems.live(int32(blk.head)) || !g.elems.live(int32(blk.tail)) {
		return 0, fmt.Errorf("%w: block #%d has released sentinels", ErrCorrupted, b)
	}
	if g.elem(blk.head).prev != nilElem || g.elem(blk.tail).next != nilElem {
		return 0, fmt.Errorf("%w: sentinels of block #%d do not bound its chain", ErrCorrupted, b)
	}
	limit := g.elems.capacity()
	n := 0
	for x := blk.head; x != blk.tail; n++ {
		next := g.elem(x).next
		if !g.elems.live(int32(next)) {
			return 0, fmt.Errorf("%w: element #%d in block #%d links to released element #%d",
				ErrCorrupted, x, b, next)
		}
		if g.elem(next).prev != x {
			return 0, fmt.Errorf("%w: element link mismatch in block #%d", ErrCorrupted, b)
		}
		if n > limit {
			return 0, fmt.Errorf("%w: cycle in element chain of block #%d", ErrCorrupted, b)
		}
		x = next
	}
	return n - 1, nil
}

// CheckBalance verifies that no two adjacent real blocks could be merged,
// i.e. every adjacent pair exceeds the merge limit in combined size. This
// holds after every insertion; pushes and pops may leave mergeable pairs
// behind.
func (g *Graph[T]) CheckBalance() error {
	limit := g.mergeLimit()
	b := g.blk(HeadBlock).next
	for b != TailBlock && g.blk(b).next != TailBlock {
		next := g.blk(b).next
		if combined := g.blk(b).size + g.blk(next).size; float64(combined) <= limit {
			return fmt.Errorf("%w: blocks #%d and #%d could be merged (%d <= %.2f)",
				ErrCorrupted, b, next, combined, limit)
		}
		b = next
	}
	return nil
}
