package blocks

// BlockRef is a handle of a block in the block arena.
type BlockRef int32

// ElemRef is a handle of an element in the element arena.
type ElemRef int32

const (
	nilBlock BlockRef = 0
	// HeadBlock is the reserved handle of the sentinel block in front of
	// all real blocks.
	HeadBlock BlockRef = 1
	// TailBlock is the reserved handle of the sentinel block after all
	// real blocks. The terminal location lives in this block.
	TailBlock BlockRef = 2
)

const nilElem ElemRef = 0

// block is the outer unit of the two-level structure. Its elements are
// chained between the sentinel elements head and tail; size counts real
// elements only.
type block struct {
	prev, next BlockRef
	head, tail ElemRef
	size       int
}

// element holds one value. Sentinel elements carry the zero value.
type element[T any] struct {
	prev, next ElemRef
	value      T
}

func isSentinelBlock(b BlockRef) bool {
	return b == HeadBlock || b == TailBlock
}

// Loc addresses a position in a graph: a block and an element within it,
// together with the generations both slots had when the Loc was created.
//
// The zero Loc addresses nothing.
type Loc struct {
	block BlockRef
	elem  ElemRef
	bgen  uint32
	egen  uint32
}

// Block returns the handle of the block of l.
func (l Loc) Block() BlockRef { return l.block }

// Elem returns the handle of the element of l.
func (l Loc) Elem() ElemRef { return l.elem }

// IsZero reports whether l addresses nothing.
func (l Loc) IsZero() bool { return l.block == nilBlock && l.elem == nilElem }

// Same reports whether l and other address the identical block and element,
// regardless of generations.
func (l Loc) Same(other Loc) bool {
	return l.block == other.block && l.elem == other.elem
}
