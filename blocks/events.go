package blocks

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
)

// EventKind classifies structural changes of a graph.
type EventKind uint8

const (
	// EventSplit: a block has been cut in two.
	EventSplit EventKind = iota + 1
	// EventMerge: two adjacent blocks have been joined into a fresh block.
	EventMerge
	// EventDrop: a block has been unlinked and released.
	EventDrop
	// EventClear: all real blocks have been released.
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventSplit:
		return "split"
	case EventMerge:
		return "merge"
	case EventDrop:
		return "drop"
	case EventClear:
		return "clear"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event describes a structural change performed by the rebalancer.
//
// For a split, Block is the new right part and Sizes holds the left and right
// sizes. For a merge, Block is the fresh block and Sizes holds the sizes of the
// two consumed blocks. For a drop, Block is the released block.
type Event struct {
	Kind  EventKind
	Block BlockRef
	Sizes [2]int
	Total int // number of elements in the graph after the change
}

func (e Event) String() string {
	switch e.Kind {
	case EventSplit:
		return fmt.Sprintf("split %d|%d -> #%d (n=%d)", e.Sizes[0], e.Sizes[1], e.Block, e.Total)
	case EventMerge:
		return fmt.Sprintf("merge %d+%d -> #%d (n=%d)", e.Sizes[0], e.Sizes[1], e.Block, e.Total)
	case EventDrop:
		return fmt.Sprintf("drop #%d (n=%d)", e.Block, e.Total)
	}
	return fmt.Sprintf("%s (n=%d)", e.Kind, e.Total)
}

func (g *Graph[T]) emit(e Event) {
	e.Total = g.total
	// T is shadowed by the type parameter here
	gtrace.CoreTracer.Debugf("blocks: %s", e)
	if g.cfg.Observer != nil {
		g.cfg.Observer(e)
	}
}
