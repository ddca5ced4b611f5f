/*
Package blocks implements the engine behind package deque: a two-level
block decomposition of a sequence.

The outer level is a doubly linked chain of blocks, bounded by two permanent
sentinel blocks. Every block holds an inner doubly linked chain of elements,
bounded by two permanent, data-less sentinel elements. Blocks are split and
merged so that both the number of blocks and the size of a single block stay
in O(sqrt(n)); this bounds indexed access, insertion and removal anywhere in
the sequence to amortized O(sqrt(n)).

Blocks and elements live in two arenas and are addressed by integer handles.
Links between them are handle fields, the sentinels occupy reserved handles.
Every arena slot carries a generation counter, which lets clients holding a
Loc detect that the location has gone stale.

The package is organized along the procedures of the engine:
  - chain primitives (chain.go),
  - the Locator, mapping linear indexes to (block, element) and back (locate.go),
  - the Rebalancer with split, merge and the merge rescan (rebalance.go),
  - sequence operations built from these (graph.go),
  - an invariant checker for tests (invariants.go).

None of the operations in this package is safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package blocks

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
