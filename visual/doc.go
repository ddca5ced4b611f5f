/*
Package visual renders the block layout of a deque to a console.

Every block is printed as a cell holding its size and (a prefix of) its
values. Cells are colored by their state relative to the rebalancing
thresholds: blocks which reached the split limit, blocks which could be merged
with their successor, and regular blocks. The sentinel blocks frame the
layout.

Output is wrapped to a line width, which ConfigFromTerminal derives from the
current terminal.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package visual

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
