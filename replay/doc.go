/*
Package replay runs scripts of deque operations.

A script holds one operation per line:

	push_back V    push_front V    pop_back    pop_front
	insert I V     erase I         clear
	at I           front           back

Blank lines and lines starting with '#' are ignored. Values are strings;
everything following the command (and the index, if any) is the value.

A Player applies parsed operations to a Deque[string]. It broadcasts a
StepEvent for every operation, together with every structural change the
operation caused, to any number of subscribers.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer.
All rights reserved.

Please refer to the LICENSE file for details.
*/
package replay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'deque.replay'
func tracer() tracing.Trace {
	return tracing.Select("deque.replay")
}
