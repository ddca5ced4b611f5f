/*
Package deque offers a generic double-ended sequence with indexed access and
cheap insertion and removal anywhere in the sequence.

# Deques

A Deque keeps its elements in a two-level structure: an outer chain of blocks,
each of which holds an inner chain of elements. Blocks are split when they grow
too large and merged with their neighbours when they become too small, relative
to the square root of the number of elements. This is a sqrt decomposition of
a linked list.

	Operation          |   Deque             |  Slice   |  List
	-------------------+---------------------+----------+------
	Index              |   O(sqrt n)         |   O(1)   |  O(n)
	Push/Pop at ends   |   O(1) amortized    |   O(1)*  |  O(1)
	Insert/Erase       |   O(sqrt n) amort.  |   O(n)   |  O(1)**
	Iterate            |   O(n)              |   O(n)   |  O(n)

	 * only at the back
	** given a position; finding it is O(n)

Deques suit workloads mixing random access with many edits in the middle of
long sequences. For short sequences a slice will almost always be faster.

The structural engine lives in package blocks; its thresholds may be tuned by
passing a blocks.Config to NewWithConfig.

# Iterators

Iterators address a position in a deque. They are plain values and do not
keep a deque alive. Any structural change of a deque may invalidate
iterators, except the one returned by the changing operation. Dereferencing an
invalidated iterator, or using it for Insert, Erase or Distance, fails with
ErrInvalidIterator. Stepping an iterator past either end of its deque is not
checked; the result addresses no element.

None of the types in this package is safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer.
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package deque

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DequeError is an error type for the deque module
type DequeError string

func (e DequeError) Error() string {
	return string(e)
}

// ErrOutOfBounds is flagged whenever an index is not in [0, Len()).
const ErrOutOfBounds = DequeError("index out of bounds")

// ErrEmptyContainer is flagged for element access or removal on an empty deque.
const ErrEmptyContainer = DequeError("container is empty")

// ErrInvalidIterator is flagged whenever an iterator does not belong to the
// deque it is used with, addresses no element where one is required, or has
// been invalidated by a structural change.
const ErrInvalidIterator = DequeError("invalid iterator")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
