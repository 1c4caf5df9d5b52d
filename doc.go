/*
Package seqsum maintains editable integer sequences with fast range sums.

A Sequence holds an ordered list of integers in a splay tree augmented
with subtree sums and lazy additive tags (package splay). Positional
insert and delete, adding a delta to every element of a range, and
querying the sum of a range all run in amortized O(log n):

	Operation     |   Sequence      |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)
	Range add     |   O(log n)      |   O(n)
	Range sum     |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

For workloads with many interleaved edits and aggregate queries over
large sequences, sequences have stable performance characteristics where
slices degrade.

Note that every operation, including a pure range-sum query, may reshape
the underlying tree: splay trees rebalance by moving accessed nodes to
the root. Only the logical contents are stable.

A sequence instance is not safe for concurrent use; wrap it in a mutex
when sharing it between goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package seqsum

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
