/*
Package splay implements the sequence engine behind seqsum: a splay tree
over an arena of handle-addressed nodes, augmented with subtree sizes and
subtree sums and with lazy additive tags for range updates.

The package is intentionally not a generic map/set container. It is
specialized for sequence storage with positional editing, where positions
are 0-indexed ranks in the logical sequence:

  - node arena with a fixed lifetime capacity and a permanent sentinel
    at handle 0,
  - two permanent guard nodes bracketing the real elements, shifting
    external position i to internal in-order rank i+2,
  - bottom-up size/sum recomputation and O(1) deferred range-add via
    lazy tags,
  - splaying as the sole rebalancing mechanism (amortized O(log n)),
  - range isolation: splay the two boundary nodes so that the elements
    of [l,r] form one directly addressable subtree.

All operations, including pure reads, reshape the tree through splaying.
Callers must not assume a stable internal shape, only stable logical
contents.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package splay

import (
	"github.com/npillmayer/schuko/tracing"
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// tracer writes to trace with key 'seqsum'
func tracer() tracing.Trace {
	return tracing.Select("seqsum")
}
