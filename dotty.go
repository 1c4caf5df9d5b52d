package seqsum

import (
	"io"

	"github.com/npillmayer/seqsum/splay"
	"golang.org/x/exp/constraints"
)

// Seq2Dot outputs the internal tree structure of a Sequence in Graphviz
// DOT format (for debugging purposes).
//
// Guard nodes show as circles, real elements as boxes labeled with their
// value, subtree size and subtree sum; pending lazy deltas are annotated.
func Seq2Dot[T constraints.Signed](seq Sequence[T], w io.Writer) {
	if seq.tree == nil {
		io.WriteString(w, "strict digraph {\n}\n")
		return
	}
	splay.Tree2Dot(seq.tree, w)
}
