package splay

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Tree2Dot outputs the internal structure of a sequence tree in Graphviz
// DOT format (for debugging purposes). Arena handles double as stable
// node IDs. The dump does not push tags down; pending deltas show up as
// "+lazy" annotations.
func Tree2Dot[T constraints.Signed](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	var walk func(h handle)
	walk = func(h handle) {
		if h == sentinel {
			return
		}
		n := t.nodes[h]
		label := fmt.Sprintf("%v\\n#%d Σ%v", n.key, n.size, n.sum)
		if n.lazy != 0 {
			label += fmt.Sprintf("\\n+%v", n.lazy)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", h, label, nodeDotStyles(h))
		for side, c := range n.child {
			if c == sentinel {
				nilid := int(h)*2 + side + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", h, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", h, c)
			walk(c)
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(h handle) string {
	s := ",style=filled"
	if h == guardHead || h == guardTail {
		s += ",color=black,fillcolor=\"#FFBB88\""
		s += ",shape=circle"
	} else {
		s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	}
	return s
}
