package intmap

import (
	"fmt"
	"io"
)

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes).
//
// Branch nodes are labeled prefix/mask, leaves with key and value.
func Map2Dot[V any](m Map[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nextID := 0
	// ids of the open branch nodes along the current path, one per depth
	var path []int
	link := func(depth, id int) {
		path = path[:depth]
		if depth > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", path[depth-1], id)
		}
	}
	m.Walk(
		func(prefix, bit uint64, depth int) {
			nextID++
			id := nextID
			link(depth, id)
			label := fmt.Sprintf("%#x/%#x", prefix, bit)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(false))
			path = append(path, id)
		},
		func(key int64, value V, depth int) {
			nextID++
			id := nextID
			link(depth, id)
			label := fmt.Sprintf("%d\\n“%v”", key, value)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true))
		},
	)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := "style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
