package deque

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/deque/blocks"
)

// Deque2Dot outputs the block structure of a deque in Graphviz DOT format
// (for debugging purposes). Every block is drawn as a record listing its
// elements; blocks are shaded by their fill level relative to the split
// limit.
func Deque2Dot[T any](d *Deque[T], w io.Writer) {
	g := d.graph()
	stats := g.Stats()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	fmt.Fprintf(&nodelist, "\"%d\" %s;\n", blocks.HeadBlock, sentinelNode("head"))
	prev, pos := blocks.HeadBlock, 0
	for b, size := range g.Blocks() {
		var label strings.Builder
		fmt.Fprintf(&label, "#%d @%d", b, pos)
		for v := range g.Elements(b) {
			fmt.Fprintf(&label, "|%s", dotEscape(fmt.Sprint(v)))
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", b, label.String(),
			blockDotStyles(size, stats.SplitLimit))
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", prev, b)
		prev, pos = b, pos+size
	}
	fmt.Fprintf(&nodelist, "\"%d\" %s;\n", blocks.TailBlock, sentinelNode("tail"))
	fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", prev, blocks.TailBlock)
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func sentinelNode(name string) string {
	return fmt.Sprintf("[label=\"%s\",color=black,shape=circle,fixedsize=true,width=.6]", name)
}

func blockDotStyles(size int, splitLimit float64) string {
	s := ",style=filled,shape=record"
	level := 0
	if splitLimit > 0 {
		level = int(float64(size) / splitLimit * float64(len(hexcolors)))
	}
	level = min(max(level, 0), len(hexcolors)-1)
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[level])
}

// dotEscape protects characters with a meaning in record labels.
func dotEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
