// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Stats returns information about the MDD: the number of nodes at each level,
// the memory used by the unique tables, and the use of the operation caches.
func (m *MDD) Stats() string {
	res := fmt.Sprintf("Factors:    %d\n", m.Factors())
	res += fmt.Sprintf("Operations: %d\n", len(m.signature))
	res += fmt.Sprintf("Nodes:      %s\n", humanize.Comma(int64(m.Nodes())))
	res += fmt.Sprintf("Size:       %s\n", humanize.IBytes(m.memsize()))
	res += "==============\n"
	for _, l := range m.levels[:len(m.levels)-1] {
		res += fmt.Sprintf("Level %-4d size: %-4d nodes: %-8d union: %s  inter: %s  compl: %s\n",
			l.index, l.size, len(l.nodes),
			ratio(l.unioncache.GetMetrics()), ratio(l.intercache.GetMetrics()), ratio(l.complcache.GetMetrics()))
		for k, f := range l.ops {
			res += fmt.Sprintf("           op %-3d arity: %-3d cache: %s\n", k, f.arity, ratio(f.cache.GetMetrics()))
		}
		if _DEBUG {
			res += fmt.Sprintf("           unique access: %d  chain: %d  hit: %d  miss: %d\n",
				l.uniqueAccess, l.uniqueChain, l.uniqueHit, l.uniqueMiss)
		}
	}
	return res
}

type hitmiss interface {
	Hits() uint64
	Misses() uint64
}

func ratio(h hitmiss) string {
	return fmt.Sprintf("%s/%s", humanize.Comma(int64(h.Hits())), humanize.Comma(int64(h.Hits()+h.Misses())))
}

// memsize returns an approximation of the memory used by the unique tables.
func (m *MDD) memsize() uint64 {
	res := uint64(0)
	for _, l := range m.levels {
		res += uint64(len(l.nodes)) * uint64(unsafe.Sizeof(node{}))
		res += uint64(len(l.kids)) * uint64(unsafe.Sizeof(Node(0)))
	}
	return res
}

// PrintStats outputs a textual representation of the MDD statistics.
func (m *MDD) PrintStats(w io.Writer) {
	fmt.Fprintln(w, "==============")
	fmt.Fprint(w, m.Stats())
	fmt.Fprintln(w, "==============")
	if _DEBUG {
		for _, l := range m.levels {
			l.logTable()
		}
	}
}

// ******************************************************************************************************

// Print writes a textual representation of the nodes reachable from n, one
// line per node, with its level, its number of tuples and its children.
func (m *MDD) Print(w io.Writer, n Node) error {
	if !m.levels[0].checkptr(n) {
		m.seterror(ErrNode, "wrong operand (%d) in call to Print", n)
		return m.error
	}
	if n == Empty {
		_, err := fmt.Fprintln(w, "Empty")
		return err
	}
	if n == Full {
		_, err := fmt.Fprintln(w, "Full")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	err := m.Allnodes(func(level int, id Node, children []Node) error {
		if m.levels[level].Terminal() {
			return nil
		}
		_, err := fmt.Fprintf(tw, "%d\t[%d]\t#%s\t%v\n", id, level, m.levels[level].count(id), children)
		return err
	}, n)
	if err != nil {
		return err
	}
	return tw.Flush()
}

// PrintDot writes a graph-like description of the MDD with root n using the
// DOT format of Graphviz. Nodes are named after their level and identifier. We
// do not draw arcs that go to an empty set, and we only draw the terminal
// node Full.
func (m *MDD) PrintDot(w io.Writer, n Node) error {
	if !m.levels[0].checkptr(n) {
		m.seterror(ErrNode, "wrong operand (%d) in call to PrintDot", n)
		return m.error
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `T [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	type vertex struct {
		level int
		id    Node
	}
	var vertices []vertex
	m.Allnodes(func(level int, id Node, _ []Node) error {
		if id != Empty && !m.levels[level].Terminal() {
			vertices = append(vertices, vertex{level, id})
		}
		return nil
	}, n)
	sort.Slice(vertices, func(i, j int) bool {
		if vertices[i].level != vertices[j].level {
			return vertices[i].level < vertices[j].level
		}
		return vertices[i].id < vertices[j].id
	})
	for _, v := range vertices {
		l := m.levels[v.level]
		fmt.Fprintf(bw, "%s %s\n", dotname(l, v.id), dotlabel(v.level, v.id))
		for b, c := range l.children(v.id) {
			if c == Empty {
				continue
			}
			fmt.Fprintf(bw, "%s -> %s [label=\"%d\"];\n", dotname(l, v.id), dotname(l.next, c), b)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotname(l *Level, n Node) string {
	if l.Terminal() {
		return "T"
	}
	return fmt.Sprintf("N%d_%d", l.index, n)
}

func dotlabel(level int, n Node) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, n, level)
}
