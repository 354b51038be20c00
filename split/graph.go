// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"container/heap"
	"unicode/utf8"

	"github.com/unixdj/qrcode/coding"
)

// A node is a candidate encoding of a run.
type node struct {
	mode coding.Mode
	text string
	n    int // length in characters of mode
	res  int // length of the open segment of mode, modulo period(mode)
}

// period returns the number of characters after which the data bit
// count of mode repeats its pattern.  The cost of appending n
// characters to a segment of length a depends only on a%period and n.
func period(m coding.Mode) int {
	switch m {
	case coding.Numeric:
		return 3
	case coding.Alphanumeric:
		return 2
	}
	return 1
}

// graph is a layered graph of candidate encodings, one layer per run.
// Each candidate appears once per residue of its open segment length.
// Nodes are stored in a single arena; node i of layer k has id
// first[k]+i.  Nodes of a layer are connected to the nodes of the next
// layer whose residue they lead to.  Two extra ids stand for the start
// and the end.
type graph struct {
	v     coding.Version
	nodes []node
	first []int // first node id of each layer, plus len(nodes)
}

func (g *graph) start() int { return len(g.nodes) }
func (g *graph) end() int   { return len(g.nodes) + 1 }

// alternatives returns the candidate encodings of r.
func alternatives(r run) []node {
	n := len(r.text)
	switch r.mode {
	case coding.Numeric:
		return []node{
			{mode: coding.Numeric, text: r.text, n: n},
			{mode: coding.Alphanumeric, text: r.text, n: n},
			{mode: coding.Byte, text: r.text, n: n},
		}
	case coding.Alphanumeric:
		return []node{
			{mode: coding.Alphanumeric, text: r.text, n: n},
			{mode: coding.Byte, text: r.text, n: n},
		}
	case coding.Kanji:
		return []node{
			{mode: coding.Kanji, text: r.text, n: utf8.RuneCountInString(r.text)},
			{mode: coding.Byte, text: r.text, n: n},
		}
	}
	return []node{{mode: coding.Byte, text: r.text, n: n}}
}

func newGraph(rs []run, v coding.Version) *graph {
	g := &graph{v: v, first: make([]int, 0, len(rs)+1)}
	for _, r := range rs {
		g.first = append(g.first, len(g.nodes))
		for _, nd := range alternatives(r) {
			for nd.res = 0; nd.res < period(nd.mode); nd.res++ {
				g.nodes = append(g.nodes, nd)
			}
		}
	}
	g.first = append(g.first, len(g.nodes))
	return g
}

// layerOf returns the layer of node id, -1 for the start and
// len(first)-1 for the end.
func (g *graph) layerOf(id int) int {
	switch id {
	case g.start():
		return -1
	case g.end():
		return len(g.first) - 1
	}
	k := 0
	for g.first[k+1] <= id {
		k++
	}
	return k
}

// weight returns the cost in bits of appending node id to a path
// ending in node from, and false if there is no such edge.  A mode
// switch costs a segment header; staying in the same mode costs the
// growth of the segment.
func (g *graph) weight(from, id int) (int, bool) {
	if id == g.end() {
		return 0, true
	}
	nd := &g.nodes[id]
	p := period(nd.mode)
	if from != g.start() {
		if f := &g.nodes[from]; f.mode == nd.mode {
			if (f.res+nd.n)%p != nd.res {
				return 0, false
			}
			return nd.mode.DataBits(f.res+nd.n) - nd.mode.DataBits(f.res), true
		}
	}
	if nd.n%p != nd.res {
		return 0, false
	}
	return nd.mode.DataBits(nd.n) + nd.mode.HeaderBits(g.v), true
}

// successors returns the range of ids reachable from id.
func (g *graph) successors(id int) (int, int) {
	k := g.layerOf(id) + 1
	if k == len(g.first)-1 {
		return g.end(), g.end() + 1
	}
	return g.first[k], g.first[k+1]
}

type entry struct {
	id, dist int
}

// queue is a min-heap of entries by distance.
type queue []entry

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(entry)) }
func (q *queue) Pop() any {
	old := *q
	e := old[len(old)-1]
	*q = old[:len(old)-1]
	return e
}

// shortest returns the node ids on the shortest path from start to
// end, excluding both, and its length in bits.
func (g *graph) shortest() ([]int, int) {
	const inf = int(^uint(0) >> 1)
	n := len(g.nodes) + 2
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = inf, -1
	}
	dist[g.start()] = 0
	q := &queue{{g.start(), 0}}
	for q.Len() > 0 {
		e := heap.Pop(q).(entry)
		if e.dist > dist[e.id] {
			continue
		}
		if e.id == g.end() {
			break
		}
		lo, hi := g.successors(e.id)
		for id := lo; id < hi; id++ {
			w, ok := g.weight(e.id, id)
			if !ok {
				continue
			}
			if d := e.dist + w; d < dist[id] {
				dist[id], prev[id] = d, e.id
				heap.Push(q, entry{id, d})
			}
		}
	}
	var path []int
	for id := prev[g.end()]; id != g.start() && id >= 0; id = prev[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[g.end()]
}

// Optimize returns segments encoding text with the minimal number of
// bits in version v, as found by a shortest path search over the
// candidate encodings of its runs.  Neighbouring segments of the same
// mode are merged.  Kanji mode is only used if sjis is not nil.
func Optimize(text string, v coding.Version, sjis coding.ShiftJISFunc) []coding.Segment {
	rs := runs(text, sjis)
	if len(rs) == 0 {
		return nil
	}
	g := newGraph(rs, v)
	path, _ := g.shortest()
	var segs []coding.Segment
	for _, id := range path {
		nd := &g.nodes[id]
		if i := len(segs) - 1; i >= 0 && segs[i].Mode == nd.mode {
			segs[i].Text += nd.text
			continue
		}
		segs = append(segs, coding.Segment{Mode: nd.mode, Text: nd.text})
	}
	return segs
}
