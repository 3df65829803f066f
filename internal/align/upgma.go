package align

import (
	"fmt"
	"strconv"
	"strings"
)

// node is one entry in the guide tree arena. Children are integer
// indices into the arena rather than pointers, so the tree can be
// walked iteratively in index order: a parent is always appended after
// both of its children.
type node struct {
	// left and right are arena indices of the children, -1 for a leaf
	left, right int

	// height is the distance at which the children were merged; 0 at a leaf
	height float64

	// id is the sequence identifier of a leaf, empty for internal nodes
	id string

	// size is the number of leaves under this node
	size int

	// minID is the smallest leaf identifier under this node, used for
	// deterministic tie-breaking during construction
	minID string
}

// Tree is the UPGMA guide tree over one run's sequences. It is built
// once and never mutated.
type Tree struct {
	nodes []node
	root  int
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// BuildTree clusters the distance matrix with UPGMA: repeatedly merge
// the pair of clusters at minimum average distance, with the new
// cluster's distances being the size-weighted average of its parts.
// Ties on the minimum distance are broken by the lexicographically
// smallest pair of contained minimum identifiers, so the same matrix
// always yields the same tree. Exactly n-1 merges are made.
func BuildTree(d *Distances) (*Tree, error) {
	n := d.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d sequences, need at least 2 for a guide tree", ErrInsufficientInput, n)
	}

	total := 2*n - 1
	nodes := make([]node, 0, total)
	for _, id := range d.IDs() {
		nodes = append(nodes, node{left: -1, right: -1, id: id, size: 1, minID: id})
	}

	// Working distances between arena indices. The matrix only ever
	// holds entries for clusters that are currently active.
	work := make([][]float64, total)
	for i := range work {
		work[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			work[i][j] = d.at(i, j)
			work[j][i] = work[i][j]
		}
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	for len(active) > 1 {
		// Find the closest active pair, ties broken by identifier.
		var bx, by = -1, -1
		var best float64
		var bestLo, bestHi string
		for ai := 0; ai < len(active); ai++ {
			for aj := ai + 1; aj < len(active); aj++ {
				x, y := active[ai], active[aj]
				dist := work[x][y]
				lo, hi := orderIDs(nodes[x].minID, nodes[y].minID)
				better := bx == -1 || dist < best
				if !better && dist == best {
					better = lo < bestLo || (lo == bestLo && hi < bestHi)
				}
				if better {
					bx, by, best = x, y, dist
					bestLo, bestHi = lo, hi
				}
			}
		}

		// Left child carries the smaller contained identifier.
		left, right := bx, by
		if nodes[right].minID < nodes[left].minID {
			left, right = right, left
		}
		merged := node{
			left:   left,
			right:  right,
			height: best,
			size:   nodes[left].size + nodes[right].size,
			minID:  nodes[left].minID,
		}
		idx := len(nodes)
		nodes = append(nodes, merged)

		// Size-weighted average distance from the new cluster to every
		// other active cluster.
		sx := float64(nodes[bx].size)
		sy := float64(nodes[by].size)
		for _, k := range active {
			if k == bx || k == by {
				continue
			}
			avg := (sx*work[bx][k] + sy*work[by][k]) / (sx + sy)
			work[idx][k] = avg
			work[k][idx] = avg
		}

		next := make([]int, 0, len(active)-1)
		for _, k := range active {
			if k != bx && k != by {
				next = append(next, k)
			}
		}
		active = append(next, idx)
	}

	return &Tree{nodes: nodes, root: active[0]}, nil
}

func orderIDs(a, b string) (lo, hi string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Newick serializes the tree in Newick format with branch lengths,
// terminated by a semicolon.
func (t *Tree) Newick() string {
	reprs := make([]string, len(t.nodes))
	for i, nd := range t.nodes {
		if nd.left < 0 {
			reprs[i] = nd.id
			continue
		}
		var sb strings.Builder
		sb.WriteByte('(')
		sb.WriteString(reprs[nd.left])
		sb.WriteByte(':')
		sb.WriteString(formatLen(nd.height - t.nodes[nd.left].height))
		sb.WriteByte(',')
		sb.WriteString(reprs[nd.right])
		sb.WriteByte(':')
		sb.WriteString(formatLen(nd.height - t.nodes[nd.right].height))
		sb.WriteByte(')')
		reprs[i] = sb.String()
	}
	return reprs[t.root] + ";"
}

func formatLen(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
