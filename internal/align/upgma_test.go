package align

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// distancesFrom builds a Distances directly from a matrix, bypassing
// the pairwise stage.
func distancesFrom(ids []string, upper map[[2]string]float64) *Distances {
	n := len(ids)
	d := &Distances{
		ids:   ids,
		index: make(map[string]int, n),
		sym:   mat.NewSymDense(n, nil),
	}
	for i, id := range ids {
		d.index[id] = i
	}
	for pair, v := range upper {
		d.sym.SetSym(d.index[pair[0]], d.index[pair[1]], v)
	}
	return d
}

func TestBuildTree(t *testing.T) {
	d := distancesFrom([]string{"a", "b", "c"}, map[[2]string]float64{
		{"a", "b"}: 0.2,
		{"a", "c"}: 0.6,
		{"b", "c"}: 0.4,
	})

	tree, err := BuildTree(d)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Leaves() != 3 {
		t.Fatalf("leaves = %d, want 3", tree.Leaves())
	}

	// a and b merge first at 0.2; their average distance to c is 0.5.
	want := "((a:0.2,b:0.2):0.3,c:0.5);"
	if got := tree.Newick(); got != want {
		t.Errorf("Newick() = %s, want %s", got, want)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	build := func() string {
		d := distancesFrom([]string{"d", "b", "c", "a"}, map[[2]string]float64{
			{"d", "b"}: 0.5, {"d", "c"}: 0.5, {"d", "a"}: 0.5,
			{"b", "c"}: 0.5, {"b", "a"}: 0.5,
			{"c", "a"}: 0.5,
		})
		tree, err := BuildTree(d)
		if err != nil {
			t.Fatal(err)
		}
		return tree.Newick()
	}

	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); got != first {
			t.Fatalf("tie-broken tree changed between runs: %s vs %s", first, got)
		}
	}

	// All distances tie, so merges follow identifiers: (a,b) first, then
	// the (a,b) cluster with c, then d.
	want := "(((a:0.5,b:0.5):0,c:0.5):0,d:0.5);"
	if first != want {
		t.Errorf("Newick() = %s, want %s", first, want)
	}
}

func TestBuildTree_MergeCount(t *testing.T) {
	d := distancesFrom([]string{"a", "b", "c", "d", "e"}, map[[2]string]float64{
		{"a", "b"}: 0.1, {"a", "c"}: 0.3, {"a", "d"}: 0.7, {"a", "e"}: 0.9,
		{"b", "c"}: 0.3, {"b", "d"}: 0.7, {"b", "e"}: 0.9,
		{"c", "d"}: 0.6, {"c", "e"}: 0.8,
		{"d", "e"}: 0.4,
	})
	tree, err := BuildTree(d)
	if err != nil {
		t.Fatal(err)
	}
	// n leaves and n-1 internal merge nodes
	if len(tree.nodes) != 9 {
		t.Fatalf("arena has %d nodes, want 9", len(tree.nodes))
	}
	root := tree.nodes[tree.root]
	if root.size != 5 {
		t.Fatalf("root covers %d leaves, want 5", root.size)
	}
}

func TestBuildTree_InsufficientInput(t *testing.T) {
	d := distancesFrom([]string{"a"}, nil)
	if _, err := BuildTree(d); !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("error = %v, want ErrInsufficientInput", err)
	}
}
