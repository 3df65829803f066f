package align

import (
	"bytes"
	"errors"
	"testing"
)

func TestPairAlign_Identical(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)
	a := FromSequence(NewSequence("s1", "ACGTACGT"))
	b := FromSequence(NewSequence("s2", "ACGTACGT"))

	merged, score, err := PairAlign(a, b, &sc)
	if err != nil {
		t.Fatal(err)
	}
	if score != 8 {
		t.Errorf("score = %v, want 8", score)
	}
	if merged.Width() != 8 {
		t.Errorf("width = %d, want 8", merged.Width())
	}
	for _, row := range merged.Rows {
		if bytes.ContainsRune(row, rune(Gap)) {
			t.Errorf("identical sequences got a gap: %s", row)
		}
	}
}

// One contiguous two-symbol gap must beat two separate one-symbol gaps:
// one open plus one extend (-3) scores above two opens (-4).
func TestPairAlign_AffineGap(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)
	a := FromSequence(NewSequence("long", "ACGTAC"))
	b := FromSequence(NewSequence("short", "ACAC"))

	merged, score, err := PairAlign(a, b, &sc)
	if err != nil {
		t.Fatal(err)
	}
	if score != 1 { // 4 matches - (2 + 1)
		t.Errorf("score = %v, want 1", score)
	}

	row, _ := merged.Row("short")
	if string(row) != "AC--AC" {
		t.Errorf("short row = %s, want AC--AC", row)
	}
	long, _ := merged.Row("long")
	if string(long) != "ACGTAC" {
		t.Errorf("long row = %s, want ACGTAC", long)
	}
}

func TestPairAlign_ScoreSymmetry(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)

	tests := []struct {
		name string
		s, u string
	}{
		{"equal length", "ACGT", "AGCT"},
		{"unequal length", "ACGTAC", "ACAC"},
		{"very different", "AAAA", "TTTTTTTT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ab, err := PairAlign(FromSequence(NewSequence("a", tt.s)), FromSequence(NewSequence("b", tt.u)), &sc)
			if err != nil {
				t.Fatal(err)
			}
			_, ba, err := PairAlign(FromSequence(NewSequence("b", tt.u)), FromSequence(NewSequence("a", tt.s)), &sc)
			if err != nil {
				t.Fatal(err)
			}
			if ab != ba {
				t.Errorf("align(a,b) = %v but align(b,a) = %v", ab, ba)
			}
		})
	}
}

func TestPairAlign_RoundTrip(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)
	s1 := NewSequence("s1", "ACGTACGTAC")
	s2 := NewSequence("s2", "ACGACGAC")

	merged, _, err := PairAlign(FromSequence(s1), FromSequence(s2), &sc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []Sequence{s1, s2} {
		got, ok := merged.Ungapped(want.ID)
		if !ok {
			t.Fatalf("merged profile lost %s", want.ID)
		}
		if !bytes.Equal(got.Residues, want.Residues) {
			t.Errorf("round trip of %s = %s, want %s", want.ID, got.Residues, want.Residues)
		}
	}
}

func TestPairAlign_ProfileVsSequence(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)

	ab, _, err := PairAlign(FromSequence(NewSequence("s1", "ACGT")), FromSequence(NewSequence("s2", "ACCT")), &sc)
	if err != nil {
		t.Fatal(err)
	}
	merged, _, err := PairAlign(ab, FromSequence(NewSequence("s3", "AGGT")), &sc)
	if err != nil {
		t.Fatal(err)
	}

	if merged.Members() != 3 {
		t.Fatalf("members = %d, want 3", merged.Members())
	}
	w := merged.Width()
	for _, row := range merged.Rows {
		if len(row) != w {
			t.Fatalf("rows differ in width")
		}
	}
}

func TestPairAlign_Empty(t *testing.T) {
	sc := NewScoring(1, -1, -2, -1)
	empty := &Profile{}
	if _, _, err := PairAlign(empty, FromSequence(NewSequence("s", "ACGT")), &sc); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("error = %v, want ErrEmptySequence", err)
	}
}
