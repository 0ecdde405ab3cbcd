package align

import (
	"reflect"
	"testing"
	"unicode"
)

func TestBlocksIdentical(t *testing.T) {
	a := []rune("hello world")
	blocks := Blocks(a, a, nil)
	want := []Block{{A: 0, B: 0, Size: len(a)}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Blocks() = %v, want %v", blocks, want)
	}
}

func TestBlocksDisjoint(t *testing.T) {
	blocks := Blocks([]rune("abc"), []rune("xyz"), nil)
	if len(blocks) != 0 {
		t.Errorf("Blocks(disjoint) = %v, want empty", blocks)
	}
}

func TestBlocksEmpty(t *testing.T) {
	if got := Blocks(nil, []rune("abc"), nil); len(got) != 0 {
		t.Errorf("Blocks(nil, abc) = %v, want empty", got)
	}
	if got := Blocks([]rune("abc"), nil, nil); len(got) != 0 {
		t.Errorf("Blocks(abc, nil) = %v, want empty", got)
	}
}

func TestBlocksSplitMatch(t *testing.T) {
	// "AC" vs "ABC": A matches at 0, C matches after the inserted B.
	blocks := Blocks([]rune("AC"), []rune("ABC"), nil)
	want := []Block{{A: 0, B: 0, Size: 1}, {A: 1, B: 2, Size: 1}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Blocks() = %v, want %v", blocks, want)
	}
}

func TestBlocksLeftmostTieBreak(t *testing.T) {
	// "ab" occurs twice in b; the longest match is length 2 either way, so
	// the leftmost occurrence must win.
	blocks := Blocks([]rune("ab"), []rune("ab_ab"), nil)
	want := []Block{{A: 0, B: 0, Size: 2}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Blocks() = %v, want %v", blocks, want)
	}
}

func TestBlocksOrdered(t *testing.T) {
	blocks := Blocks([]rune("the quick brown fox"), []rune("the slow brown cat"), nil)
	for i := 1; i < len(blocks); i++ {
		if blocks[i].A < blocks[i-1].A+blocks[i-1].Size {
			t.Fatalf("blocks overlap or out of order in a: %v", blocks)
		}
		if blocks[i].B < blocks[i-1].B+blocks[i-1].Size {
			t.Fatalf("blocks overlap or out of order in b: %v", blocks)
		}
	}
}

func TestBlocksNormalizer(t *testing.T) {
	fold := func(r rune) rune { return unicode.ToLower(r) }
	blocks := Blocks([]rune("HELLO"), []rune("hello"), fold)
	if Matched(blocks) != 5 {
		t.Errorf("Matched(case-folded) = %d, want 5", Matched(blocks))
	}
	if Matched(Blocks([]rune("HELLO"), []rune("hello"), nil)) != 0 {
		t.Error("exact matcher should not fold case")
	}
}

func TestBlocksDeterministic(t *testing.T) {
	a := []rune("abcabcabc xyz abc")
	b := []rune("xbcabc abc abcxyz")
	first := Blocks(a, b, nil)
	for i := 0; i < 10; i++ {
		if got := Blocks(a, b, nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %v vs %v", i, got, first)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcd", "abcd", 1.0},
		{"disjoint", "abcd", "wxyz", 0.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "abcd", 0.0},
		{"half", "ab", "abcdab", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio([]rune(tt.a), []rune(tt.b), nil)
			if got != tt.want {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	a := []rune("the quick brown fox")
	b := []rune("the slow brown cat")
	if Ratio(a, b, nil) != Ratio(b, a, nil) {
		t.Errorf("Ratio not symmetric: %v vs %v", Ratio(a, b, nil), Ratio(b, a, nil))
	}
}
