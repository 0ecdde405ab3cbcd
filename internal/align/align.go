package align

import "sort"

// Block is a maximal run of matching runes: a[A:A+Size] aligns with
// b[B:B+Size] under the matcher's normalization.
type Block struct {
	A    int
	B    int
	Size int
}

// Normalizer maps a rune to its comparison form. Runes are considered equal
// when their normalized forms are equal. A nil Normalizer compares runes
// exactly.
type Normalizer func(rune) rune

// Matcher aligns two rune sequences. It is cheap to construct and is not
// safe for concurrent use; build one per alignment.
type Matcher struct {
	a  []rune
	b  []rune
	na []rune
	nb []rune
	// positions of each normalized rune in nb, ascending
	b2j map[rune][]int
}

// NewMatcher prepares an alignment of a against b.
func NewMatcher(a, b []rune, normalize Normalizer) *Matcher {
	m := &Matcher{a: a, b: b}
	m.na = normalized(a, normalize)
	m.nb = normalized(b, normalize)
	m.b2j = make(map[rune][]int, len(m.nb))
	for j, r := range m.nb {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

func normalized(runes []rune, normalize Normalizer) []rune {
	if normalize == nil {
		return runes
	}
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = normalize(r)
	}
	return out
}

// longestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Ties go to the smallest A, then the smallest B, which the
// ascending scan guarantees without comparing candidates explicitly.
func (m *Matcher) longestMatch(alo, ahi, blo, bhi int) Block {
	best := Block{A: alo, B: blo}
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newJ2len := make(map[int]int)
		for _, j := range m.b2j[m.na[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > best.Size {
				best = Block{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		j2len = newJ2len
	}
	return best
}

// Blocks returns the matching blocks in ascending order of A (equivalently
// of B; blocks never cross).
func (m *Matcher) Blocks() []Block {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.na), 0, len(m.nb)}}
	var blocks []Block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		match := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if match.Size == 0 {
			continue
		}
		blocks = append(blocks, match)
		if s.alo < match.A && s.blo < match.B {
			queue = append(queue, span{s.alo, match.A, s.blo, match.B})
		}
		if match.A+match.Size < s.ahi && match.B+match.Size < s.bhi {
			queue = append(queue, span{match.A + match.Size, s.ahi, match.B + match.Size, s.bhi})
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].A != blocks[j].A {
			return blocks[i].A < blocks[j].A
		}
		return blocks[i].B < blocks[j].B
	})
	return blocks
}

// Blocks aligns a against b and returns the matching blocks.
func Blocks(a, b []rune, normalize Normalizer) []Block {
	return NewMatcher(a, b, normalize).Blocks()
}

// Matched sums the sizes of the given blocks.
func Matched(blocks []Block) int {
	total := 0
	for _, b := range blocks {
		total += b.Size
	}
	return total
}

// Ratio computes the match ratio 2*M/(len(a)+len(b)) in [0, 1], where M is
// the total matched length. Two empty sequences are trivially identical and
// yield 1.
func Ratio(a, b []rune, normalize Normalizer) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	matched := Matched(Blocks(a, b, normalize))
	return 2 * float64(matched) / float64(total)
}
