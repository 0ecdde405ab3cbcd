package linearize

import (
	"strings"

	"subtune/internal/transcript"
)

// Options controls overlap detection.
type Options struct {
	// MinOverlap is the smallest overlap, in runes, accepted as a rolling
	// window match. Shorter overlaps are treated as coincidence and the
	// whole caption is kept as new content.
	MinOverlap int
	// MaxGapSeconds disables overlap detection when the silence between a
	// caption and its predecessor exceeds this value: a long gap means the
	// speaker restarted, not that the window scrolled. Zero or negative
	// disables the gap check.
	MaxGapSeconds float64
}

// DefaultOptions returns the options used by the CLI unless configured
// otherwise.
func DefaultOptions() Options {
	return Options{
		MinOverlap:    1,
		MaxGapSeconds: 5.0,
	}
}

// Linearize collapses rolling captions into non-redundant utterances.
// The first caption is always emitted verbatim. Captions whose content is
// fully contained in their predecessor are dropped, but still advance the
// rolling context. The returned captions keep their source timestamps, so
// output order matches input order.
func Linearize(captions []transcript.Caption, opts Options) []transcript.Caption {
	if len(captions) == 0 {
		return nil
	}

	out := make([]transcript.Caption, 0, len(captions))
	out = append(out, captions[0])

	// The rolling context is always the previous raw caption text, never
	// the previously emitted utterance: the window's actual edge is the raw
	// cue, including any content we chose not to re-emit.
	prevRaw := []rune(captions[0].Text)
	prevStart := captions[0].Start
	prevEnd := captions[0].End

	for _, curr := range captions[1:] {
		currRunes := []rune(curr.Text)
		overlap := 0
		if !contextBroken(curr, prevStart, prevEnd, opts) {
			overlap = overlapLength(prevRaw, currRunes)
			if overlap > 0 && overlap < opts.MinOverlap {
				overlap = 0
			}
		}

		newText := strings.TrimSpace(string(currRunes[overlap:]))
		if newText != "" {
			out = append(out, transcript.Caption{
				Start: curr.Start,
				End:   curr.End,
				Text:  newText,
			})
		}

		prevRaw = currRunes
		prevStart = curr.Start
		prevEnd = curr.End
	}
	return out
}

// contextBroken reports whether the rolling window cannot have scrolled from
// the previous caption into curr: either the silence exceeded the allowed
// gap, or timestamps went backwards (an independent caption).
func contextBroken(curr transcript.Caption, prevStart, prevEnd float64, opts Options) bool {
	if curr.Start < prevStart {
		return true
	}
	if opts.MaxGapSeconds > 0 && curr.Start-prevEnd > opts.MaxGapSeconds {
		return true
	}
	return false
}

// overlapLength finds the length of the longest suffix of prev equal to a
// prefix of curr. Candidates are tried longest first, so the greedy longest
// match always wins and the result is deterministic.
func overlapLength(prev, curr []rune) int {
	max := len(prev)
	if len(curr) < max {
		max = len(curr)
	}
	for length := max; length > 0; length-- {
		if equalRunes(prev[len(prev)-length:], curr[:length]) {
			return length
		}
	}
	return 0
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
