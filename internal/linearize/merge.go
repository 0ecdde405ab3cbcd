package linearize

import (
	"strings"

	"subtune/internal/transcript"
)

// CharOrigin records, for one rune of merged text, the source caption it was
// taken from together with that caption's time bounds.
type CharOrigin struct {
	Segment int
	Start   float64
	End     float64
}

// Merge linearizes captions into a single text and tracks the origin of
// every rune. len(origins) always equals the rune count of the merged text.
// Overlap handling matches Linearize; only new content contributes runes.
func Merge(captions []transcript.Caption, opts Options) (string, []CharOrigin) {
	if len(captions) == 0 {
		return "", nil
	}

	var merged strings.Builder
	var origins []CharOrigin

	appendContent := func(idx int, text string) {
		for _, r := range text {
			merged.WriteRune(r)
			origins = append(origins, CharOrigin{
				Segment: idx,
				Start:   captions[idx].Start,
				End:     captions[idx].End,
			})
		}
	}

	appendContent(0, strings.TrimSpace(captions[0].Text))

	prevRaw := []rune(captions[0].Text)
	prevStart := captions[0].Start
	prevEnd := captions[0].End

	for i := 1; i < len(captions); i++ {
		curr := captions[i]
		currRunes := []rune(curr.Text)
		overlap := 0
		if !contextBroken(curr, prevStart, prevEnd, opts) {
			overlap = overlapLength(prevRaw, currRunes)
			if overlap > 0 && overlap < opts.MinOverlap {
				overlap = 0
			}
		}

		appendContent(i, strings.TrimSpace(string(currRunes[overlap:])))

		prevRaw = currRunes
		prevStart = curr.Start
		prevEnd = curr.End
	}

	return merged.String(), origins
}
