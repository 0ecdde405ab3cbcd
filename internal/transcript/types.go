package transcript

import "strings"

// Caption is a single timed subtitle cue. Before linearization its text may
// repeat content from neighboring cues (a rolling caption window); after
// linearization the text is non-redundant with respect to its predecessor.
type Caption struct {
	Start float64
	End   float64
	Text  string
}

// Word is one word of a machine transcript with word-level timing.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Segment groups machine transcript words the way speech-to-text engines
// emit them. The calibration engine ignores the grouping and consumes the
// flat word stream.
type Segment struct {
	Text  string
	Start float64
	End   float64
	Words []Word
}

// TimedToken is a reference-text token with a resolved time interval.
// Zero-duration tokens (collapsed punctuation) are valid.
type TimedToken struct {
	Text  string
	Start float64
	End   float64
}

// TokenSpan is a half-open rune span [Start, End) of a token within a
// segment's text, as reported by an external tokenizer.
type TokenSpan struct {
	Start int
	End   int
}

// CalibratedSegment is the final output unit: a reference utterance whose
// tokens carry calibrated timing. Translation is opaque pass-through text.
type CalibratedSegment struct {
	Start       float64
	End         float64
	Text        string
	Tokens      []TimedToken
	Translation string
}

// FlattenWords collapses segment grouping into the flat word stream the
// calibration engine consumes. Words with empty text are dropped.
func FlattenWords(segments []Segment) []Word {
	var words []Word
	for _, seg := range segments {
		for _, w := range seg.Words {
			if strings.TrimSpace(w.Text) == "" {
				continue
			}
			words = append(words, w)
		}
	}
	return words
}

// JoinText concatenates segment texts, falling back to word texts for
// segments without a text field.
func JoinText(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Text != "" {
			b.WriteString(seg.Text)
			continue
		}
		for _, w := range seg.Words {
			b.WriteString(w.Text)
		}
	}
	return b.String()
}
