package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"subtune/internal/align"
	"subtune/internal/transcript"
)

// Options controls sampling and verdict thresholds.
type Options struct {
	// SampleRatio is the fraction of the caption sequence taken for each of
	// the head, middle, and tail sample slices.
	SampleRatio float64
	// MaxSampleChars caps each sample slice, in runes, after normalization.
	MaxSampleChars int
	// MismatchedBelow is the ratio under which content is likely mismatched.
	MismatchedBelow float64
	// AcceptableAbove is the ratio over which content is acceptable;
	// ratios between the two thresholds indicate heavy editing.
	AcceptableAbove float64
}

// DefaultOptions returns the thresholds used by the CLI unless configured
// otherwise.
func DefaultOptions() Options {
	return Options{
		SampleRatio:     0.2,
		MaxSampleChars:  2000,
		MismatchedBelow: 0.3,
		AcceptableAbove: 0.5,
	}
}

// Verdict classifies a similarity ratio. It is a signal for the caller, not
// an error: even Mismatched content still gets calibrated.
type Verdict int

const (
	VerdictMismatched Verdict = iota
	VerdictHeavilyEdited
	VerdictAcceptable
)

func (v Verdict) String() string {
	switch v {
	case VerdictMismatched:
		return "mismatched"
	case VerdictHeavilyEdited:
		return "heavily-edited"
	case VerdictAcceptable:
		return "acceptable"
	default:
		return "unknown"
	}
}

// Classify maps a ratio onto a Verdict using the configured thresholds.
func Classify(ratio float64, opts Options) Verdict {
	switch {
	case ratio < opts.MismatchedBelow:
		return VerdictMismatched
	case ratio < opts.AcceptableAbove:
		return VerdictHeavilyEdited
	default:
		return VerdictAcceptable
	}
}

// Score computes the match ratio between two texts after identical
// normalization: 2*M/(len(a)+len(b)) over matched runes. Identical
// normalized text scores exactly 1.0; disjoint text scores 0.0.
func Score(a, b string) float64 {
	na := []rune(Normalize(a))
	nb := []rune(Normalize(b))
	return align.Ratio(na, nb, nil)
}

// ScoreCaptions samples both caption sequences and scores the samples.
func ScoreCaptions(generated, reference []transcript.Caption, opts Options) float64 {
	return Score(Sample(captionTexts(generated), opts), Sample(captionTexts(reference), opts))
}

// strippedPunctuation is the fixed punctuation set removed before
// comparison, covering both ASCII and the common CJK sentence marks.
const strippedPunctuation = "、。,.!?"

// Normalize prepares text for comparison: NFKC folding (which unifies
// full-width and half-width forms), lowercasing, and removal of whitespace
// and the fixed punctuation set.
func Normalize(text string) string {
	folded := strings.ToLower(norm.NFKC.String(text))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) || strings.ContainsRune(strippedPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sample concatenates the head, middle, and tail slices of the text
// sequence, each covering SampleRatio of the entries and capped at
// MaxSampleChars runes after normalization.
func Sample(texts []string, opts Options) string {
	total := len(texts)
	if total == 0 {
		return ""
	}

	count := int(float64(total) * opts.SampleRatio)
	if count < 1 {
		count = 1
	}

	ranges := [][2]int{
		{0, count},
		{total/2 - count/2, total/2 + count/2},
		{total - count, total},
	}

	var sample strings.Builder
	covered := 0
	for _, r := range ranges {
		start, end := r[0], r[1]
		// Slices collapse towards each other on short inputs; never sample
		// the same entry twice or the two sides would skew.
		if start < covered {
			start = covered
		}
		if end > total {
			end = total
		}
		if start >= end {
			continue
		}
		covered = end
		slice := Normalize(strings.Join(texts[start:end], ""))
		runes := []rune(slice)
		if opts.MaxSampleChars > 0 && len(runes) > opts.MaxSampleChars {
			runes = runes[:opts.MaxSampleChars]
		}
		sample.WriteString(string(runes))
	}
	return sample.String()
}

func captionTexts(captions []transcript.Caption) []string {
	texts := make([]string, len(captions))
	for i, c := range captions {
		texts[i] = c.Text
	}
	return texts
}
