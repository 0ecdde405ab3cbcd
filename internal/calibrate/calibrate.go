package calibrate

import (
	"strings"

	"subtune/internal/align"
	"subtune/internal/linearize"
	"subtune/internal/transcript"
)

// TimedChar is one reference character with resolved timing and the index
// of the reference segment that owns it.
type TimedChar struct {
	Char    rune
	Start   float64
	End     float64
	Segment int
}

// Segment is a calibrated reference utterance: the authoritative text with
// per-character timing clamped into the utterance's own time window.
type Segment struct {
	Index int
	Start float64
	End   float64
	Text  string
	Chars []TimedChar
}

// refChar is an untimed reference character tagged with its owner.
type refChar struct {
	char     rune
	segment  int
	segStart float64
	segEnd   float64
}

// genChar is a machine-transcript character with estimated timing, produced
// by spreading each word's interval evenly across its characters.
type genChar struct {
	char  rune
	start float64
	end   float64
}

// Calibrate transfers timing from the machine word stream onto the
// reference utterances. Every returned segment has a fully timed character
// stream satisfying segment.Start <= char.Start <= char.End <= segment.End.
// Empty input yields empty output; the engine never fails on timing
// anomalies.
func Calibrate(words []transcript.Word, reference []transcript.Caption) []Segment {
	if len(reference) == 0 {
		return nil
	}

	var ref []refChar
	for i, utt := range reference {
		for _, r := range utt.Text {
			ref = append(ref, refChar{char: r, segment: i, segStart: utt.Start, segEnd: utt.End})
		}
	}
	chars := transfer(words, ref)

	segments := make([]Segment, len(reference))
	for i, utt := range reference {
		segments[i] = Segment{Index: i, Start: utt.Start, End: utt.End, Text: utt.Text}
	}
	for _, c := range chars {
		segments[c.Segment].Chars = append(segments[c.Segment].Chars, c)
	}
	return segments
}

// Merged calibrates a linearized transcript: mergedText with per-rune
// origins as produced by linearize.Merge. Returns one TimedChar per rune of
// mergedText, in order.
func Merged(mergedText string, origins []linearize.CharOrigin, words []transcript.Word) []TimedChar {
	runes := []rune(mergedText)
	if len(runes) == 0 || len(origins) != len(runes) {
		return nil
	}
	ref := make([]refChar, len(runes))
	for i, r := range runes {
		ref[i] = refChar{
			char:     r,
			segment:  origins[i].Segment,
			segStart: origins[i].Start,
			segEnd:   origins[i].End,
		}
	}
	return transfer(words, ref)
}

// RebuildSegments regroups calibrated merged characters into per-utterance
// segments, in origin order.
func RebuildSegments(origins []linearize.CharOrigin, chars []TimedChar) []Segment {
	var segments []Segment
	for i, c := range chars {
		origin := origins[i]
		last := len(segments) - 1
		if last < 0 || segments[last].Index != origin.Segment {
			segments = append(segments, Segment{
				Index: origin.Segment,
				Start: origin.Start,
				End:   origin.End,
			})
			last++
		}
		segments[last].Chars = append(segments[last].Chars, c)
	}
	for i := range segments {
		var b strings.Builder
		for _, c := range segments[i].Chars {
			b.WriteRune(c.Char)
		}
		segments[i].Text = b.String()
	}
	return segments
}

// transfer runs the alignment, interpolation, and clamping steps over one
// reference character stream.
func transfer(words []transcript.Word, ref []refChar) []TimedChar {
	if len(ref) == 0 {
		return nil
	}
	gen := flattenWords(words)

	refRunes := make([]rune, len(ref))
	for i, c := range ref {
		refRunes[i] = c.char
	}
	genRunes := make([]rune, len(gen))
	for i, c := range gen {
		genRunes[i] = c.char
	}

	out := make([]TimedChar, len(ref))
	timed := make([]bool, len(ref))
	for i, c := range ref {
		out[i] = TimedChar{Char: c.char, Segment: c.segment}
	}

	// Step 3: copy machine timing onto matched characters.
	for _, block := range align.Blocks(refRunes, genRunes, nil) {
		for k := 0; k < block.Size; k++ {
			out[block.A+k].Start = gen[block.B+k].start
			out[block.A+k].End = gen[block.B+k].end
			timed[block.A+k] = true
		}
	}

	interpolateGaps(out, timed, ref)
	clamp(out, ref)
	return out
}

// flattenWords expands each word into characters, spreading the word's
// interval evenly across them. Word text is trimmed; empty words are
// skipped.
func flattenWords(words []transcript.Word) []genChar {
	var chars []genChar
	for _, w := range words {
		text := []rune(strings.TrimSpace(w.Text))
		if len(text) == 0 {
			continue
		}
		charDur := (w.End - w.Start) / float64(len(text))
		for i, r := range text {
			chars = append(chars, genChar{
				char:  r,
				start: w.Start + float64(i)*charDur,
				end:   w.Start + float64(i+1)*charDur,
			})
		}
	}
	return chars
}

// interpolateGaps assigns timing to every untimed run by linear
// interpolation between its timed neighbors. A run with no timed
// predecessor anchors on its first character's segment start; one with no
// timed successor anchors on its last character's segment end.
func interpolateGaps(out []TimedChar, timed []bool, ref []refChar) {
	for i := 0; i < len(out); {
		if timed[i] {
			i++
			continue
		}
		j := i
		for j < len(out) && !timed[j] {
			j++
		}

		t0 := ref[i].segStart
		if i > 0 {
			t0 = out[i-1].End
		}
		t1 := ref[j-1].segEnd
		if j < len(out) {
			t1 = out[j].Start
		}
		if t1 < t0 {
			t1 = t0
		}

		n := float64(j - i)
		step := (t1 - t0) / n
		for k := i; k < j; k++ {
			out[k].Start = t0 + float64(k-i)*step
			out[k].End = t0 + float64(k-i+1)*step
		}
		i = j
	}
}

// clamp forces every character interval into its segment's window. An
// interval that inverts under clamping collapses to zero width at the
// nearer boundary.
func clamp(out []TimedChar, ref []refChar) {
	for i := range out {
		lo, hi := ref[i].segStart, ref[i].segEnd
		start, end := out[i].Start, out[i].End
		if start < lo {
			start = lo
		}
		if end > hi {
			end = hi
		}
		if start > end {
			if out[i].End <= lo {
				start, end = lo, lo
			} else {
				start, end = hi, hi
			}
		}
		out[i].Start = start
		out[i].End = end
	}
}
