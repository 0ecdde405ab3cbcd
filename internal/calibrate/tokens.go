package calibrate

import (
	"subtune/internal/transcript"
)

// Tokens re-aggregates a calibrated segment's characters into timed tokens
// along the supplied span boundaries. A token's start is its first
// character's start; its end is its last character's end. Zero-width tokens
// (collapsed punctuation) are retained so every glyph keeps a deterministic
// seek address.
func Tokens(seg Segment, spans []transcript.TokenSpan) []transcript.TimedToken {
	if len(seg.Chars) == 0 {
		return nil
	}
	var tokens []transcript.TimedToken
	for _, span := range spans {
		start, end := span.Start, span.End
		if start < 0 {
			start = 0
		}
		if end > len(seg.Chars) {
			end = len(seg.Chars)
		}
		if start >= end {
			continue
		}
		text := make([]rune, 0, end-start)
		for _, c := range seg.Chars[start:end] {
			text = append(text, c.Char)
		}
		tokens = append(tokens, transcript.TimedToken{
			Text:  string(text),
			Start: seg.Chars[start].Start,
			End:   seg.Chars[end-1].End,
		})
	}
	return tokens
}

// DistributeTokens times tokens without any machine reference by splitting
// the segment window proportionally to token length in runes. This is the
// fallback when the machine transcript is empty but segment bounds exist.
func DistributeTokens(text string, spans []transcript.TokenSpan, segStart, segEnd float64) []transcript.TimedToken {
	runes := []rune(text)
	total := 0
	clamped := make([]transcript.TokenSpan, 0, len(spans))
	for _, span := range spans {
		start, end := span.Start, span.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		clamped = append(clamped, transcript.TokenSpan{Start: start, End: end})
		total += end - start
	}
	if len(clamped) == 0 {
		return nil
	}

	duration := segEnd - segStart
	if duration < 0 {
		duration = 0
	}
	tokens := make([]transcript.TimedToken, 0, len(clamped))
	cursor := segStart
	for _, span := range clamped {
		share := float64(span.End-span.Start) / float64(total) * duration
		tokens = append(tokens, transcript.TimedToken{
			Text:  string(runes[span.Start:span.End]),
			Start: cursor,
			End:   cursor + share,
		})
		cursor += share
	}
	return tokens
}
