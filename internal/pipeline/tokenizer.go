package pipeline

import (
	"unicode"

	"subtune/internal/transcript"
)

// RuneClassTokenizer is the built-in fallback tokenizer. Runs of letters or
// digits from spaced scripts form one token, each CJK rune is its own
// token, punctuation is its own token, and whitespace separates tokens
// without producing any. A morphological analyzer should replace it for
// production Japanese output; the fallback only has to produce sane spans.
type RuneClassTokenizer struct{}

// Spans implements Tokenizer.
func (RuneClassTokenizer) Spans(text string) []transcript.TokenSpan {
	runes := []rune(text)
	var spans []transcript.TokenSpan
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isCJK(r):
			spans = append(spans, transcript.TokenSpan{Start: i, End: i + 1})
			i++
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			j := i + 1
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !isCJK(runes[j]) &&
				(unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '\'') {
				j++
			}
			spans = append(spans, transcript.TokenSpan{Start: i, End: j})
			i = j
		default:
			spans = append(spans, transcript.TokenSpan{Start: i, End: i + 1})
			i++
		}
	}
	return spans
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
