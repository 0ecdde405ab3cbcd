package calibrate

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"subtune/internal/linearize"
	"subtune/internal/transcript"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func segmentText(seg Segment) string {
	var b strings.Builder
	for _, c := range seg.Chars {
		b.WriteRune(c.Char)
	}
	return b.String()
}

func TestCalibrateTransfersMatchedTiming(t *testing.T) {
	reference := []transcript.Caption{{Start: 1.0, End: 5.0, Text: "猫が好き"}}
	words := []transcript.Word{
		{Text: "猫", Start: 1.5, End: 2.0},
		{Text: "が", Start: 2.0, End: 3.0},
		{Text: "好き", Start: 3.5, End: 4.5},
	}

	segments := Calibrate(words, reference)
	if len(segments) != 1 {
		t.Fatalf("len(segments) = %d, want 1", len(segments))
	}
	chars := segments[0].Chars
	if segmentText(segments[0]) != "猫が好き" {
		t.Fatalf("chars = %q, want 猫が好き", segmentText(segments[0]))
	}
	wants := []struct{ start, end float64 }{
		{1.5, 2.0},
		{2.0, 3.0},
		{3.5, 4.0},
		{4.0, 4.5},
	}
	for i, want := range wants {
		if !almostEqual(chars[i].Start, want.start) || !almostEqual(chars[i].End, want.end) {
			t.Errorf("chars[%d] = (%v, %v), want (%v, %v)",
				i, chars[i].Start, chars[i].End, want.start, want.end)
		}
	}
}

func TestCalibrateBoundaryClamping(t *testing.T) {
	reference := []transcript.Caption{{Start: 10.0, End: 11.0, Text: "AB"}}
	words := []transcript.Word{
		{Text: "A", Start: 9.0, End: 9.5},
		{Text: "B", Start: 11.5, End: 12.0},
	}

	chars := Calibrate(words, reference)[0].Chars
	if chars[0].Start < 10.0 {
		t.Errorf("A starts at %v, want >= 10.0", chars[0].Start)
	}
	if chars[1].End > 11.0 {
		t.Errorf("B ends at %v, want <= 11.0", chars[1].End)
	}
	for i, c := range chars {
		if c.Start > c.End {
			t.Errorf("chars[%d] inverted: (%v, %v)", i, c.Start, c.End)
		}
	}
}

func TestCalibrateAdversarialShift(t *testing.T) {
	// Machine timing entirely outside the segment window must still produce
	// intervals inside it.
	reference := []transcript.Caption{{Start: 0.0, End: 5.0, Text: "AB"}}
	words := []transcript.Word{
		{Text: "A", Start: 100.0, End: 101.0},
		{Text: "B", Start: 101.0, End: 102.0},
	}
	for i, c := range Calibrate(words, reference)[0].Chars {
		if c.Start < 0.0 || c.End > 5.0 || c.Start > c.End {
			t.Errorf("chars[%d] = (%v, %v), outside [0, 5]", i, c.Start, c.End)
		}
	}
}

func TestCalibrateInterpolation(t *testing.T) {
	reference := []transcript.Caption{{Start: 0.0, End: 3.0, Text: "ABC"}}
	words := []transcript.Word{
		{Text: "A", Start: 0.0, End: 1.0},
		{Text: "C", Start: 2.0, End: 3.0},
	}

	chars := Calibrate(words, reference)[0].Chars
	if chars[1].Char != 'B' {
		t.Fatalf("chars[1] = %q, want B", chars[1].Char)
	}
	if chars[1].Start < 1.0 || chars[1].End > 2.0 {
		t.Errorf("B = (%v, %v), want within [1, 2]", chars[1].Start, chars[1].End)
	}
}

func TestCalibrateNoWordsInterpolatesAcrossSegment(t *testing.T) {
	reference := []transcript.Caption{{Start: 0.0, End: 3.0, Text: "ABC"}}
	chars := Calibrate(nil, reference)[0].Chars
	wants := []struct{ start, end float64 }{{0, 1}, {1, 2}, {2, 3}}
	for i, want := range wants {
		if !almostEqual(chars[i].Start, want.start) || !almostEqual(chars[i].End, want.end) {
			t.Errorf("chars[%d] = (%v, %v), want (%v, %v)",
				i, chars[i].Start, chars[i].End, want.start, want.end)
		}
	}
}

func TestCalibrateMismatchedReference(t *testing.T) {
	// "ねんい" against machine の/ん/い: ね is unmatched and interpolates
	// from the segment start to ん's machine start.
	reference := []transcript.Caption{{Start: 0.0, End: 1.0, Text: "ねんい"}}
	words := []transcript.Word{
		{Text: "の", Start: 0.0, End: 0.2},
		{Text: "ん", Start: 0.2, End: 0.4},
		{Text: "い", Start: 0.4, End: 0.8},
	}

	chars := Calibrate(words, reference)[0].Chars
	if len(chars) != 3 {
		t.Fatalf("len(chars) = %d, want 3", len(chars))
	}
	prevStart := 0.0
	for i, c := range chars {
		if c.Start < 0.0 || c.End > 1.0 || c.Start > c.End {
			t.Errorf("chars[%d] = (%v, %v), outside [0, 1]", i, c.Start, c.End)
		}
		if c.Start < prevStart {
			t.Errorf("chars[%d] starts at %v before previous start %v", i, c.Start, prevStart)
		}
		prevStart = c.Start
	}
	if !almostEqual(chars[1].Start, 0.2) || !almostEqual(chars[2].End, 0.8) {
		t.Errorf("matched timing not transferred: %+v", chars)
	}
}

func TestCalibratePreservesCharacters(t *testing.T) {
	reference := []transcript.Caption{
		{Start: 0.0, End: 2.0, Text: "完全に違うテキスト"},
		{Start: 2.0, End: 4.0, Text: "another line, unmatched!"},
	}
	words := []transcript.Word{{Text: "xyz", Start: 0.5, End: 1.0}}

	segments := Calibrate(words, reference)
	for i, seg := range segments {
		if segmentText(seg) != reference[i].Text {
			t.Errorf("segment %d text = %q, want %q", i, segmentText(seg), reference[i].Text)
		}
	}
}

func TestCalibrateDeterministic(t *testing.T) {
	reference := []transcript.Caption{
		{Start: 0.0, End: 3.0, Text: "今日は天気がいい"},
		{Start: 3.0, End: 6.0, Text: "明日は雨らしい"},
	}
	words := []transcript.Word{
		{Text: "今日は", Start: 0.1, End: 1.0},
		{Text: "天気", Start: 1.0, End: 1.9},
		{Text: "いい", Start: 2.2, End: 2.9},
		{Text: "明日", Start: 3.1, End: 4.0},
		{Text: "雨", Start: 4.5, End: 5.0},
	}
	first := Calibrate(words, reference)
	for i := 0; i < 5; i++ {
		if got := Calibrate(words, reference); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestCalibrateEmptyInputs(t *testing.T) {
	if got := Calibrate(nil, nil); got != nil {
		t.Errorf("Calibrate(nil, nil) = %v, want nil", got)
	}
	words := []transcript.Word{{Text: "a", Start: 0, End: 1}}
	if got := Calibrate(words, nil); got != nil {
		t.Errorf("Calibrate(words, nil) = %v, want nil", got)
	}
}

func TestMergedAndRebuild(t *testing.T) {
	captions := []transcript.Caption{
		{Start: 0.0, End: 1.0, Text: "今日は"},
		{Start: 1.0, End: 2.0, Text: "今日は天気"},
		{Start: 2.0, End: 3.0, Text: "天気がいい"},
	}
	merged, origins := linearize.Merge(captions, linearize.DefaultOptions())
	if merged != "今日は天気がいい" {
		t.Fatalf("merged = %q", merged)
	}

	words := []transcript.Word{
		{Text: "今日は", Start: 0.0, End: 1.0},
		{Text: "天気が", Start: 1.0, End: 2.0},
		{Text: "いい", Start: 2.0, End: 3.0},
	}
	chars := Merged(merged, origins, words)
	if len(chars) != len([]rune(merged)) {
		t.Fatalf("len(chars) = %d, want %d", len(chars), len([]rune(merged)))
	}

	segments := RebuildSegments(origins, chars)
	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	var rebuilt strings.Builder
	for _, seg := range segments {
		rebuilt.WriteString(seg.Text)
		for i, c := range seg.Chars {
			if c.Start < seg.Start || c.End > seg.End || c.Start > c.End {
				t.Errorf("segment %d char %d = (%v, %v), outside [%v, %v]",
					seg.Index, i, c.Start, c.End, seg.Start, seg.End)
			}
		}
	}
	if rebuilt.String() != merged {
		t.Errorf("rebuilt text = %q, want %q", rebuilt.String(), merged)
	}
}

func TestMergedLengthMismatch(t *testing.T) {
	if got := Merged("abc", nil, nil); got != nil {
		t.Errorf("Merged with missing origins = %v, want nil", got)
	}
}

func TestTokens(t *testing.T) {
	seg := Segment{
		Start: 0.0,
		End:   3.0,
		Text:  "猫が好き。",
		Chars: []TimedChar{
			{Char: '猫', Start: 0.0, End: 0.5},
			{Char: 'が', Start: 0.5, End: 1.0},
			{Char: '好', Start: 1.0, End: 2.0},
			{Char: 'き', Start: 2.0, End: 3.0},
			{Char: '。', Start: 3.0, End: 3.0},
		},
	}
	spans := []transcript.TokenSpan{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 4}, {Start: 4, End: 5}}

	tokens := Tokens(seg, spans)
	if len(tokens) != 4 {
		t.Fatalf("len(tokens) = %d, want 4", len(tokens))
	}
	if tokens[2].Text != "好き" || !almostEqual(tokens[2].Start, 1.0) || !almostEqual(tokens[2].End, 3.0) {
		t.Errorf("tokens[2] = %+v, want 好き (1, 3)", tokens[2])
	}
	// The zero-width punctuation token is retained for seek addressing.
	if tokens[3].Text != "。" || tokens[3].Start != tokens[3].End {
		t.Errorf("tokens[3] = %+v, want zero-width 。", tokens[3])
	}
	// Weak monotonicity of token starts.
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start < tokens[i-1].Start {
			t.Errorf("tokens[%d].Start = %v before tokens[%d].Start = %v",
				i, tokens[i].Start, i-1, tokens[i-1].Start)
		}
	}
}

func TestTokensOutOfRangeSpans(t *testing.T) {
	seg := Segment{
		Text: "ab",
		Chars: []TimedChar{
			{Char: 'a', Start: 0, End: 1},
			{Char: 'b', Start: 1, End: 2},
		},
	}
	spans := []transcript.TokenSpan{{Start: -1, End: 1}, {Start: 1, End: 9}, {Start: 5, End: 6}}
	tokens := Tokens(seg, spans)
	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2", len(tokens))
	}
	if tokens[0].Text != "a" || tokens[1].Text != "b" {
		t.Errorf("tokens = %+v", tokens)
	}
}

func TestDistributeTokens(t *testing.T) {
	spans := []transcript.TokenSpan{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 4}}
	tokens := DistributeTokens("猫が好き", spans, 0.0, 4.0)
	if len(tokens) != 3 {
		t.Fatalf("len(tokens) = %d, want 3", len(tokens))
	}
	wants := []struct{ start, end float64 }{{0, 1}, {1, 2}, {2, 4}}
	for i, want := range wants {
		if !almostEqual(tokens[i].Start, want.start) || !almostEqual(tokens[i].End, want.end) {
			t.Errorf("tokens[%d] = (%v, %v), want (%v, %v)",
				i, tokens[i].Start, tokens[i].End, want.start, want.end)
		}
	}
}

func TestDistributeTokensEmpty(t *testing.T) {
	if got := DistributeTokens("", nil, 0, 1); got != nil {
		t.Errorf("DistributeTokens(empty) = %v, want nil", got)
	}
}
