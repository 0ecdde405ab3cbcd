package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"subtune/internal/calibrate"
	"subtune/internal/linearize"
	"subtune/internal/similarity"
	"subtune/internal/transcript"
)

// Tokenizer splits a segment's text into ordered, non-overlapping rune
// spans. Implementations wrap external morphological analyzers.
type Tokenizer interface {
	Spans(text string) []transcript.TokenSpan
}

// Options carries the component options for one pipeline run.
type Options struct {
	Linearize  linearize.Options
	Similarity similarity.Options
	// Tokenizer supplies token boundaries; nil selects the built-in
	// character-class tokenizer.
	Tokenizer Tokenizer
}

// DefaultOptions returns pipeline options with every component at its
// defaults.
func DefaultOptions() Options {
	return Options{
		Linearize:  linearize.DefaultOptions(),
		Similarity: similarity.DefaultOptions(),
	}
}

// Result is the output of one pipeline run.
type Result struct {
	RunID      string
	Segments   []transcript.CalibratedSegment
	Similarity float64
	Verdict    similarity.Verdict
	Warnings   []string
}

// Run calibrates the reference captions against the machine transcript.
// Malformed input is rejected up front; degenerate content (empty captions,
// empty machine transcript, fully mismatched text) always produces a
// best-effort result. Low similarity surfaces as a warning on the result,
// never as an error.
func Run(captions []transcript.Caption, machine []transcript.Segment, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := transcript.ValidateCaptions(captions); err != nil {
		return nil, err
	}
	if err := transcript.ValidateSegments(machine); err != nil {
		return nil, err
	}

	tokenizer := opts.Tokenizer
	if tokenizer == nil {
		tokenizer = RuneClassTokenizer{}
	}

	result := &Result{RunID: uuid.NewString()}
	log := logger.With("run_id", result.RunID)

	if len(captions) == 0 {
		log.Warn("no reference captions, nothing to calibrate")
		return result, nil
	}

	merged, origins := linearize.Merge(captions, opts.Linearize)
	log.Info("linearized reference captions",
		"captions", len(captions),
		"merged_runes", len(origins))

	words := transcript.FlattenWords(machine)

	if len(words) > 0 {
		genTexts := make([]string, len(machine))
		for i := range machine {
			genTexts[i] = transcript.JoinText(machine[i : i+1])
		}
		// Both sides are sampled by the same head/middle/tail rule over their
		// own sequence; sampling one side against the whole merged text would
		// skew the ratio once either side outgrows the sample cap.
		refTexts := make([]string, 0, len(captions))
		for _, utt := range linearize.Linearize(captions, opts.Linearize) {
			refTexts = append(refTexts, utt.Text)
		}
		result.Similarity = similarity.Score(
			similarity.Sample(genTexts, opts.Similarity),
			similarity.Sample(refTexts, opts.Similarity),
		)
		result.Verdict = similarity.Classify(result.Similarity, opts.Similarity)
		log.Info("checked transcript similarity",
			"ratio", result.Similarity,
			"verdict", result.Verdict.String())
		if result.Verdict != similarity.VerdictAcceptable {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"low transcript match (similarity %.0f%%): check that the subtitle file belongs to this audio",
				result.Similarity*100))
		}
	}

	var segments []calibrate.Segment
	if len(words) > 0 {
		chars := calibrate.Merged(merged, origins, words)
		segments = calibrate.RebuildSegments(origins, chars)
	} else {
		// No machine timing at all: keep utterance bounds and distribute
		// time across tokens by length.
		log.Warn("machine transcript empty, distributing segment time evenly")
		utterances := linearize.Linearize(captions, opts.Linearize)
		result.Segments = distributeAll(utterances, tokenizer)
		return result, nil
	}

	for _, seg := range segments {
		spans := tokenizer.Spans(seg.Text)
		result.Segments = append(result.Segments, transcript.CalibratedSegment{
			Start:  seg.Start,
			End:    seg.End,
			Text:   seg.Text,
			Tokens: calibrate.Tokens(seg, spans),
		})
	}
	log.Info("calibrated reference transcript", "segments", len(result.Segments))
	return result, nil
}

func distributeAll(utterances []transcript.Caption, tokenizer Tokenizer) []transcript.CalibratedSegment {
	segments := make([]transcript.CalibratedSegment, 0, len(utterances))
	for _, utt := range utterances {
		spans := tokenizer.Spans(utt.Text)
		segments = append(segments, transcript.CalibratedSegment{
			Start:  utt.Start,
			End:    utt.End,
			Text:   utt.Text,
			Tokens: calibrate.DistributeTokens(utt.Text, spans, utt.Start, utt.End),
		})
	}
	return segments
}
