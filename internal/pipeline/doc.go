// Package pipeline composes linearization, similarity checking, and
// calibration into the full reference-transcript timing transfer.
//
// The pipeline is a pure, synchronous transformation: raw captions and the
// machine transcript go in, calibrated segments with timed tokens come out.
// Tokenization is pluggable so a morphological analyzer can supply real
// token boundaries; the built-in tokenizer is a character-class fallback
// good enough for display purposes.
package pipeline
