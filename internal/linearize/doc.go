// Package linearize collapses rolling subtitle caption windows into
// discrete, non-redundant utterances.
//
// Live-stream and ASR subtitle tracks often scroll: each cue repeats the
// tail of the previous one for viewer context. Linearization strips the
// repeated prefix so every cue carries only newly spoken text, keeping the
// original cue timestamps. Merge additionally tracks, for every rune of the
// merged text, which source cue it came from, which is what the calibration
// engine needs to rebuild per-utterance segments after timing transfer.
package linearize
