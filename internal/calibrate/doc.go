// Package calibrate transfers word-level timing from a machine transcript
// onto the text of a human-authored reference transcript.
//
// The machine transcript has trustworthy timing but imperfect text; the
// reference has authoritative text but only sentence-level timing. The
// engine works at character granularity: the machine words are expanded
// into a fully timed character stream, the reference text is expanded into
// an untimed one, the two streams are aligned, and timing flows across
// matched characters. Unmatched stretches are linearly interpolated between
// their timed neighbors, then every character is clamped into its owning
// segment's time window. Finally, characters are re-aggregated into tokens
// along externally supplied span boundaries.
//
// The engine never raises on timing anomalies: degenerate input produces
// degenerate (possibly zero-width) output, because ugly timing still
// renders while a refusal does not. All functions are pure and
// deterministic; identical inputs produce bit-identical output.
package calibrate
