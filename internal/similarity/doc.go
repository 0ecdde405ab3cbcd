// Package similarity scores whether two transcripts plausibly describe the
// same spoken content.
//
// The score is a bounded-cost match ratio in [0, 1]: identical normalized
// text scores 1.0, disjoint text scores 0.0. Long transcripts are sampled
// (head, middle, and tail slices) before alignment so cost stays bounded by
// the sample caps rather than transcript length. The ratio is a signal for
// the caller, never an error: callers classify it against thresholds and
// decide whether to warn or proceed.
package similarity
