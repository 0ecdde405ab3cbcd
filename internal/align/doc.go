// Package align implements deterministic longest-matching-block sequence
// alignment over rune slices.
//
// The algorithm is the Ratcliff/Obershelp scheme: find the longest run of
// equal runes, then recurse into the unmatched stretches on either side.
// Equality is pluggable through a rune-normalization function, which lets
// the similarity scorer fold case and width variants while the calibration
// engine aligns on exact code points.
//
// Determinism is a hard requirement: given identical inputs the block list
// is always identical, including tie-breaks. When several matches share the
// longest length, the leftmost in the first sequence wins, then the leftmost
// in the second. The implementation never iterates a map to choose between
// candidates.
package align
