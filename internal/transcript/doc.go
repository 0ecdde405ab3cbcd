// Package transcript defines the shared data model for subtitle calibration.
//
// A Caption is a raw timed cue from a subtitle source; after linearization a
// caption carries only non-redundant content and is treated as an utterance.
// Word and Segment describe the machine transcript side (word-level timing),
// while TimedToken and CalibratedSegment describe the calibrated output the
// rendering layer consumes.
//
// The package also hosts the input-shape validation the engine boundary
// requires: structurally invalid data (a segment whose end precedes its
// start, an empty word) is rejected here with errors identifying the entity
// and field, so the calibration core never has to raise on bad timing.
package transcript
