// Package main hosts the subtune CLI entrypoint and command graph.
//
// The Cobra-based command tree wires file handling, configuration
// resolution, and logging around the internal packages: parsing reference
// subtitles, loading machine transcripts, and running the calibration
// pipeline. Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands or
// flags here.
package main
