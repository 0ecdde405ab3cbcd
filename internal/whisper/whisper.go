// Package whisper loads machine transcripts from WhisperX-style JSON.
package whisper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"subtune/internal/transcript"
)

type payloadWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type payloadSegment struct {
	Text  string        `json:"text"`
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Words []payloadWord `json:"words"`
}

// Payload is the machine transcript as emitted by WhisperX-style engines.
type Payload struct {
	Segments []payloadSegment `json:"segments"`
	Language string           `json:"language"`
}

// Load reads and parses a transcript JSON file.
func Load(path string) (*Payload, error) {
	if strings.TrimSpace(path) == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses transcript JSON.
func Parse(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse transcript json: %w", err)
	}
	return &payload, nil
}

// Transcript converts the payload into the shared data model. Words with
// empty text are dropped.
func (p *Payload) Transcript() []transcript.Segment {
	if p == nil {
		return nil
	}
	segments := make([]transcript.Segment, 0, len(p.Segments))
	for _, seg := range p.Segments {
		out := transcript.Segment{
			Text:  strings.TrimSpace(seg.Text),
			Start: seg.Start,
			End:   seg.End,
		}
		for _, w := range seg.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				continue
			}
			out.Words = append(out.Words, transcript.Word{Text: text, Start: w.Start, End: w.End})
		}
		segments = append(segments, out)
	}
	return segments
}
