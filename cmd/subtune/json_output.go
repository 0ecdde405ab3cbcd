package main

import (
	"encoding/json"

	"subtune/internal/pipeline"
)

type jsonToken struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type jsonSegment struct {
	Start       float64     `json:"start"`
	End         float64     `json:"end"`
	Text        string      `json:"text"`
	Translation string      `json:"translation,omitempty"`
	Words       []jsonToken `json:"words"`
}

type jsonResult struct {
	RunID      string        `json:"run_id"`
	Similarity float64       `json:"similarity"`
	Verdict    string        `json:"verdict"`
	Warnings   []string      `json:"warnings,omitempty"`
	Segments   []jsonSegment `json:"segments"`
}

func encodeResult(result *pipeline.Result) ([]byte, error) {
	out := jsonResult{
		RunID:      result.RunID,
		Similarity: result.Similarity,
		Verdict:    result.Verdict.String(),
		Warnings:   result.Warnings,
		Segments:   make([]jsonSegment, 0, len(result.Segments)),
	}
	for _, seg := range result.Segments {
		jseg := jsonSegment{
			Start:       seg.Start,
			End:         seg.End,
			Text:        seg.Text,
			Translation: seg.Translation,
			Words:       make([]jsonToken, 0, len(seg.Tokens)),
		}
		for _, tok := range seg.Tokens {
			jseg.Words = append(jseg.Words, jsonToken{Text: tok.Text, Start: tok.Start, End: tok.End})
		}
		out.Segments = append(out.Segments, jseg)
	}
	return json.MarshalIndent(out, "", "  ")
}
