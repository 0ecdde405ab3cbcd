package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation tags input-shape failures so callers can classify them with
// errors.Is without parsing messages.
var ErrValidation = errors.New("validation error")

// invalid builds a validation error identifying the entity and field at fault.
func invalid(entity, field, message string) error {
	parts := make([]string, 0, 3)
	if entity = strings.TrimSpace(entity); entity != "" {
		parts = append(parts, entity)
	}
	if field = strings.TrimSpace(field); field != "" {
		parts = append(parts, field)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, ": "))
}

// ValidateCaptions checks reference cues for structural problems. Ordering
// anomalies are deliberately not rejected; the linearizer tolerates them by
// treating out-of-order cues as independent captions.
func ValidateCaptions(captions []Caption) error {
	for i, c := range captions {
		if c.End < c.Start {
			return invalid(fmt.Sprintf("caption[%d]", i), "end",
				fmt.Sprintf("%.3f precedes start %.3f", c.End, c.Start))
		}
	}
	return nil
}

// ValidateWords checks a machine word stream: non-empty text, start <= end
// per word, and non-decreasing start times across the stream.
func ValidateWords(words []Word) error {
	prev := 0.0
	for i, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			return invalid(fmt.Sprintf("word[%d]", i), "text", "empty")
		}
		if w.End < w.Start {
			return invalid(fmt.Sprintf("word[%d]", i), "end",
				fmt.Sprintf("%.3f precedes start %.3f", w.End, w.Start))
		}
		if i > 0 && w.Start < prev {
			return invalid(fmt.Sprintf("word[%d]", i), "start",
				fmt.Sprintf("%.3f precedes previous word start %.3f", w.Start, prev))
		}
		prev = w.Start
	}
	return nil
}

// ValidateSegments checks machine transcript segments and their words,
// applying the same per-word rules as ValidateWords within each segment.
func ValidateSegments(segments []Segment) error {
	for i, seg := range segments {
		if seg.End < seg.Start {
			return invalid(fmt.Sprintf("segment[%d]", i), "end",
				fmt.Sprintf("%.3f precedes start %.3f", seg.End, seg.Start))
		}
		prev := 0.0
		for j, w := range seg.Words {
			if strings.TrimSpace(w.Text) == "" {
				return invalid(fmt.Sprintf("segment[%d].word[%d]", i, j), "text", "empty")
			}
			if w.End < w.Start {
				return invalid(fmt.Sprintf("segment[%d].word[%d]", i, j), "end",
					fmt.Sprintf("%.3f precedes start %.3f", w.End, w.Start))
			}
			if j > 0 && w.Start < prev {
				return invalid(fmt.Sprintf("segment[%d].word[%d]", i, j), "start",
					fmt.Sprintf("%.3f precedes previous word start %.3f", w.Start, prev))
			}
			prev = w.Start
		}
	}
	return nil
}
