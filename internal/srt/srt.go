package srt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"subtune/internal/transcript"
)

// Parse reads SRT content into captions. Parsing is tolerant: blocks
// without a valid timing line are skipped rather than failing the whole
// file, and the cue index line is optional. Multi-line cue text is joined
// with single spaces.
func Parse(data []byte) ([]transcript.Caption, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var captions []transcript.Caption
	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")
		idx := 0
		if idx < len(lines) && isNumeric(strings.TrimSpace(lines[idx])) {
			idx++
		}
		if idx >= len(lines) || !strings.Contains(lines[idx], "-->") {
			continue
		}
		parts := strings.SplitN(lines[idx], "-->", 2)
		start, errStart := ParseTimestamp(parts[0])
		end, errEnd := ParseTimestamp(parts[1])
		if errStart != nil || errEnd != nil {
			continue
		}

		textLines := make([]string, 0, len(lines)-idx-1)
		for _, line := range lines[idx+1:] {
			line = strings.TrimSpace(line)
			if line != "" {
				textLines = append(textLines, line)
			}
		}
		text := strings.Join(textLines, " ")
		if text == "" {
			continue
		}

		captions = append(captions, transcript.Caption{Start: start, End: end, Text: text})
	}
	return captions, nil
}

// Format renders captions as SRT, numbering cues from 1.
func Format(captions []transcript.Caption) []byte {
	var sb strings.Builder
	for i, c := range captions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatTimestamp(c.Start), FormatTimestamp(c.End)))
		sb.WriteString(c.Text)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm) to seconds.
// A period separator is accepted alongside the standard comma.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatTimestamp renders seconds as an SRT timestamp. Negative values
// clamp to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int(math.Round(seconds * 1000))
	hours := totalMillis / 3600000
	totalMillis %= 3600000
	minutes := totalMillis / 60000
	totalMillis %= 60000
	secs := totalMillis / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

func splitBlocks(content string) []string {
	raw := strings.Split(content, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		block = strings.TrimSpace(block)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
