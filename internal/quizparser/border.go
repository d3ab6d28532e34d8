package quizparser

import (
	"regexp"
	"strings"
)

// minBorderLen is the shortest intro/outro worth surfacing, after edge stripping.
const minBorderLen = 20

var outroNoiseShapes = append(append([]*regexp.Regexp{}, introNoiseShapes...), closingNoiseRe)

// extractIntro returns the prose before the first question, if any is worth keeping.
func extractIntro(normalized string, first Segment) string {
	return borderText(normalized[:first.Start], introNoiseShapes)
}

// extractOutro returns the prose after the last question's options, answer
// and explanation lines.
func extractOutro(normalized string, last Segment) string {
	return borderText(normalized[consumedEnd(normalized, last):], outroNoiseShapes)
}

// consumedEnd is the offset just past the structural lines (option, answer,
// explanation, hint) that follow the final segment. The first prose line
// after the segment ends the scan.
func consumedEnd(normalized string, last Segment) int {
	end := last.End
	offset := last.Start
	for _, line := range strings.Split(normalized[last.Start:], "\n") {
		lineStart, lineEnd := offset, offset+len(line)
		offset = lineEnd + 1
		switch {
		case lineEnd <= end:
			continue
		case lineStart < end:
			// The segment stops mid-line; the rest of that line is its own.
			end = lineEnd
		case strings.TrimSpace(line) == "":
			continue
		case structuralLineRe.MatchString(line):
			end = lineEnd
		default:
			return end
		}
	}
	return end
}

func borderText(raw string, noise []*regexp.Regexp) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return ""
	}
	for _, shape := range noise {
		if shape.MatchString(candidate) {
			return ""
		}
	}

	cleaned := strings.TrimSpace(stripGlyphs(candidate))
	cleaned = edgeLeadRe.ReplaceAllString(cleaned, "")
	cleaned = edgeTrailRe.ReplaceAllString(cleaned, "")
	if runeLen(cleaned) < minBorderLen {
		return ""
	}
	return cleaned
}
