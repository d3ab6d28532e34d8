package quizparser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize strips conversational preambles, decorative glyphs and
// separator rules. It never fails and never mutates its input.
func normalize(text string) string {
	cleaned := strings.ToValidUTF8(text, "\uFFFD")
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")
	cleaned = norm.NFC.String(cleaned)

	cleaned = stripPreamble(cleaned)
	cleaned = separatorLineRe.ReplaceAllString(cleaned, "")
	cleaned = decorativeRunRe.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// stripPreamble removes everything before the first question marker when the
// text opens with a recognised preamble shape. The marker itself is kept.
func stripPreamble(text string) string {
	for _, shape := range preambleShapes {
		loc := shape.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		markerStart := loc[len(loc)-2]
		return text[markerStart:]
	}
	return text
}

// stripGlyphs removes decorative runs only, leaving layout alone.
func stripGlyphs(text string) string {
	return decorativeRunRe.ReplaceAllString(text, "")
}
