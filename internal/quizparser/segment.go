package quizparser

import (
	"regexp"
	"strings"
)

// Segment is the span of normalized text attributed to one question.
// Start is the offset of its marker; End is where the question span stops
// (next marker, answer marker, or end of text). Text is the span after the
// marker, trimmed.
type Segment struct {
	Number int
	Start  int
	End    int
	Text   string
}

// segmentStrategy splits normalized text into question segments.
// An empty result means the strategy did not recognise the layout.
type segmentStrategy func(normalized string) []Segment

var segmentStrategies = []segmentStrategy{
	segmentByEmphasizedMarkers,
	segmentByPlainMarkers,
	segmentByLines,
}

// segment runs the cascade; the first strategy that yields anything is used
// on its own.
func segment(normalized string) []Segment {
	for _, strategy := range segmentStrategies {
		if segments := strategy(normalized); len(segments) > 0 {
			return segments
		}
	}
	return nil
}

// segmentByEmphasizedMarkers handles "**Question n:**" layouts.
func segmentByEmphasizedMarkers(normalized string) []Segment {
	return segmentByMarkers(normalized, emphasizedMarkerRe, emphasizedAnswerRe)
}

// segmentByPlainMarkers handles "Question n:" layouts.
func segmentByPlainMarkers(normalized string) []Segment {
	return segmentByMarkers(normalized, plainMarkerRe, plainAnswerRe)
}

func segmentByMarkers(text string, markerRe, answerRe *regexp.Regexp) []Segment {
	markers := findAll(markerRe, MatchQuestionMarker, text)
	if len(markers) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(markers))
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1].Start
		}
		if answer, ok := findFirst(answerRe, MatchAnswerMarker, text[m.End:end]); ok {
			end = m.End + answer.Start
		}
		segments = append(segments, Segment{
			Number: atoi(m.Group(1)),
			Start:  m.Start,
			End:    end,
			Text:   strings.TrimSpace(text[m.End:end]),
		})
	}
	return segments
}

// minLineSegmentLen is the text length a line-built segment must exceed.
const minLineSegmentLen = 10

// segmentByLines is the fallback for numbered lists ("1. ...") and markers
// that the span strategies missed. A question line opens a segment, prose
// lines extend it and the first option line closes it.
func segmentByLines(normalized string) []Segment {
	var (
		segments []Segment
		open     *Segment
		offset   int
	)

	closeOpen := func() {
		if open == nil {
			return
		}
		open.Text = strings.TrimSpace(open.Text)
		if runeLen(open.Text) > minLineSegmentLen {
			segments = append(segments, *open)
		}
		open = nil
	}

	for _, line := range strings.Split(normalized, "\n") {
		lineEnd := offset + len(line)

		if m, ok := findFirst(lineOpenRe, MatchQuestionMarker, line); ok {
			closeOpen()
			open = &Segment{
				Number: atoi(firstNonEmpty(m.Group(1), m.Group(2), m.Group(3))),
				Start:  offset,
				End:    lineEnd,
				Text:   m.Group(4),
			}
		} else if open != nil && lineOptionRe.MatchString(line) {
			closeOpen()
		} else if open != nil && strings.TrimSpace(line) != "" {
			open.Text += "\n" + line
			open.End = lineEnd
		}

		offset = lineEnd + 1
	}
	closeOpen()

	return segments
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
