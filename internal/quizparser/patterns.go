package quizparser

import "regexp"

// glyphClass lists the pictographs models decorate quizzes with.
const glyphClass = `\x{1F44B}\x{1F3AF}\x{1F4DD}\x{1F4DA}\x{1F393}\x{1F4A1}\x{1F525}\x{2728}\x{1F389}`

// markerAlt captures the first question marker a preamble runs up to.
const markerAlt = `(\*\*Question\s+\d+:|Question\s+\d+)`

const greetingAlt = `of course|i can|i['’]ll|let me|sure|absolutely|definitely|i['’]d be happy|i['’]m happy|here you go|here['’]s|ready to start|let['’]s begin|let['’]s do|let['’]s go`

const apologyAlt = `my apologies|sorry|apologize`

// dotOptionAlt is an "A." option lead. The dot may touch the text ("A.4",
// "B.Paris") but a letter followed by another dot ("A.D.") is an abbreviation.
const dotOptionAlt = `[A-D]\.(?:[ \t]|[^.\s\pL]|\pL(?:[^.]|$))`

// Normalizer.
var (
	// Ordered; the first shape matching the start of the text wins.
	preambleShapes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)^\s*(?:` + greetingAlt + `|` + apologyAlt + `)\b.*?` + markerAlt),
		regexp.MustCompile(`(?is)^\s*(?:[` + glyphClass + `]\x{FE0F}?|-)+.*?` + markerAlt),
		regexp.MustCompile(`(?i)^[^\p{L}\p{N}_*]*` + markerAlt),
	}

	decorativeRunRe = regexp.MustCompile(`(?:[` + glyphClass + `]\x{FE0F}?)+|-{2,}`)
	separatorLineRe = regexp.MustCompile(`(?m)^[ \t]*[-─━═]{3,}[ \t]*$`)
)

// Detector.
var (
	questionMarkerRe = regexp.MustCompile(`(?i)Question\s+\d+:`)
	optionMarkerRe   = regexp.MustCompile(`(?im)^[ \t]*[A-D]\)\s+`)
	answerDeclRe     = regexp.MustCompile(`(?i)Answer:[\s*]*[A-D]`)
)

// Segmenter.
var (
	emphasizedMarkerRe = regexp.MustCompile(`(?i)\*\*Question\s+(\d+):\*\*`)
	emphasizedAnswerRe = regexp.MustCompile(`(?i)\*\*Answer:`)
	plainMarkerRe      = regexp.MustCompile(`(?i)(?:\*\*)?Question\s+(\d+):(?:\*\*)?`)
	plainAnswerRe      = regexp.MustCompile(`(?i)(?:\*\*)?Answer:`)
	lineOpenRe         = regexp.MustCompile(`(?i)^(?:(\d+)\.|\*\*Question\s+(\d+):\*\*|Question\s+(\d+):)\s*(.+)$`)
	lineOptionRe       = regexp.MustCompile(`(?i)^[ \t]*[A-D]\)`)
)

// Question text isolation.
var (
	leadingMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d+\.\s*`),
		regexp.MustCompile(`(?i)^\*\*Question\s+\d+:\*\*\s*`),
		regexp.MustCompile(`(?i)^(?:\*\*)?Question\s+\d+:(?:\*\*)?\s*`),
	}
	leakedOptionsRe = regexp.MustCompile(`(?i)(?:^|\s+)[A-D]\)[^\n]*(?:\s+[A-D]\)[^\n]*){0,3}\s*$`)
	optionShapeRe   = regexp.MustCompile(`(?i)^(?:[A-D]\)|` + dotOptionAlt + `)`)
	labelLineRe     = regexp.MustCompile(`(?i)^(?:\*\*)?(?:correct\s+)?(?:answer|explanation|detailed\s+explanation|hint)\s*:`)
)

// Options.
var (
	optionParenRe = regexp.MustCompile(`(?im)^[ \t]*([A-D])\)[ \t]*(.+)$`)
	optionDotRe   = regexp.MustCompile(`(?im)^[ \t]*([A-D])\.[ \t]*(\S.*)$`)
	answerLeadRe  = regexp.MustCompile(`(?i)^(?:answer|correct)`)
)

// Answers, in cascade order.
var (
	answerEmphasizedRe = regexp.MustCompile(`(?i)\*\*Answer:\*\*\s*([A-D])\b`)
	answerPlainRe      = regexp.MustCompile(`(?i)Answer:\s*([A-D])\b`)
	// Also takes "answer a question" as answer A. Only reached when no
	// "Answer:" line exists.
	answerLooseRe      = regexp.MustCompile(`(?i)answer[:\s]*([A-D])\b`)
	answerLineRe       = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?Answer:[ \t*]*([A-D])[ \t*]*$`)
)

// Supplementary fields.
var (
	explanationRe         = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?Explanation:(?:\*\*)?[ \t]*(.+)$`)
	detailedExplanationRe = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?Detailed\s+Explanation:(?:\*\*)?[ \t]*(.+)$`)
	hintRe                = regexp.MustCompile(`(?im)^[ \t]*(?:\*\*)?Hint:(?:\*\*)?[ \t]*(.+)$`)
)

// Border text.
var (
	structuralLineRe = regexp.MustCompile(`(?i)^[ \t]*(?:[A-D]\)|` + dotOptionAlt + `|(?:\*\*)?(?:correct\s+)?answer\b|(?:\*\*)?(?:detailed\s+)?explanation\s*:|(?:\*\*)?hint\s*:)`)

	introNoiseShapes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:` + greetingAlt + `)`),
		regexp.MustCompile(`(?i)^(?:` + apologyAlt + `)`),
		regexp.MustCompile(`(?i)^(?:\*\*)?(?:quiz|question|answer|mcq|multiple choice)`),
		regexp.MustCompile(`^[^\p{L}\p{N}_]*$`),
		regexp.MustCompile(`^[` + glyphClass + `]`),
	}
	closingNoiseRe = regexp.MustCompile(`(?i)^(?:good luck|hope this helps|enjoy|have fun)`)

	edgeLeadRe  = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
	edgeTrailRe = regexp.MustCompile(`[^\p{L}\p{N}_.!?]+$`)
)
