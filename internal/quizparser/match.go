package quizparser

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// MatchKind tags what a Match was found as.
type MatchKind int

const (
	MatchQuestionMarker MatchKind = iota
	MatchAnswerMarker
	MatchOption
	MatchAnswer
	MatchField
)

// Match is one pattern hit with its byte offsets and captured groups.
// Groups[0] is the whole match; unmatched groups are empty.
type Match struct {
	Kind   MatchKind
	Start  int
	End    int
	Groups []string
}

// Group returns captured group i, or "" when it does not exist.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// findAll returns every non-overlapping match of re in s.
func findAll(re *regexp.Regexp, kind MatchKind, s string) []Match {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, toMatch(kind, s, loc))
	}
	return matches
}

// findFirst returns the leftmost match of re in s.
func findFirst(re *regexp.Regexp, kind MatchKind, s string) (Match, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return toMatch(kind, s, loc), true
}

func toMatch(kind MatchKind, s string, loc []int) Match {
	groups := make([]string, len(loc)/2)
	for g := range groups {
		if loc[2*g] >= 0 {
			groups[g] = s[loc[2*g]:loc[2*g+1]]
		}
	}
	return Match{Kind: kind, Start: loc[0], End: loc[1], Groups: groups}
}

// atoi parses a question number, yielding 0 for anything unparseable.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
