package quizparser

// looksLikeQuiz is the cheap gate in front of segmentation: a question marker
// plus either an option line or an answer declaration.
func looksLikeQuiz(normalized string) bool {
	if !questionMarkerRe.MatchString(normalized) {
		return false
	}
	return optionMarkerRe.MatchString(normalized) || answerDeclRe.MatchString(normalized)
}
