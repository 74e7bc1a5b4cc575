package intent

import (
	"regexp"
	"strings"
)

// rule binds one intent category to its whole-word keyword pattern.
type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// rules are evaluated in order; the first matching category wins, so the
// slice order defines the classification priority (music, workout, study).
var rules = []rule{
	{RecommendMusic, regexp.MustCompile(`\b(music|song|play)\b`)},
	{SuggestWorkout, regexp.MustCompile(`\b(workout|exercise|train)\b`)},
	{ScheduleStudy, regexp.MustCompile(`\b(study|schedule|learn)\b`)},
}

// Classify infers the intent of the given text. Matching is case-insensitive
// and purely keyword-based; there is no scoring or partial credit. Texts with
// no recognized keyword classify as Unknown.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) {
			return r.intent
		}
	}
	return Unknown
}
