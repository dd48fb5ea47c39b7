// Package answer implements the lenient answer matcher used to grade
// free-text submissions against a question's canonical correct answer.
package answer

import (
	"strings"
	"unicode"
)

// Normalize reduces an answer string to its comparable form.
//
// Normalization rules:
// - Lowercase
// - All whitespace removed
// - "=" characters removed
// - Parentheses removed
// - One leading literal "x" stripped (so "x=5" grades the same as "5")
//
// The result is a purely syntactic canonical form. Normalize does not
// parse or evaluate math, so "1/2" and "0.5" remain unequal even though
// they denote the same value. That limitation is deliberate.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
		case r == '=', r == '(', r == ')':
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	out = strings.TrimPrefix(out, "x")
	return strings.TrimSpace(out)
}

// Matches reports whether a learner's answer grades as correct for the
// given canonical answer. Both sides are normalized before comparison.
//
// A blank submission can only match a blank canonical answer; catalogs
// are expected to reject questions whose normalized answer is empty so
// that case never grades as correct in practice.
func Matches(userAnswer, correctAnswer string) bool {
	return Normalize(userAnswer) == Normalize(correctAnswer)
}
