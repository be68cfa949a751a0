// Package audit scores a password against personal-information leakage and
// generic complexity heuristics. All functions are pure and safe for
// concurrent use; the package performs no I/O.
package audit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// commonWords are the most frequently attempted passwords and patterns.
var commonWords = []string{
	"password", "qwerty", "admin", "welcome", "login", "user",
	"iloveyou", "123456", "12345678", "111111", "000000",
}

const (
	scoreMax = 10
	scoreMin = 1
)

// Analyze evaluates password against the user's personal data and a set of
// complexity heuristics, returning a scored report. Penalties accumulate and
// the score is clamped to [1, 10] once at the end. Analyze never fails: a
// malformed date of birth is reported as a low-severity issue instead of an
// error, and every other input is accepted as-is, including empty strings.
func Analyze(password, firstName, lastName, dateOfBirth string) Result {
	issues := []Issue{}
	recs := []Recommendation{}
	score := scoreMax

	pNorm := Normalize(password)
	fnNorm := Normalize(firstName)
	lnNorm := Normalize(lastName)

	if fnNorm != "" && strings.Contains(pNorm, fnNorm) {
		issues = append(issues, Issue{
			Kind:    IssueContainsFirstName,
			Message: "password contains the user's first name",
		})
		score -= 3
		recs = append(recs, Recommendation{
			Kind:    RecAvoidFirstName,
			Message: "remove your first name from the password or replace it with random words/symbols",
		})
	}

	if lnNorm != "" && strings.Contains(pNorm, lnNorm) {
		issues = append(issues, Issue{
			Kind:    IssueContainsLastName,
			Message: "password contains the user's last name",
		})
		score -= 3
		recs = append(recs, Recommendation{
			Kind:    RecAvoidLastName,
			Message: "do not use your last name in a password, it is easy to guess",
		})
	}

	// BirthTokens returns a sorted slice, so matched fragments come out in
	// lexicographic order.
	tokens, err := BirthTokens(dateOfBirth)
	switch {
	case err == nil:
		var found []string
		for _, t := range tokens {
			if strings.Contains(password, t) {
				found = append(found, t)
			}
		}
		if len(found) > 0 {
			issues = append(issues, Issue{
				Kind:    IssueContainsBirthFragment,
				Message: fmt.Sprintf("password contains fragments of the date of birth: %s", strings.Join(found, ", ")),
				Tokens:  found,
			})
			score -= 3
			recs = append(recs, Recommendation{
				Kind:    RecAvoidBirthDate,
				Message: "do not use your birth date, year, day or month in a password",
			})
		}
	case errors.Is(err, ErrInvalidDateFormat):
		issues = append(issues, Issue{
			Kind:    IssueInvalidDOBFormat,
			Message: "date of birth was entered in the wrong format (expected DD.MM.YYYY)",
		})
		score--
		recs = append(recs, Recommendation{
			Kind:    RecUseDOBFormat,
			Message: "enter the date of birth as DD.MM.YYYY so it can be checked properly",
		})
	}

	length := utf8.RuneCountInString(password)
	switch {
	case length < 8:
		issues = append(issues, Issue{
			Kind:    IssueTooShort,
			Message: "password is shorter than 8 characters",
		})
		score -= 4
		recs = append(recs, Recommendation{
			Kind:    RecIncreaseLength,
			Message: "make the password at least 12-16 characters long",
		})
	case length < 12:
		issues = append(issues, Issue{
			Kind:    IssueMediumLength,
			Message: "password length is medium (8-11 characters)",
		})
		score -= 2
		recs = append(recs, Recommendation{
			Kind:    RecPreferLonger,
			Message: "12-16+ characters are recommended for better protection",
		})
	case length < 16:
		recs = append(recs, Recommendation{
			Kind:    RecLengthIsGood,
			Message: "length is good; for maximum protection use 16+ characters",
		})
	}

	classes := Classify(password)
	switch n := classes.Count(); {
	case n <= 1:
		issues = append(issues, Issue{
			Kind:    IssueSingleCharClass,
			Message: "password uses only one type of character (e.g. only letters or only digits)",
		})
		score -= 4
		recs = append(recs, Recommendation{
			Kind:    RecMixClasses,
			Message: "combine uppercase and lowercase letters, digits and special characters",
		})
	case n == 2:
		issues = append(issues, Issue{
			Kind:    IssueTwoCharClasses,
			Message: "password has only 2 character types; more variety is advisable",
		})
		score -= 2
		recs = append(recs, Recommendation{
			Kind:    RecAddMoreClasses,
			Message: "add a third or fourth character type, for example special characters",
		})
	case n == 3 && !classes.Special:
		issues = append(issues, Issue{
			Kind:    IssueNoSpecialChars,
			Message: "no special characters, which lowers resistance to guessing",
		})
		score--
		recs = append(recs, Recommendation{
			Kind:    RecAddSpecialChars,
			Message: "add 1-2 special characters (!@#$%...) in unpredictable places",
		})
	}

	if hasRepeatedRun(password) {
		issues = append(issues, Issue{
			Kind:    IssueRepeatedChars,
			Message: "the same character repeats 3+ times in a row (e.g. 'aaa' or '111')",
		})
		score--
		recs = append(recs, Recommendation{
			Kind:    RecAvoidRepeats,
			Message: "avoid long runs of the same character",
		})
	}

	if HasSequence(password) {
		issues = append(issues, Issue{
			Kind:    IssueHasSequence,
			Message: "contains simple sequences (e.g. 1234 or abcd/qwerty)",
		})
		score -= 2
		recs = append(recs, Recommendation{
			Kind:    RecAvoidSequences,
			Message: "avoid sequences, attackers try them first",
		})
	}

	lowered := strings.ToLower(password)
	for _, w := range commonWords {
		if strings.Contains(lowered, w) {
			issues = append(issues, Issue{
				Kind:    IssueCommonWord,
				Message: "password contains a common word or pattern (password, qwerty, 123456...)",
			})
			score -= 3
			recs = append(recs, Recommendation{
				Kind:    RecAvoidCommonWords,
				Message: "avoid the most popular words and patterns; use random phrases instead",
			})
			break
		}
	}

	if score < scoreMin {
		score = scoreMin
	}
	if score > scoreMax {
		score = scoreMax
	}

	if len(issues) == 0 {
		recs = append(recs, Recommendation{
			Kind:    RecGoodPractice,
			Message: "no obvious risks found; use a password manager and enable 2FA",
		})
	}

	return Result{
		Score:           score,
		Length:          length,
		Classes:         classes,
		Issues:          issues,
		Recommendations: dedupeRecommendations(recs),
	}
}

// hasRepeatedRun reports whether any rune repeats 3 or more times in a row.
// regexp backreferences are unavailable in RE2, hence the plain scan.
func hasRepeatedRun(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
			continue
		}
		prev = r
		run = 1
	}
	return false
}

// dedupeRecommendations removes duplicate kinds, keeping first occurrence.
func dedupeRecommendations(recs []Recommendation) []Recommendation {
	seen := make(map[RecommendationKind]struct{}, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.Kind]; ok {
			continue
		}
		seen[r.Kind] = struct{}{}
		out = append(out, r)
	}
	return out
}
