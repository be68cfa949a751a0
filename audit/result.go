package audit

// IssueKind identifies a detected risk factor. The values are stable and
// safe to match on in tests and machine consumers.
type IssueKind string

const (
	IssueContainsFirstName     IssueKind = "contains_first_name"
	IssueContainsLastName      IssueKind = "contains_last_name"
	IssueContainsBirthFragment IssueKind = "contains_birth_fragment"
	IssueInvalidDOBFormat      IssueKind = "invalid_dob_format"
	IssueTooShort              IssueKind = "too_short"
	IssueMediumLength          IssueKind = "medium_length"
	IssueSingleCharClass       IssueKind = "single_char_class"
	IssueTwoCharClasses        IssueKind = "two_char_classes"
	IssueNoSpecialChars        IssueKind = "no_special_chars"
	IssueRepeatedChars         IssueKind = "repeated_chars"
	IssueHasSequence           IssueKind = "has_sequence"
	IssueCommonWord            IssueKind = "common_word"
)

// RecommendationKind identifies a piece of advice attached to the report.
type RecommendationKind string

const (
	RecAvoidFirstName   RecommendationKind = "avoid_first_name"
	RecAvoidLastName    RecommendationKind = "avoid_last_name"
	RecAvoidBirthDate   RecommendationKind = "avoid_birth_date"
	RecUseDOBFormat     RecommendationKind = "use_dob_format"
	RecIncreaseLength   RecommendationKind = "increase_length"
	RecPreferLonger     RecommendationKind = "prefer_longer"
	RecLengthIsGood     RecommendationKind = "length_is_good"
	RecMixClasses       RecommendationKind = "mix_char_classes"
	RecAddMoreClasses   RecommendationKind = "add_more_classes"
	RecAddSpecialChars  RecommendationKind = "add_special_chars"
	RecAvoidRepeats     RecommendationKind = "avoid_repeats"
	RecAvoidSequences   RecommendationKind = "avoid_sequences"
	RecAvoidCommonWords RecommendationKind = "avoid_common_words"
	RecGoodPractice     RecommendationKind = "good_practice"
)

// Issue is a detected risk factor. Tokens is only populated for
// IssueContainsBirthFragment and lists the matched fragments in
// lexicographic order.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
	Tokens  []string  `json:"tokens,omitempty"`
}

// Recommendation is user-facing advice tied to one or more issues.
type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Message string             `json:"message"`
}

// Result is the outcome of a single password audit. Issues appear in
// detection order and are never deduplicated; Recommendations are distinct,
// first occurrence kept. Length counts runes, not bytes.
type Result struct {
	Score           int              `json:"score"`
	Length          int              `json:"length"`
	Classes         CharClasses      `json:"classes"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}
