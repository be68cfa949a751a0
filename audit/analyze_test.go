package audit

import (
	"reflect"
	"testing"
)

func hasIssue(t *testing.T, r Result, kind IssueKind) bool {
	t.Helper()
	for _, is := range r.Issues {
		if is.Kind == kind {
			return true
		}
	}
	return false
}

func TestAnalyze_CommonWordAndSequence(t *testing.T) {
	r := Analyze("qwerty123", "John", "Smith", "01.01.2000")

	if !hasIssue(t, r, IssueCommonWord) {
		t.Error("expected common_word issue for password containing 'qwerty'")
	}
	if !hasIssue(t, r, IssueHasSequence) {
		t.Error("expected has_sequence issue for password containing 'qwer'")
	}
	if r.Score >= 10 {
		t.Errorf("Score = %d, want < 10", r.Score)
	}

	// medium length (-2), two classes (-2), sequence (-2), common word (-3).
	if r.Score != 1 {
		t.Errorf("Score = %d, want 1", r.Score)
	}
	if r.Length != 9 {
		t.Errorf("Length = %d, want 9", r.Length)
	}
}

func TestAnalyze_CleanPassword(t *testing.T) {
	t.Run("SixteenChars", func(t *testing.T) {
		r := Analyze("K9$mZx7!QvLp2#Wn", "John", "Smith", "01.01.2000")
		if len(r.Issues) != 0 {
			t.Fatalf("Issues = %v, want none", r.Issues)
		}
		if r.Score != 10 {
			t.Errorf("Score = %d, want 10", r.Score)
		}
		if len(r.Recommendations) != 1 || r.Recommendations[0].Kind != RecGoodPractice {
			t.Errorf("Recommendations = %v, want exactly the good_practice entry", r.Recommendations)
		}
	})

	t.Run("FourteenChars", func(t *testing.T) {
		// In the 12-15 band a clean password still gets the length note
		// ahead of the generic advice.
		r := Analyze("K9$mZx7!QvLp2#", "John", "Smith", "01.01.2000")
		if len(r.Issues) != 0 {
			t.Fatalf("Issues = %v, want none", r.Issues)
		}
		if r.Score != 10 {
			t.Errorf("Score = %d, want 10", r.Score)
		}
		wantKinds := []RecommendationKind{RecLengthIsGood, RecGoodPractice}
		if len(r.Recommendations) != len(wantKinds) {
			t.Fatalf("Recommendations = %v, want kinds %v", r.Recommendations, wantKinds)
		}
		for i, k := range wantKinds {
			if r.Recommendations[i].Kind != k {
				t.Errorf("Recommendations[%d].Kind = %s, want %s", i, r.Recommendations[i].Kind, k)
			}
		}
	})
}

func TestAnalyze_FirstNamePenalty(t *testing.T) {
	// 16 chars, all four classes, no other findings: only the first-name hit.
	r := Analyze("Jo-hn K9$mZx7!Qv", "John", "", "01.01.2000")
	if !hasIssue(t, r, IssueContainsFirstName) {
		t.Fatal("expected contains_first_name issue despite separators in the password")
	}
	if r.Score != 7 {
		t.Errorf("Score = %d, want 7 (10 - 3)", r.Score)
	}
}

func TestAnalyze_BirthFragmentsSorted(t *testing.T) {
	r := Analyze("15061990", "", "", "15.06.1990")
	if !hasIssue(t, r, IssueContainsBirthFragment) {
		t.Fatal("expected contains_birth_fragment issue")
	}
	var got []string
	for _, is := range r.Issues {
		if is.Kind == IssueContainsBirthFragment {
			got = is.Tokens
		}
	}
	want := []string{"06", "15", "1506", "15061990", "1990", "90"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestAnalyze_InvalidDOBIsNonFatal(t *testing.T) {
	r := Analyze("short", "", "", "31.02.2000")
	if !hasIssue(t, r, IssueInvalidDOBFormat) {
		t.Error("expected invalid_dob_format issue")
	}
	// Analysis continues past the date failure.
	if !hasIssue(t, r, IssueTooShort) {
		t.Error("expected too_short issue alongside the date issue")
	}
}

func TestAnalyze_ScoreClamped(t *testing.T) {
	// -3 name, -1 dob, -4 length, -2 classes, -1 repeats: raw -1, clamped.
	r := Analyze("john111", "John", "", "nope")
	if r.Score != 1 {
		t.Errorf("Score = %d, want clamp to 1", r.Score)
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	inputs := []struct{ p, fn, ln, dob string }{
		{"", "", "", ""},
		{"a", "a", "a", "a"},
		{"qwerty123456password", "Qwerty", "Password", "01.01.2000"},
		{"K9$mZx7!QvLp2#Wn", "John", "Smith", "15.06.1990"},
		{"ümlaut pässwörd", "Ümlaut", "", "29.02.2001"},
	}
	for _, in := range inputs {
		r := Analyze(in.p, in.fn, in.ln, in.dob)
		if r.Score < 1 || r.Score > 10 {
			t.Errorf("Analyze(%q, ...) score = %d, want within [1, 10]", in.p, r.Score)
		}
	}
}

func TestAnalyze_RecommendationsDistinct(t *testing.T) {
	inputs := []struct{ p, fn, ln, dob string }{
		{"", "", "", ""},
		{"qwerty123", "John", "Smith", "01.01.2000"},
		{"john01012000", "John", "", "01.01.2000"},
	}
	for _, in := range inputs {
		r := Analyze(in.p, in.fn, in.ln, in.dob)
		seen := make(map[RecommendationKind]struct{})
		for _, rec := range r.Recommendations {
			if _, dup := seen[rec.Kind]; dup {
				t.Errorf("Analyze(%q, ...) has duplicate recommendation %s", in.p, rec.Kind)
			}
			seen[rec.Kind] = struct{}{}
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := Analyze("qwerty123", "John", "Smith", "01.01.2000")
	b := Analyze("qwerty123", "John", "Smith", "01.01.2000")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated calls differ:\n%+v\n%+v", a, b)
	}
}

func TestDedupeRecommendations(t *testing.T) {
	in := []Recommendation{
		{Kind: RecAvoidRepeats, Message: "first"},
		{Kind: RecAvoidSequences, Message: "second"},
		{Kind: RecAvoidRepeats, Message: "third"},
	}
	out := dedupeRecommendations(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Message != "first" {
		t.Errorf("first occurrence not kept: %+v", out[0])
	}
}
