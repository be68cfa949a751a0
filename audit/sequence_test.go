package audit

import "testing"

func TestHasSequence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"KeyboardRow", "myqwerty1", true},
		{"Digits", "x1234y", true},
		{"Alphabet", "zabcdz", true},
		{"MiddleRow", "asdfgh", true},
		{"BottomRow", "zxcv", true},
		{"UppercaseMatches", "MyQWERty", true},
		{"Random", "Xk9Lm2Pq", false},
		{"ReversedNotDetected", "4321dcba", false},
		{"ThreeCharsTooShort", "qwe123abc", false},
		{"Empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasSequence(tc.in); got != tc.want {
				t.Errorf("HasSequence(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
