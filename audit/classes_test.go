package audit

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want CharClasses
	}{
		{"LowerOnly", "abc", CharClasses{Lower: true}},
		{"Empty", "", CharClasses{}},
		{"UpperAndDigit", "A1", CharClasses{Upper: true, Digit: true}},
		{"AllFour", "aB3!", CharClasses{Lower: true, Upper: true, Digit: true, Special: true}},
		{"SpaceIsSpecial", "ab cd", CharClasses{Lower: true, Special: true}},
		{"NonASCIIIsSpecial", "über", CharClasses{Lower: true, Special: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in); got != tc.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCharClasses_Count(t *testing.T) {
	if got := Classify("aB3!").Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if got := Classify("").Count(); got != 0 {
		t.Errorf("Count() on empty = %d, want 0", got)
	}
}

func TestCharClasses_Active(t *testing.T) {
	got := Classify("aB3!").Active()
	want := "lowercase, uppercase, digits, special"
	if joined := strings.Join(got, ", "); joined != want {
		t.Errorf("Active() = %q, want %q", joined, want)
	}
	if names := Classify("").Active(); len(names) != 0 {
		t.Errorf("Active() on empty = %v, want none", names)
	}
}
