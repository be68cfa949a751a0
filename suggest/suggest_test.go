package suggest

import (
	"strings"
	"testing"
)

func TestPassword_Length(t *testing.T) {
	got, err := Password(20, 60)
	if err != nil {
		t.Fatalf("Password() error = %v, want nil", err)
	}
	if len(got) != 20 {
		t.Errorf("Password() length = %d, want 20", len(got))
	}
}

func TestPassword_AlphabetOnly(t *testing.T) {
	got, err := Password(32, 60)
	if err != nil {
		t.Fatalf("Password() error = %v, want nil", err)
	}
	for _, c := range got {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("Password() produced character %q outside the alphabet", c)
		}
	}
}

func TestPassword_InvalidLength(t *testing.T) {
	if _, err := Password(0, 60); err == nil {
		t.Error("Password(0, ...) should have failed, but it did not")
	}
}

func TestPassword_EntropyGate(t *testing.T) {
	// A 2-character password can never reach 60 bits of entropy.
	if _, err := Password(2, 60); err == nil {
		t.Error("Password(2, 60) should have failed the entropy gate, but it did not")
	}
}

func TestPassword_NotDeterministic(t *testing.T) {
	a, err := Password(20, 60)
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	b, err := Password(20, 60)
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if a == b {
		t.Error("two generated passwords are identical")
	}
}
