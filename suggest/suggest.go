// Package suggest produces random replacement passwords for users whose
// current password audited poorly.
package suggest

import (
	"crypto/rand"
	"fmt"
	"math/big"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// alphabet mixes all four character classes so suggestions score well on
// the same checks the audit applies.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_=+[]{}<>?"

const maxAttempts = 10

// Password returns a random password of the given length drawn from a mixed
// alphabet. Candidates below the minimum entropy threshold (in bits) are
// discarded and regenerated; an error is returned when the requested length
// cannot clear the threshold.
func Password(length int, minEntropy float64) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		buf := make([]byte, length)
		for i := range buf {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
			if err != nil {
				return "", fmt.Errorf("failed to read random bytes: %w", err)
			}
			buf[i] = alphabet[n.Int64()]
		}
		candidate := string(buf)
		if err := passwordvalidator.Validate(candidate, minEntropy); err != nil {
			continue
		}
		return candidate, nil
	}

	return "", fmt.Errorf("could not generate a password of length %d with at least %.0f bits of entropy", length, minEntropy)
}
