package audit

import "strings"

// referenceSequences are the ordered alphabets checked for simple runs:
// digits, the Latin alphabet, and the three main keyboard rows.
var referenceSequences = []string{
	"0123456789",
	"abcdefghijklmnopqrstuvwxyz",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

const sequenceWindow = 4

// HasSequence reports whether the lowercased password contains any
// 4-character forward run from one of the reference alphabets, such as
// "1234", "abcd" or "qwer". Reversed runs like "4321" are not detected.
func HasSequence(password string) bool {
	p := strings.ToLower(password)
	for _, seq := range referenceSequences {
		for i := 0; i+sequenceWindow <= len(seq); i++ {
			if strings.Contains(p, seq[i:i+sequenceWindow]) {
				return true
			}
		}
	}
	return false
}
